package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/store"
)

func openTestGateway(t *testing.T) *Gateway {
	t.Helper()
	g, err := Open(filepath.Join(t.TempDir(), "taskit.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestLoadFreshDatabaseIsEmpty(t *testing.T) {
	g := openTestGateway(t)

	st, err := g.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(st.Tasks()) != 0 || len(st.Groups()) != 0 || len(st.Tags()) != 0 {
		t.Error("expected an empty store from a fresh database")
	}

	// Counters start at 1 on a fresh store
	task, _ := st.CreateTask(store.CreateTaskRequest{Text: "first"})
	if task.ID != 1 {
		t.Errorf("first task id = %d, want 1", task.ID)
	}
}

// buildFixture populates a store the way the round-trip property in the
// spec describes: several groups and tags, tasks with and without
// groups, due dates, tags, and comments.
func buildFixture(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()

	var groups []*models.Group
	for _, name := range []string{"Work", "Home", "Errands"} {
		g, err := s.CreateGroup(name)
		if err != nil {
			t.Fatal(err)
		}
		groups = append(groups, g)
	}
	var tags []*models.Tag
	for _, name := range []string{"urgent", "waiting", "weekend", "calls"} {
		tag, err := s.CreateTag(name)
		if err != nil {
			t.Fatal(err)
		}
		tags = append(tags, tag)
	}

	for i := 0; i < 10; i++ {
		req := store.CreateTaskRequest{Text: fmt.Sprintf("task %d", i)}
		if i%2 == 0 {
			req.GroupID = &groups[i%3].ID
		}
		if i%3 == 0 {
			due := models.NewDate(2026, time.September, i+1)
			req.DueDate = &due
		}
		if i%4 != 3 {
			req.Tags = []int{tags[i%4].ID}
		}
		req.Priority = models.Priority(i % 4)

		task, err := s.CreateTask(req)
		if err != nil {
			t.Fatal(err)
		}
		if i%5 == 0 {
			if _, err := s.AddComment(task.ID, fmt.Sprintf("note %d", i), "https://example.com"); err != nil {
				t.Fatal(err)
			}
		}
	}
	if _, err := s.ToggleDone(2); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := openTestGateway(t)
	original := buildFixture(t)

	if err := g.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if original.Dirty() {
		t.Error("store should be clean after save")
	}

	loaded, err := g.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Groups()) != 3 || len(loaded.Tags()) != 4 || len(loaded.Tasks()) != 10 {
		t.Fatalf("entity counts differ: %d groups, %d tags, %d tasks",
			len(loaded.Groups()), len(loaded.Tags()), len(loaded.Tasks()))
	}

	for _, want := range original.Tasks() {
		got, err := loaded.Task(want.ID)
		if err != nil {
			t.Fatalf("task %d missing after round-trip", want.ID)
		}
		if got.Text != want.Text || got.Done != want.Done || got.Priority != want.Priority {
			t.Errorf("task %d fields differ: got %+v, want %+v", want.ID, got, want)
		}
		if (got.GroupID == nil) != (want.GroupID == nil) {
			t.Errorf("task %d group presence differs", want.ID)
		} else if want.GroupID != nil && *got.GroupID != *want.GroupID {
			t.Errorf("task %d group = %d, want %d", want.ID, *got.GroupID, *want.GroupID)
		}
		if (got.DueDate == nil) != (want.DueDate == nil) {
			t.Errorf("task %d due date presence differs", want.ID)
		} else if want.DueDate != nil && *got.DueDate != *want.DueDate {
			t.Errorf("task %d due = %v, want %v", want.ID, *got.DueDate, *want.DueDate)
		}
		if len(got.Tags) != len(want.Tags) {
			t.Errorf("task %d tag count differs", want.ID)
		}
		for _, tagID := range want.Tags {
			if !got.HasTag(tagID) {
				t.Errorf("task %d lost tag %d", want.ID, tagID)
			}
		}
		if len(got.Comments) != len(want.Comments) {
			t.Errorf("task %d comment count differs", want.ID)
		} else {
			for i := range want.Comments {
				w, gc := want.Comments[i], got.Comments[i]
				if gc.ID != w.ID || gc.Text != w.Text || gc.URL != w.URL {
					t.Errorf("task %d comment %d differs: got %+v, want %+v", want.ID, i, gc, w)
				}
			}
		}
	}

	// Counters round-trip: the next task id carries on from the original
	next, _ := loaded.CreateTask(store.CreateTaskRequest{Text: "eleventh"})
	if next.ID != 11 {
		t.Errorf("next task id after round-trip = %d, want 11", next.ID)
	}
}

func TestSaveIsIdempotentSnapshot(t *testing.T) {
	g := openTestGateway(t)
	s := buildFixture(t)

	if err := g.Save(s); err != nil {
		t.Fatal(err)
	}
	// A second save must replace, not duplicate, the snapshot
	s.CreateGroup("Extra")
	if err := g.Save(s); err != nil {
		t.Fatal(err)
	}

	loaded, err := g.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Groups()) != 4 {
		t.Errorf("got %d groups, want 4", len(loaded.Groups()))
	}
	if len(loaded.Tasks()) != 10 {
		t.Errorf("got %d tasks, want 10", len(loaded.Tasks()))
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskit.db")
	if err := os.WriteFile(path, []byte("this is not a database"), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := Open(path)
	if err == nil {
		g.Close()
		t.Fatal("expected an error opening a corrupt file")
	}
	if !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData, got %v", err)
	}
}

func TestLoadRejectsMalformedRows(t *testing.T) {
	g := openTestGateway(t)
	s := store.New()
	if _, err := s.CreateTask(store.CreateTaskRequest{Text: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := g.Save(s); err != nil {
		t.Fatal(err)
	}

	if err := g.db.Exec("UPDATE tasks SET due_date = 'gibberish'").Error; err != nil {
		t.Fatal(err)
	}
	if _, err := g.Load(); !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData, got %v", err)
	}

	if err := g.db.Exec("UPDATE tasks SET due_date = NULL, priority = 42").Error; err != nil {
		t.Fatal(err)
	}
	if _, err := g.Load(); !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData for out-of-range priority, got %v", err)
	}
}

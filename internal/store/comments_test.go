package store

import (
	"errors"
	"testing"
)

func TestAddCommentURLValidation(t *testing.T) {
	s := New()
	task, _ := s.CreateTask(CreateTaskRequest{Text: "x"})

	tests := []struct {
		url string
		ok  bool
	}{
		{"", true},
		{"https://example.com", true},
		{"http://example.com", true},
		{"ftp://x", false},
		{"example.com", false},
	}
	for _, tt := range tests {
		_, err := s.AddComment(task.ID, "note", tt.url)
		if tt.ok && err != nil {
			t.Errorf("url %q: unexpected error %v", tt.url, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidURL) {
			t.Errorf("url %q: expected ErrInvalidURL, got %v", tt.url, err)
		}
	}
}

func TestCommentIDsScopedPerTask(t *testing.T) {
	s := New()
	a, _ := s.CreateTask(CreateTaskRequest{Text: "a"})
	b, _ := s.CreateTask(CreateTaskRequest{Text: "b"})

	c1, _ := s.AddComment(a.ID, "one", "")
	c2, _ := s.AddComment(a.ID, "two", "")
	c3, _ := s.AddComment(b.ID, "other task", "")

	if c1.ID != 1 || c2.ID != 2 {
		t.Errorf("comment ids on task a = %d,%d, want 1,2", c1.ID, c2.ID)
	}
	if c3.ID != 1 {
		t.Errorf("comment id on task b = %d, want 1 (ids are per-task)", c3.ID)
	}
}

func TestCommentIDsNotReusedAfterDelete(t *testing.T) {
	s := New()
	task, _ := s.CreateTask(CreateTaskRequest{Text: "x"})
	s.AddComment(task.ID, "one", "")
	c2, _ := s.AddComment(task.ID, "two", "")
	s.DeleteComment(task.ID, c2.ID)

	c3, _ := s.AddComment(task.ID, "three", "")
	if c3.ID != 3 {
		t.Errorf("comment id = %d, want 3 (no reuse within the process)", c3.ID)
	}
}

func TestUpdateComment(t *testing.T) {
	s := New()
	task, _ := s.CreateTask(CreateTaskRequest{Text: "x"})
	c, _ := s.AddComment(task.ID, "draft", "")

	if err := s.UpdateComment(task.ID, c.ID, "final", "https://ref.example"); err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if task.Comments[0].Text != "final" || task.Comments[0].URL != "https://ref.example" {
		t.Errorf("comment not updated: %+v", task.Comments[0])
	}

	if err := s.UpdateComment(task.ID, c.ID, "x", "ftp://nope"); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
	if err := s.UpdateComment(task.ID, 99, "x", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteComment(t *testing.T) {
	s := New()
	task, _ := s.CreateTask(CreateTaskRequest{Text: "x"})
	c1, _ := s.AddComment(task.ID, "one", "")
	c2, _ := s.AddComment(task.ID, "two", "")

	if err := s.DeleteComment(task.ID, c1.ID); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	if len(task.Comments) != 1 || task.Comments[0].ID != c2.ID {
		t.Errorf("remaining comments = %+v", task.Comments)
	}
	if err := s.DeleteComment(task.ID, c1.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

package query

import (
	"testing"
	"time"

	"github.com/mtoledo/taskit/internal/models"
)

func TestSortAlphabeticalIsCaseInsensitive(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Text: "banana"},
		{ID: 2, Text: "Apple"},
		{ID: 3, Text: "cherry"},
	}
	got := Sort(tasks, []SortCriterion{{Key: SortAlphabetical, Dir: Ascending}})
	if !sameIDs(taskIDs(got), 2, 1, 3) {
		t.Errorf("got %v, want [2 1 3]", taskIDs(got))
	}
}

func TestSortUndatedAlwaysLast(t *testing.T) {
	early := date(2026, time.January, 1)
	late := date(2026, time.December, 31)
	tasks := []*models.Task{
		{ID: 1}, // undated
		{ID: 2, DueDate: late},
		{ID: 3, DueDate: early},
	}

	asc := Sort(tasks, []SortCriterion{{Key: SortDueDate, Dir: Ascending}})
	if !sameIDs(taskIDs(asc), 3, 2, 1) {
		t.Errorf("ascending: got %v, want [3 2 1]", taskIDs(asc))
	}

	// Direction flips dated order but undated stays at the end
	desc := Sort(tasks, []SortCriterion{{Key: SortDueDate, Dir: Descending}})
	if !sameIDs(taskIDs(desc), 2, 3, 1) {
		t.Errorf("descending: got %v, want [2 3 1]", taskIDs(desc))
	}
}

func TestSortPriorityOrder(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Priority: models.PriorityMedium},
		{ID: 2, Priority: models.PriorityNone},
		{ID: 3, Priority: models.PriorityHigh},
		{ID: 4, Priority: models.PriorityLow},
	}
	got := Sort(tasks, []SortCriterion{{Key: SortPriority, Dir: Ascending}})
	if !sameIDs(taskIDs(got), 2, 4, 1, 3) {
		t.Errorf("got %v, want none→low→medium→high", taskIDs(got))
	}
}

func TestCompositeSortFallsThroughKeys(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Text: "Banana", Priority: models.PriorityHigh},
		{ID: 2, Text: "zebra", Priority: models.PriorityMedium},
		{ID: 3, Text: "Apple", Priority: models.PriorityHigh},
	}
	spec := []SortCriterion{
		{Key: SortPriority, Dir: Descending},
		{Key: SortAlphabetical, Dir: Ascending},
	}
	got := Sort(tasks, spec)
	// Both High tasks come first, alphabetical within the tie
	if !sameIDs(taskIDs(got), 3, 1, 2) {
		t.Errorf("got %v, want [3 1 2]", taskIDs(got))
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Text: "same"},
		{ID: 2, Text: "same"},
		{ID: 3, Text: "same"},
	}
	got := Sort(tasks, []SortCriterion{{Key: SortAlphabetical, Dir: Ascending}})
	if !sameIDs(taskIDs(got), 1, 2, 3) {
		t.Errorf("got %v, want input order preserved on full tie", taskIDs(got))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Text: "b"},
		{ID: 2, Text: "a"},
	}
	Sort(tasks, []SortCriterion{{Key: SortAlphabetical, Dir: Ascending}})
	if tasks[0].ID != 1 {
		t.Error("sort reordered its input slice")
	}
}

func TestParseSort(t *testing.T) {
	spec, err := ParseSort([]string{"priority:desc", "due", "alpha:asc"})
	if err != nil {
		t.Fatalf("ParseSort failed: %v", err)
	}
	want := []SortCriterion{
		{Key: SortPriority, Dir: Descending},
		{Key: SortDueDate, Dir: Ascending},
		{Key: SortAlphabetical, Dir: Ascending},
	}
	if len(spec) != len(want) {
		t.Fatalf("got %d criteria, want %d", len(spec), len(want))
	}
	for i := range want {
		if spec[i] != want[i] {
			t.Errorf("criterion %d = %+v, want %+v", i, spec[i], want[i])
		}
	}

	if _, err := ParseSort([]string{"bogus"}); err == nil {
		t.Error("expected error for unknown sort key")
	}
	if _, err := ParseSort([]string{"due:sideways"}); err == nil {
		t.Error("expected error for unknown direction")
	}
}

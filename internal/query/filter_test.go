package query

import (
	"testing"
	"time"

	"github.com/mtoledo/taskit/internal/models"
)

func date(y int, m time.Month, d int) *models.Date {
	dd := models.NewDate(y, m, d)
	return &dd
}

func taskIDs(tasks []*models.Task) []int {
	var ids []int
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func sameIDs(a []int, b ...int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEmptyFilterSelectsAll(t *testing.T) {
	tasks := []*models.Task{{ID: 1}, {ID: 2}, {ID: 3}}
	got := Filter{}.Apply(tasks)
	if !sameIDs(taskIDs(got), 1, 2, 3) {
		t.Errorf("got %v, want all tasks in order", taskIDs(got))
	}
}

func TestFilterByDueDates(t *testing.T) {
	d1 := date(2026, time.September, 1)
	d2 := date(2026, time.September, 2)
	tasks := []*models.Task{
		{ID: 1, DueDate: d1},
		{ID: 2, DueDate: d2},
		{ID: 3}, // undated
	}

	got := Filter{Dates: []models.Date{*d1}}.Apply(tasks)
	if !sameIDs(taskIDs(got), 1) {
		t.Errorf("single date: got %v, want [1]", taskIDs(got))
	}

	// The no-date sentinel extends the date set, it does not replace it
	got = Filter{Dates: []models.Date{*d2}, NoDate: true}.Apply(tasks)
	if !sameIDs(taskIDs(got), 2, 3) {
		t.Errorf("date+none: got %v, want [2 3]", taskIDs(got))
	}

	got = Filter{NoDate: true}.Apply(tasks)
	if !sameIDs(taskIDs(got), 3) {
		t.Errorf("none only: got %v, want [3]", taskIDs(got))
	}
}

func TestFilterByTagsRequiresSuperset(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Tags: []int{1}},
		{ID: 2, Tags: []int{1, 2}},
		{ID: 3, Tags: []int{1, 2, 3}},
	}
	got := Filter{Tags: []int{1, 2}}.Apply(tasks)
	if !sameIDs(taskIDs(got), 2, 3) {
		t.Errorf("got %v, want [2 3]: a task with only part of the tag set must be excluded", taskIDs(got))
	}
}

func TestFilterByStatus(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Done: true},
		{ID: 2},
	}
	completed := Completed
	got := Filter{Status: &completed}.Apply(tasks)
	if !sameIDs(taskIDs(got), 1) {
		t.Errorf("completed: got %v, want [1]", taskIDs(got))
	}
	pending := Pending
	got = Filter{Status: &pending}.Apply(tasks)
	if !sameIDs(taskIDs(got), 2) {
		t.Errorf("pending: got %v, want [2]", taskIDs(got))
	}
}

func TestFilterByPriorities(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Priority: models.PriorityNone},
		{ID: 2, Priority: models.PriorityLow},
		{ID: 3, Priority: models.PriorityHigh},
	}
	got := Filter{Priorities: []models.Priority{models.PriorityLow, models.PriorityHigh}}.Apply(tasks)
	if !sameIDs(taskIDs(got), 2, 3) {
		t.Errorf("got %v, want [2 3]", taskIDs(got))
	}
}

func TestCriteriaCombineWithAnd(t *testing.T) {
	d := date(2026, time.September, 1)
	tasks := []*models.Task{
		{ID: 1, DueDate: d, Tags: []int{1}, Priority: models.PriorityHigh},
		{ID: 2, DueDate: d, Tags: []int{1}, Priority: models.PriorityLow},
		{ID: 3, DueDate: d, Tags: []int{2}, Priority: models.PriorityHigh},
		{ID: 4, Tags: []int{1}, Priority: models.PriorityHigh},
	}
	f := Filter{
		Dates:      []models.Date{*d},
		Tags:       []int{1},
		Priorities: []models.Priority{models.PriorityHigh},
	}
	got := f.Apply(tasks)
	if !sameIDs(taskIDs(got), 1) {
		t.Errorf("got %v, want [1]: every criterion must match", taskIDs(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tasks := []*models.Task{{ID: 1}, {ID: 2, Done: true}}
	completed := Completed
	Filter{Status: &completed}.Apply(tasks)
	if len(tasks) != 2 || tasks[0].ID != 1 {
		t.Error("filter mutated its input slice")
	}
}

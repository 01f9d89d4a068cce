// Package query implements the filter, sort, and view queries that
// every presentation surface runs against the store. All functions
// here are pure: they never mutate the store or their inputs.
package query

import (
	"github.com/mtoledo/taskit/internal/models"
)

// Status narrows a filter to pending or completed tasks.
type Status int

const (
	Pending Status = iota
	Completed
)

// Filter is a set of independent criteria. A zero criterion is not
// applied; a task is selected only when it matches every criterion
// that is set.
type Filter struct {
	// Dates matches tasks due on any of these dates. NoDate extends
	// the match to tasks with no due date at all.
	Dates  []models.Date
	NoDate bool
	// Tags matches tasks whose tag set contains every listed id.
	Tags []int
	// Status matches tasks by completion state.
	Status *Status
	// Priorities matches tasks whose priority is any of these levels.
	Priorities []models.Priority
}

// Empty reports whether no criterion is set.
func (f Filter) Empty() bool {
	return len(f.Dates) == 0 && !f.NoDate && len(f.Tags) == 0 &&
		f.Status == nil && len(f.Priorities) == 0
}

// Apply selects the tasks matching the filter, preserving input order.
func (f Filter) Apply(tasks []*models.Task) []*models.Task {
	if f.Empty() {
		return append([]*models.Task(nil), tasks...)
	}
	var out []*models.Task
	for _, t := range tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) matches(t *models.Task) bool {
	if len(f.Dates) > 0 || f.NoDate {
		if !f.matchesDate(t) {
			return false
		}
	}
	for _, tagID := range f.Tags {
		if !t.HasTag(tagID) {
			return false
		}
	}
	if f.Status != nil {
		if t.Done != (*f.Status == Completed) {
			return false
		}
	}
	if len(f.Priorities) > 0 {
		found := false
		for _, p := range f.Priorities {
			if t.Priority == p {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (f Filter) matchesDate(t *models.Task) bool {
	if t.DueDate == nil {
		return f.NoDate
	}
	for _, d := range f.Dates {
		if *t.DueDate == d {
			return true
		}
	}
	return false
}

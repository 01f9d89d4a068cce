package query

import (
	"strings"
	"time"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/store"
)

// Scope selects which slice of the store a view sees. General and
// Ungrouped are query-time pseudo-groups; they are never persisted as
// group rows.
type Scope struct {
	kind    scopeKind
	groupID int
}

type scopeKind int

const (
	scopeGeneral scopeKind = iota
	scopeUngrouped
	scopeGroup
)

// General scopes a query to every task regardless of group.
func General() Scope { return Scope{kind: scopeGeneral} }

// Ungrouped scopes a query to tasks with no group assigned.
func Ungrouped() Scope { return Scope{kind: scopeUngrouped} }

// InGroup scopes a query to one specific group.
func InGroup(id int) Scope { return Scope{kind: scopeGroup, groupID: id} }

// GroupID returns the concrete group id and whether the scope names one.
func (s Scope) GroupID() (int, bool) { return s.groupID, s.kind == scopeGroup }

// IsUngrouped reports whether the scope is the Ungrouped pseudo-group.
func (s Scope) IsUngrouped() bool { return s.kind == scopeUngrouped }

// Queries answers every view's read requests against a store. It holds
// no state of its own and performs no mutation.
type Queries struct {
	store *store.Store
}

// New wraps a store for querying.
func New(st *store.Store) *Queries {
	return &Queries{store: st}
}

// VisibleTasks resolves the scope, applies the filter, then sorts the
// matched subset. This is the task list every view renders.
func (q *Queries) VisibleTasks(scope Scope, f Filter, spec []SortCriterion) []*models.Task {
	return Sort(f.Apply(q.scoped(scope)), spec)
}

func (q *Queries) scoped(scope Scope) []*models.Task {
	all := q.store.Tasks()
	if scope.kind == scopeGeneral {
		return all
	}
	var out []*models.Task
	for _, t := range all {
		switch scope.kind {
		case scopeUngrouped:
			if t.GroupID == nil {
				out = append(out, t)
			}
		case scopeGroup:
			if t.GroupID != nil && *t.GroupID == scope.groupID {
				out = append(out, t)
			}
		}
	}
	return out
}

// Calendar groups the month's dated tasks by their exact due date.
// Tasks without a due date never appear here.
func (q *Queries) Calendar(year int, month time.Month) map[models.Date][]*models.Task {
	out := make(map[models.Date][]*models.Task)
	for _, t := range q.store.Tasks() {
		if t.DueDate == nil {
			continue
		}
		if t.DueDate.Year == year && t.DueDate.Month == month {
			out[*t.DueDate] = append(out[*t.DueDate], t)
		}
	}
	return out
}

// TasksDueOn returns the tasks due on one specific date, in store
// order. It powers the calendar day detail and the startup reminder.
func (q *Queries) TasksDueOn(d models.Date) []*models.Task {
	var out []*models.Task
	for _, t := range q.store.Tasks() {
		if t.DueDate != nil && *t.DueDate == d {
			out = append(out, t)
		}
	}
	return out
}

// Undated returns the tasks with no due date, in store order.
func (q *Queries) Undated() []*models.Task {
	var out []*models.Task
	for _, t := range q.store.Tasks() {
		if t.DueDate == nil {
			out = append(out, t)
		}
	}
	return out
}

// Search matches the query text case-insensitively against task text.
// Results keep store order; callers may re-sort.
func (q *Queries) Search(text string) []*models.Task {
	needle := strings.ToLower(text)
	var out []*models.Task
	for _, t := range q.store.Tasks() {
		if strings.Contains(strings.ToLower(t.Text), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Stats are the counts shown in the status line.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// Stats counts the tasks in the current scope and filter.
func (q *Queries) Stats(scope Scope, f Filter) Stats {
	var st Stats
	for _, t := range f.Apply(q.scoped(scope)) {
		st.Total++
		if t.Done {
			st.Completed++
		} else {
			st.Pending++
		}
	}
	return st
}

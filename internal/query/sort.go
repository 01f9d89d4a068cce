package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mtoledo/taskit/internal/models"
)

// SortKey selects what a sort criterion compares.
type SortKey int

const (
	SortAlphabetical SortKey = iota
	SortDueDate
	SortPriority
)

// Direction orders a criterion ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortCriterion is one (key, direction) pair of a sort spec.
type SortCriterion struct {
	Key SortKey
	Dir Direction
}

// Sort orders tasks by applying the criteria as a single composite
// comparator: the first key decides, ties fall through to the next.
// Ties after the last key keep the input order (stable sort). The
// input slice is never modified.
func Sort(tasks []*models.Task, spec []SortCriterion) []*models.Task {
	out := append([]*models.Task(nil), tasks...)
	if len(spec) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		for _, c := range spec {
			if cmp := compare(out[i], out[j], c); cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	return out
}

// compare orders a before b when negative. Undated tasks sort after
// all dated tasks regardless of direction.
func compare(a, b *models.Task, c SortCriterion) int {
	var cmp int
	switch c.Key {
	case SortAlphabetical:
		cmp = strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
	case SortDueDate:
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		case a.DueDate.Before(*b.DueDate):
			cmp = -1
		case b.DueDate.Before(*a.DueDate):
			cmp = 1
		}
	case SortPriority:
		cmp = int(a.Priority) - int(b.Priority)
	}
	if c.Dir == Descending {
		cmp = -cmp
	}
	return cmp
}

// ParseSort turns tokens like "priority:desc" or "due" into a sort
// spec. Keys are alpha, due, and priority; the direction defaults to
// ascending.
func ParseSort(tokens []string) ([]SortCriterion, error) {
	var spec []SortCriterion
	for _, tok := range tokens {
		key, dir, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tok)), ":")
		c := SortCriterion{}
		switch key {
		case "alpha", "text":
			c.Key = SortAlphabetical
		case "due", "date":
			c.Key = SortDueDate
		case "priority", "pri":
			c.Key = SortPriority
		default:
			return nil, fmt.Errorf("unknown sort key %q: use alpha, due, or priority", key)
		}
		switch dir {
		case "", "asc":
			c.Dir = Ascending
		case "desc":
			c.Dir = Descending
		default:
			return nil, fmt.Errorf("unknown sort direction %q: use asc or desc", dir)
		}
		spec = append(spec, c)
	}
	return spec, nil
}

// Package store owns the in-memory task, group, and tag collections
// and enforces referential integrity across them. It performs no I/O;
// persistence is the db package's job.
package store

import (
	"errors"
	"time"

	"github.com/mtoledo/taskit/internal/models"
)

var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a tag name is already taken.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrInvalidURL is returned when a comment url is present but
	// does not use an http or https scheme.
	ErrInvalidURL = errors.New("invalid url")
)

// timeNow is swapped out in tests.
var timeNow = func() time.Time { return time.Now() }

// Store holds every entity and the monotonic id counters that mint new
// ones. Ids are never reused within a process lifetime. All mutations
// set the dirty flag so the autosave cycle knows a flush is due.
type Store struct {
	nextTaskID  int
	nextGroupID int
	nextTagID   int

	groups []*models.Group
	tags   []*models.Tag
	tasks  []*models.Task

	// Comment ids are scoped per parent task. These counters are
	// in-memory only; FromSnapshot seeds them from existing comments.
	nextCommentID map[int]int

	dirty bool
}

// New returns an empty store with all counters at 1.
func New() *Store {
	return &Store{
		nextTaskID:    1,
		nextGroupID:   1,
		nextTagID:     1,
		nextCommentID: make(map[int]int),
	}
}

// Dirty reports whether the store has unsaved mutations.
func (s *Store) Dirty() bool { return s.dirty }

// MarkClean is called by the persistence gateway after a successful save.
func (s *Store) MarkClean() { s.dirty = false }

func (s *Store) markDirty() { s.dirty = true }

// Groups returns all groups in creation order.
func (s *Store) Groups() []*models.Group { return s.groups }

// Tags returns all tags in creation order.
func (s *Store) Tags() []*models.Tag { return s.tags }

// Tasks returns all tasks in creation order.
func (s *Store) Tasks() []*models.Task { return s.tasks }

// Group looks up a group by id.
func (s *Store) Group(id int) (*models.Group, error) {
	for _, g := range s.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, ErrNotFound
}

// Tag looks up a tag by id.
func (s *Store) Tag(id int) (*models.Tag, error) {
	for _, t := range s.tags {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// TagByName looks up a tag by its exact name.
func (s *Store) TagByName(name string) (*models.Tag, error) {
	for _, t := range s.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// Task looks up a task by id.
func (s *Store) Task(id int) (*models.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// Snapshot is the persisted shape of a store: the three id counters
// plus the entity lists, each task inlining its comments.
type Snapshot struct {
	NextTaskID  int
	NextGroupID int
	NextTagID   int
	Groups      []models.Group
	Tags        []models.Tag
	Tasks       []models.Task
}

// Snapshot copies the store's current state for the persistence
// gateway. The copy shares no mutable data with the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		NextTaskID:  s.nextTaskID,
		NextGroupID: s.nextGroupID,
		NextTagID:   s.nextTagID,
	}
	for _, g := range s.groups {
		snap.Groups = append(snap.Groups, *g)
	}
	for _, t := range s.tags {
		snap.Tags = append(snap.Tags, *t)
	}
	for _, t := range s.tasks {
		c := *t
		c.Tags = append([]int(nil), t.Tags...)
		c.Comments = append([]models.Comment(nil), t.Comments...)
		if t.GroupID != nil {
			gid := *t.GroupID
			c.GroupID = &gid
		}
		if t.DueDate != nil {
			due := *t.DueDate
			c.DueDate = &due
		}
		snap.Tasks = append(snap.Tasks, c)
	}
	return snap
}

// FromSnapshot rebuilds a store from persisted state. Per-task comment
// counters are seeded past the highest existing comment id.
func FromSnapshot(snap Snapshot) *Store {
	s := New()
	if snap.NextTaskID > 0 {
		s.nextTaskID = snap.NextTaskID
	}
	if snap.NextGroupID > 0 {
		s.nextGroupID = snap.NextGroupID
	}
	if snap.NextTagID > 0 {
		s.nextTagID = snap.NextTagID
	}
	for i := range snap.Groups {
		g := snap.Groups[i]
		s.groups = append(s.groups, &g)
	}
	for i := range snap.Tags {
		t := snap.Tags[i]
		s.tags = append(s.tags, &t)
	}
	for i := range snap.Tasks {
		t := snap.Tasks[i]
		s.tasks = append(s.tasks, &t)
		for _, c := range t.Comments {
			if c.ID >= s.nextCommentID[t.ID] {
				s.nextCommentID[t.ID] = c.ID + 1
			}
		}
	}
	return s
}

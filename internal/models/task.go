package models

import "time"

// Group is a user-defined category for organizing tasks.
type Group struct {
	ID   int
	Name string
}

// Tag is a reusable label attachable to any number of tasks.
// Tag names are unique across the store.
type Tag struct {
	ID   int
	Name string
}

// Comment belongs to exactly one task and is deleted with it.
// URL is optional; when set it must use an http or https scheme.
// Comment ids are unique within their parent task, not globally.
type Comment struct {
	ID        int
	Text      string
	URL       string
	CreatedAt time.Time
}

// Task is a single todo item. GroupID and Tags are weak references:
// deleting a group or tag clears them from tasks but never deletes
// the tasks themselves.
type Task struct {
	ID        int
	Text      string
	Done      bool
	CreatedAt time.Time
	GroupID   *int
	DueDate   *Date
	Priority  Priority
	Tags      []int
	Comments  []Comment
}

// HasTag reports whether the task carries the given tag id.
func (t *Task) HasTag(tagID int) bool {
	for _, id := range t.Tags {
		if id == tagID {
			return true
		}
	}
	return false
}

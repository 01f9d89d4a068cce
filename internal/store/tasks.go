package store

import (
	"fmt"

	"github.com/mtoledo/taskit/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task.
type CreateTaskRequest struct {
	Text     string
	GroupID  *int
	DueDate  *models.Date
	Priority models.Priority
	Tags     []int
}

// CreateTask creates a task. A referenced group or tag that does not
// exist fails the whole creation with ErrNotFound.
func (s *Store) CreateTask(req CreateTaskRequest) (*models.Task, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("task text cannot be empty")
	}
	if !req.Priority.Valid() {
		return nil, fmt.Errorf("invalid priority %d", req.Priority)
	}
	if req.GroupID != nil {
		if _, err := s.Group(*req.GroupID); err != nil {
			return nil, fmt.Errorf("group %d: %w", *req.GroupID, err)
		}
	}
	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}

	t := &models.Task{
		ID:        s.nextTaskID,
		Text:      req.Text,
		CreatedAt: timeNow(),
		GroupID:   req.GroupID,
		DueDate:   req.DueDate,
		Priority:  req.Priority,
		Tags:      tags,
	}
	s.nextTaskID++
	s.tasks = append(s.tasks, t)
	s.markDirty()
	return t, nil
}

// TaskUpdate describes a partial edit. Nil pointer fields are left
// untouched; the Clear flags unset the optional fields, which a nil
// pointer alone cannot express.
type TaskUpdate struct {
	Text       *string
	Done       *bool
	GroupID    *int
	ClearGroup bool
	DueDate    *models.Date
	ClearDue   bool
	Priority   *models.Priority
	Tags       *[]int
}

// UpdateTask applies a partial edit to a task. Validation failures
// leave the task unchanged.
func (s *Store) UpdateTask(id int, upd TaskUpdate) (*models.Task, error) {
	t, err := s.Task(id)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	if upd.Text != nil && *upd.Text == "" {
		return nil, fmt.Errorf("task text cannot be empty")
	}
	if upd.Priority != nil && !upd.Priority.Valid() {
		return nil, fmt.Errorf("invalid priority %d", *upd.Priority)
	}
	if upd.GroupID != nil {
		if _, err := s.Group(*upd.GroupID); err != nil {
			return nil, fmt.Errorf("group %d: %w", *upd.GroupID, err)
		}
	}
	var newTags []int
	if upd.Tags != nil {
		newTags, err = s.resolveTags(*upd.Tags)
		if err != nil {
			return nil, err
		}
	}

	if upd.Text != nil {
		t.Text = *upd.Text
	}
	if upd.Done != nil {
		t.Done = *upd.Done
	}
	if upd.ClearGroup {
		t.GroupID = nil
	} else if upd.GroupID != nil {
		gid := *upd.GroupID
		t.GroupID = &gid
	}
	if upd.ClearDue {
		t.DueDate = nil
	} else if upd.DueDate != nil {
		due := *upd.DueDate
		t.DueDate = &due
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Tags != nil {
		t.Tags = newTags
	}
	s.markDirty()
	return t, nil
}

// DeleteTask removes a task together with its comments.
func (s *Store) DeleteTask(id int) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.markDirty()
			return nil
		}
	}
	return fmt.Errorf("delete task %d: %w", id, ErrNotFound)
}

// ToggleDone flips a task's completion state.
func (s *Store) ToggleDone(id int) (*models.Task, error) {
	t, err := s.Task(id)
	if err != nil {
		return nil, fmt.Errorf("toggle task %d: %w", id, err)
	}
	t.Done = !t.Done
	s.markDirty()
	return t, nil
}

// resolveTags validates tag ids and drops duplicates, preserving the
// first occurrence order.
func (s *Store) resolveTags(ids []int) ([]int, error) {
	var out []int
	seen := make(map[int]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if _, err := s.Tag(id); err != nil {
			return nil, fmt.Errorf("tag %d: %w", id, err)
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

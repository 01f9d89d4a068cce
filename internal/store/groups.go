package store

import (
	"fmt"
	"strings"

	"github.com/mtoledo/taskit/internal/models"
)

// CreateGroup creates a new group. Group names are not required to be
// unique; only tags carry that constraint.
func (s *Store) CreateGroup(name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("group name cannot be empty")
	}
	g := &models.Group{ID: s.nextGroupID, Name: name}
	s.nextGroupID++
	s.groups = append(s.groups, g)
	s.markDirty()
	return g, nil
}

// RenameGroup changes a group's name.
func (s *Store) RenameGroup(id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	g, err := s.Group(id)
	if err != nil {
		return fmt.Errorf("rename group %d: %w", id, err)
	}
	g.Name = name
	s.markDirty()
	return nil
}

// DeleteGroup removes a group and clears the group reference on every
// task assigned to it. The tasks themselves survive, ungrouped.
func (s *Store) DeleteGroup(id int) error {
	idx := -1
	for i, g := range s.groups {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("delete group %d: %w", id, ErrNotFound)
	}
	s.groups = append(s.groups[:idx], s.groups[idx+1:]...)
	for _, t := range s.tasks {
		if t.GroupID != nil && *t.GroupID == id {
			t.GroupID = nil
		}
	}
	s.markDirty()
	return nil
}

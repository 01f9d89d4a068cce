package store

import (
	"fmt"
	"strings"

	"github.com/mtoledo/taskit/internal/models"
)

// maxTagNameLen caps tag names the way the UI displays them.
const maxTagNameLen = 30

func normalizeTagName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > maxTagNameLen {
		name = name[:maxTagNameLen]
	}
	return name
}

// CreateTag creates a tag with a globally unique name. Names are
// trimmed and truncated to 30 characters before the uniqueness check.
func (s *Store) CreateTag(name string) (*models.Tag, error) {
	name = normalizeTagName(name)
	if name == "" {
		return nil, fmt.Errorf("tag name cannot be empty")
	}
	if _, err := s.TagByName(name); err == nil {
		return nil, fmt.Errorf("tag %q: %w", name, ErrDuplicateName)
	}
	t := &models.Tag{ID: s.nextTagID, Name: name}
	s.nextTagID++
	s.tags = append(s.tags, t)
	s.markDirty()
	return t, nil
}

// RenameTag changes a tag's name, keeping names unique.
func (s *Store) RenameTag(id int, name string) error {
	name = normalizeTagName(name)
	if name == "" {
		return fmt.Errorf("tag name cannot be empty")
	}
	t, err := s.Tag(id)
	if err != nil {
		return fmt.Errorf("rename tag %d: %w", id, err)
	}
	if other, err := s.TagByName(name); err == nil && other.ID != id {
		return fmt.Errorf("tag %q: %w", name, ErrDuplicateName)
	}
	t.Name = name
	s.markDirty()
	return nil
}

// DeleteTag removes a tag and strips it from every task's tag set.
func (s *Store) DeleteTag(id int) error {
	idx := -1
	for i, t := range s.tags {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("delete tag %d: %w", id, ErrNotFound)
	}
	s.tags = append(s.tags[:idx], s.tags[idx+1:]...)
	for _, t := range s.tasks {
		for i, tagID := range t.Tags {
			if tagID == id {
				t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
				break
			}
		}
	}
	s.markDirty()
	return nil
}

package store

import (
	"fmt"
	"strings"

	"github.com/mtoledo/taskit/internal/models"
)

func validCommentURL(url string) bool {
	return url == "" || strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// AddComment appends a comment to a task. The comment id is unique
// within that task only.
func (s *Store) AddComment(taskID int, text, url string) (*models.Comment, error) {
	t, err := s.Task(taskID)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", taskID, err)
	}
	if text == "" {
		return nil, fmt.Errorf("comment text cannot be empty")
	}
	if !validCommentURL(url) {
		return nil, fmt.Errorf("url %q must start with http:// or https://: %w", url, ErrInvalidURL)
	}
	if s.nextCommentID[taskID] == 0 {
		s.nextCommentID[taskID] = 1
	}
	c := models.Comment{
		ID:        s.nextCommentID[taskID],
		Text:      text,
		URL:       url,
		CreatedAt: timeNow(),
	}
	s.nextCommentID[taskID]++
	t.Comments = append(t.Comments, c)
	s.markDirty()
	return &t.Comments[len(t.Comments)-1], nil
}

// UpdateComment replaces a comment's text and url.
func (s *Store) UpdateComment(taskID, commentID int, text, url string) error {
	t, err := s.Task(taskID)
	if err != nil {
		return fmt.Errorf("task %d: %w", taskID, err)
	}
	if text == "" {
		return fmt.Errorf("comment text cannot be empty")
	}
	if !validCommentURL(url) {
		return fmt.Errorf("url %q must start with http:// or https://: %w", url, ErrInvalidURL)
	}
	for i := range t.Comments {
		if t.Comments[i].ID == commentID {
			t.Comments[i].Text = text
			t.Comments[i].URL = url
			s.markDirty()
			return nil
		}
	}
	return fmt.Errorf("comment %d on task %d: %w", commentID, taskID, ErrNotFound)
}

// DeleteComment removes a comment from a task.
func (s *Store) DeleteComment(taskID, commentID int) error {
	t, err := s.Task(taskID)
	if err != nil {
		return fmt.Errorf("task %d: %w", taskID, err)
	}
	for i := range t.Comments {
		if t.Comments[i].ID == commentID {
			t.Comments = append(t.Comments[:i], t.Comments[i+1:]...)
			s.markDirty()
			return nil
		}
	}
	return fmt.Errorf("comment %d on task %d: %w", commentID, taskID, ErrNotFound)
}

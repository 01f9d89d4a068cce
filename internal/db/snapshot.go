package db

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/store"
)

const (
	counterTask  = "next_task_id"
	counterGroup = "next_group_id"
	counterTag   = "next_tag_id"
)

// Save rewrites the entire snapshot in one transaction and marks the
// store clean. Collections are written in id order so the file is
// deterministic for identical stores.
func (g *Gateway) Save(st *store.Store) error {
	snap := st.Snapshot()

	err := g.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"counters", "groups", "tags", "tasks", "comments", "task_tags"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		counters := []counterRow{
			{Name: counterTask, Value: snap.NextTaskID},
			{Name: counterGroup, Value: snap.NextGroupID},
			{Name: counterTag, Value: snap.NextTagID},
		}
		if err := tx.Create(&counters).Error; err != nil {
			return err
		}

		for _, grp := range snap.Groups {
			if err := tx.Create(&groupRow{ID: grp.ID, Name: grp.Name}).Error; err != nil {
				return err
			}
		}
		for _, tag := range snap.Tags {
			if err := tx.Create(&tagRow{ID: tag.ID, Name: tag.Name}).Error; err != nil {
				return err
			}
		}
		for i := range snap.Tasks {
			if err := saveTask(tx, &snap.Tasks[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	st.MarkClean()
	return nil
}

func saveTask(tx *gorm.DB, t *models.Task) error {
	row := taskRow{
		ID:        t.ID,
		Text:      t.Text,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		GroupID:   t.GroupID,
		Priority:  int(t.Priority),
	}
	if t.DueDate != nil {
		due := t.DueDate.String()
		row.DueDate = &due
	}
	if err := tx.Create(&row).Error; err != nil {
		return err
	}
	for _, c := range t.Comments {
		cr := commentRow{TaskID: t.ID, ID: c.ID, Text: c.Text, URL: c.URL, CreatedAt: c.CreatedAt}
		if err := tx.Create(&cr).Error; err != nil {
			return err
		}
	}
	for _, tagID := range t.Tags {
		if err := tx.Create(&taskTagRow{TaskID: t.ID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// Load rebuilds a store from the file. A database written by no prior
// run yields a fresh empty store. Any malformed row surfaces
// ErrCorruptData.
func (g *Gateway) Load() (*store.Store, error) {
	var counters []counterRow
	if err := g.db.Find(&counters).Error; err != nil {
		return nil, fmt.Errorf("%w: read counters: %v", ErrCorruptData, err)
	}

	snap := store.Snapshot{NextTaskID: 1, NextGroupID: 1, NextTagID: 1}
	for _, c := range counters {
		switch c.Name {
		case counterTask:
			snap.NextTaskID = c.Value
		case counterGroup:
			snap.NextGroupID = c.Value
		case counterTag:
			snap.NextTagID = c.Value
		}
	}

	var groups []groupRow
	if err := g.db.Order("id").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("%w: read groups: %v", ErrCorruptData, err)
	}
	for _, r := range groups {
		snap.Groups = append(snap.Groups, models.Group{ID: r.ID, Name: r.Name})
	}

	var tags []tagRow
	if err := g.db.Order("id").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("%w: read tags: %v", ErrCorruptData, err)
	}
	for _, r := range tags {
		snap.Tags = append(snap.Tags, models.Tag{ID: r.ID, Name: r.Name})
	}

	var tasks []taskRow
	if err := g.db.Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("%w: read tasks: %v", ErrCorruptData, err)
	}
	var comments []commentRow
	if err := g.db.Order("task_id, id").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("%w: read comments: %v", ErrCorruptData, err)
	}
	var taskTags []taskTagRow
	if err := g.db.Find(&taskTags).Error; err != nil {
		return nil, fmt.Errorf("%w: read task tags: %v", ErrCorruptData, err)
	}

	commentsByTask := make(map[int][]models.Comment)
	for _, r := range comments {
		commentsByTask[r.TaskID] = append(commentsByTask[r.TaskID], models.Comment{
			ID: r.ID, Text: r.Text, URL: r.URL, CreatedAt: r.CreatedAt,
		})
	}
	tagsByTask := make(map[int][]int)
	for _, r := range taskTags {
		tagsByTask[r.TaskID] = append(tagsByTask[r.TaskID], r.TagID)
	}
	for _, ids := range tagsByTask {
		sort.Ints(ids)
	}

	for _, r := range tasks {
		t := models.Task{
			ID:        r.ID,
			Text:      r.Text,
			Done:      r.Done,
			CreatedAt: r.CreatedAt,
			GroupID:   r.GroupID,
			Priority:  models.Priority(r.Priority),
			Tags:      tagsByTask[r.ID],
			Comments:  commentsByTask[r.ID],
		}
		if !t.Priority.Valid() {
			return nil, fmt.Errorf("%w: task %d has priority %d", ErrCorruptData, r.ID, r.Priority)
		}
		if r.DueDate != nil {
			due, err := models.ParseDate(*r.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: task %d due date: %v", ErrCorruptData, r.ID, err)
			}
			t.DueDate = &due
		}
		snap.Tasks = append(snap.Tasks, t)
	}

	return store.FromSnapshot(snap), nil
}

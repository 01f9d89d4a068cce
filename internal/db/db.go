// Package db is the persistence gateway: it snapshots the in-memory
// store into a single sqlite file and rebuilds it on startup.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrCorruptData is returned when the persisted state cannot be read.
// Callers are expected to fall back to a fresh empty store.
var ErrCorruptData = errors.New("corrupt data")

// Gateway owns the database connection. It is an explicit instance
// handed to whoever needs to load or save, never a package global.
type Gateway struct {
	db   *gorm.DB
	path string
}

// Row types mirror the persisted shape: three id counters plus the
// entity tables, with task tags in a join table.

type counterRow struct {
	Name  string `gorm:"primaryKey"`
	Value int
}

func (counterRow) TableName() string { return "counters" }

type groupRow struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"not null"`
}

func (groupRow) TableName() string { return "groups" }

type tagRow struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"unique;not null"`
}

func (tagRow) TableName() string { return "tags" }

type taskRow struct {
	ID        int `gorm:"primaryKey;autoIncrement:false"`
	Text      string
	Done      bool
	CreatedAt time.Time
	GroupID   *int
	DueDate   *string // YYYY-MM-DD
	Priority  int
}

func (taskRow) TableName() string { return "tasks" }

type commentRow struct {
	TaskID    int `gorm:"primaryKey;autoIncrement:false"`
	ID        int `gorm:"primaryKey;autoIncrement:false"`
	Text      string
	URL       string
	CreatedAt time.Time
}

func (commentRow) TableName() string { return "comments" }

type taskTagRow struct {
	TaskID int `gorm:"primaryKey;autoIncrement:false"`
	TagID  int `gorm:"primaryKey;autoIncrement:false"`
}

func (taskTagRow) TableName() string { return "task_tags" }

// Open connects to the sqlite file at path, creating the directory and
// schema as needed. Unreadable or unmigratable files surface
// ErrCorruptData.
func Open(path string) (*Gateway, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrCorruptData, path, err)
	}

	if err := gdb.AutoMigrate(
		&counterRow{},
		&groupRow{},
		&tagRow{},
		&taskRow{},
		&commentRow{},
		&taskTagRow{},
	); err != nil {
		return nil, fmt.Errorf("%w: migrate %s: %v", ErrCorruptData, path, err)
	}

	return &Gateway{db: gdb, path: path}, nil
}

// Path returns the database file location.
func (g *Gateway) Path() string { return g.path }

// Close closes the underlying connection.
func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

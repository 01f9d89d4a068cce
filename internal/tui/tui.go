// Package tui is the interactive consumer of the query facade: a task
// list with group tabs, filters and sorting, and a calendar of due
// dates. It owns no task logic; every read goes through the queries
// and every mutation through the store.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtoledo/taskit/internal/query"
	"github.com/mtoledo/taskit/internal/store"
)

// Deps is everything the TUI needs from the application. Save flushes
// the store; it runs on the bubbletea event loop, so it never races a
// mutation.
type Deps struct {
	Store    *store.Store
	Queries  *query.Queries
	Save     func() error
	Interval time.Duration
}

// Run starts the full-screen task browser and blocks until it exits.
func Run(deps Deps) error {
	p := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

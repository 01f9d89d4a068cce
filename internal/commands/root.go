package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/config"
	"github.com/mtoledo/taskit/internal/db"
	"github.com/mtoledo/taskit/internal/query"
	"github.com/mtoledo/taskit/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskit",
	Short: "A terminal task manager",
	Long: `taskit is a terminal task manager with groups, tags, priorities,
due dates, comments, and a calendar view. Tasks live in a single local
database file and every command works offline.`,
}

// App bundles the loaded configuration, the open persistence gateway,
// and the in-memory store a command operates on.
type App struct {
	Config  config.Config
	Gateway *db.Gateway
	Store   *store.Store
	Queries *query.Queries
}

// openApp loads the config, opens the database, and loads the store.
// A corrupt database is set aside and replaced with a fresh empty
// store: losing data beats refusing to start.
func openApp() (*App, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}

	gw, err := db.Open(cfg.DatabasePath)
	if errors.Is(err, db.ErrCorruptData) {
		fmt.Fprintf(os.Stderr, "⚠️  Database unreadable, starting fresh (old file kept as %s.corrupt)\n", cfg.DatabasePath)
		if renameErr := os.Rename(cfg.DatabasePath, cfg.DatabasePath+".corrupt"); renameErr != nil {
			return nil, fmt.Errorf("failed to set aside corrupt database: %w", renameErr)
		}
		gw, err = db.Open(cfg.DatabasePath)
	}
	if err != nil {
		return nil, err
	}

	st, err := gw.Load()
	if errors.Is(err, db.ErrCorruptData) {
		fmt.Fprintln(os.Stderr, "⚠️  Stored data is malformed, starting with an empty task list")
		st, err = store.New(), nil
	}
	if err != nil {
		gw.Close()
		return nil, err
	}

	return &App{
		Config:  cfg,
		Gateway: gw,
		Store:   st,
		Queries: query.New(st),
	}, nil
}

// Close flushes unsaved mutations and closes the database.
func (a *App) Close() {
	if a.Store.Dirty() {
		if err := a.Gateway.Save(a.Store); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving tasks: %v\n", err)
		}
	}
	a.Gateway.Close()
}

// run wraps a command function with store open/load and save-on-exit.
func run(fn func(*App, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()
		fn(app, cmd, args)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskit %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(calCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(versionCmd)
}

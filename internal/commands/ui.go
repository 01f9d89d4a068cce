package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive task browser",
	Long:  "Open the full-screen TUI: task list with groups, filters and sorting, plus the calendar view. The store autosaves while it runs.",
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		// The reminder the original app pops at startup, as plain output
		if due := app.Queries.TasksDueOn(models.Today()); len(due) > 0 {
			fmt.Printf("🔔 %d task(s) due today\n", len(due))
		}

		err := tui.Run(tui.Deps{
			Store:    app.Store,
			Queries:  app.Queries,
			Save:     func() error { return app.Gateway.Save(app.Store) },
			Interval: app.Config.AutosaveInterval(),
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

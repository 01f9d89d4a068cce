package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tasks by text",
	Long:  "Case-insensitive substring search over task text, across every group.",
	Args:  cobra.MinimumNArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		queryText := strings.Join(args, " ")
		tasks := app.Queries.Search(queryText)

		fmt.Printf("Search results for '%s' (%d found):\n", queryText, len(tasks))
		if len(tasks) == 0 {
			fmt.Println("No tasks found matching your search.")
			return
		}
		fmt.Println()
		printTaskTable(app, tasks)
	}),
}

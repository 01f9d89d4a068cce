package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks with optional group scoping, filters, and sorting",
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		scope, err := parseScope(app, cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		filter, err := parseFilter(app, cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		sortSpec, err := parseSortFlag(app, cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		tasks := app.Queries.VisibleTasks(scope, filter, sortSpec)
		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'taskit add \"task text\"' to create your first task.")
			return
		}

		printTaskTable(app, tasks)

		stats := app.Queries.Stats(scope, filter)
		fmt.Printf("\nTotal: %d | Completed: %d | Pending: %d\n", stats.Total, stats.Completed, stats.Pending)
	}),
}

func init() {
	addScopeFlags(listCmd)
	addFilterFlags(listCmd)
	listCmd.Flags().StringSlice("sort", nil, "Sort keys in order, e.g. --sort priority:desc,due,alpha")
}

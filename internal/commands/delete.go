package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task and its comments",
	Args:    cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := app.Store.Task(id)
		if err != nil {
			fmt.Printf("Error: task #%d not found\n", id)
			return
		}
		text := task.Text

		if err := app.Store.DeleteTask(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted task #%d: %s\n", id, text)
	}),
}

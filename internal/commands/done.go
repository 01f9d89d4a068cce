package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		toggleTo(app, args[0], true)
	}),
}

var undoneCmd = &cobra.Command{
	Use:   "undone [task-id]",
	Short: "Mark a completed task as pending again",
	Args:  cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		toggleTo(app, args[0], false)
	}),
}

func toggleTo(app *App, arg string, done bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Printf("Error: invalid task ID '%s'\n", arg)
		return
	}

	task, err := app.Store.Task(id)
	if err != nil {
		fmt.Printf("Error: task #%d not found\n", id)
		return
	}
	if task.Done == done {
		if done {
			fmt.Printf("Task #%d is already completed\n", id)
		} else {
			fmt.Printf("Task #%d is already pending\n", id)
		}
		return
	}

	if _, err := app.Store.ToggleDone(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if done {
		fmt.Printf("✅ Marked task #%d as done: %s\n", task.ID, task.Text)
	} else {
		fmt.Printf("↩️  Marked task #%d back to pending: %s\n", task.ID, task.Text)
	}
}

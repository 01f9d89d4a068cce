package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/store"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comments on a task",
}

var commentAddCmd = &cobra.Command{
	Use:   "add [task-id] [text]",
	Short: "Add a comment to a task",
	Args:  cobra.ExactArgs(2),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}
		url, _ := cmd.Flags().GetString("url")

		c, err := app.Store.AddComment(taskID, args[1], url)
		if errors.Is(err, store.ErrInvalidURL) {
			fmt.Println("Error: the URL must start with http:// or https://")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("💬 Added comment #%d to task #%d\n", c.ID, taskID)
	}),
}

var commentEditCmd = &cobra.Command{
	Use:   "edit [task-id] [comment-id] [text]",
	Short: "Edit a comment",
	Args:  cobra.ExactArgs(3),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		taskID, err1 := strconv.Atoi(args[0])
		commentID, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			fmt.Println("Error: task and comment IDs must be numbers")
			return
		}
		url, _ := cmd.Flags().GetString("url")

		err := app.Store.UpdateComment(taskID, commentID, args[2], url)
		if errors.Is(err, store.ErrInvalidURL) {
			fmt.Println("Error: the URL must start with http:// or https://")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✏️  Updated comment #%d on task #%d\n", commentID, taskID)
	}),
}

var commentRmCmd = &cobra.Command{
	Use:   "rm [task-id] [comment-id]",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(2),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		taskID, err1 := strconv.Atoi(args[0])
		commentID, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			fmt.Println("Error: task and comment IDs must be numbers")
			return
		}
		if err := app.Store.DeleteComment(taskID, commentID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted comment #%d from task #%d\n", commentID, taskID)
	}),
}

var commentLsCmd = &cobra.Command{
	Use:   "ls [task-id]",
	Short: "List a task's comments",
	Args:  cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}
		task, err := app.Store.Task(taskID)
		if err != nil {
			fmt.Printf("Error: task #%d not found\n", taskID)
			return
		}
		if len(task.Comments) == 0 {
			fmt.Printf("Task #%d has no comments\n", taskID)
			return
		}
		fmt.Printf("Comments on task #%d: %s\n\n", task.ID, task.Text)
		for _, c := range task.Comments {
			fmt.Printf("#%-3d %s  (%s)\n", c.ID, c.Text, c.CreatedAt.Format("02/01 15:04"))
			if c.URL != "" {
				fmt.Printf("     🔗 %s\n", c.URL)
			}
		}
	}),
}

func init() {
	commentAddCmd.Flags().StringP("url", "u", "", "Attach a link (http:// or https://)")
	commentEditCmd.Flags().StringP("url", "u", "", "Replace the link (empty removes it)")

	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentRmCmd)
	commentCmd.AddCommand(commentLsCmd)
}

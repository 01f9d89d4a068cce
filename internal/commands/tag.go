package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/store"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new tag",
	Args:  cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		t, err := app.Store.CreateTag(args[0])
		if errors.Is(err, store.ErrDuplicateName) {
			fmt.Printf("Error: a tag named %q already exists\n", args[0])
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🏷️  Created tag #%d: %s\n", t.ID, t.Name)
	}),
}

var tagRenameCmd = &cobra.Command{
	Use:   "rename [tag-id] [new-name]",
	Short: "Rename a tag",
	Args:  cobra.ExactArgs(2),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid tag ID '%s'\n", args[0])
			return
		}
		err = app.Store.RenameTag(id, args[1])
		if errors.Is(err, store.ErrDuplicateName) {
			fmt.Printf("Error: a tag named %q already exists\n", args[1])
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✏️  Renamed tag #%d to %s\n", id, args[1])
	}),
}

var tagRmCmd = &cobra.Command{
	Use:   "rm [tag-id]",
	Short: "Delete a tag (removed from every task)",
	Args:  cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid tag ID '%s'\n", args[0])
			return
		}
		if err := app.Store.DeleteTag(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted tag #%d\n", id)
	}),
}

var tagLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tags with usage counts",
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		tags := app.Store.Tags()
		if len(tags) == 0 {
			fmt.Println("No tags yet. Use 'taskit tag add \"name\"' to create one.")
			return
		}
		fmt.Printf("%-4s %-30s %s\n", "ID", "NAME", "TASKS")
		for _, t := range tags {
			count := 0
			for _, task := range app.Store.Tasks() {
				if task.HasTag(t.ID) {
					count++
				}
			}
			fmt.Printf("%-4d %-30s %d\n", t.ID, t.Name, count)
		}
	}),
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRenameCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagCmd.AddCommand(tagLsCmd)
}

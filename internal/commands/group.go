package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/query"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage task groups",
}

var groupAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new group",
	Args:  cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		g, err := app.Store.CreateGroup(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📁 Created group #%d: %s\n", g.ID, g.Name)
	}),
}

var groupRenameCmd = &cobra.Command{
	Use:   "rename [group-id] [new-name]",
	Short: "Rename a group",
	Args:  cobra.ExactArgs(2),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid group ID '%s'\n", args[0])
			return
		}
		if err := app.Store.RenameGroup(id, args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✏️  Renamed group #%d to %s\n", id, args[1])
	}),
}

var groupRmCmd = &cobra.Command{
	Use:   "rm [group-id]",
	Short: "Delete a group (its tasks survive, ungrouped)",
	Args:  cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid group ID '%s'\n", args[0])
			return
		}
		if err := app.Store.DeleteGroup(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted group #%d (tasks kept, now ungrouped)\n", id)
	}),
}

var groupLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List groups with task counts",
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		groups := app.Store.Groups()
		if len(groups) == 0 {
			fmt.Println("No groups yet. Use 'taskit group add \"name\"' to create one.")
			return
		}
		fmt.Printf("%-4s %-30s %s\n", "ID", "NAME", "TASKS")
		for _, g := range groups {
			stats := app.Queries.Stats(query.InGroup(g.ID), query.Filter{})
			fmt.Printf("%-4d %-30s %d (%d done)\n", g.ID, g.Name, stats.Total, stats.Completed)
		}
		ungrouped := app.Queries.Stats(query.Ungrouped(), query.Filter{})
		if ungrouped.Total > 0 {
			fmt.Printf("%-4s %-30s %d (%d done)\n", "-", "(ungrouped)", ungrouped.Total, ungrouped.Completed)
		}
	}),
}

func init() {
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupRenameCmd)
	groupCmd.AddCommand(groupRmCmd)
	groupCmd.AddCommand(groupLsCmd)
}

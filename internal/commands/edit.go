package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/parser"
	"github.com/mtoledo/taskit/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit an existing task",
	Long: `Edit fields of an existing task. Only the flags you pass change.

Examples:
  taskit edit 42 --text "New wording"
  taskit edit 42 --due tomorrow --priority high
  taskit edit 42 --clear-due --clear-group
  taskit edit 42 --tags work,urgent    (replaces the whole tag set)`,
	Args: cobra.ExactArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		var upd store.TaskUpdate

		if cmd.Flags().Changed("text") {
			text, _ := cmd.Flags().GetString("text")
			upd.Text = &text
		}
		if cmd.Flags().Changed("priority") {
			raw, _ := cmd.Flags().GetString("priority")
			p, err := models.ParsePriority(raw)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			upd.Priority = &p
		}
		upd.ClearDue, _ = cmd.Flags().GetBool("clear-due")
		upd.ClearGroup, _ = cmd.Flags().GetBool("clear-group")
		if cmd.Flags().Changed("due") {
			raw, _ := cmd.Flags().GetString("due")
			d, err := parser.ParseDueDate(raw)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			upd.DueDate = d
		}
		if cmd.Flags().Changed("group") {
			name, _ := cmd.Flags().GetString("group")
			found := false
			for _, g := range app.Store.Groups() {
				if g.Name == name {
					gid := g.ID
					upd.GroupID = &gid
					found = true
					break
				}
			}
			if !found {
				fmt.Printf("Error: no group named %q\n", name)
				return
			}
		}
		if cmd.Flags().Changed("tags") {
			names, _ := cmd.Flags().GetStringSlice("tags")
			ids, err := findOrCreateTags(app.Store, names)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if ids == nil {
				ids = []int{}
			}
			upd.Tags = &ids
		}

		task, err := app.Store.UpdateTask(id, upd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated task #%d: %s\n", task.ID, task.Text)
		var details []string
		if task.DueDate != nil {
			details = append(details, parser.FormatDueDate(task.DueDate))
		}
		if task.Priority != models.PriorityNone {
			details = append(details, "priority "+task.Priority.String())
		}
		if len(details) > 0 {
			fmt.Printf("   %s\n", strings.Join(details, " | "))
		}
	}),
}

func init() {
	editCmd.Flags().String("text", "", "New task text")
	editCmd.Flags().StringP("group", "g", "", "Move to a group (by name)")
	editCmd.Flags().Bool("clear-group", false, "Remove the group assignment")
	editCmd.Flags().StringP("due", "d", "", "New due date")
	editCmd.Flags().Bool("clear-due", false, "Remove the due date")
	editCmd.Flags().StringP("priority", "p", "", "New priority (none/low/medium/high)")
	editCmd.Flags().StringSliceP("tags", "t", nil, "Replace the tag set (created if missing)")
}

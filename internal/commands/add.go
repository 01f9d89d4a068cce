package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/parser"
	"github.com/mtoledo/taskit/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add [task text]",
	Short: "Add a new task",
	Long: `Add a new task with optional metadata.

Quick: taskit add "Buy groceries" --due tomorrow --priority high
Smart parsing: taskit add "Fix the boiler #home,urgent +high due:3/11/2026"

Smart parsing syntax:
  #tag1,tag2  - Tags (created on the fly if new)
  +priority   - Priority (low/medium/high or 1/2/3)
  due:DATE    - Due date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow)`,
	Args: cobra.MinimumNArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		parsed := parser.ParseTaskInput(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, "; "))
			return
		}

		req := store.CreateTaskRequest{
			Text:     parsed.Text,
			Priority: parsed.Priority,
			DueDate:  parsed.DueDate,
		}

		// Flags override inline syntax
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			d, err := parser.ParseDueDate(due)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.DueDate = d
		}
		if prio, _ := cmd.Flags().GetString("priority"); prio != "" {
			p, err := models.ParsePriority(prio)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.Priority = p
		}
		if groupFlag, _ := cmd.Flags().GetString("group"); groupFlag != "" {
			found := false
			for _, g := range app.Store.Groups() {
				if g.Name == groupFlag {
					gid := g.ID
					req.GroupID = &gid
					found = true
					break
				}
			}
			if !found {
				fmt.Printf("Error: no group named %q (create it with 'taskit group add')\n", groupFlag)
				return
			}
		}

		names, _ := cmd.Flags().GetStringSlice("tags")
		names = append(names, parsed.Tags...)
		tagIDs, err := findOrCreateTags(app.Store, names)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		req.Tags = tagIDs

		task, err := app.Store.CreateTask(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added task #%d: %s\n", task.ID, task.Text)
		if task.DueDate != nil {
			fmt.Printf("   %s\n", parser.FormatDueDate(task.DueDate))
		}
	}),
}

// findOrCreateTags resolves tag names to ids, creating missing tags.
func findOrCreateTags(st *store.Store, names []string) ([]int, error) {
	var ids []int
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := st.TagByName(name)
		if err != nil {
			tag, err = st.CreateTag(name)
			if err != nil {
				return nil, err
			}
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func init() {
	addCmd.Flags().StringP("group", "g", "", "Assign to a group (by name)")
	addCmd.Flags().StringSliceP("tags", "t", nil, "Tags to attach (created if missing)")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, or 1-3")
	addCmd.Flags().StringP("due", "d", "", "Due date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, 'X days')")
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/parser"
	"github.com/mtoledo/taskit/internal/query"
)

// addScopeFlags registers the group-scoping flags shared by list-like
// commands.
func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("group", "g", "", "Limit to one group (by name)")
	cmd.Flags().Bool("ungrouped", false, "Limit to tasks with no group")
}

// addFilterFlags registers the filter criteria flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("due", nil, "Filter by due date (yyyy-mm-dd, today, tomorrow, or 'none')")
	cmd.Flags().StringSliceP("tags", "t", nil, "Filter by tags (task must carry all of them)")
	cmd.Flags().StringP("status", "s", "", "Filter by status: pending or completed")
	cmd.Flags().StringSliceP("priority", "p", nil, "Filter by priority (none/low/medium/high)")
}

// parseScope resolves the --group/--ungrouped flags into a query scope.
func parseScope(app *App, cmd *cobra.Command) (query.Scope, error) {
	ungrouped, _ := cmd.Flags().GetBool("ungrouped")
	groupName, _ := cmd.Flags().GetString("group")

	if ungrouped && groupName != "" {
		return query.Scope{}, fmt.Errorf("--group and --ungrouped are mutually exclusive")
	}
	if ungrouped {
		return query.Ungrouped(), nil
	}
	if groupName == "" {
		return query.General(), nil
	}
	for _, g := range app.Store.Groups() {
		if g.Name == groupName {
			return query.InGroup(g.ID), nil
		}
	}
	return query.Scope{}, fmt.Errorf("no group named %q (see 'taskit group ls')", groupName)
}

// parseFilter resolves the filter flags into a filter spec. Tag names
// must exist; unknown names are an error rather than an empty match.
func parseFilter(app *App, cmd *cobra.Command) (query.Filter, error) {
	var f query.Filter

	dues, _ := cmd.Flags().GetStringSlice("due")
	for _, d := range dues {
		if strings.EqualFold(d, "none") {
			f.NoDate = true
			continue
		}
		due, err := parser.ParseDueDate(d)
		if err != nil {
			return f, err
		}
		f.Dates = append(f.Dates, *due)
	}

	tagNames, _ := cmd.Flags().GetStringSlice("tags")
	for _, name := range tagNames {
		tag, err := app.Store.TagByName(strings.TrimSpace(name))
		if err != nil {
			return f, fmt.Errorf("no tag named %q (see 'taskit tag ls')", name)
		}
		f.Tags = append(f.Tags, tag.ID)
	}

	if status, _ := cmd.Flags().GetString("status"); status != "" {
		var st query.Status
		switch strings.ToLower(status) {
		case "pending", "todo":
			st = query.Pending
		case "completed", "done":
			st = query.Completed
		default:
			return f, fmt.Errorf("invalid status %q: use pending or completed", status)
		}
		f.Status = &st
	}

	prios, _ := cmd.Flags().GetStringSlice("priority")
	for _, p := range prios {
		prio, err := models.ParsePriority(p)
		if err != nil {
			return f, err
		}
		f.Priorities = append(f.Priorities, prio)
	}

	return f, nil
}

// parseSortFlag resolves --sort, falling back to the configured default.
func parseSortFlag(app *App, cmd *cobra.Command) ([]query.SortCriterion, error) {
	tokens, _ := cmd.Flags().GetStringSlice("sort")
	if len(tokens) == 0 {
		tokens = app.Config.DefaultSort
	}
	return query.ParseSort(tokens)
}

// groupName resolves a task's group for display.
func groupName(app *App, t *models.Task) string {
	if t.GroupID == nil {
		return ""
	}
	g, err := app.Store.Group(*t.GroupID)
	if err != nil {
		return ""
	}
	return g.Name
}

// tagNames resolves a task's tag ids for display.
func tagNames(app *App, t *models.Task) string {
	var names []string
	for _, id := range t.Tags {
		if tag, err := app.Store.Tag(id); err == nil {
			names = append(names, tag.Name)
		}
	}
	return strings.Join(names, ",")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// printTaskTable renders tasks in the fixed-width table every listing
// command shares.
func printTaskTable(app *App, tasks []*models.Task) {
	fmt.Printf("%-4s %-2s %-38s %-12s %-8s %-12s %s\n", "ID", "", "TEXT", "GROUP", "PRIORITY", "DUE", "TAGS")
	fmt.Println(strings.Repeat("-", 88))

	for _, t := range tasks {
		check := "☐"
		if t.Done {
			check = "☑"
		}
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.String()
		}
		text := truncate(t.Text, 38)
		if n := len(t.Comments); n > 0 {
			text = truncate(t.Text, 33) + fmt.Sprintf(" 💬%d", n)
		}
		fmt.Printf("%-4d %-2s %-38s %-12s %-8s %-12s %s\n",
			t.ID,
			check,
			text,
			truncate(groupName(app, t), 12),
			t.Priority.String(),
			due,
			truncate(tagNames(app, t), 16))
	}
}

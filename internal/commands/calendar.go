package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtoledo/taskit/internal/models"
)

var calCmd = &cobra.Command{
	Use:     "cal [yyyy-mm]",
	Aliases: []string{"calendar"},
	Short:   "Show a month of due dates",
	Long:    "Show a calendar for the given month (default: current) marking days with due tasks, followed by the day-by-day task list.",
	Args:    cobra.MaximumNArgs(1),
	Run: run(func(app *App, cmd *cobra.Command, args []string) {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				fmt.Printf("Error: invalid month '%s', expected yyyy-mm\n", args[0])
				return
			}
			year, month = t.Year(), t.Month()
		}

		byDate := app.Queries.Calendar(year, month)
		printMonth(year, month, byDate)

		if len(byDate) == 0 {
			fmt.Println("\nNo tasks due this month.")
			return
		}

		var dates []models.Date
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		for _, d := range dates {
			fmt.Printf("\n📋 %s:\n", d)
			for _, t := range byDate[d] {
				check := "☐"
				if t.Done {
					check = "☑"
				}
				line := fmt.Sprintf("  %s #%-3d %s", check, t.ID, truncate(t.Text, 40))
				if g := groupName(app, t); g != "" {
					line += "  [" + g + "]"
				}
				fmt.Println(line)
			}
		}
	}),
}

// printMonth renders the Monday-first grid with a • on days that have
// due tasks.
func printMonth(year int, month time.Month, byDate map[models.Date][]*models.Task) {
	fmt.Printf("%s %d\n", month, year)
	fmt.Println("Mo  Tu  We  Th  Fr  Sa  Su")
	fmt.Println(strings.Repeat("─", 26))

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Monday-first column index
	col := (int(first.Weekday()) + 6) % 7
	line := strings.Repeat("    ", col)

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	today := models.Today()

	for day := 1; day <= daysInMonth; day++ {
		d := models.Date{Year: year, Month: month, Day: day}
		mark := " "
		if len(byDate[d]) > 0 {
			mark = "•"
		}
		cell := fmt.Sprintf("%s%2d ", mark, day)
		if d == today {
			cell = fmt.Sprintf("[%2d]", day)
		}
		line += cell
		col++
		if col == 7 {
			fmt.Println(line)
			line = ""
			col = 0
		}
	}
	if line != "" {
		fmt.Println(line)
	}
}

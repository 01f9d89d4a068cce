// Package parser turns user-typed task input into structured fields.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mtoledo/taskit/internal/models"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// ParseDueDate parses various due date formats into a calendar date.
// Supported formats:
// - yyyy-mm-dd (e.g., "2026-03-15")
// - dd/mm/yyyy (e.g., "15/03/2026")
// - today, tomorrow
// - X days (e.g., "3 days", "1 day")
// - X weeks (e.g., "2 weeks", "1 week")
func ParseDueDate(input string) (*models.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	if d, err := models.ParseDate(input); err == nil {
		return &d, nil
	}

	if d, err := parseSlashDate(input); err == nil {
		return d, nil
	}

	if d, err := parseRelative(input); err == nil {
		return d, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, or X weeks")
}

// parseSlashDate parses dd/mm/yyyy format
func parseSlashDate(input string) (*models.Date, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}

	d := models.NewDate(year, time.Month(month), day)

	// Reject rolled-over dates (handles leap years, short months)
	if d.Day != day || int(d.Month) != month || d.Year != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &d, nil
}

// parseRelative parses "today", "tomorrow", and "X days/weeks"
func parseRelative(input string) (*models.Date, error) {
	input = strings.ToLower(input)
	today := models.DateOf(timeNow())

	switch input {
	case "today":
		return &today, nil
	case "tomorrow":
		d := today.AddDays(1)
		return &d, nil
	}

	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return nil, fmt.Errorf("days must be between 1 and 365")
		}
		d := today.AddDays(amount)
		return &d, nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return nil, fmt.Errorf("weeks must be between 1 and 52")
		}
		d := today.AddDays(amount * 7)
		return &d, nil

	default:
		return nil, fmt.Errorf("unsupported time unit")
	}
}

// FormatDueDate formats a due date for display relative to today.
func FormatDueDate(due *models.Date) string {
	if due == nil {
		return ""
	}

	today := models.DateOf(timeNow())
	daysDiff := int(due.Time().Sub(today.Time()).Hours() / 24)

	dateStr := due.String()

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("due %s", dateStr)
	}
}

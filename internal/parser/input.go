package parser

import (
	"regexp"
	"strings"

	"github.com/mtoledo/taskit/internal/models"
)

// ParsedTask represents a task parsed from natural input syntax.
type ParsedTask struct {
	Text     string
	Tags     []string
	Priority models.Priority
	DueDate  *models.Date
	Errors   []string
}

// ParseTaskInput extracts metadata from a task line using natural syntax
// Syntax: "Task text #tag1,tag2 +priority due:tomorrow"
func ParseTaskInput(input string) ParsedTask {
	result := ParsedTask{
		Text: input,
		Tags: []string{},
	}

	// Extract tags (#tag1,tag2 or #tag1 #tag2)
	tagRegex := regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	for _, match := range tagRegex.FindAllStringSubmatch(input, -1) {
		for _, tag := range strings.Split(match[1], ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				result.Tags = append(result.Tags, tag)
			}
		}
	}
	input = tagRegex.ReplaceAllString(input, "")

	// Extract priority (+high, +3, +medium, etc.)
	priorityRegex := regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 1 {
		p, err := models.ParsePriority(matches[1])
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Priority = p
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Extract due date (due:tomorrow, due:2026-03-15, due:3 days won't
	// span a space, so the multi-word forms stay flag-only)
	dueRegex := regexp.MustCompile(`due:(\S+)`)
	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 1 {
		due, err := ParseDueDate(matches[1])
		if err != nil {
			result.Errors = append(result.Errors, "invalid due date '"+matches[1]+"': "+err.Error())
		} else {
			result.DueDate = due
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	// Clean up the text (remove extra spaces)
	result.Text = strings.Join(strings.Fields(input), " ")

	return result
}

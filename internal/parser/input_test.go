package parser

import (
	"reflect"
	"testing"
	"time"

	"github.com/mtoledo/taskit/internal/models"
)

func TestParseTaskInputPlainText(t *testing.T) {
	got := ParseTaskInput("buy milk and eggs")
	if got.Text != "buy milk and eggs" {
		t.Errorf("text = %q", got.Text)
	}
	if len(got.Tags) != 0 || got.Priority != models.PriorityNone || got.DueDate != nil {
		t.Errorf("plain text should carry no metadata: %+v", got)
	}
}

func TestParseTaskInputFull(t *testing.T) {
	fixedClock(t)

	got := ParseTaskInput("review report #work,urgent +high due:tomorrow")
	if got.Text != "review report" {
		t.Errorf("text = %q, want %q", got.Text, "review report")
	}
	if !reflect.DeepEqual(got.Tags, []string{"work", "urgent"}) {
		t.Errorf("tags = %v", got.Tags)
	}
	if got.Priority != models.PriorityHigh {
		t.Errorf("priority = %v", got.Priority)
	}
	want := models.NewDate(2026, time.March, 12)
	if got.DueDate == nil || *got.DueDate != want {
		t.Errorf("due = %v, want %v", got.DueDate, want)
	}
	if len(got.Errors) != 0 {
		t.Errorf("unexpected errors: %v", got.Errors)
	}
}

func TestParseTaskInputSeparateTags(t *testing.T) {
	got := ParseTaskInput("call mum #family #calls")
	if !reflect.DeepEqual(got.Tags, []string{"family", "calls"}) {
		t.Errorf("tags = %v", got.Tags)
	}
	if got.Text != "call mum" {
		t.Errorf("text = %q", got.Text)
	}
}

func TestParseTaskInputNumericPriority(t *testing.T) {
	got := ParseTaskInput("pay rent +3")
	if got.Priority != models.PriorityHigh {
		t.Errorf("priority = %v, want high", got.Priority)
	}
}

func TestParseTaskInputBadMetadataKeepsText(t *testing.T) {
	fixedClock(t)

	got := ParseTaskInput("do thing +gigantic due:someday")
	if got.Text != "do thing" {
		t.Errorf("text = %q", got.Text)
	}
	if len(got.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", got.Errors)
	}
	if got.Priority != models.PriorityNone || got.DueDate != nil {
		t.Errorf("bad metadata must not be applied: %+v", got)
	}
}

func TestParseTaskInputCollapsesWhitespace(t *testing.T) {
	got := ParseTaskInput("  fix   the    sink   #home  ")
	if got.Text != "fix the sink" {
		t.Errorf("text = %q", got.Text)
	}
}

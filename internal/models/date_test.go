package models

import (
	"testing"
	"time"
)

func TestDateStringAndParse(t *testing.T) {
	d := NewDate(2026, time.March, 5)
	if got := d.String(); got != "2026-03-05" {
		t.Errorf("String() = %q", got)
	}
	back, err := ParseDate("2026-03-05")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if back != d {
		t.Errorf("round-trip mismatch: %v != %v", back, d)
	}
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, input := range []string{"05/03/2026", "2026-3-5", "tomorrow", ""} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) should fail", input)
		}
	}
}

func TestNewDateNormalizes(t *testing.T) {
	// February 30th rolls over
	d := NewDate(2026, time.February, 30)
	if d != NewDate(2026, time.March, 2) {
		t.Errorf("got %v", d)
	}
}

func TestDateBeforeAndAddDays(t *testing.T) {
	a := NewDate(2026, time.January, 31)
	b := a.AddDays(1)
	if b != NewDate(2026, time.February, 1) {
		t.Errorf("AddDays crossed month wrong: %v", b)
	}
	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering wrong")
	}
	if a.Before(a) {
		t.Error("a date is not before itself")
	}
}

func TestDateIsComparable(t *testing.T) {
	m := map[Date]bool{NewDate(2026, time.June, 1): true}
	if !m[DateOf(time.Date(2026, time.June, 1, 23, 59, 0, 0, time.Local))] {
		t.Error("DateOf should strip the time of day")
	}
}

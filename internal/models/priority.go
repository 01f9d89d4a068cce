package models

import (
	"fmt"
	"strings"
)

// Priority is one of four ordered levels. The zero value means no
// priority; for sorting None < Low < Medium < High.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// Valid reports whether p is one of the four defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityNone && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return ""
	}
}

// ParsePriority accepts "low/medium/high", "med", the digits 1-3, or
// an empty string for no priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "0":
		return PriorityNone, nil
	case "low", "1":
		return PriorityLow, nil
	case "medium", "med", "2":
		return PriorityMedium, nil
	case "high", "3":
		return PriorityHigh, nil
	default:
		return PriorityNone, fmt.Errorf("invalid priority %q: use low, medium, high, or 1-3", s)
	}
}

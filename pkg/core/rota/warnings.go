package rota

import (
	"fmt"
	"slices"
)

// WarningKind classifies a non-fatal problem found while filling a slot
type WarningKind string

const (
	// WarningShortage means a role occurrence could not be fully staffed
	WarningShortage WarningKind = "shortage"

	// WarningRelaxedRule means the consecutive-weekend rule was dropped for a selection
	WarningRelaxedRule WarningKind = "relaxed"
)

// Warning is reported alongside a best-effort schedule
type Warning struct {
	Kind  WarningKind
	Label string

	// Missing is the number of unfilled places (shortage warnings only)
	Missing int

	// Week and RoleKey locate the occurrence the warning was raised for
	Week    WeekKey
	RoleKey string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningShortage:
		return fmt.Sprintf("insufficient availability for %s: missing %d", w.Label, w.Missing)
	case WarningRelaxedRule:
		return fmt.Sprintf("consecutive-weekend rule relaxed for %s", w.Label)
	default:
		return fmt.Sprintf("%s: %s", w.Kind, w.Label)
	}
}

// Warnings returns the run's warnings as text, deduplicated and sorted
func (s *RunState) Warnings() []string {
	messages := make([]string, 0, len(s.warnings))
	seen := make(map[string]bool)
	for _, w := range s.warnings {
		msg := w.String()
		if seen[msg] {
			continue
		}
		seen[msg] = true
		messages = append(messages, msg)
	}
	slices.Sort(messages)
	return messages
}

// RawWarnings returns every warning recorded, in the order they were raised
func (s *RunState) RawWarnings() []Warning {
	return slices.Clone(s.warnings)
}

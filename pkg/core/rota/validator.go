package rota

import (
	"fmt"
	"slices"
)

// ValidationError describes a rule broken by a finished run
type ValidationError struct {
	WeekendIndex   int
	RoleKey        string
	ConstraintName string
	Description    string
}

type occurrence struct {
	week    WeekKey
	roleKey string
}

// ValidateRun re-checks a finished run against the scheduling rules.
// Returns an empty slice if the run is consistent.
//
// Checks:
//   - no person appears twice in the same weekend
//   - every assigned person is eligible for the role
//   - a person serving two consecutive weekends did so in a slot with a relaxed-rule warning
//   - the tally sums to the number of filled places
func ValidateRun(run *ScheduleRun) []ValidationError {
	var errors []ValidationError

	roles := make(map[string]Role, len(run.Roles))
	for _, role := range run.Roles {
		roles[role.Key] = role
	}

	relaxed := make(map[occurrence]bool)
	for _, w := range run.State.RawWarnings() {
		if w.Kind == WarningRelaxedRule {
			relaxed[occurrence{week: w.Week, roleKey: w.RoleKey}] = true
		}
	}

	// Week each person served most recently, built up in chronological order
	lastServed := make(map[string]WeekKey)

	for _, weekend := range run.Weekends {
		ref, _ := Weekend{Saturday: weekend.Saturday, Sunday: weekend.Sunday}.ReferenceDate()
		previous := WeekKeyOf(ref.AddDate(0, 0, -7))

		seen := make(map[string]string)
		for _, assignment := range weekend.Assignments {
			role := roles[assignment.RoleKey]
			for _, name := range assignment.People {
				if name == "" {
					continue
				}

				if other, ok := seen[name]; ok {
					errors = append(errors, ValidationError{
						WeekendIndex:   weekend.Index,
						RoleKey:        assignment.RoleKey,
						ConstraintName: SameWeekendConstraint{}.Name(),
						Description:    fmt.Sprintf("%s assigned to both %s and %s in week %s", name, other, assignment.RoleKey, weekend.Week),
					})
				}
				seen[name] = assignment.RoleKey

				if !slices.Contains(role.Eligible, name) {
					errors = append(errors, ValidationError{
						WeekendIndex:   weekend.Index,
						RoleKey:        assignment.RoleKey,
						ConstraintName: "Eligibility",
						Description:    fmt.Sprintf("%s is not eligible for %s", name, role.Label),
					})
				}

				last, served := lastServed[name]
				if served && last == previous && !relaxed[occurrence{week: weekend.Week, roleKey: assignment.RoleKey}] {
					errors = append(errors, ValidationError{
						WeekendIndex:   weekend.Index,
						RoleKey:        assignment.RoleKey,
						ConstraintName: NoConsecutiveWeekendConstraint{}.Name(),
						Description:    fmt.Sprintf("%s served consecutive weekends %s and %s without relaxation", name, previous, weekend.Week),
					})
				}
			}
		}

		for name := range seen {
			lastServed[name] = weekend.Week
		}
	}

	total := 0
	for _, entry := range run.Tally() {
		total += entry.Count
	}
	if filled := run.FilledSlots(); total != filled {
		errors = append(errors, ValidationError{
			WeekendIndex:   -1,
			ConstraintName: "Conservation",
			Description:    fmt.Sprintf("tally sums to %d but %d places were filled", total, filled),
		})
	}

	return errors
}

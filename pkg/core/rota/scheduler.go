package rota

import (
	"fmt"
	"time"
)

// RunConfig contains the inputs for a single scheduling run
type RunConfig struct {
	// Start and End bound the run (inclusive); only the calendar date is used
	Start time.Time
	End   time.Time

	// Roster is the base set of names; eligible names from Roles are added to it
	Roster []string

	// Roles in processing order. Saturday roles run before Sunday roles; within
	// a day, roles run in the order given here.
	Roles []Role

	// Seed for the run's random stream
	Seed int64

	// Tiers overrides the selection fallback (nil uses DefaultTiers)
	Tiers []Tier

	// FormatDate renders dates in warning labels (nil uses "2006-01-02")
	FormatDate func(time.Time) string
}

// ScheduleRun is the outcome of one call to Generate
type ScheduleRun struct {
	Seed     int64
	Roles    []Role
	Weekends []WeekendResult

	// State holds the final per-person counters and the warnings
	State *RunState
}

// Generate assigns people to every role occurrence between cfg.Start and cfg.End.
//
// Weekends are processed strictly in chronological order because the
// consecutive-weekend rule reads the state left by the previous weekend.
// An end date before the start date returns ErrInvalidRange and no schedule.
func Generate(cfg RunConfig) (*ScheduleRun, error) {
	weekends, err := EnumerateWeekends(cfg.Start, cfg.End)
	if err != nil {
		return nil, err
	}

	formatDate := cfg.FormatDate
	if formatDate == nil {
		formatDate = func(t time.Time) string { return t.Format("2006-01-02") }
	}

	state := NewRunState(BuildRoster(cfg.Roster, cfg.Roles), cfg.Seed)
	selector := NewSelector(state, cfg.Tiers)

	run := &ScheduleRun{
		Seed:     cfg.Seed,
		Roles:    cfg.Roles,
		Weekends: make([]WeekendResult, 0, len(weekends)),
		State:    state,
	}

	for _, weekend := range weekends {
		week, previousWeek, ok := weekend.Keys()
		if !ok {
			continue
		}

		result := WeekendResult{
			Index:    weekend.Index,
			Saturday: weekend.Saturday,
			Sunday:   weekend.Sunday,
			Week:     week,
		}

		used := make(map[string]bool)
		for _, day := range []time.Weekday{time.Saturday, time.Sunday} {
			date := weekend.Day(day)
			if date == nil {
				continue
			}

			for _, role := range RolesForDay(cfg.Roles, day) {
				slot := &Slot{
					Label:        fmt.Sprintf("%s - %s", formatDate(*date), role.Label),
					Role:         role,
					Week:         week,
					PreviousWeek: previousWeek,
					Used:         used,
				}

				result.Assignments = append(result.Assignments, Assignment{
					WeekendIndex: weekend.Index,
					RoleKey:      role.Key,
					People:       selector.SelectBalanced(slot, role.Headcount),
				})
			}
		}

		run.Weekends = append(run.Weekends, result)
	}

	return run, nil
}

// Warnings returns the deduplicated, sorted warning messages of the run
func (r *ScheduleRun) Warnings() []string {
	return r.State.Warnings()
}

// FilledSlots returns the number of places filled across the whole run
func (r *ScheduleRun) FilledSlots() int {
	filled := 0
	for _, weekend := range r.Weekends {
		for _, assignment := range weekend.Assignments {
			filled += assignment.Filled()
		}
	}
	return filled
}

package rota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tamperedRun(t *testing.T) *ScheduleRun {
	t.Helper()
	roles := []Role{
		{Key: "sun-7h", Label: "Sunday 7h", Day: time.Sunday, Headcount: 1, Eligible: []string{"Ana", "Bia", "Caio"}},
		{Key: "sun-9h", Label: "Sunday 9h", Day: time.Sunday, Headcount: 1, Eligible: []string{"Ana", "Bia", "Caio"}},
	}
	run, err := Generate(RunConfig{
		Start: date(t, "2025-10-04"),
		End:   date(t, "2025-10-12"),
		Roles: roles,
		Seed:  8,
	})
	require.NoError(t, err)
	require.Empty(t, ValidateRun(run))
	return run
}

func constraintNames(errors []ValidationError) []string {
	names := make([]string, len(errors))
	for i, err := range errors {
		names[i] = err.ConstraintName
	}
	return names
}

func TestValidateRun_DetectsSameWeekendDuplicate(t *testing.T) {
	run := tamperedRun(t)

	week := &run.Weekends[0]
	week.Assignments[1].People[0] = week.Assignments[0].People[0]

	errors := ValidateRun(run)
	assert.Contains(t, constraintNames(errors), "SameWeekend")
}

func TestValidateRun_DetectsIneligiblePerson(t *testing.T) {
	run := tamperedRun(t)

	run.Weekends[1].Assignments[0].People[0] = "Mallory"

	errors := ValidateRun(run)
	assert.Contains(t, constraintNames(errors), "Eligibility")
}

func TestValidateRun_DetectsUnrelaxedConsecutiveWeekend(t *testing.T) {
	run, err := Generate(RunConfig{
		Start: date(t, "2025-10-04"),
		End:   date(t, "2025-10-12"),
		Roles: []Role{{Key: "sun-7h", Label: "Sunday 7h", Day: time.Sunday, Headcount: 1, Eligible: []string{"Ana", "Bia", "Caio"}}},
		Seed:  8,
	})
	require.NoError(t, err)
	require.Empty(t, run.Warnings())

	// Repeat the first weekend's server on the second weekend, keeping counts consistent
	repeated := run.Weekends[0].Assignments[0].People[0]
	second := &run.Weekends[1].Assignments[0]
	displaced := second.People[0]
	second.People[0] = repeated
	run.State.People[repeated].Count++
	run.State.People[displaced].Count--

	errors := ValidateRun(run)
	assert.Equal(t, []string{"NoConsecutiveWeekend"}, constraintNames(errors))
}

func TestValidateRun_DetectsConservationBreak(t *testing.T) {
	run := tamperedRun(t)

	run.State.People["Ana"].Count += 5

	errors := ValidateRun(run)
	require.Len(t, errors, 1)
	assert.Equal(t, "Conservation", errors[0].ConstraintName)
	assert.Equal(t, -1, errors[0].WeekendIndex)
}

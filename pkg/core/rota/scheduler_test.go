package rota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parishRoles mirrors the production role set and availability
func parishRoles() []Role {
	everyone := []string{"Ana Júlia", "Beatriz", "Bruna", "Davi", "Gi Sylos", "Henrique", "Isa Tomazini", "Zonta", "Laís", "Samantha", "Tavares", "Vanessa", "Iza Silva", "Nicolly", "Rafaela"}
	return []Role{
		{Key: "sat-15h", Label: "Sábado 15h", Day: time.Saturday, Headcount: 1, Eligible: []string{"Beatriz", "Gi Sylos", "Henrique", "Samantha", "Tavares", "Iza Silva", "Rafaela"}},
		{Key: "sun-7h", Label: "Domingo 7h", Day: time.Sunday, Headcount: 1, Eligible: everyone},
		{Key: "sun-9h", Label: "Domingo 9h", Day: time.Sunday, Headcount: 2, Eligible: []string{"Ana Júlia", "Beatriz", "Bruna", "Davi", "Gi Sylos", "Henrique", "Isa Tomazini", "Laís", "Samantha", "Tavares", "Vanessa", "Iza Silva", "Nicolly", "Rafaela"}},
		{Key: "sun-11h", Label: "Domingo 11h", Day: time.Sunday, Headcount: 2, Eligible: everyone},
		{Key: "sun-19h", Label: "Domingo 19h", Day: time.Sunday, Headcount: 1, Eligible: []string{"Beatriz", "Bruna", "Gi Sylos", "Isa Tomazini", "Tavares", "Rafaela"}},
	}
}

func parishConfig(t *testing.T, seed int64) RunConfig {
	return RunConfig{
		Start:  date(t, "2025-10-04"),
		End:    date(t, "2026-01-04"),
		Roster: []string{"Ana Júlia", "Beatriz", "Extra Member"},
		Roles:  parishRoles(),
		Seed:   seed,
	}
}

func TestGenerate_InvalidRange(t *testing.T) {
	cfg := parishConfig(t, 1)
	cfg.Start, cfg.End = cfg.End, cfg.Start

	run, err := Generate(cfg)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Nil(t, run)
}

func TestGenerate_ConsecutiveRuleBeatsBalance(t *testing.T) {
	role := Role{Key: "sun-7h", Label: "Sunday 7h", Day: time.Sunday, Headcount: 1, Eligible: []string{"A", "B"}}

	for seed := int64(0); seed < 20; seed++ {
		run, err := Generate(RunConfig{
			Start: date(t, "2025-10-04"),
			End:   date(t, "2025-10-12"),
			Roles: []Role{role},
			Seed:  seed,
		})
		require.NoError(t, err)
		require.Len(t, run.Weekends, 2)

		first, ok := run.Weekends[0].Assignment("sun-7h")
		require.True(t, ok)
		second, ok := run.Weekends[1].Assignment("sun-7h")
		require.True(t, ok)

		assert.NotEqual(t, first.People[0], second.People[0], "seed %d", seed)
		assert.Empty(t, run.Warnings())
	}
}

func TestGenerate_ShortageScenario(t *testing.T) {
	run, err := Generate(RunConfig{
		Start: date(t, "2025-10-04"),
		End:   date(t, "2025-10-05"),
		Roles: []Role{{Key: "sun-19h", Label: "Sunday 19h", Day: time.Sunday, Headcount: 1}},
		Seed:  5,
	})
	require.NoError(t, err)
	require.Len(t, run.Weekends, 1)

	assignment, ok := run.Weekends[0].Assignment("sun-19h")
	require.True(t, ok)
	assert.Equal(t, []string{""}, assignment.People)
	assert.Equal(t, []string{"insufficient availability for 2025-10-05 - Sunday 19h: missing 1"}, run.Warnings())
}

func TestGenerate_RelaxationScenario(t *testing.T) {
	run, err := Generate(RunConfig{
		Start: date(t, "2025-10-04"),
		End:   date(t, "2025-10-12"),
		Roles: []Role{{Key: "sat-15h", Label: "Saturday 15h", Day: time.Saturday, Headcount: 1, Eligible: []string{"Ana"}}},
		Seed:  5,
	})
	require.NoError(t, err)
	require.Len(t, run.Weekends, 2)

	for _, weekend := range run.Weekends {
		assignment, ok := weekend.Assignment("sat-15h")
		require.True(t, ok)
		assert.Equal(t, []string{"Ana"}, assignment.People)
	}
	assert.Equal(t, []string{"consecutive-weekend rule relaxed for 2025-10-11 - Saturday 15h"}, run.Warnings())
	assert.Equal(t, []TallyEntry{{Name: "Ana", Count: 2}}, run.Tally())
	assert.Empty(t, ValidateRun(run))
}

func TestGenerate_Determinism(t *testing.T) {
	first, err := Generate(parishConfig(t, 123456))
	require.NoError(t, err)
	second, err := Generate(parishConfig(t, 123456))
	require.NoError(t, err)

	assert.Equal(t, first.Weekends, second.Weekends)
	assert.Equal(t, first.Tally(), second.Tally())
	assert.Equal(t, first.Warnings(), second.Warnings())
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	first, err := Generate(parishConfig(t, 1))
	require.NoError(t, err)
	second, err := Generate(parishConfig(t, 2))
	require.NoError(t, err)

	assert.NotEqual(t, first.Weekends, second.Weekends)
}

func TestGenerate_Invariants(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		run, err := Generate(parishConfig(t, seed))
		require.NoError(t, err)

		// 14 weekends: Oct 4 2025 .. Jan 4 2026
		require.Len(t, run.Weekends, 14)

		for _, weekend := range run.Weekends {
			seen := make(map[string]bool)
			for _, assignment := range weekend.Assignments {
				for _, name := range assignment.People {
					if name == "" {
						continue
					}
					assert.False(t, seen[name], "seed %d: %s twice in week %s", seed, name, weekend.Week)
					seen[name] = true
				}
			}
		}

		total := 0
		for _, entry := range run.Tally() {
			total += entry.Count
		}
		assert.Equal(t, run.FilledSlots(), total, "seed %d: conservation", seed)
		assert.Empty(t, ValidateRun(run), "seed %d", seed)
	}
}

func TestGenerate_RoleOrderWithinWeekend(t *testing.T) {
	run, err := Generate(parishConfig(t, 9))
	require.NoError(t, err)

	keys := make([]string, 0)
	for _, assignment := range run.Weekends[0].Assignments {
		keys = append(keys, assignment.RoleKey)
		assert.Len(t, assignment.People, map[string]int{"sat-15h": 1, "sun-7h": 1, "sun-9h": 2, "sun-11h": 2, "sun-19h": 1}[assignment.RoleKey])
	}
	assert.Equal(t, []string{"sat-15h", "sun-7h", "sun-9h", "sun-11h", "sun-19h"}, keys)
}

func TestGenerate_TallyIncludesEveryone(t *testing.T) {
	run, err := Generate(parishConfig(t, 3))
	require.NoError(t, err)

	tally := run.Tally()
	names := make([]string, len(tally))
	for i, entry := range tally {
		names[i] = entry.Name
	}

	assert.Contains(t, names, "Extra Member")
	assert.Len(t, tally, 16)

	// Extra Member is eligible for nothing
	assert.Equal(t, TallyEntry{Name: "Extra Member", Count: 0}, tally[0])

	for i := 1; i < len(tally); i++ {
		prev, cur := tally[i-1], tally[i]
		assert.True(t, prev.Count < cur.Count || (prev.Count == cur.Count && prev.Name < cur.Name))
	}
}

func TestGenerate_NoWeekendInRange(t *testing.T) {
	run, err := Generate(RunConfig{
		Start: date(t, "2025-10-06"),
		End:   date(t, "2025-10-10"),
		Roles: parishRoles(),
	})
	require.NoError(t, err)
	assert.Empty(t, run.Weekends)
	assert.Empty(t, run.Warnings())
	assert.Equal(t, 0, run.FilledSlots())
}

func TestGenerate_CustomDateFormatInLabels(t *testing.T) {
	run, err := Generate(RunConfig{
		Start:      date(t, "2025-10-04"),
		End:        date(t, "2025-10-05"),
		Roles:      []Role{{Key: "sun-7h", Label: "Domingo 7h", Day: time.Sunday, Headcount: 1}},
		FormatDate: func(t time.Time) string { return t.Format("02/Jan") },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"insufficient availability for 05/Oct - Domingo 7h: missing 1"}, run.Warnings())
}

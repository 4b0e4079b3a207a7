package rota

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	thisWeek     = WeekKey{Year: 2025, Week: 41}
	previousWeek = WeekKey{Year: 2025, Week: 40}
)

func newSlot(role *Role, used map[string]bool) *Slot {
	if used == nil {
		used = make(map[string]bool)
	}
	return &Slot{
		Label:        "12/Oct - " + role.Label,
		Role:         role,
		Week:         thisWeek,
		PreviousWeek: previousWeek,
		Used:         used,
	}
}

func TestSelectOne_PrefersLeastAssigned(t *testing.T) {
	role := &Role{Key: "sun-7h", Label: "Sunday 7h", Headcount: 1, Eligible: []string{"Ana", "Bia", "Davi"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 42)
	state.People["Ana"].Count = 3
	state.People["Bia"].Count = 1
	state.People["Davi"].Count = 2

	selector := NewSelector(state, nil)
	slot := newSlot(role, nil)

	name, ok := selector.SelectOne(slot)
	require.True(t, ok)
	assert.Equal(t, "Bia", name)

	// Side effects
	assert.Equal(t, 2, state.People["Bia"].Count)
	require.NotNil(t, state.People["Bia"].LastServedWeek)
	assert.Equal(t, thisWeek, *state.People["Bia"].LastServedWeek)
	assert.True(t, slot.Used["Bia"])
	assert.Empty(t, state.Warnings())
}

func TestSelectOne_ExcludesUsedThisWeekend(t *testing.T) {
	role := &Role{Key: "sun-9h", Label: "Sunday 9h", Headcount: 1, Eligible: []string{"Ana", "Bia"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 1)
	state.People["Bia"].Count = 10

	selector := NewSelector(state, nil)
	name, ok := selector.SelectOne(newSlot(role, map[string]bool{"Ana": true}))

	require.True(t, ok)
	assert.Equal(t, "Bia", name)
}

func TestSelectOne_ExclusionBeatsBalance(t *testing.T) {
	role := &Role{Key: "sun-7h", Label: "Sunday 7h", Headcount: 1, Eligible: []string{"Ana", "Bia"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 7)
	served := previousWeek
	state.People["Ana"].LastServedWeek = &served
	state.People["Bia"].Count = 5

	selector := NewSelector(state, nil)
	name, ok := selector.SelectOne(newSlot(role, nil))

	require.True(t, ok)
	assert.Equal(t, "Bia", name, "previous-weekend server must be skipped even with a lower count")
	assert.Empty(t, state.Warnings())
}

func TestSelectOne_RelaxesConsecutiveRule(t *testing.T) {
	role := &Role{Key: "sat-15h", Label: "Saturday 15h", Headcount: 1, Eligible: []string{"Ana"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 7)
	served := previousWeek
	state.People["Ana"].LastServedWeek = &served

	selector := NewSelector(state, nil)
	name, ok := selector.SelectOne(newSlot(role, nil))

	require.True(t, ok)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, []string{"consecutive-weekend rule relaxed for 12/Oct - Saturday 15h"}, state.Warnings())
}

func TestSelectOne_ShortageLeavesStateUntouched(t *testing.T) {
	role := &Role{Key: "sun-19h", Label: "Sunday 19h", Headcount: 1, Eligible: []string{"Ana"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 7)

	selector := NewSelector(state, nil)
	slot := newSlot(role, map[string]bool{"Ana": true})

	name, ok := selector.SelectOne(slot)
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Equal(t, 0, state.People["Ana"].Count)
	assert.Nil(t, state.People["Ana"].LastServedWeek)
	assert.Empty(t, state.RawWarnings(), "single selections do not report shortages on their own")
}

func TestSelectBalanced_PicksDistinctPeople(t *testing.T) {
	role := &Role{Key: "sun-9h", Label: "Sunday 9h", Headcount: 2, Eligible: []string{"Ana", "Bia", "Davi"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 99)

	selector := NewSelector(state, nil)
	names := selector.SelectBalanced(newSlot(role, nil), 2)

	require.Len(t, names, 2)
	assert.NotEqual(t, names[0], names[1])
	assert.NotEmpty(t, names[0])
	assert.NotEmpty(t, names[1])
}

func TestSelectBalanced_ReportsOneShortagePerOccurrence(t *testing.T) {
	role := &Role{Key: "sun-11h", Label: "Sunday 11h", Headcount: 2, Eligible: []string{"Ana"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 3)

	selector := NewSelector(state, nil)
	names := selector.SelectBalanced(newSlot(role, nil), 2)

	assert.Equal(t, []string{"Ana", ""}, names)
	assert.Equal(t, []string{"insufficient availability for 12/Oct - Sunday 11h: missing 1"}, state.Warnings())
}

func TestSelectOne_TieBreakIsReproducible(t *testing.T) {
	role := &Role{Key: "sun-7h", Label: "Sunday 7h", Headcount: 1, Eligible: []string{"Ana", "Bia", "Caio", "Davi", "Enzo"}}

	pick := func(seed int64) []string {
		state := NewRunState(BuildRoster(nil, []Role{*role}), seed)
		selector := NewSelector(state, nil)
		var picks []string
		for i := 0; i < 5; i++ {
			name, ok := selector.SelectOne(newSlot(role, nil))
			require.True(t, ok)
			picks = append(picks, name)
		}
		return picks
	}

	first := pick(2024)
	assert.Equal(t, first, pick(2024))

	// Every person is picked once before anyone is picked twice
	assert.ElementsMatch(t, role.Eligible, first)
}

func TestSelectOne_CustomTiers(t *testing.T) {
	role := &Role{Key: "sun-7h", Label: "Sunday 7h", Headcount: 1, Eligible: []string{"Ana"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 1)
	served := previousWeek
	state.People["Ana"].LastServedWeek = &served

	// Strict only: no relaxation tier
	selector := NewSelector(state, []Tier{DefaultTiers()[0]})
	_, ok := selector.SelectOne(newSlot(role, nil))
	assert.False(t, ok)
}

func TestSelectOne_BalanceMonotonicity(t *testing.T) {
	role := &Role{Key: "sun-9h", Label: "Sunday 9h", Headcount: 2, Eligible: []string{"Ana", "Bia", "Caio", "Davi", "Enzo", "Flor"}}
	state := NewRunState(BuildRoster(nil, []Role{*role}), 11)
	selector := NewSelector(state, nil)
	strict := DefaultTiers()[0]

	for week := 1; week <= 30; week++ {
		slot := &Slot{
			Label:        "w",
			Role:         role,
			Week:         WeekKey{Year: 2025, Week: week + 1},
			PreviousWeek: WeekKey{Year: 2025, Week: week},
			Used:         make(map[string]bool),
		}
		for pick := 0; pick < 2; pick++ {
			minCount := -1
			for _, name := range role.Eligible {
				p := state.People[name]
				if strict.admits(state, p, slot) && (minCount == -1 || p.Count < minCount) {
					minCount = p.Count
				}
			}
			require.NotEqual(t, -1, minCount)

			name, ok := selector.SelectOne(slot)
			require.True(t, ok)
			assert.Equal(t, minCount+1, state.People[name].Count, "chosen person must have had the lowest count")
		}
	}
}

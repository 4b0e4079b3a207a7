package rota

import (
	"cmp"
	"slices"
)

// Tally returns every roster member with their assignment count,
// ordered by count ascending then name ascending.
// People never assigned are included with a count of 0.
func (s *RunState) Tally() []TallyEntry {
	entries := make([]TallyEntry, 0, len(s.People))
	for name, person := range s.People {
		entries = append(entries, TallyEntry{Name: name, Count: person.Count})
	}

	slices.SortFunc(entries, func(a, b TallyEntry) int {
		if c := cmp.Compare(a.Count, b.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return entries
}

// Tally returns the final per-person counts of the run
func (r *ScheduleRun) Tally() []TallyEntry {
	return r.State.Tally()
}

package rota

import (
	"cmp"
	"slices"
)

// Selector picks people for slots using a run's state and constraint tiers
type Selector struct {
	state *RunState
	tiers []Tier
}

// NewSelector creates a selector over the given state. A nil tiers slice uses DefaultTiers.
func NewSelector(state *RunState, tiers []Tier) *Selector {
	if tiers == nil {
		tiers = DefaultTiers()
	}
	return &Selector{state: state, tiers: tiers}
}

// SelectOne picks the least-assigned candidate for the slot, breaking ties at random.
// It returns false when no tier yields a candidate; state is not changed in that case.
func (s *Selector) SelectOne(slot *Slot) (string, bool) {
	for _, tier := range s.tiers {
		candidates := s.candidates(tier, slot)
		if len(candidates) == 0 {
			continue
		}

		if tier.Relaxation {
			s.state.warn(slot.warning(WarningRelaxedRule, 0))
		}

		chosen := s.pickLeastAssigned(candidates)
		s.assign(chosen, slot)
		return chosen.Name, true
	}

	return "", false
}

// SelectBalanced fills qty places for the slot by repeated single selections.
// Each pick is added to slot.Used before the next one, so the same person is
// never chosen twice. Unfilled places are returned as empty strings and
// reported as one shortage warning.
func (s *Selector) SelectBalanced(slot *Slot, qty int) []string {
	names := make([]string, 0, qty)
	missing := 0
	for i := 0; i < qty; i++ {
		name, ok := s.SelectOne(slot)
		if !ok {
			missing++
		}
		names = append(names, name)
	}

	if missing > 0 {
		s.state.warn(slot.warning(WarningShortage, missing))
	}

	return names
}

// candidates returns the eligible people the tier admits, in eligibility order
func (s *Selector) candidates(tier Tier, slot *Slot) []*Person {
	var candidates []*Person
	for _, name := range slot.Role.Eligible {
		person := s.state.person(name)
		if tier.admits(s.state, person, slot) {
			candidates = append(candidates, person)
		}
	}
	return candidates
}

// pickLeastAssigned shuffles the candidates and returns the first with the lowest count.
// The shuffle followed by a stable sort makes ties random but reproducible for a seed.
func (s *Selector) pickLeastAssigned(candidates []*Person) *Person {
	s.state.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	slices.SortStableFunc(candidates, func(a, b *Person) int {
		return cmp.Compare(a.Count, b.Count)
	})

	return candidates[0]
}

func (s *Selector) assign(person *Person, slot *Slot) {
	person.Count++
	week := slot.Week
	person.LastServedWeek = &week
	slot.Used[person.Name] = true
}

func (slot *Slot) warning(kind WarningKind, missing int) Warning {
	return Warning{
		Kind:    kind,
		Label:   slot.Label,
		Missing: missing,
		Week:    slot.Week,
		RoleKey: slot.Role.Key,
	}
}

package rota

// Constraint decides whether a person may fill a slot.
// It acts as a veto: if any constraint in a tier rejects a person, that person
// is not a candidate in that tier.
type Constraint interface {
	// Name returns a human-readable identifier for this constraint
	Name() string

	// IsCandidateValid returns false if assigning the person to the slot would
	// violate the constraint
	IsCandidateValid(state *RunState, person *Person, slot *Slot) bool
}

// Tier is one level of the selection fallback.
// The selector tries tiers in order and picks from the first one that yields
// at least one candidate.
type Tier struct {
	Name        string
	Constraints []Constraint

	// Relaxation marks a tier that drops a rule; picking from it raises a
	// relaxed-rule warning for the slot
	Relaxation bool
}

// admits reports whether every constraint of the tier accepts the person
func (t Tier) admits(state *RunState, person *Person, slot *Slot) bool {
	for _, constraint := range t.Constraints {
		if !constraint.IsCandidateValid(state, person, slot) {
			return false
		}
	}
	return true
}

// DefaultTiers returns the standard fallback: first try with every rule, then
// drop the consecutive-weekend rule. Same-weekend exclusivity is never relaxed.
func DefaultTiers() []Tier {
	return []Tier{
		{
			Name:        "strict",
			Constraints: []Constraint{SameWeekendConstraint{}, NoConsecutiveWeekendConstraint{}},
		},
		{
			Name:        "relaxed",
			Constraints: []Constraint{SameWeekendConstraint{}},
			Relaxation:  true,
		},
	}
}

// SameWeekendConstraint rejects people already assigned this weekend
type SameWeekendConstraint struct{}

func (SameWeekendConstraint) Name() string {
	return "SameWeekend"
}

func (SameWeekendConstraint) IsCandidateValid(state *RunState, person *Person, slot *Slot) bool {
	return !slot.Used[person.Name]
}

// NoConsecutiveWeekendConstraint rejects people who served the previous weekend
type NoConsecutiveWeekendConstraint struct{}

func (NoConsecutiveWeekendConstraint) Name() string {
	return "NoConsecutiveWeekend"
}

func (NoConsecutiveWeekendConstraint) IsCandidateValid(state *RunState, person *Person, slot *Slot) bool {
	return !person.servedIn(slot.PreviousWeek)
}

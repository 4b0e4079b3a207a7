package rota

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrInvalidRange is returned when the end date of a run is before its start date
var ErrInvalidRange = errors.New("invalid range: end date is before start date")

// WeekKey identifies a weekend by the ISO year and week of its reference date
type WeekKey struct {
	Year int
	Week int
}

// WeekKeyOf returns the ISO week key for the given date
func WeekKeyOf(date time.Time) WeekKey {
	year, week := date.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

// Role is a recurring slot that needs Headcount distinct people on every occurrence
type Role struct {
	// Key identifies the role in assignments and output columns (e.g. "sun-9h")
	Key string

	// Label is the human-readable name used in warnings (e.g. "Sunday 9h")
	Label string

	// Day is the weekend day the role occurs on (time.Saturday or time.Sunday)
	Day time.Weekday

	// Headcount is the number of people required per occurrence
	Headcount int

	// Eligible lists the names of people available for this role
	Eligible []string
}

// Person tracks the running state of one roster member during a run
type Person struct {
	Name string

	// Count is the number of slots this person has been assigned so far
	Count int

	// LastServedWeek is the most recent weekend this person served (nil if never)
	LastServedWeek *WeekKey
}

// servedIn reports whether the person last served in the given weekend
func (p *Person) servedIn(key WeekKey) bool {
	return p.LastServedWeek != nil && *p.LastServedWeek == key
}

// RunState is the mutable state owned by a single run.
// It is never shared between runs.
type RunState struct {
	// People indexed by name; every roster member has an entry
	People map[string]*Person

	// Roster is the sorted list of every person known to the run
	Roster []string

	warnings []Warning
	rng      *rand.Rand
}

// NewRunState creates a fresh state for the roster with a random stream seeded from seed
func NewRunState(roster []string, seed int64) *RunState {
	people := make(map[string]*Person, len(roster))
	for _, name := range roster {
		people[name] = &Person{Name: name}
	}

	return &RunState{
		People: people,
		Roster: roster,
		rng:    rand.New(rand.NewPCG(uint64(seed), 0)),
	}
}

// person returns the state for name, creating it if the name was not in the roster
func (s *RunState) person(name string) *Person {
	p, ok := s.People[name]
	if !ok {
		p = &Person{Name: name}
		s.People[name] = p
	}
	return p
}

func (s *RunState) warn(w Warning) {
	s.warnings = append(s.warnings, w)
}

// Slot describes a single role occurrence being filled
type Slot struct {
	// Label identifies the occurrence in warnings (e.g. "05/Oct - Sunday 9h")
	Label string

	// Role being filled
	Role *Role

	// Week is the key of the weekend being scheduled
	Week WeekKey

	// PreviousWeek is the key of the weekend 7 days earlier
	PreviousWeek WeekKey

	// Used holds the people already assigned this weekend
	Used map[string]bool
}

// Assignment is the result of filling one role occurrence
type Assignment struct {
	WeekendIndex int
	RoleKey      string

	// People holds one entry per required person; an empty string marks an unfilled place
	People []string
}

// Filled returns the number of people actually assigned
func (a Assignment) Filled() int {
	filled := 0
	for _, name := range a.People {
		if name != "" {
			filled++
		}
	}
	return filled
}

// WeekendResult holds the assignments made for one weekend
type WeekendResult struct {
	Index    int
	Saturday *time.Time
	Sunday   *time.Time
	Week     WeekKey

	// Assignments in the order roles were processed
	Assignments []Assignment
}

// Assignment returns the assignment for the given role key, if the role ran this weekend
func (w WeekendResult) Assignment(roleKey string) (Assignment, bool) {
	for _, a := range w.Assignments {
		if a.RoleKey == roleKey {
			return a, true
		}
	}
	return Assignment{}, false
}

// TallyEntry is the number of assignments a person received in a run
type TallyEntry struct {
	Name  string
	Count int
}

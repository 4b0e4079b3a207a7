package rota

import (
	"slices"
	"time"
)

// BuildRoster returns the sorted union of the base names and every name
// eligible for any role. Every eligible person therefore appears in the tally,
// and the order is stable for a given input.
func BuildRoster(base []string, roles []Role) []string {
	names := slices.Clone(base)
	for _, role := range roles {
		names = append(names, role.Eligible...)
	}

	slices.Sort(names)
	return slices.Compact(names)
}

// RolesForDay returns the roles that occur on the given day, in configuration order
func RolesForDay(roles []Role, day time.Weekday) []*Role {
	var matching []*Role
	for i := range roles {
		if roles[i].Day == day {
			matching = append(matching, &roles[i])
		}
	}
	return matching
}

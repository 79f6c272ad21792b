// Package compatibility decides which item sets a power may slot, from the
// power's declared enhancement categories and its combat role.
package compatibility

import (
	"sort"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
)

// TypeSet is a set of item-set types
type TypeSet map[string]struct{}

// Has reports whether setType is in the set
func (s TypeSet) Has(setType string) bool {
	_, ok := s[setType]
	return ok
}

// Sorted returns the types in ascending order
func (s TypeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// PowerContext carries the power and powerset needed for damage-type
// refinement. A nil context limits matching to categories.
type PowerContext struct {
	Power    *build.Power
	Powerset *catalog.Powerset
}

// LegalSetTypes expands the allowed enhancement categories into set types.
// When Damage is allowed and a power context is given, the result is
// narrowed to the power's role row; any type outside the row is dropped.
func LegalSetTypes(allowed []string, pc *PowerContext) TypeSet {
	legal := make(TypeSet)
	hasDamage := false
	for _, category := range allowed {
		types, _ := SetTypesForCategory(category)
		for _, t := range types {
			legal[t] = struct{}{}
		}
		if compactCategory(category) == "damage" {
			hasDamage = true
		}
	}

	if !hasDamage || pc == nil || pc.Power == nil {
		return legal
	}

	refined := make(TypeSet)
	for _, t := range DamageTypesFor(DetermineRole(pc.Power, pc.Powerset)) {
		if legal.Has(t) {
			refined[t] = struct{}{}
		}
	}
	return refined
}

// CanSlot reports whether set may be slotted into a power declaring the
// allowed categories. An empty expansion admits nothing.
func CanSlot(set *catalog.ItemSet, allowed []string, pc *PowerContext) bool {
	if set == nil || allowed == nil {
		return false
	}
	return LegalSetTypes(allowed, pc).Has(set.Type)
}

// SetMatch pairs a compatible set with its catalog ID
type SetMatch struct {
	SetID string
	Set   *catalog.ItemSet
}

// TypeCount is the number of compatible sets of one type
type TypeCount struct {
	Type  string
	Count int
}

// FilterByType keeps sets of the given type. An empty type keeps all.
func FilterByType(sets []SetMatch, setType string) []SetMatch {
	if setType == "" {
		return sets
	}
	var out []SetMatch
	for _, m := range sets {
		if m.Set.Type == setType {
			out = append(out, m)
		}
	}
	return out
}

// CountByType tallies sets per type, most common first
func CountByType(sets []SetMatch) []TypeCount {
	counts := make(map[string]int)
	for _, m := range sets {
		counts[m.Set.Type]++
	}

	out := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypeCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

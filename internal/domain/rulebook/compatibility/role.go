package compatibility

import (
	"strings"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
)

// RoleHeuristicVersion changes whenever DetermineRole's inference rules do
const RoleHeuristicVersion = 1

const (
	meleeMaxRange  = 10.0
	rangedMinRange = 20.0
)

// Role is the combat-role classification of a power
type Role struct {
	IsRanged bool
	IsAoE    bool
	IsPet    bool
}

var (
	petPowersetMarkers = []string{"summoning", "control"}
	petPowerKeywords   = []string{"summon", "upgrade"}
	rangedSetKeywords  = []string{"blast", "rifle", "archery", "bow"}
	aoePowerKeywords   = []string{"spray", "circle", "cone", "nova", "fistful", "buckshot"}
	aoeEffectAreas     = []string{"cone", "sphere", "location", "chain"}
)

// DetermineRole infers a power's role from its name, range and effect
// area and from its powerset's ID and name. This is a heuristic; no
// authored field records the role.
func DetermineRole(power *build.Power, powerset *catalog.Powerset) Role {
	var role Role
	if power == nil {
		return role
	}

	name := strings.ToLower(power.Name)

	if powerset != nil && isPetPowerset(powerset) {
		role.IsPet = power.AllowsEnhancement(catalog.TypePetDamage) || containsAny(name, petPowerKeywords)
	}

	switch r := power.Effects.Range; {
	case r > rangedMinRange:
		role.IsRanged = true
	case r > 0 && r <= meleeMaxRange:
		role.IsRanged = false
	default:
		if powerset != nil {
			role.IsRanged = containsAny(strings.ToLower(powerset.Name), rangedSetKeywords)
		}
	}

	role.IsAoE = containsAny(name, aoePowerKeywords) ||
		containsAny(strings.ToLower(power.Effects.EffectArea), aoeEffectAreas)

	return role
}

func isPetPowerset(powerset *catalog.Powerset) bool {
	id := strings.ToLower(powerset.ID + " " + powerset.Category)
	return containsAny(id, petPowersetMarkers) ||
		strings.Contains(strings.ToLower(powerset.Name), "mastermind")
}

// DamageTypesFor returns the damage set types legal for a role.
// Pet powers ignore the other role dimensions.
func DamageTypesFor(role Role) []string {
	switch {
	case role.IsPet:
		return []string{catalog.TypePetDamage, catalog.TypeUniversalDamage}
	case role.IsRanged && role.IsAoE:
		return []string{catalog.TypeRangedAoEDamage, catalog.TypeTargetedAoEDamage, catalog.TypeUniversalDamage}
	case !role.IsRanged && role.IsAoE:
		return []string{catalog.TypePBAoEDamage, catalog.TypeMeleeAoEDamage, catalog.TypeTargetedAoEDamage, catalog.TypeUniversalDamage}
	case role.IsRanged:
		return []string{catalog.TypeRangedDamage, catalog.TypeSniperAttacks, catalog.TypeUniversalDamage}
	default:
		return []string{catalog.TypeMeleeDamage, catalog.TypeUniversalDamage}
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

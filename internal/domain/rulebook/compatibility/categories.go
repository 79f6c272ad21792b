package compatibility

import (
	"strings"

	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
)

var damageSetTypes = []string{
	catalog.TypeMeleeDamage,
	catalog.TypeRangedDamage,
	catalog.TypeTargetedAoEDamage,
	catalog.TypeRangedAoEDamage,
	catalog.TypePBAoEDamage,
	catalog.TypeMeleeAoEDamage,
	catalog.TypePetDamage,
	catalog.TypeSniperAttacks,
	catalog.TypeUniversalDamage,
}

// categorySetTypes maps an enhancement category to the item-set types it
// admits. An empty list marks a category every set covers, such as
// Accuracy; those never widen the legal set on their own.
var categorySetTypes = map[string][]string{
	"Damage": damageSetTypes,

	"Defense Buff":  {"Defense Sets"},
	"Resist Damage": {"Resist Damage"},
	"Healing":       {"Healing", "Accurate Healing"},
	"Heal":          {"Healing", "Accurate Healing"},

	"Hold Duration":            {"Holds"},
	"Hold":                     {"Holds"},
	"Disorient Duration":       {"Stuns"},
	"Dsrnt":                    {"Stuns"},
	"Immobilisation Duration":  {"Immobilize"},
	"Immobilization Duration":  {"Immobilize"},
	"Immob":                    {"Immobilize"},
	"Confuse Duration":         {"Confuse"},
	"Confuse":                  {"Confuse"},
	"Conf":                     {"Confuse"},
	"Fear Duration":            {"Fear"},
	"Fear":                     {"Fear"},
	"Sleep Duration":           {"Sleep"},
	"Sleep":                    {"Sleep"},
	"Slow":                     {"Slow Movement"},
	"Defense Debuff":           {"Defense Debuff", "Accurate Defense Debuff"},
	"DefDeb":                   {"Defense Debuff", "Accurate Defense Debuff"},
	"To Hit Debuff":            {"To Hit Debuff", "Accurate To-Hit Debuff"},
	"ToHitDeb":                 {"To Hit Debuff", "Accurate To-Hit Debuff"},
	"Flight Speed":             {"Flight", "Universal Travel"},
	"Flight":                   {"Flight", "Universal Travel"},
	"Jumping":                  {"Leaping", "Universal Travel"},
	"Jump":                     {"Leaping", "Universal Travel"},
	"Run Speed":                {"Running", "Universal Travel"},
	"Run":                      {"Running", "Universal Travel"},
	"Endurance Modification":   {"Endurance Modification"},
	"EndMod":                   {"Endurance Modification"},
	"Knockback Distance":       {"Knockback"},
	"KBDist":                   {"Knockback"},
	"Taunt Duration":           {"Threat Duration"},
	"Taunt":                    {"Threat Duration"},
	"To Hit Buff":              {"To Hit Buff"},
	"ToHit":                    {"To Hit Buff"},
	"Recharge Reduction":       {},
	"RechRdx":                  {},
	"Recharge":                 {},
	"Accuracy":                 {},
	"Acc":                      {},
	"Endurance Reduction":      {},
	"EndRdx":                   {},
	"Range":                    {},
	"Activation Decrease":      {},
	"ActRdx":                   {},
	"Interrupt Time Reduction": {},
}

// normalizedCategories indexes categorySetTypes by compact key so that
// "Hold Duration", "HoldDuration" and "hold-duration" resolve alike
var normalizedCategories = func() map[string][]string {
	out := make(map[string][]string, len(categorySetTypes))
	for name, types := range categorySetTypes {
		out[compactCategory(name)] = types
	}
	return out
}()

func compactCategory(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SetTypesForCategory returns the set types an enhancement category admits
// and whether the category is known at all
func SetTypesForCategory(category string) ([]string, bool) {
	types, ok := normalizedCategories[compactCategory(category)]
	return types, ok
}

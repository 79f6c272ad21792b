package setbonus

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
)

// Normalized stat keys
const (
	StatDamage       = "damage"
	StatAccuracy     = "accuracy"
	StatRecharge     = "recharge"
	StatDefRanged    = "defRanged"
	StatDefAoE       = "defAoE"
	StatDefMelee     = "defMelee"
	StatMaxHP        = "maxhp"
	StatMaxEndurance = "maxend"
	StatRecovery     = "recovery"
	StatRegeneration = "regeneration"
	StatRunSpeed     = "runspeed"
	StatFlySpeed     = "flyspeed"
	StatJumpSpeed    = "jumpspeed"
)

// RuleError is returned when a bonus rule cannot be resolved
type RuleError string

func (e RuleError) Error() string {
	return string(e)
}

const (
	// ErrMalformedRule means the rule text does not have the
	// "<N> pieces: +<value>% <label>" shape
	ErrMalformedRule RuleError = "malformed bonus rule"
	// ErrUnknownStat means no stat key could be derived from the label
	ErrUnknownStat RuleError = "unknown bonus stat"
)

var labelStats = map[string]string{
	"Damage":         StatDamage,
	"Accuracy":       StatAccuracy,
	"Recharge":       StatRecharge,
	"Ranged Defense": StatDefRanged,
	"AoE Defense":    StatDefAoE,
	"Melee Defense":  StatDefMelee,
	"Max HP":         StatMaxHP,
	"Max Endurance":  StatMaxEndurance,
	"Recovery":       StatRecovery,
	"Regeneration":   StatRegeneration,
	"Run Speed":      StatRunSpeed,
	"Fly Speed":      StatFlySpeed,
	"Jump Speed":     StatJumpSpeed,
}

// keywordStats is checked in order; first match wins
var keywordStats = []struct {
	keyword string
	stat    string
}{
	{"damage", StatDamage},
	{"accuracy", StatAccuracy},
	{"recharge", StatRecharge},
	{"ranged defense", StatDefRanged},
	{"aoe defense", StatDefAoE},
	{"melee defense", StatDefMelee},
	{"max hp", StatMaxHP},
	{"max end", StatMaxEndurance},
	{"recovery", StatRecovery},
	{"regeneration", StatRegeneration},
	{"run speed", StatRunSpeed},
	{"fly speed", StatFlySpeed},
	{"jump speed", StatJumpSpeed},
}

var bonusTextPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*pieces\s*:\s*\+?([\d.]+)%\s*(.+?)\s*$`)

// Resolved is a bonus rule in structured form
type Resolved struct {
	Pieces int
	Stat   string
	Value  float64
}

// StatForLabel maps a human-readable label to a stat key. Exact labels are
// tried first, then case-insensitive keyword containment.
func StatForLabel(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if stat, ok := labelStats[label]; ok {
		return stat, true
	}

	lower := strings.ToLower(label)
	for _, ks := range keywordStats {
		if strings.Contains(lower, ks.keyword) {
			return ks.stat, true
		}
	}
	return "", false
}

// ParseBonusText parses a legacy description such as "3 pieces: +9% Accuracy"
func ParseBonusText(text string) (Resolved, error) {
	m := bonusTextPattern.FindStringSubmatch(text)
	if m == nil {
		return Resolved{}, ErrMalformedRule
	}

	pieces, err := strconv.Atoi(m[1])
	if err != nil {
		return Resolved{}, ErrMalformedRule
	}
	value, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Resolved{}, ErrMalformedRule
	}

	stat, ok := StatForLabel(m[3])
	if !ok {
		return Resolved{}, ErrUnknownStat
	}

	return Resolved{Pieces: pieces, Stat: stat, Value: value}, nil
}

// ResolveRule normalizes either rule form into a Resolved value.
// Structured rules are used as-is; a missing stat falls back to the
// label lookup on the rule's description. A structured rule without a
// value is malformed.
func ResolveRule(rule catalog.BonusRule) (Resolved, error) {
	if rule.Kind == catalog.RuleKindText {
		return ParseBonusText(rule.Text)
	}

	if rule.Pieces <= 0 || !rule.HasValue {
		return Resolved{}, ErrMalformedRule
	}

	stat := rule.Stat
	if stat == "" {
		var ok bool
		if stat, ok = StatForLabel(rule.Desc); !ok {
			return Resolved{}, ErrUnknownStat
		}
	}

	return Resolved{Pieces: rule.Pieces, Stat: stat, Value: rule.Value}, nil
}

var displayNames = map[string]string{
	StatDamage:       "Damage",
	StatAccuracy:     "Accuracy",
	StatRecharge:     "Recharge",
	StatDefRanged:    "Ranged Defense",
	StatDefAoE:       "AoE Defense",
	StatDefMelee:     "Melee Defense",
	StatMaxHP:        "Max HP",
	StatMaxEndurance: "Max Endurance",
	StatRecovery:     "Recovery",
	StatRegeneration: "Regeneration",
	StatRunSpeed:     "Run Speed",
	StatFlySpeed:     "Fly Speed",
	StatJumpSpeed:    "Jump Speed",
}

// DisplayName returns the label shown to players for a stat key
func DisplayName(stat string) string {
	if name, ok := displayNames[stat]; ok {
		return name
	}
	return stat
}

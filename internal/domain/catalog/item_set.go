package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SetCategory groups item sets for browsing
type SetCategory string

const (
	CategoryIOSet  SetCategory = "io-set"
	CategoryPurple SetCategory = "purple"
	CategoryATO    SetCategory = "ato"
	CategoryEvent  SetCategory = "event"
)

// Damage sub-types an item set may declare
const (
	TypeMeleeDamage       = "Melee Damage"
	TypeRangedDamage      = "Ranged Damage"
	TypeTargetedAoEDamage = "Targeted AoE Damage"
	TypeRangedAoEDamage   = "Ranged AoE Damage"
	TypePBAoEDamage       = "PBAoE Damage"
	TypeMeleeAoEDamage    = "Melee AoE Damage"
	TypePetDamage         = "Pet Damage"
	TypeSniperAttacks     = "Sniper Attacks"
	TypeUniversalDamage   = "Universal Damage"
)

// ItemSet is a static catalog entry for a named group of set enhancements
type ItemSet struct {
	ID       string      `yaml:"-"`
	Name     string      `yaml:"name"`
	Category SetCategory `yaml:"category"`
	// Type is the role sub-type used for compatibility, e.g. "Ranged Damage"
	Type     string      `yaml:"type"`
	MinLevel int         `yaml:"min_level,omitempty"`
	MaxLevel int         `yaml:"max_level,omitempty"`
	Bonuses  []BonusRule `yaml:"bonuses"`
}

// RuleKind tags which form a BonusRule holds
type RuleKind string

const (
	RuleKindText       RuleKind = "text"
	RuleKindStructured RuleKind = "structured"
)

// BonusRule is either a legacy free-text description such as
// "3 pieces: +9% Accuracy" or a structured threshold/stat/value record.
type BonusRule struct {
	Kind RuleKind

	// Text holds the legacy description when Kind is RuleKindText
	Text string

	Pieces int
	Stat   string
	Value  float64
	// HasValue is false when a structured record omitted its value
	HasValue bool
	// Desc is an optional label used to infer Stat when it is absent
	Desc string
}

// TextRule creates a legacy free-text bonus rule
func TextRule(text string) BonusRule {
	return BonusRule{Kind: RuleKindText, Text: text}
}

// StructuredRule creates a structured bonus rule
func StructuredRule(pieces int, stat string, value float64) BonusRule {
	return BonusRule{
		Kind:     RuleKindStructured,
		Pieces:   pieces,
		Stat:     stat,
		Value:    value,
		HasValue: true,
	}
}

type structuredRuleData struct {
	Pieces int      `yaml:"pieces"`
	Stat   string   `yaml:"stat,omitempty"`
	Value  *float64 `yaml:"value,omitempty"`
	Desc   string   `yaml:"desc,omitempty"`
}

// UnmarshalYAML accepts a scalar string (legacy text) or a mapping
func (r *BonusRule) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var text string
		if err := node.Decode(&text); err != nil {
			return fmt.Errorf("failed to decode bonus text: %w", err)
		}
		*r = TextRule(text)
		return nil
	case yaml.MappingNode:
		var data structuredRuleData
		if err := node.Decode(&data); err != nil {
			return fmt.Errorf("failed to decode bonus rule: %w", err)
		}
		*r = BonusRule{
			Kind:   RuleKindStructured,
			Pieces: data.Pieces,
			Stat:   data.Stat,
			Desc:   data.Desc,
		}
		if data.Value != nil {
			r.Value = *data.Value
			r.HasValue = true
		}
		return nil
	default:
		return fmt.Errorf("bonus rule at line %d must be a string or a mapping", node.Line)
	}
}

// MarshalYAML writes the rule back in the form it was read
func (r BonusRule) MarshalYAML() (any, error) {
	if r.Kind == RuleKindText {
		return r.Text, nil
	}
	data := structuredRuleData{
		Pieces: r.Pieces,
		Stat:   r.Stat,
		Desc:   r.Desc,
	}
	if r.HasValue {
		value := r.Value
		data.Value = &value
	}
	return data, nil
}

// Powerset is the static metadata of a power set used for role inference
type Powerset struct {
	ID       string `yaml:"-"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

package setbonus

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"go.uber.org/zap"
)

// SetLookup resolves item sets by ID
type SetLookup interface {
	Set(id string) (*catalog.ItemSet, bool)
}

// RawBonus is one active set bonus granted by one power
type RawBonus struct {
	Stat    string
	Value   float64
	Source  string
	SetName string
	// PieceCount is the threshold of the rule that granted the bonus
	PieceCount int
	PowerName  string
}

// DiagnosticKind classifies a skipped contribution
type DiagnosticKind string

const (
	DiagnosticUnresolvableRule DiagnosticKind = "unresolvable_rule"
	DiagnosticMalformedRule    DiagnosticKind = "malformed_rule"
	DiagnosticMissingSet       DiagnosticKind = "missing_set"
)

// Diagnostic describes a contribution that was dropped during collection
type Diagnostic struct {
	Kind      DiagnosticKind `json:"kind"`
	SetID     string         `json:"set_id"`
	PowerName string         `json:"power"`
	Detail    string         `json:"detail"`
}

// CollectorConfig holds the collector's dependencies
type CollectorConfig struct {
	Sets   SetLookup // Required
	Logger *zap.Logger
}

// Collector walks a build and emits every active set bonus
type Collector struct {
	sets   SetLookup
	logger *zap.Logger
}

// NewCollector creates a collector
func NewCollector(cfg *CollectorConfig) *Collector {
	if cfg == nil || cfg.Sets == nil {
		panic("set lookup is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Collector{
		sets:   cfg.Sets,
		logger: logger,
	}
}

// CollectAllSetBonuses returns the active bonuses of every power in
// primary, secondary, then pool order. Contributions that cannot be
// resolved are skipped and reported as diagnostics.
func (c *Collector) CollectAllSetBonuses(b *build.Build) ([]RawBonus, []Diagnostic) {
	var bonuses []RawBonus
	var diagnostics []Diagnostic

	for _, group := range b.Groups() {
		for _, power := range group.Powers {
			if power == nil {
				continue
			}
			powerBonuses, powerDiagnostics := c.collectPower(power)
			bonuses = append(bonuses, powerBonuses...)
			diagnostics = append(diagnostics, powerDiagnostics...)
		}
	}

	return bonuses, diagnostics
}

func (c *Collector) collectPower(power *build.Power) ([]RawBonus, []Diagnostic) {
	var bonuses []RawBonus
	var diagnostics []Diagnostic

	// Sets keep the order in which they first appear in the slots
	var setOrder []string
	pieces := make(map[string][]int)
	for _, slot := range power.Slots {
		if !slot.IsSetItem() {
			continue
		}
		if _, seen := pieces[slot.SetID]; !seen {
			setOrder = append(setOrder, slot.SetID)
		}
		pieces[slot.SetID] = append(pieces[slot.SetID], slot.PieceNum)
	}

	for _, setID := range setOrder {
		set, ok := c.sets.Set(setID)
		if !ok {
			c.logger.Debug("skipping unknown item set",
				zap.String("set_id", setID),
				zap.String("power", power.Name))
			diagnostics = append(diagnostics, Diagnostic{
				Kind:      DiagnosticMissingSet,
				SetID:     setID,
				PowerName: power.Name,
				Detail:    "set not found in catalog",
			})
			continue
		}

		pieceCount := len(pieces[setID])
		for _, rule := range set.Bonuses {
			resolved, err := ResolveRule(rule)
			if err != nil {
				c.logger.Debug("skipping set bonus",
					zap.String("set_id", setID),
					zap.String("power", power.Name),
					zap.String("rule", describeRule(rule)),
					zap.Error(err))
				diagnostics = append(diagnostics, Diagnostic{
					Kind:      diagnosticKindFor(err),
					SetID:     setID,
					PowerName: power.Name,
					Detail:    describeRule(rule),
				})
				continue
			}

			// The threshold gates the bonus once; extra pieces add nothing
			if pieceCount < resolved.Pieces {
				continue
			}

			bonuses = append(bonuses, RawBonus{
				Stat:       resolved.Stat,
				Value:      resolved.Value,
				Source:     fmt.Sprintf("%s (%dpc in %s)", set.Name, resolved.Pieces, power.Name),
				SetName:    set.Name,
				PieceCount: resolved.Pieces,
				PowerName:  power.Name,
			})
		}
	}

	return bonuses, diagnostics
}

func diagnosticKindFor(err error) DiagnosticKind {
	if errors.Is(err, ErrMalformedRule) {
		return DiagnosticMalformedRule
	}
	return DiagnosticUnresolvableRule
}

func describeRule(rule catalog.BonusRule) string {
	if rule.Kind == catalog.RuleKindText {
		return rule.Text
	}
	if rule.Desc != "" {
		return rule.Desc
	}
	if !rule.HasValue {
		return fmt.Sprintf("%dpc %s without value", rule.Pieces, rule.Stat)
	}
	return fmt.Sprintf("%dpc %s %+g", rule.Pieces, rule.Stat, rule.Value)
}

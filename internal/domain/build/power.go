package build

import (
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
)

// PowerEffects is the subset of a power's effect data used for role inference
type PowerEffects struct {
	// Range in feet; zero when undeclared
	Range float64 `json:"range,omitempty"`
	// EffectArea is the declared shape, e.g. "Cone", "Sphere", "SingleTarget"
	EffectArea string  `json:"effectArea,omitempty"`
	Radius     float64 `json:"radius,omitempty"`
	Arc        float64 `json:"arc,omitempty"`
}

// Power is a selected power and its enhancement slots
type Power struct {
	Name                string       `json:"name"`
	MaxSlots            int          `json:"maxSlots"`
	AllowedEnhancements []string     `json:"allowedEnhancements"`
	Effects             PowerEffects `json:"effects"`
	Slots               []*Slot      `json:"slots"`
}

// AddSlot appends an empty slot
func (p *Power) AddSlot() error {
	if len(p.Slots) >= p.MaxSlots {
		return plerr.Newf(plerr.CodeMaxSlots, "%s already has maximum slots (%d)", p.Name, p.MaxSlots).
			WithMeta("power", p.Name)
	}
	p.Slots = append(p.Slots, nil)
	return nil
}

// SetSlot places an enhancement at index. A nil slot empties it.
func (p *Power) SetSlot(index int, slot *Slot) error {
	if index < 0 || index >= len(p.Slots) {
		return plerr.InvalidArgumentf("slot %d out of range for %s (%d slots)", index, p.Name, len(p.Slots)).
			WithMeta("power", p.Name)
	}
	p.Slots[index] = slot
	return nil
}

// SetPieceCount counts the pieces of a set slotted in this power
func (p *Power) SetPieceCount(setID string) int {
	count := 0
	for _, slot := range p.Slots {
		if slot.IsSetItem() && slot.SetID == setID {
			count++
		}
	}
	return count
}

// AllowsEnhancement reports whether category is declared on the power
func (p *Power) AllowsEnhancement(category string) bool {
	for _, allowed := range p.AllowedEnhancements {
		if allowed == category {
			return true
		}
	}
	return false
}

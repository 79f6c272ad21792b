// Package build models a character build: power groups, powers and the
// enhancement slots inside them.
package build

import (
	"time"

	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
)

// Build is an ordered collection of power-group assignments
type Build struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Name      string        `json:"name"`
	Archetype string        `json:"archetype"`
	Primary   *PowerGroup   `json:"primary,omitempty"`
	Secondary *PowerGroup   `json:"secondary,omitempty"`
	Pools     []*PowerGroup `json:"pools,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PowerGroup is a powerset selection and the powers taken from it
type PowerGroup struct {
	PowersetID string   `json:"powerset_id"`
	Powers     []*Power `json:"powers"`
}

// Groups returns primary, secondary, then pools, skipping unset groups.
// This is the traversal order bonus collection depends on.
func (b *Build) Groups() []*PowerGroup {
	if b == nil {
		return nil
	}
	groups := make([]*PowerGroup, 0, 2+len(b.Pools))
	if b.Primary != nil {
		groups = append(groups, b.Primary)
	}
	if b.Secondary != nil {
		groups = append(groups, b.Secondary)
	}
	for _, pool := range b.Pools {
		if pool != nil {
			groups = append(groups, pool)
		}
	}
	return groups
}

// FindPower returns the named power and the group that owns it
func (b *Build) FindPower(name string) (*Power, *PowerGroup, error) {
	if name == "" {
		return nil, nil, plerr.InvalidArgument("power name is required")
	}
	for _, group := range b.Groups() {
		for _, power := range group.Powers {
			if power != nil && power.Name == name {
				return power, group, nil
			}
		}
	}
	return nil, nil, plerr.NotFoundf("power '%s' not found in build", name).
		WithMeta("power", name)
}

package build_test

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuild() *build.Build {
	return &build.Build{
		ID: "build-1",
		Primary: &build.PowerGroup{
			PowersetID: "blaster_ranged/fire_blast",
			Powers: []*build.Power{
				{Name: "Flares", MaxSlots: 6, Slots: []*build.Slot{
					build.SetSlot("thunderstrike", 1),
					nil,
					build.SetSlot("thunderstrike", 2),
					build.GenericSlot("Damage", 50),
				}},
			},
		},
		Secondary: &build.PowerGroup{
			PowersetID: "blaster_support/fire_manipulation",
			Powers:     []*build.Power{{Name: "Ring of Fire", MaxSlots: 2}},
		},
		Pools: []*build.PowerGroup{
			nil,
			{PowersetID: "pool/speed", Powers: []*build.Power{{Name: "Hasten", MaxSlots: 1}}},
		},
	}
}

func TestBuild_Groups(t *testing.T) {
	b := newTestBuild()

	groups := b.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "blaster_ranged/fire_blast", groups[0].PowersetID)
	assert.Equal(t, "blaster_support/fire_manipulation", groups[1].PowersetID)
	assert.Equal(t, "pool/speed", groups[2].PowersetID)

	var nilBuild *build.Build
	assert.Empty(t, nilBuild.Groups())
}

func TestBuild_FindPower(t *testing.T) {
	b := newTestBuild()

	power, group, err := b.FindPower("Hasten")
	require.NoError(t, err)
	assert.Equal(t, "Hasten", power.Name)
	assert.Equal(t, "pool/speed", group.PowersetID)

	_, _, err = b.FindPower("Nova")
	assert.True(t, plerr.IsNotFound(err))

	_, _, err = b.FindPower("")
	assert.True(t, plerr.IsInvalidArgument(err))
}

func TestPower_AddSlot(t *testing.T) {
	power := &build.Power{Name: "Ring of Fire", MaxSlots: 2}

	require.NoError(t, power.AddSlot())
	require.NoError(t, power.AddSlot())
	assert.Len(t, power.Slots, 2)
	assert.Nil(t, power.Slots[1])

	err := power.AddSlot()
	assert.True(t, plerr.Is(err, plerr.CodeMaxSlots))
	assert.Len(t, power.Slots, 2)
}

func TestPower_SetSlot(t *testing.T) {
	power := &build.Power{Name: "Flares", MaxSlots: 6, Slots: make([]*build.Slot, 2)}

	require.NoError(t, power.SetSlot(1, build.SetSlot("thunderstrike", 3)))
	assert.True(t, power.Slots[1].IsSetItem())

	require.NoError(t, power.SetSlot(1, nil))
	assert.Nil(t, power.Slots[1])

	assert.True(t, plerr.IsInvalidArgument(power.SetSlot(2, nil)))
	assert.True(t, plerr.IsInvalidArgument(power.SetSlot(-1, nil)))
}

func TestPower_SetPieceCount(t *testing.T) {
	b := newTestBuild()
	power, _, err := b.FindPower("Flares")
	require.NoError(t, err)

	assert.Equal(t, 2, power.SetPieceCount("thunderstrike"))
	assert.Equal(t, 0, power.SetPieceCount("apocalypse"))
}

func TestSlot_Variants(t *testing.T) {
	var empty *build.Slot
	assert.False(t, empty.IsSetItem())
	assert.False(t, build.GenericSlot("Accuracy", 50).IsSetItem())
	assert.False(t, build.OriginSlot(build.TierSingleOrigin, "Damage", 0.333).IsSetItem())
	assert.False(t, build.SpecialSlot("Nucleolus", "Damage", "Accuracy").IsSetItem())
	assert.False(t, (&build.Slot{Kind: build.SlotKindSet}).IsSetItem())
	assert.True(t, build.SetSlot("thunderstrike", 1).IsSetItem())

	assert.Equal(t, "Dual Origin", build.TierDualOrigin.String())
	assert.Equal(t, "Unknown", build.OriginTier(7).String())
}

func TestBuild_JSONPreservesEmptySlots(t *testing.T) {
	b := newTestBuild()

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded build.Build
	require.NoError(t, json.Unmarshal(data, &decoded))

	slots := decoded.Primary.Powers[0].Slots
	require.Len(t, slots, 4)
	assert.Nil(t, slots[1])
	assert.Equal(t, "thunderstrike", slots[2].SetID)
	assert.Equal(t, 2, slots[2].PieceNum)
	assert.Nil(t, decoded.Pools[0])
}

package testutils

import (
	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
)

// CreateTestSet creates an item set with the given bonuses
func CreateTestSet(name string, category catalog.SetCategory, setType string, bonuses ...catalog.BonusRule) *catalog.ItemSet {
	return &catalog.ItemSet{
		Name:     name,
		Category: category,
		Type:     setType,
		MinLevel: 10,
		MaxLevel: 50,
		Bonuses:  bonuses,
	}
}

// CreateTestCatalog creates a small catalog covering every bonus form
func CreateTestCatalog() *catalog.Catalog {
	return catalog.New(
		map[string]*catalog.ItemSet{
			"thunderstrike": CreateTestSet("Thunderstrike", catalog.CategoryIOSet, catalog.TypeRangedDamage,
				catalog.TextRule("2 pieces: +2.5% Recovery"),
				catalog.TextRule("3 pieces: +9% Accuracy"),
				catalog.TextRule("4 pieces: +2.5% Ranged Defense"),
				catalog.TextRule("5 pieces: +6.25% Recharge"),
			),
			"decimation": CreateTestSet("Decimation", catalog.CategoryIOSet, catalog.TypeRangedDamage,
				catalog.StructuredRule(2, "regeneration", 12),
				catalog.StructuredRule(3, "accuracy", 9),
				catalog.TextRule("4 pieces: Proc chance"),
			),
			"crushing_impact": CreateTestSet("Crushing Impact", catalog.CategoryIOSet, catalog.TypeMeleeDamage,
				catalog.TextRule("2 pieces: +1.5% Regeneration"),
				catalog.TextRule("3 pieces: +9% Accuracy"),
			),
			"positrons_blast": CreateTestSet("Positron's Blast", catalog.CategoryIOSet, catalog.TypeTargetedAoEDamage,
				catalog.TextRule("2 pieces: +2% Damage"),
			),
			"obliteration": CreateTestSet("Obliteration", catalog.CategoryIOSet, catalog.TypePBAoEDamage,
				catalog.TextRule("2 pieces: +2% Damage"),
			),
			"basilisks_gaze": CreateTestSet("Basilisk's Gaze", catalog.CategoryIOSet, "Holds",
				catalog.TextRule("2 pieces: +1.5% Recovery"),
			),
			"expedient_reinforcement": CreateTestSet("Expedient Reinforcement", catalog.CategoryIOSet, catalog.TypePetDamage,
				catalog.TextRule("2 pieces: +1% Max HP"),
			),
			"apocalypse": CreateTestSet("Apocalypse", catalog.CategoryPurple, catalog.TypeRangedDamage,
				catalog.TextRule("2 pieces: +3% Damage"),
			),
			"hecatomb": CreateTestSet("Hecatomb", catalog.CategoryPurple, catalog.TypeMeleeDamage,
				catalog.TextRule("2 pieces: +3% Damage"),
			),
			"superior_blasters_wrath": CreateTestSet("Superior Blaster's Wrath", catalog.CategoryATO, catalog.TypeUniversalDamage,
				catalog.TextRule("2 pieces: +3% Damage"),
			),
		},
		map[string]*catalog.Powerset{
			"blaster_ranged/fire_blast":         {Name: "Fire Blast", Category: "blaster_ranged"},
			"blaster_support/fire_manipulation": {Name: "Fire Manipulation", Category: "blaster_support"},
			"mastermind_summoning/robotics":     {Name: "Mastermind Robotics", Category: "mastermind_summoning"},
			"scrapper_melee/broad_sword":        {Name: "Broad Sword", Category: "scrapper_melee"},
			"corruptor_ranged/archery":          {Name: "Archery", Category: "corruptor_ranged"},
			"pool/speed":                        {Name: "Speed", Category: "pool"},
		},
	)
}

// CreateTestPower creates a power with slots
func CreateTestPower(name string, allowed []string, slots ...*build.Slot) *build.Power {
	return &build.Power{
		Name:                name,
		MaxSlots:            6,
		AllowedEnhancements: allowed,
		Slots:               slots,
	}
}

// CreateTestBuild creates a build with primary, secondary and one pool
func CreateTestBuild(id, ownerID string) *build.Build {
	return &build.Build{
		ID:        id,
		OwnerID:   ownerID,
		Name:      "Fire/Fire Blaster",
		Archetype: "blaster",
		Primary: &build.PowerGroup{
			PowersetID: "blaster_ranged/fire_blast",
			Powers: []*build.Power{
				CreateTestPower("Flares", []string{"Damage", "Accuracy", "Recharge", "Endurance Reduction", "Range"},
					build.SetSlot("thunderstrike", 1),
					build.SetSlot("thunderstrike", 2),
					build.SetSlot("thunderstrike", 3),
				),
			},
		},
		Secondary: &build.PowerGroup{
			PowersetID: "blaster_support/fire_manipulation",
			Powers: []*build.Power{
				CreateTestPower("Fire Sword", []string{"Damage", "Accuracy"},
					build.SetSlot("crushing_impact", 1),
					build.SetSlot("crushing_impact", 2),
					build.SetSlot("crushing_impact", 3),
					nil,
				),
			},
		},
		Pools: []*build.PowerGroup{
			{
				PowersetID: "pool/speed",
				Powers: []*build.Power{
					CreateTestPower("Hasten", []string{"Recharge"}, build.GenericSlot("Recharge", 50)),
				},
			},
		},
	}
}

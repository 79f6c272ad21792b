package planner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/setbonus"
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
	mockbuilds "github.com/KirkDiggler/loadout-planner/internal/repositories/builds/mock"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	"github.com/KirkDiggler/loadout-planner/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setupService(t *testing.T) (planner.Service, *mockbuilds.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := mockbuilds.NewMockRepository(ctrl)
	svc := planner.NewService(&planner.ServiceConfig{
		Repository: repo,
		Catalog:    testutils.CreateTestCatalog(),
	})
	return svc, repo
}

func TestEvaluateBuild(t *testing.T) {
	svc, _ := setupService(t)

	eval := svc.EvaluateBuild(testutils.CreateTestBuild("build-1", "user-1"))

	assert.Equal(t, "build-1", eval.BuildID)
	assert.Equal(t, map[string]float64{
		setbonus.StatAccuracy:     18,
		setbonus.StatRecovery:     2.5,
		setbonus.StatRegeneration: 1.5,
	}, eval.Totals)
	assert.Empty(t, eval.Diagnostics)

	accuracy := eval.Breakdown[setbonus.StatAccuracy]
	require.Len(t, accuracy, 1)
	assert.Equal(t, 2, accuracy[0].Count)
	assert.False(t, accuracy[0].Capped)
	assert.Equal(t, []string{
		"Thunderstrike (3pc in Flares)",
		"Crushing Impact (3pc in Fire Sword)",
	}, accuracy[0].Sources)

	assert.Len(t, eval.Active, 4)
}

func TestEvaluateBuild_RuleOfFive(t *testing.T) {
	svc, _ := setupService(t)

	b := &build.Build{ID: "stacked", Primary: &build.PowerGroup{PowersetID: "blaster_ranged/fire_blast"}}
	for _, name := range []string{"Flares", "Blaze", "Blazing Bolt", "Fire Blast", "Fire Ball", "Rain of Fire"} {
		b.Primary.Powers = append(b.Primary.Powers, testutils.CreateTestPower(name, []string{"Damage"},
			build.SetSlot("thunderstrike", 1),
			build.SetSlot("thunderstrike", 2),
			build.SetSlot("thunderstrike", 3),
		))
	}

	first := svc.EvaluateBuild(b)
	assert.Equal(t, 45.0, first.Totals[setbonus.StatAccuracy])
	assert.Equal(t, 12.5, first.Totals[setbonus.StatRecovery])

	accuracy := first.Breakdown[setbonus.StatAccuracy]
	require.Len(t, accuracy, 1)
	assert.Equal(t, 5, accuracy[0].Count)
	assert.True(t, accuracy[0].Capped)
	assert.Len(t, accuracy[0].Sources, 5)

	// No state carries over between passes
	second := svc.EvaluateBuild(b)
	assert.Equal(t, first.Totals, second.Totals)
}

func TestEvaluateBuild_Diagnostics(t *testing.T) {
	svc, _ := setupService(t)

	b := &build.Build{
		ID: "diag",
		Primary: &build.PowerGroup{
			PowersetID: "blaster_ranged/fire_blast",
			Powers: []*build.Power{
				testutils.CreateTestPower("Blaze", []string{"Damage"},
					build.SetSlot("decimation", 1),
					build.SetSlot("decimation", 2),
					build.SetSlot("retired_set", 1),
				),
			},
		},
	}

	eval := svc.EvaluateBuild(b)

	assert.Equal(t, map[string]float64{setbonus.StatRegeneration: 12}, eval.Totals)
	require.Len(t, eval.Diagnostics, 2)
	assert.Equal(t, setbonus.DiagnosticMalformedRule, eval.Diagnostics[0].Kind)
	assert.Equal(t, "decimation", eval.Diagnostics[0].SetID)
	assert.Equal(t, setbonus.DiagnosticMissingSet, eval.Diagnostics[1].Kind)
	assert.Equal(t, "retired_set", eval.Diagnostics[1].SetID)
}

func TestEvaluateBuild_EmptyBuild(t *testing.T) {
	svc, _ := setupService(t)

	eval := svc.EvaluateBuild(&build.Build{ID: "empty"})
	assert.Empty(t, eval.Totals)
	assert.Empty(t, eval.Breakdown)
	assert.Empty(t, eval.Diagnostics)
}

func TestEvaluate(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "build-1").Return(testutils.CreateTestBuild("build-1", "user-1"), nil)

	eval, err := svc.Evaluate(ctx, "build-1")
	require.NoError(t, err)
	assert.Equal(t, 18.0, eval.Totals[setbonus.StatAccuracy])
}

func TestEvaluate_NotFound(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "missing").Return(nil, plerr.NotFoundf("build with ID '%s' not found", "missing"))

	_, err := svc.Evaluate(ctx, "missing")
	assert.True(t, plerr.IsNotFound(err))

	_, err = svc.Evaluate(ctx, "")
	assert.True(t, plerr.IsInvalidArgument(err))
}

func TestEvaluateAll(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	other := testutils.CreateTestBuild("build-2", "user-1")
	other.Secondary = nil

	repo.EXPECT().Get(gomock.Any(), "build-1").Return(testutils.CreateTestBuild("build-1", "user-1"), nil)
	repo.EXPECT().Get(gomock.Any(), "build-2").Return(other, nil)

	evals, err := svc.EvaluateAll(ctx, []string{"build-1", "build-2"})
	require.NoError(t, err)
	require.Len(t, evals, 2)

	assert.Equal(t, "build-1", evals[0].BuildID)
	assert.Equal(t, 18.0, evals[0].Totals[setbonus.StatAccuracy])
	assert.Equal(t, "build-2", evals[1].BuildID)
	assert.Equal(t, 9.0, evals[1].Totals[setbonus.StatAccuracy])
	assert.NotContains(t, evals[1].Totals, setbonus.StatRegeneration)
}

func TestEvaluateAll_Error(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	repo.EXPECT().Get(gomock.Any(), "build-1").Return(nil, errors.New("redis down")).AnyTimes()

	_, err := svc.EvaluateAll(ctx, []string{"build-1"})
	assert.Error(t, err)
}

func TestAddSlotAndSlotEnhancement(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	stored := testutils.CreateTestBuild("build-1", "user-1")
	repo.EXPECT().Get(ctx, "build-1").Return(stored, nil).Times(2)
	repo.EXPECT().Update(ctx, stored).Return(nil).Times(2)

	eval, err := svc.AddSlot(ctx, "build-1", "Flares")
	require.NoError(t, err)
	assert.Len(t, stored.Primary.Powers[0].Slots, 4)
	assert.NotContains(t, eval.Totals, setbonus.StatDefRanged)

	eval, err = svc.SlotEnhancement(ctx, "build-1", "Flares", 3, build.SetSlot("thunderstrike", 4))
	require.NoError(t, err)
	assert.Equal(t, 2.5, eval.Totals[setbonus.StatDefRanged])
	assert.Equal(t, 4, stored.Primary.Powers[0].SetPieceCount("thunderstrike"))
}

func TestAddSlot_Full(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	stored := testutils.CreateTestBuild("build-1", "user-1")
	stored.Primary.Powers[0].MaxSlots = 3
	repo.EXPECT().Get(ctx, "build-1").Return(stored, nil)

	_, err := svc.AddSlot(ctx, "build-1", "Flares")
	assert.True(t, plerr.Is(err, plerr.CodeMaxSlots))
}

func TestSlotEnhancement_ClearSlot(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	stored := testutils.CreateTestBuild("build-1", "user-1")
	repo.EXPECT().Get(ctx, "build-1").Return(stored, nil)
	repo.EXPECT().Update(ctx, stored).Return(nil)

	eval, err := svc.SlotEnhancement(ctx, "build-1", "Flares", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 9.0, eval.Totals[setbonus.StatAccuracy])
	assert.Equal(t, 2.5, eval.Totals[setbonus.StatRecovery])
}

func TestSlotEnhancement_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		power string
		slot  *build.Slot
		check func(error) bool
	}{
		{
			name:  "ranged set in melee power",
			power: "Fire Sword",
			slot:  build.SetSlot("thunderstrike", 4),
			check: plerr.IsInvalidArgument,
		},
		{
			name:  "unknown set",
			power: "Flares",
			slot:  build.SetSlot("retired_set", 1),
			check: plerr.IsNotFound,
		},
		{
			name:  "unknown power",
			power: "Nova",
			slot:  build.GenericSlot("Damage", 50),
			check: plerr.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupService(t)
			ctx := context.Background()
			repo.EXPECT().Get(ctx, "build-1").Return(testutils.CreateTestBuild("build-1", "user-1"), nil)

			_, err := svc.SlotEnhancement(ctx, "build-1", tt.power, 3, tt.slot)
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}

func TestSlotEnhancement_SaveError(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "build-1").Return(testutils.CreateTestBuild("build-1", "user-1"), nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.SlotEnhancement(ctx, "build-1", "Hasten", 0, build.GenericSlot("Recharge", 50))
	assert.Error(t, err)
}

func TestCompatibleSets(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "build-1").Return(testutils.CreateTestBuild("build-1", "user-1"), nil).Times(2)

	matches, err := svc.CompatibleSets(ctx, "build-1", "Flares", catalog.CategoryIOSet)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "decimation", matches[0].SetID)
	assert.Equal(t, "thunderstrike", matches[1].SetID)

	matches, err = svc.CompatibleSets(ctx, "build-1", "Fire Sword", catalog.CategoryPurple)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "hecatomb", matches[0].SetID)
}

func TestCreateBuild(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	b := testutils.CreateTestBuild("", "user-1")
	repo.EXPECT().Create(ctx, b).DoAndReturn(func(_ context.Context, b *build.Build) error {
		b.ID = "new-id"
		return nil
	})

	created, err := svc.CreateBuild(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)

	_, err = svc.CreateBuild(ctx, &build.Build{OwnerID: "user-1"})
	assert.True(t, plerr.IsInvalidArgument(err))
}

func TestCreateBuild_Duplicate(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(plerr.AlreadyExistsf("build with ID '%s' already exists", "build-1"))

	_, err := svc.CreateBuild(ctx, testutils.CreateTestBuild("build-1", "user-1"))
	assert.True(t, plerr.IsAlreadyExists(err))
}

func TestListBuilds(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	repo.EXPECT().ListByOwner(ctx, "user-1").Return([]*build.Build{testutils.CreateTestBuild("build-1", "user-1")}, nil)

	list, err := svc.ListBuilds(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNewService_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() {
		planner.NewService(&planner.ServiceConfig{Catalog: testutils.CreateTestCatalog()})
	})

	ctrl := gomock.NewController(t)
	assert.Panics(t, func() {
		planner.NewService(&planner.ServiceConfig{Repository: mockbuilds.NewMockRepository(ctrl)})
	})
}

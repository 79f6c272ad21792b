package services_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/loadout-planner/internal/services"
	"github.com/KirkDiggler/loadout-planner/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DefaultsToInMemoryBuilds(t *testing.T) {
	provider := services.NewProvider(&services.ProviderConfig{
		Catalog: testutils.CreateTestCatalog(),
	})
	require.NotNil(t, provider.PlannerService)

	ctx := context.Background()
	created, err := provider.PlannerService.CreateBuild(ctx, testutils.CreateTestBuild("", "user-1"))
	require.NoError(t, err)

	eval, err := provider.PlannerService.Evaluate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 18.0, eval.Totals["accuracy"])
}

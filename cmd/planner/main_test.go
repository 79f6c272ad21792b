package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/compatibility"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/setbonus"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCatalog = "../../data/catalog.yaml"
	testBuild   = "../../data/builds/fire_blaster.json"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvaluate_JSON(t *testing.T) {
	out, err := run(t, "evaluate", "--catalog", testCatalog, "--build", testBuild, "--json")
	require.NoError(t, err)

	var eval planner.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &eval))

	assert.Equal(t, "example-fire-blaster", eval.BuildID)
	assert.Equal(t, 18.0, eval.Totals[setbonus.StatAccuracy])
	assert.Equal(t, 6.25, eval.Totals[setbonus.StatRecharge])
	assert.Equal(t, 2.5, eval.Totals[setbonus.StatDefAoE])
	assert.Equal(t, 1.5, eval.Totals[setbonus.StatRegeneration])
	assert.Empty(t, eval.Diagnostics)
}

func TestEvaluate_Table(t *testing.T) {
	out, err := run(t, "evaluate", "--catalog", testCatalog, "--build", testBuild)
	require.NoError(t, err)

	assert.Contains(t, out, "STAT")
	assert.Contains(t, out, "Accuracy")
	assert.Contains(t, out, "9x2")
}

func TestCompatible(t *testing.T) {
	out, err := run(t, "compatible", "--catalog", testCatalog, "--build", testBuild,
		"--power", "Flares", "--category", "io-set", "--json")
	require.NoError(t, err)

	var sets []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &sets))

	ids := make([]string, 0, len(sets))
	for _, s := range sets {
		ids = append(ids, s["id"].(string))
	}
	assert.Equal(t, []string{"decimation", "devastation", "sting_of_the_manticore", "thunderstrike"}, ids)
}

func TestCompatible_TypeFilter(t *testing.T) {
	out, err := run(t, "compatible", "--catalog", testCatalog, "--build", testBuild,
		"--power", "Flares", "--type", "Sniper Attacks")
	require.NoError(t, err)

	assert.Contains(t, out, "sting_of_the_manticore")
	assert.NotContains(t, out, "thunderstrike")
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types", "--catalog", testCatalog, "--build", testBuild,
		"--power", "Fire Ball", "--category", "io-set", "--json")
	require.NoError(t, err)

	var counts []compatibility.TypeCount
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, []compatibility.TypeCount{{Type: "Targeted AoE Damage", Count: 1}}, counts)
}

func TestUnknownPower(t *testing.T) {
	_, err := run(t, "types", "--catalog", testCatalog, "--build", testBuild, "--power", "Nova")
	assert.ErrorContains(t, err, "Nova")
}

func TestBuildSourceRequired(t *testing.T) {
	_, err := run(t, "evaluate", "--catalog", testCatalog)
	assert.ErrorContains(t, err, "--build")

	_, err = run(t, "evaluate", "--catalog", testCatalog, "--build", testBuild, "--build-id", "x")
	assert.ErrorContains(t, err, "--build")
}

func TestBuildIDNeedsRedis(t *testing.T) {
	_, err := run(t, "evaluate", "--catalog", testCatalog, "--build-id", "x")
	assert.ErrorContains(t, err, "REDIS_URL")
}

func TestBadBuildFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := run(t, "evaluate", "--catalog", testCatalog, "--build", path)
	assert.ErrorContains(t, err, "failed to parse build")
}

package discord_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/compatibility"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/setbonus"
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
	"github.com/KirkDiggler/loadout-planner/internal/handlers/discord"
	"github.com/KirkDiggler/loadout-planner/internal/services"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	mockplanner "github.com/KirkDiggler/loadout-planner/internal/services/planner/mock"
	"github.com/KirkDiggler/loadout-planner/internal/testutils"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingResponder struct {
	responses []*discordgo.InteractionResponse
}

func (r *recordingResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return nil
}

func command(name string, options map[string]string) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	for key, value := range options {
		data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  key,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		})
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:   discordgo.InteractionApplicationCommand,
			Data:   data,
			Member: &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		},
	}
}

func setup(t *testing.T) (*discord.Handler, *mockplanner.MockService, *recordingResponder) {
	ctrl := gomock.NewController(t)
	svc := mockplanner.NewMockService(ctrl)
	h := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: &services.Provider{PlannerService: svc},
	})
	return h, svc, &recordingResponder{}
}

func TestHandleCommand_Bonuses(t *testing.T) {
	h, svc, r := setup(t)
	ctx := context.Background()

	b := testutils.CreateTestBuild("build-1", "user-1")
	svc.EXPECT().GetBuild(ctx, "build-1").Return(b, nil)
	svc.EXPECT().EvaluateBuild(b).Return(&planner.Evaluation{
		BuildID: "build-1",
		Totals:  map[string]float64{setbonus.StatAccuracy: 18},
		Breakdown: map[string][]setbonus.BucketView{
			setbonus.StatAccuracy: {{Value: 9, Count: 2, Total: 18}},
		},
	})

	h.HandleCommand(ctx, r, command("bonuses", map[string]string{"build": "build-1"}))

	require.Len(t, r.responses, 1)
	resp := r.responses[0]
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	require.Len(t, resp.Data.Embeds, 1)
	assert.Equal(t, "Accuracy +18%", resp.Data.Embeds[0].Fields[0].Name)
	assert.Zero(t, resp.Data.Flags)
}

func TestHandleCommand_BonusesNotFound(t *testing.T) {
	h, svc, r := setup(t)
	ctx := context.Background()

	svc.EXPECT().GetBuild(ctx, "nope").Return(nil, plerr.NotFoundf("build with ID '%s' not found", "nope"))

	h.HandleCommand(ctx, r, command("bonuses", map[string]string{"build": "nope"}))

	require.Len(t, r.responses, 1)
	resp := r.responses[0]
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	assert.Equal(t, "❌ Not found", resp.Data.Embeds[0].Title)
	assert.Contains(t, resp.Data.Embeds[0].Description, "nope")
}

func TestHandleCommand_InternalErrorHidesDetail(t *testing.T) {
	h, svc, r := setup(t)
	ctx := context.Background()

	svc.EXPECT().GetBuild(ctx, "build-1").Return(nil, errors.New("dial tcp 10.0.0.1:6379: refused"))

	h.HandleCommand(ctx, r, command("bonuses", map[string]string{"build": "build-1"}))

	require.Len(t, r.responses, 1)
	assert.NotContains(t, r.responses[0].Data.Embeds[0].Description, "10.0.0.1")
}

func TestHandleCommand_Sets(t *testing.T) {
	h, svc, r := setup(t)
	ctx := context.Background()

	cat := testutils.CreateTestCatalog()
	thunder, _ := cat.Set("thunderstrike")
	sbw, _ := cat.Set("superior_blasters_wrath")

	svc.EXPECT().CompatibleSets(ctx, "build-1", "Flares", catalog.CategoryIOSet).Return([]compatibility.SetMatch{
		{SetID: "superior_blasters_wrath", Set: sbw},
		{SetID: "thunderstrike", Set: thunder},
	}, nil)

	h.HandleCommand(ctx, r, command("sets", map[string]string{
		"build":    "build-1",
		"power":    "Flares",
		"category": "io-set",
		"type":     "Ranged Damage",
	}))

	require.Len(t, r.responses, 1)
	embed := r.responses[0].Data.Embeds[0]
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Ranged Damage (1)", embed.Fields[0].Name)
}

func TestHandleCommand_Builds(t *testing.T) {
	h, svc, r := setup(t)
	ctx := context.Background()

	svc.EXPECT().ListBuilds(ctx, "user-1").Return(nil, nil)

	h.HandleCommand(ctx, r, command("builds", nil))

	require.Len(t, r.responses, 1)
	assert.Equal(t, "You don't have any builds yet.", r.responses[0].Data.Embeds[0].Description)
}

func TestHandleCommand_UnknownCommandIgnored(t *testing.T) {
	h, _, r := setup(t)

	h.HandleCommand(context.Background(), r, command("roll", nil))
	assert.Empty(t, r.responses)
}

func TestCommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range discord.Commands() {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"bonuses", "sets", "builds"}, names)
}

func TestNewHandler_RequiresPlanner(t *testing.T) {
	assert.Panics(t, func() {
		discord.NewHandler(&discord.HandlerConfig{ServiceProvider: &services.Provider{}})
	})
}

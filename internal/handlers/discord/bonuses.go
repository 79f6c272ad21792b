package discord

import (
	"context"

	"github.com/KirkDiggler/loadout-planner/internal/discord/embeds"
	"github.com/KirkDiggler/loadout-planner/internal/services"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	"github.com/bwmarrin/discordgo"
)

type BonusesRequest struct {
	Responder   Responder
	Interaction *discordgo.InteractionCreate
	BuildID     string
}

// BonusesHandler answers /bonuses with the build's bonus summary
type BonusesHandler struct {
	planner planner.Service
}

func NewBonusesHandler(serviceProvider *services.Provider) *BonusesHandler {
	return &BonusesHandler{
		planner: serviceProvider.PlannerService,
	}
}

func (h *BonusesHandler) Handle(ctx context.Context, req *BonusesRequest) error {
	b, err := h.planner.GetBuild(ctx, req.BuildID)
	if err != nil {
		if respErr := respondError(req.Responder, req.Interaction, err); respErr != nil {
			return respErr
		}
		return err
	}

	eval := h.planner.EvaluateBuild(b)
	return respondEmbed(req.Responder, req.Interaction, embeds.BonusSummary(b, eval).Build())
}

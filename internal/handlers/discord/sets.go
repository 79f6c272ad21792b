package discord

import (
	"context"

	"github.com/KirkDiggler/loadout-planner/internal/discord/embeds"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/compatibility"
	"github.com/KirkDiggler/loadout-planner/internal/services"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	"github.com/bwmarrin/discordgo"
)

type SetsRequest struct {
	Responder   Responder
	Interaction *discordgo.InteractionCreate
	BuildID     string
	PowerName   string
	Category    catalog.SetCategory
	SetType     string // Optional
}

// SetsHandler answers /sets with the sets a power can slot
type SetsHandler struct {
	planner planner.Service
}

func NewSetsHandler(serviceProvider *services.Provider) *SetsHandler {
	return &SetsHandler{
		planner: serviceProvider.PlannerService,
	}
}

func (h *SetsHandler) Handle(ctx context.Context, req *SetsRequest) error {
	matches, err := h.planner.CompatibleSets(ctx, req.BuildID, req.PowerName, req.Category)
	if err != nil {
		if respErr := respondError(req.Responder, req.Interaction, err); respErr != nil {
			return respErr
		}
		return err
	}

	matches = compatibility.FilterByType(matches, req.SetType)
	return respondEmbed(req.Responder, req.Interaction, embeds.CompatibleSets(req.PowerName, req.Category, matches).Build())
}

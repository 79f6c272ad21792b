package discord

import (
	"context"

	"github.com/KirkDiggler/loadout-planner/internal/discord/embeds"
	"github.com/KirkDiggler/loadout-planner/internal/services"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	"github.com/bwmarrin/discordgo"
)

type BuildsRequest struct {
	Responder   Responder
	Interaction *discordgo.InteractionCreate
	OwnerID     string
}

type BuildsHandler struct {
	planner planner.Service
}

func NewBuildsHandler(serviceProvider *services.Provider) *BuildsHandler {
	return &BuildsHandler{
		planner: serviceProvider.PlannerService,
	}
}

func (h *BuildsHandler) Handle(ctx context.Context, req *BuildsRequest) error {
	list, err := h.planner.ListBuilds(ctx, req.OwnerID)
	if err != nil {
		if respErr := respondError(req.Responder, req.Interaction, err); respErr != nil {
			return respErr
		}
		return err
	}

	return respondEmbed(req.Responder, req.Interaction, embeds.BuildList(list).Build())
}

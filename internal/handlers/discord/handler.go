package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/services"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const commandTimeout = 10 * time.Second

// Responder is the part of a Discord session the handlers reply through
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
	logger          *zap.Logger

	bonusesHandler *BonusesHandler
	setsHandler    *SetsHandler
	buildsHandler  *BuildsHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider // Required
	Logger          *zap.Logger
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil || cfg.ServiceProvider.PlannerService == nil {
		panic("planner service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		logger:          logger,
		bonusesHandler:  NewBonusesHandler(cfg.ServiceProvider),
		setsHandler:     NewSetsHandler(cfg.ServiceProvider),
		buildsHandler:   NewBuildsHandler(cfg.ServiceProvider),
	}
}

func buildOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Name:        "build",
		Description: "Build ID",
		Type:        discordgo.ApplicationCommandOptionString,
		Required:    true,
	}
}

// Commands returns the slash commands the bot serves
func Commands() []*discordgo.ApplicationCommand {
	categories := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Invention sets", Value: string(catalog.CategoryIOSet)},
		{Name: "Purple sets", Value: string(catalog.CategoryPurple)},
		{Name: "Archetype sets", Value: string(catalog.CategoryATO)},
		{Name: "Event sets", Value: string(catalog.CategoryEvent)},
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "bonuses",
			Description: "Show the set bonus totals of a build",
			Options:     []*discordgo.ApplicationCommandOption{buildOption()},
		},
		{
			Name:        "sets",
			Description: "List the item sets a power can slot",
			Options: []*discordgo.ApplicationCommandOption{
				buildOption(),
				{
					Name:        "power",
					Description: "Power name",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "category",
					Description: "Set category",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     categories,
				},
				{
					Name:        "type",
					Description: "Only show one set type, e.g. Ranged Damage",
					Type:        discordgo.ApplicationCommandOptionString,
				},
			},
		},
		{
			Name:        "builds",
			Description: "List your builds",
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		h.logger.Info("registered command", zap.String("command", cmd.Name))
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	h.HandleCommand(ctx, s, i)
}

// HandleCommand routes a slash command to its handler
func (h *Handler) HandleCommand(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	logger := h.logger.With(
		zap.String("command", data.Name),
		zap.String("user_id", userID(i)))

	var err error
	switch data.Name {
	case "bonuses":
		err = h.bonusesHandler.Handle(ctx, &BonusesRequest{
			Responder:   r,
			Interaction: i,
			BuildID:     stringOption(data.Options, "build"),
		})
	case "sets":
		err = h.setsHandler.Handle(ctx, &SetsRequest{
			Responder:   r,
			Interaction: i,
			BuildID:     stringOption(data.Options, "build"),
			PowerName:   stringOption(data.Options, "power"),
			Category:    catalog.SetCategory(stringOption(data.Options, "category")),
			SetType:     stringOption(data.Options, "type"),
		})
	case "builds":
		err = h.buildsHandler.Handle(ctx, &BuildsRequest{
			Responder:   r,
			Interaction: i,
			OwnerID:     userID(i),
		})
	default:
		return
	}

	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}
}

package discord

import (
	"github.com/KirkDiggler/loadout-planner/internal/discord/embeds"
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
	"github.com/bwmarrin/discordgo"
)

func respondEmbed(r Responder, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// respondError replies privately with a message fit for the user
func respondError(r Responder, i *discordgo.InteractionCreate, err error) error {
	title := "Something went wrong"
	description := "Please try again later."

	switch plerr.GetCode(err) {
	case plerr.CodeNotFound:
		title = "Not found"
		description = err.Error()
	case plerr.CodeInvalidArgument, plerr.CodeMaxSlots:
		title = "Invalid request"
		description = err.Error()
	}

	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embeds.ErrorEmbed(title, description).Build()},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

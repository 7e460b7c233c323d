package solver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"wordseek/application"
	"wordseek/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const helpText = "Paste your guesses into `/solve`, one per line.\n" +
	"Accepted line shapes:\n" +
	"🟩🟨🟥🟥🟨 SLATE\n" +
	"GYBBY CRANE\n" +
	"G Y B B Y HEART\n" +
	"Codes: G = correct spot, Y = wrong spot, B = not in word.\n" +
	"Commands: `/solve`, `/top`, `/stats`, `/reload`, `/help`"

// interactionIDs extracts the requesting user and guild as int64 IDs
func interactionIDs(i *discordgo.InteractionCreate) (discordID, guildID int64, err error) {
	user := i.Member.User
	discordID, err = strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse discord ID %s: %w", user.ID, err)
	}
	guildID, err = strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse guild ID %s: %w", i.GuildID, err)
	}
	return discordID, guildID, nil
}

func (f *Feature) handleSolve(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, guildID, err := interactionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var text string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "guesses" {
			text = opt.StringValue()
		}
	}
	if text == "" {
		common.RespondWithError(s, i, "Provide your guesses in the `guesses` option. See `/help` for accepted formats.")
		return
	}

	outcome, err := f.handler.HandleSolveText(ctx, discordID, guildID, text)
	if err != nil {
		if errors.Is(err, application.ErrNoValidLines) {
			common.HandleError(s, i, common.NewUserError(
				"No valid guess lines found. Use emoji tiles + word, `GYBBY WORD`, or `G Y B B Y WORD`.",
				"no parseable guess lines in solve input"))
			return
		}
		common.HandleError(s, i, common.NewSystemError(err, "solve failed"))
		return
	}

	embed := buildAnalysisEmbed(outcome, f.suggestionLimit)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to solve command: %v", err)
	}
}

func (f *Feature) handleTop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	limit := f.suggestionLimit
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "count" {
			if v := int(opt.IntValue()); v > 0 {
				limit = v
			}
		}
	}

	ranked := f.handler.HandleTop()
	embed := buildTopEmbed(ranked, limit, f.handler.WordCount())
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to top command: %v", err)
	}
}

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, guildID, err := interactionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	recent, err := f.handler.HandleStats(ctx, discordID, guildID, 10)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to load solve history"))
		return
	}

	embed := buildStatsEmbed(i.Member.User.Username, recent)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}

func (f *Feature) handleReload(s *discordgo.Session, i *discordgo.InteractionCreate) {
	count, err := f.handler.HandleReload()
	if err != nil {
		log.WithError(err).Error("Word list reload failed")
		common.RespondWithError(s, i, fmt.Sprintf("Reload failed: %v", err))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Reloaded word list: **%d** words", count),
		},
	})
	if err != nil {
		log.Errorf("Error responding to reload command: %v", err)
	}
}

func (f *Feature) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: helpText,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to help command: %v", err)
	}
}

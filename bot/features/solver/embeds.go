package solver

import (
	"fmt"
	"strings"

	"wordseek/application"
	"wordseek/bot/common"
	"wordseek/domain/entities"
	"wordseek/domain/services"

	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen  = 0x57F287
	colorYellow = 0xFEE75C
	colorRed    = 0xED4245
)

// buildAnalysisEmbed renders a solve outcome: accumulated constraints,
// remaining candidate count and the top suggestions
func buildAnalysisEmbed(outcome *application.SolveOutcome, suggestionLimit int) *discordgo.MessageEmbed {
	cs := outcome.Constraints

	color := colorGreen
	if len(outcome.Candidates) == 0 {
		color = colorRed
	}

	var parsed strings.Builder
	for _, g := range outcome.Guesses {
		parsed.WriteString(common.FormatGuess(g))
		parsed.WriteByte('\n')
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "✅ Greens", Value: common.FormatGreens(cs.Greens), Inline: true},
		{Name: "🟨 Yellows", Value: common.FormatYellowBans(cs.YellowBans), Inline: true},
		{Name: "🔢 Min counts", Value: common.FormatCounts(cs.MinCounts), Inline: true},
		{Name: "🔒 Max counts", Value: common.FormatCounts(cs.MaxCounts), Inline: true},
		{Name: "Parsed guesses", Value: strings.TrimRight(parsed.String(), "\n"), Inline: false},
	}

	if len(outcome.Ranked) > 0 {
		fields = append(fields,
			&discordgo.MessageEmbedField{
				Name:   "🎯 Best answer",
				Value:  fmt.Sprintf("**%s**", outcome.Ranked[0].Word),
				Inline: false,
			},
			&discordgo.MessageEmbedField{
				Name:   "Top suggestions",
				Value:  common.FormatSuggestions(outcome.Ranked, suggestionLimit),
				Inline: false,
			},
		)
	}

	description := fmt.Sprintf("Remaining candidates: **%d**", len(outcome.Candidates))
	if len(outcome.Candidates) == 0 {
		description = "No candidates remain. Check your inputs or the word list."
	}

	return &discordgo.MessageEmbed{
		Title:       "WordSeek Analysis",
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

// buildTopEmbed renders starter suggestions over the whole word list
func buildTopEmbed(ranked []services.RankedWord, limit, wordCount int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Top starters",
		Description: common.FormatSuggestions(ranked, limit),
		Color:       colorYellow,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Ranked over %d words", wordCount),
		},
	}
}

// buildStatsEmbed renders a user's recent solve history
func buildStatsEmbed(username string, recent []*entities.SolveRequest) *discordgo.MessageEmbed {
	if len(recent) == 0 {
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Solve history for %s", username),
			Description: "No solves recorded yet. Try `/solve`!",
			Color:       colorYellow,
		}
	}

	var b strings.Builder
	for _, r := range recent {
		best := r.BestWord
		if best == "" {
			best = "-"
		}
		fmt.Fprintf(&b, "%s — %d guesses, %d candidates, best: %s\n",
			r.CreatedAt.Format("Jan 2 15:04"), r.GuessCount, r.CandidateCount, best)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Solve history for %s", username),
		Description: strings.TrimRight(b.String(), "\n"),
		Color:       colorGreen,
	}
}

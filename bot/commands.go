package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "solve",
			Description: "Narrow down the word from your guesses and their feedback",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guesses",
					Description: "One guess per line: emoji tiles + word, GYBBY WORD, or G Y B B Y WORD",
					Required:    true,
				},
			},
		},
		{
			Name:        "top",
			Description: "Show the best starter words from the full word list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Number of suggestions to show",
					Required:    false,
				},
			},
		},
		{
			Name:        "stats",
			Description: "Show your recent solve history",
		},
		{
			Name:        "reload",
			Description: "Reload the word list from disk",
		},
		{
			Name:        "help",
			Description: "How to format guesses for the solver",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create command %s: %w", cmd.Name, err)
		}
	}

	return nil
}

package bot

import (
	"fmt"

	"wordseek/application"
	"wordseek/bot/features/solver"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token           string
	GuildID         string
	SuggestionLimit int
}

// Bot manages the Discord session and the solver feature
type Bot struct {
	config  Config
	session *discordgo.Session
	solver  *solver.Feature
}

// New creates a new bot instance, opens the gateway connection and
// registers the slash commands
func New(config Config, handler *application.SolveHandler) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:  config,
		session: dg,
	}
	bot.solver = solver.NewFeature(dg, handler, config.SuggestionLimit)

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleReady)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleReady logs a line once the gateway session is established
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"username": r.User.Username,
		"guilds":   len(r.Guilds),
	}).Info("Discord session ready")
}

// handleCommands routes slash commands to the solver feature
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "solve", "top", "stats", "reload", "help":
		b.solver.HandleCommand(s, i)
	}
}

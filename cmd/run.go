package cmd

import (
	"context"
	"fmt"
	"time"

	"wordseek/application"
	"wordseek/bot"
	"wordseek/config"
	"wordseek/database"
	"wordseek/domain/services"
	"wordseek/repository"
	"wordseek/wordlist"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting wordseek bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	// Load the word list
	words, err := wordlist.NewStore(cfg.WordListPath)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}

	// Wire the solver stack
	solveHandler := application.NewSolveHandler(
		words,
		services.NewSolverService(),
		services.NewRankingService(services.ScoreWeights{
			VowelBonus:       cfg.VowelBonus,
			DuplicatePenalty: cfg.DuplicatePenalty,
		}),
		repository.NewSolveRequestRepository(db),
	)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:           cfg.DiscordToken,
		GuildID:         cfg.GuildID,
		SuggestionLimit: cfg.SuggestionLimit,
	}, solveHandler)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}

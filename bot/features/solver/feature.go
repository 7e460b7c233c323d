package solver

import (
	"wordseek/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the solver command surface: /solve, /top, /stats,
// /reload and /help
type Feature struct {
	session         *discordgo.Session
	handler         *application.SolveHandler
	suggestionLimit int
}

// NewFeature creates a new solver feature instance
func NewFeature(session *discordgo.Session, handler *application.SolveHandler, suggestionLimit int) *Feature {
	return &Feature{
		session:         session,
		handler:         handler,
		suggestionLimit: suggestionLimit,
	}
}

// HandleCommand routes solver commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "solve":
		f.handleSolve(s, i)
	case "top":
		f.handleTop(s, i)
	case "stats":
		f.handleStats(s, i)
	case "reload":
		f.handleReload(s, i)
	case "help":
		f.handleHelp(s, i)
	}
}

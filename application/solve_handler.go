package application

import (
	"context"
	"fmt"

	"wordseek/domain/entities"
	"wordseek/domain/services"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// SolveOutcome is the full result of handling one solve request
type SolveOutcome struct {
	RequestID   uuid.UUID
	Guesses     []entities.Guess
	Constraints *entities.ConstraintSet
	Candidates  []string
	Ranked      []services.RankedWord
}

// SolveHandler wires the parser, solver, ranker and word list together
// for the bot surface. Solving itself never fails; only parsing can.
type SolveHandler struct {
	words    WordProvider
	solver   *services.SolverService
	ranker   *services.RankingService
	recorder SolveRequestRecorder
}

// NewSolveHandler creates a new SolveHandler. recorder may be nil when
// solve history persistence is disabled.
func NewSolveHandler(words WordProvider, solver *services.SolverService, ranker *services.RankingService, recorder SolveRequestRecorder) *SolveHandler {
	return &SolveHandler{
		words:    words,
		solver:   solver,
		ranker:   ranker,
		recorder: recorder,
	}
}

// HandleSolveText parses guesses out of free-form text and solves
// against the current word list snapshot. Failure to record history is
// logged but does not fail the solve.
func (h *SolveHandler) HandleSolveText(ctx context.Context, discordID, guildID int64, text string) (*SolveOutcome, error) {
	guesses, err := ExtractGuesses(text)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New()
	result := h.solver.Solve(guesses, h.words.Words())
	ranked := h.ranker.RankWords(result.Candidates)

	log.WithFields(log.Fields{
		"request_id": requestID,
		"discord_id": discordID,
		"guild_id":   guildID,
		"guesses":    len(guesses),
		"candidates": len(result.Candidates),
	}).Info("Solve request handled")

	if h.recorder != nil {
		record := &entities.SolveRequest{
			ID:             requestID,
			DiscordID:      discordID,
			GuildID:        guildID,
			GuessCount:     len(guesses),
			CandidateCount: len(result.Candidates),
		}
		if len(ranked) > 0 {
			record.BestWord = ranked[0].Word
		}
		if err := h.recorder.Record(ctx, record); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"request_id": requestID,
				"discord_id": discordID,
			}).Error("Failed to record solve request")
		}
	}

	return &SolveOutcome{
		RequestID:   requestID,
		Guesses:     guesses,
		Constraints: result.Constraints,
		Candidates:  result.Candidates,
		Ranked:      ranked,
	}, nil
}

// HandleTop ranks the entire current word list, for starter suggestions
func (h *SolveHandler) HandleTop() []services.RankedWord {
	return h.ranker.RankWords(h.words.Words())
}

// HandleReload reloads the word list and returns the new size
func (h *SolveHandler) HandleReload() (int, error) {
	if err := h.words.Reload(); err != nil {
		return 0, fmt.Errorf("failed to reload word list: %w", err)
	}
	return h.words.Len(), nil
}

// HandleStats returns a user's recent solve history
func (h *SolveHandler) HandleStats(ctx context.Context, discordID, guildID int64, limit int) ([]*entities.SolveRequest, error) {
	if h.recorder == nil {
		return nil, nil
	}
	return h.recorder.GetRecent(ctx, discordID, guildID, limit)
}

// WordCount returns the size of the current word list snapshot
func (h *SolveHandler) WordCount() int {
	return h.words.Len()
}

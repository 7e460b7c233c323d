package entities

import (
	"time"

	"github.com/google/uuid"
)

// SolveRequest records one handled solve: who asked, how many guesses
// they had entered, and what the solver found. BestWord is empty when
// the constraints left no candidates.
type SolveRequest struct {
	ID             uuid.UUID
	DiscordID      int64
	GuildID        int64
	GuessCount     int
	CandidateCount int
	BestWord       string
	CreatedAt      time.Time
}

package application

import (
	"context"

	"wordseek/domain/entities"
)

// SolveRequestRecorder persists solve history records
type SolveRequestRecorder interface {
	Record(ctx context.Context, req *entities.SolveRequest) error
	GetRecent(ctx context.Context, discordID, guildID int64, limit int) ([]*entities.SolveRequest, error)
}

// WordProvider supplies the current word list snapshot and its reload operation
type WordProvider interface {
	Words() []string
	Len() int
	Reload() error
}

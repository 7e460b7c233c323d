package repository

import (
	"context"
	"fmt"
	"time"

	"wordseek/database"
	"wordseek/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryable abstracts over a pool or transaction for query execution
type Queryable interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// solveRequestDB is a local struct for database mapping
type solveRequestDB struct {
	ID             uuid.UUID `db:"id"`
	DiscordID      int64     `db:"discord_id"`
	GuildID        int64     `db:"guild_id"`
	GuessCount     int       `db:"guess_count"`
	CandidateCount int       `db:"candidate_count"`
	BestWord       string    `db:"best_word"`
	CreatedAt      time.Time `db:"created_at"`
}

// toDomain converts the database struct to the domain model
func (r *solveRequestDB) toDomain() *entities.SolveRequest {
	return &entities.SolveRequest{
		ID:             r.ID,
		DiscordID:      r.DiscordID,
		GuildID:        r.GuildID,
		GuessCount:     r.GuessCount,
		CandidateCount: r.CandidateCount,
		BestWord:       r.BestWord,
		CreatedAt:      r.CreatedAt,
	}
}

// SolveRequestRepository persists solve history records
type SolveRequestRepository struct {
	q Queryable
}

// NewSolveRequestRepository creates a new solve request repository
func NewSolveRequestRepository(db *database.DB) *SolveRequestRepository {
	return &SolveRequestRepository{q: db.Pool}
}

// NewSolveRequestRepositoryWithQueryable creates a repository over an
// arbitrary Queryable, typically a transaction in tests
func NewSolveRequestRepositoryWithQueryable(q Queryable) *SolveRequestRepository {
	return &SolveRequestRepository{q: q}
}

// Record inserts a new solve request record
func (r *SolveRequestRepository) Record(ctx context.Context, req *entities.SolveRequest) error {
	query := `
		INSERT INTO solve_requests (id, discord_id, guild_id, guess_count, candidate_count, best_word)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.q.QueryRow(ctx, query,
		req.ID,
		req.DiscordID,
		req.GuildID,
		req.GuessCount,
		req.CandidateCount,
		req.BestWord,
	).Scan(&req.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record solve request: %w", err)
	}

	return nil
}

// GetRecent returns the most recent solve requests for a user in a guild
func (r *SolveRequestRepository) GetRecent(ctx context.Context, discordID, guildID int64, limit int) ([]*entities.SolveRequest, error) {
	query := `
		SELECT id, discord_id, guild_id, guess_count, candidate_count, best_word, created_at
		FROM solve_requests
		WHERE discord_id = $1 AND guild_id = $2
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := r.q.Query(ctx, query, discordID, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent solve requests: %w", err)
	}
	defer rows.Close()

	var requests []*entities.SolveRequest
	for rows.Next() {
		var dbReq solveRequestDB
		err := rows.Scan(
			&dbReq.ID,
			&dbReq.DiscordID,
			&dbReq.GuildID,
			&dbReq.GuessCount,
			&dbReq.CandidateCount,
			&dbReq.BestWord,
			&dbReq.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve request: %w", err)
		}
		requests = append(requests, dbReq.toDomain())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solve requests: %w", err)
	}

	return requests, nil
}

// CountByGuild returns the number of solves recorded for a guild
func (r *SolveRequestRepository) CountByGuild(ctx context.Context, guildID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM solve_requests WHERE guild_id = $1`

	var count int64
	if err := r.q.QueryRow(ctx, query, guildID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count solve requests: %w", err)
	}
	return count, nil
}

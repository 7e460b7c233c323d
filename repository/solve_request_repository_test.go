package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordseek/domain/entities"
	"wordseek/repository/testutil"
)

func TestSolveRequestRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewSolveRequestRepository(testDB.DB)
	ctx := context.Background()

	t.Run("Record sets CreatedAt", func(t *testing.T) {
		req := &entities.SolveRequest{
			ID:             uuid.New(),
			DiscordID:      100,
			GuildID:        200,
			GuessCount:     3,
			CandidateCount: 7,
			BestWord:       "crane",
		}
		require.NoError(t, repo.Record(ctx, req))
		assert.False(t, req.CreatedAt.IsZero())
	})

	t.Run("GetRecent returns newest first and respects limit", func(t *testing.T) {
		discordID := int64(101)
		guildID := int64(201)

		words := []string{"slate", "heart", "crane"}
		for i, w := range words {
			req := &entities.SolveRequest{
				ID:             uuid.New(),
				DiscordID:      discordID,
				GuildID:        guildID,
				GuessCount:     i + 1,
				CandidateCount: 10 - i,
				BestWord:       w,
			}
			require.NoError(t, repo.Record(ctx, req))
		}

		recent, err := repo.GetRecent(ctx, discordID, guildID, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "crane", recent[0].BestWord)
		assert.Equal(t, "heart", recent[1].BestWord)
	})

	t.Run("GetRecent scopes by user and guild", func(t *testing.T) {
		req := &entities.SolveRequest{
			ID:        uuid.New(),
			DiscordID: 102,
			GuildID:   202,
			BestWord:  "slate",
		}
		require.NoError(t, repo.Record(ctx, req))

		recent, err := repo.GetRecent(ctx, 102, 999, 10)
		require.NoError(t, err)
		assert.Empty(t, recent)

		recent, err = repo.GetRecent(ctx, 999, 202, 10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})

	t.Run("CountByGuild counts all users in the guild", func(t *testing.T) {
		guildID := int64(203)
		for _, discordID := range []int64{103, 104} {
			req := &entities.SolveRequest{
				ID:        uuid.New(),
				DiscordID: discordID,
				GuildID:   guildID,
				BestWord:  "crane",
			}
			require.NoError(t, repo.Record(ctx, req))
		}

		count, err := repo.CountByGuild(ctx, guildID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repo.CountByGuild(ctx, 998)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

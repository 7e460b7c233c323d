package services

import (
	"testing"

	"wordseek/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGuess(t *testing.T, word, codes string) entities.Guess {
	t.Helper()
	require.Len(t, codes, entities.WordLength)

	var fb [entities.WordLength]entities.Feedback
	for i := 0; i < len(codes); i++ {
		f, ok := entities.ParseFeedbackCode(codes[i])
		require.True(t, ok, "bad feedback code %c", codes[i])
		fb[i] = f
	}
	g, err := entities.NewGuess(word, fb)
	require.NoError(t, err)
	return g
}

func TestAccumulateConstraints_SingleGreen(t *testing.T) {
	s := NewSolverService()

	cs := s.AccumulateConstraints([]entities.Guess{
		mustGuess(t, "crane", "GBBBB"),
	})

	assert.Equal(t, map[int]byte{0: 'c'}, cs.Greens)
	assert.Empty(t, cs.YellowBans)
	assert.Equal(t, map[byte]int{'c': 1}, cs.MinCounts)
	// letters with no confirmed copies record no bound
	assert.Empty(t, cs.MaxCounts)
}

func TestAccumulateConstraints_YellowBans(t *testing.T) {
	s := NewSolverService()

	cs := s.AccumulateConstraints([]entities.Guess{
		mustGuess(t, "train", "BYGBB"),
	})

	assert.Equal(t, map[int]byte{2: 'a'}, cs.Greens)
	assert.Equal(t, map[byte]map[int]bool{'r': {1: true}}, cs.YellowBans)
	assert.Equal(t, map[byte]int{'r': 1, 'a': 1}, cs.MinCounts)
	assert.Empty(t, cs.MaxCounts)
}

func TestAccumulateConstraints_DuplicateLetterSurplus(t *testing.T) {
	s := NewSolverService()

	// spoon guesses two o's; one Correct, one Absent. That proves the
	// answer has exactly one o.
	cs := s.AccumulateConstraints([]entities.Guess{
		mustGuess(t, "spoon", "BBGBB"),
	})

	assert.Equal(t, 1, cs.MinCounts['o'])
	max, ok := cs.MaxCounts['o']
	assert.True(t, ok)
	assert.Equal(t, 1, max)
}

func TestAccumulateConstraints_ConflictingFeedbackAcrossGuesses(t *testing.T) {
	s := NewSolverService()

	// First guess marks s Absent with no confirmed copies, second
	// confirms it Correct elsewhere. The min sticks; no surplus was
	// ever revealed, so no max bound exists.
	cs := s.AccumulateConstraints([]entities.Guess{
		mustGuess(t, "snail", "BBBBB"),
		mustGuess(t, "beast", "BBBGB"),
	})

	assert.Equal(t, 1, cs.MinCounts['s'])
	_, ok := cs.MaxCounts['s']
	assert.False(t, ok)
}

func TestAccumulateConstraints_OrderInsensitive(t *testing.T) {
	s := NewSolverService()

	guesses := []entities.Guess{
		mustGuess(t, "crane", "GBYBB"),
		mustGuess(t, "spoon", "BBGBB"),
		mustGuess(t, "beast", "BYBGB"),
	}

	want := s.AccumulateConstraints(guesses)

	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, perm := range permutations {
		permuted := make([]entities.Guess, len(guesses))
		for i, idx := range perm {
			permuted[i] = guesses[idx]
		}
		got := s.AccumulateConstraints(permuted)
		assert.Equal(t, want.Greens, got.Greens, "perm %v", perm)
		assert.Equal(t, want.YellowBans, got.YellowBans, "perm %v", perm)
		assert.Equal(t, want.MinCounts, got.MinCounts, "perm %v", perm)
		assert.Equal(t, want.MaxCounts, got.MaxCounts, "perm %v", perm)
	}
}

func TestAccumulateConstraints_TighterBoundsWin(t *testing.T) {
	s := NewSolverService()

	// geese confirms two e's; crane's single confirmed e must not
	// loosen the min back down.
	cs := s.AccumulateConstraints([]entities.Guess{
		mustGuess(t, "geese", "BYYBB"),
		mustGuess(t, "crane", "BBBBY"),
	})

	assert.Equal(t, 2, cs.MinCounts['e'])
}

func TestSolve_NarrowsToGreens(t *testing.T) {
	s := NewSolverService()
	words := []string{"crane", "heart", "trace", "react"}

	result := s.Solve([]entities.Guess{
		mustGuess(t, "crane", "GBBBB"),
	}, words)

	assert.Equal(t, map[int]byte{0: 'c'}, result.Constraints.Greens)
	assert.Equal(t, []string{"crane"}, result.Candidates)
}

func TestSolve_YellowBanRejectsBannedPosition(t *testing.T) {
	s := NewSolverService()
	words := []string{"grant", "hoard"}

	result := s.Solve([]entities.Guess{
		mustGuess(t, "train", "BYGBB"),
	}, words)

	// grant places r exactly at the banned position; hoard keeps r
	// elsewhere and has the confirmed a in place.
	assert.Equal(t, []string{"hoard"}, result.Candidates)
}

func TestSolve_AntiMonotonic(t *testing.T) {
	s := NewSolverService()
	words := []string{"crane", "crate", "craze", "carve", "coral", "heart"}

	first := s.Solve([]entities.Guess{
		mustGuess(t, "crane", "GGBBB"),
	}, words)

	second := s.Solve([]entities.Guess{
		mustGuess(t, "crane", "GGBBB"),
		mustGuess(t, "crate", "GGGGB"),
	}, words)

	assert.Equal(t, []string{"crane", "crate", "craze"}, first.Candidates)
	assert.Equal(t, []string{"crate"}, second.Candidates)
	assert.LessOrEqual(t, len(second.Candidates), len(first.Candidates))
}

func TestSolve_ContradictoryConstraintsYieldEmpty(t *testing.T) {
	s := NewSolverService()
	words := []string{"crass", "bossy", "slate", "crane"}

	// crass confirms two s's, bossy then proves at most one. The
	// resulting set is unsatisfiable; Solve stays permissive and
	// returns an empty candidate list rather than an error.
	result := s.Solve([]entities.Guess{
		mustGuess(t, "crass", "BBBYY"),
		mustGuess(t, "bossy", "BBYBB"),
	}, words)

	assert.Empty(t, result.Candidates)
	assert.NotNil(t, result.Candidates)
}

func TestSolve_NoGuessesKeepsEverything(t *testing.T) {
	s := NewSolverService()
	words := []string{"crane", "heart"}

	result := s.Solve(nil, words)

	assert.Equal(t, words, result.Candidates)
}

package services

import (
	"sort"

	"wordseek/domain/entities"
)

// RankedWord pairs a candidate word with its heuristic score
type RankedWord struct {
	Word  string
	Score int
}

// ScoreWeights holds the tunable scoring policy. The defaults reward
// unique vowels at 50 points each and charge 100 points per repeated
// letter; the frequency terms are derived from the ranked set itself.
type ScoreWeights struct {
	VowelBonus       int
	DuplicatePenalty int
}

// DefaultScoreWeights returns the default scoring policy
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		VowelBonus:       50,
		DuplicatePenalty: 100,
	}
}

// RankingService orders candidate words by heuristic usefulness as a
// next guess. Scores are relative to the set being ranked, not absolute
// properties of a word, and are recomputed on every call.
type RankingService struct {
	weights ScoreWeights
}

// NewRankingService creates a new RankingService with the given weights
func NewRankingService(weights ScoreWeights) *RankingService {
	return &RankingService{weights: weights}
}

// RankWords scores every word against letter frequencies of the whole
// set and returns them sorted by descending score, ties broken by
// ascending word. An empty input yields an empty result.
func (s *RankingService) RankWords(words []string) []RankedWord {
	if len(words) == 0 {
		return []RankedWord{}
	}

	// Positional and global letter frequencies within this set
	var positional [entities.WordLength][26]int
	var global [26]int
	for _, w := range words {
		for i := 0; i < entities.WordLength; i++ {
			l := w[i] - 'a'
			positional[i][l]++
			global[l]++
		}
	}

	ranked := make([]RankedWord, 0, len(words))
	for _, w := range words {
		ranked = append(ranked, RankedWord{Word: w, Score: s.score(w, &positional, &global)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})
	return ranked
}

func (s *RankingService) score(word string, positional *[entities.WordLength][26]int, global *[26]int) int {
	var seen [26]bool
	score := 0
	duplicates := 0

	for i := 0; i < entities.WordLength; i++ {
		l := word[i] - 'a'
		score += positional[i][l]
		if seen[l] {
			duplicates++
			continue
		}
		seen[l] = true
		score += global[l]
		if isVowel(word[i]) {
			score += s.weights.VowelBonus
		}
	}

	return score - duplicates*s.weights.DuplicatePenalty
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

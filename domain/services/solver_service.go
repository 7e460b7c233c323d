package services

import (
	"wordseek/domain/entities"
)

// SolveResult holds the outcome of narrowing a word list against a
// sequence of guesses. An empty Candidates slice is a valid result and
// signals contradictory or exhaustive constraints.
type SolveResult struct {
	Constraints *entities.ConstraintSet
	Candidates  []string
}

// SolverService narrows a candidate word list from accumulated guess feedback
type SolverService struct{}

// NewSolverService creates a new SolverService
func NewSolverService() *SolverService {
	return &SolverService{}
}

// AccumulateConstraints folds a sequence of guesses into a single
// constraint set. The merge is order-insensitive: mins take the largest
// value seen in any guess, maxes the smallest.
func (s *SolverService) AccumulateConstraints(guesses []entities.Guess) *entities.ConstraintSet {
	cs := entities.NewConstraintSet()

	for _, g := range guesses {
		// Correct/Present marks per letter for this guess
		var confirmed [26]int
		for i := 0; i < entities.WordLength; i++ {
			ch := g.Word[i]
			switch g.Feedback[i] {
			case entities.FeedbackCorrect:
				cs.Greens[i] = ch
				confirmed[ch-'a']++
			case entities.FeedbackPresent:
				cs.BanPosition(ch, i)
				confirmed[ch-'a']++
			}
		}

		var guessed [26]int
		for i := 0; i < entities.WordLength; i++ {
			guessed[g.Word[i]-'a']++
		}

		for l := 0; l < 26; l++ {
			if guessed[l] == 0 {
				continue
			}
			ch := byte('a' + l)
			r := confirmed[l]
			if r > cs.MinCounts[ch] {
				cs.MinCounts[ch] = r
			}
			// An Absent copy alongside confirmed copies proves the
			// answer has at most r occurrences of this letter. A guess
			// with no confirmed copies records no bound.
			if r > 0 && r < guessed[l] {
				if max, ok := cs.MaxCounts[ch]; !ok || r < max {
					cs.MaxCounts[ch] = r
				}
			}
		}
	}

	return cs
}

// Solve accumulates constraints from guesses and filters words down to
// the consistent candidates. It never fails; contradictory feedback
// yields an empty candidate list.
func (s *SolverService) Solve(guesses []entities.Guess, words []string) *SolveResult {
	cs := s.AccumulateConstraints(guesses)
	candidates := make([]string, 0, len(words))
	for _, w := range words {
		if cs.Satisfies(w) {
			candidates = append(candidates, w)
		}
	}
	return &SolveResult{
		Constraints: cs,
		Candidates:  candidates,
	}
}

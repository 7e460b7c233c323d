package entities

import (
	"fmt"
)

// WordLength is the fixed puzzle word length.
const WordLength = 5

// Feedback represents the per-letter feedback state of a guess
type Feedback int

const (
	// FeedbackAbsent means the letter is not in the answer, or appears
	// fewer times than it was guessed
	FeedbackAbsent Feedback = iota
	// FeedbackPresent means the letter is in the answer at a different position
	FeedbackPresent
	// FeedbackCorrect means the letter is in the answer at this position
	FeedbackCorrect
)

// ParseFeedbackCode converts a single letter code (G/Y/B, case-insensitive)
// into a Feedback value
func ParseFeedbackCode(c byte) (Feedback, bool) {
	switch c {
	case 'g', 'G':
		return FeedbackCorrect, true
	case 'y', 'Y':
		return FeedbackPresent, true
	case 'b', 'B':
		return FeedbackAbsent, true
	}
	return FeedbackAbsent, false
}

// Code returns the canonical letter code for the feedback value
func (f Feedback) Code() byte {
	switch f {
	case FeedbackCorrect:
		return 'G'
	case FeedbackPresent:
		return 'Y'
	default:
		return 'B'
	}
}

// Guess represents a value object pairing a guessed word with its
// per-position feedback. Instances are created by NewGuess and never mutated.
type Guess struct {
	Word     string
	Feedback [WordLength]Feedback
}

// NewGuess creates a new Guess with validation
func NewGuess(word string, feedback [WordLength]Feedback) (Guess, error) {
	if len(word) != WordLength {
		return Guess{}, fmt.Errorf("word must be %d letters, got %q", WordLength, word)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return Guess{}, fmt.Errorf("word must be lowercase ascii letters, got %q", word)
		}
	}
	return Guess{Word: word, Feedback: feedback}, nil
}

// FeedbackString returns the feedback as a 5-letter code string, e.g. "GYBBY"
func (g Guess) FeedbackString() string {
	buf := make([]byte, WordLength)
	for i, f := range g.Feedback {
		buf[i] = f.Code()
	}
	return string(buf)
}

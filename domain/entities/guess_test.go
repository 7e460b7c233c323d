package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGuess(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		expectError bool
	}{
		{
			name: "valid lowercase word",
			word: "crane",
		},
		{
			name:        "too short",
			word:        "cane",
			expectError: true,
		},
		{
			name:        "too long",
			word:        "cranes",
			expectError: true,
		},
		{
			name:        "uppercase rejected",
			word:        "Crane",
			expectError: true,
		},
		{
			name:        "digits rejected",
			word:        "cr4ne",
			expectError: true,
		},
		{
			name:        "empty rejected",
			word:        "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fb [WordLength]Feedback
			g, err := NewGuess(tt.word, fb)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, Guess{}, g)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.word, g.Word)
			}
		})
	}
}

func TestParseFeedbackCode(t *testing.T) {
	tests := []struct {
		code  byte
		want  Feedback
		valid bool
	}{
		{'G', FeedbackCorrect, true},
		{'g', FeedbackCorrect, true},
		{'Y', FeedbackPresent, true},
		{'y', FeedbackPresent, true},
		{'B', FeedbackAbsent, true},
		{'b', FeedbackAbsent, true},
		{'X', FeedbackAbsent, false},
		{'1', FeedbackAbsent, false},
	}

	for _, tt := range tests {
		got, ok := ParseFeedbackCode(tt.code)
		assert.Equal(t, tt.valid, ok, "code %c", tt.code)
		if tt.valid {
			assert.Equal(t, tt.want, got, "code %c", tt.code)
		}
	}
}

func TestGuessFeedbackString(t *testing.T) {
	g, err := NewGuess("crane", [WordLength]Feedback{
		FeedbackCorrect, FeedbackPresent, FeedbackAbsent, FeedbackAbsent, FeedbackPresent,
	})
	assert.NoError(t, err)
	assert.Equal(t, "GYBBY", g.FeedbackString())
}

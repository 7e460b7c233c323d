package application

import (
	"errors"
	"strings"
	"unicode"

	"wordseek/domain/entities"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// ErrNoValidLines is returned when no line in a message parses as a guess
var ErrNoValidLines = errors.New("no valid guess lines found; use emoji tiles + word, 'GYBBY WORD', or 'G Y B B Y WORD'")

// tileFeedback maps a feedback tile glyph to its feedback value.
// Green and yellow squares are the standard share glyphs; red, black and
// white squares all circulate for absent letters.
func tileFeedback(r rune) (entities.Feedback, bool) {
	switch r {
	case '🟩':
		return entities.FeedbackCorrect, true
	case '🟨':
		return entities.FeedbackPresent, true
	case '🟥', '⬛', '⬜':
		return entities.FeedbackAbsent, true
	}
	return entities.FeedbackAbsent, false
}

// normalizeLine canonicalizes one raw input line. NFKC folds stylized and
// mathematical-alphanumeric letters to plain Latin before anything is
// counted. Tile glyphs survive as-is, letters are lowercased, hyphens,
// underscores and apostrophes collapse to whitespace, and everything
// else is decorative and dropped.
func normalizeLine(line string) []rune {
	line = norm.NFKC.String(line)
	out := make([]rune, 0, len(line))
	for _, r := range line {
		if _, ok := tileFeedback(r); ok {
			out = append(out, r)
			continue
		}
		switch {
		case unicode.IsSpace(r), r == '-', r == '_', r == '\'':
			out = append(out, ' ')
		case unicode.IsLetter(r):
			lower := unicode.ToLower(r)
			if lower >= 'a' && lower <= 'z' {
				out = append(out, lower)
			}
		}
	}
	return out
}

// parseTileLine handles the "tile-glyph run + word" shape: a run of tile
// glyphs (whitespace among them ignored), then the guessed word. Valid
// only with exactly five tiles and exactly five letters.
func parseTileLine(cleaned []rune) (entities.Guess, bool) {
	var feedback [entities.WordLength]entities.Feedback
	tiles := 0
	rest := len(cleaned)
	for i, r := range cleaned {
		if r == ' ' {
			continue
		}
		fb, ok := tileFeedback(r)
		if !ok {
			rest = i
			break
		}
		if tiles >= entities.WordLength {
			return entities.Guess{}, false
		}
		feedback[tiles] = fb
		tiles++
	}
	if tiles != entities.WordLength {
		return entities.Guess{}, false
	}

	var word strings.Builder
	for _, r := range cleaned[rest:] {
		if r == ' ' {
			continue
		}
		if _, ok := tileFeedback(r); ok {
			// a stray tile after the word started is not this shape
			return entities.Guess{}, false
		}
		word.WriteRune(r)
	}
	if word.Len() != entities.WordLength {
		return entities.Guess{}, false
	}

	g, err := entities.NewGuess(word.String(), feedback)
	if err != nil {
		return entities.Guess{}, false
	}
	return g, true
}

// parseCodes converts a slice of single-letter feedback code tokens.
func parseCodes(codes string) ([entities.WordLength]entities.Feedback, bool) {
	var feedback [entities.WordLength]entities.Feedback
	if len(codes) != entities.WordLength {
		return feedback, false
	}
	for i := 0; i < len(codes); i++ {
		fb, ok := entities.ParseFeedbackCode(codes[i])
		if !ok {
			return feedback, false
		}
		feedback[i] = fb
	}
	return feedback, true
}

// ParseGuessLine parses one line of free-form text into a Guess. The
// second return value is false when the line is not a guess at all;
// that is not an error, callers skip such lines.
//
// Accepted shapes, tried in order:
//  1. tile glyphs + word:  🟩🟨🟥🟥🟨 SLATE
//  2. compact codes + word:  GYBBY CRANE
//  3. spaced codes + word:  G Y B B Y HEART
func ParseGuessLine(line string) (entities.Guess, bool) {
	cleaned := normalizeLine(line)

	if g, ok := parseTileLine(cleaned); ok {
		return g, true
	}

	fields := strings.Fields(string(cleaned))

	// compact: exactly two tokens, 5 feedback codes then the word
	if len(fields) == 2 {
		if feedback, ok := parseCodes(fields[0]); ok && len(fields[1]) == entities.WordLength {
			if g, err := entities.NewGuess(fields[1], feedback); err == nil {
				return g, true
			}
		}
	}

	// spaced: five single-code tokens, the word as the sixth
	if len(fields) >= entities.WordLength+1 {
		var feedback [entities.WordLength]entities.Feedback
		ok := true
		for i := 0; i < entities.WordLength; i++ {
			if len(fields[i]) != 1 {
				ok = false
				break
			}
			fb, valid := entities.ParseFeedbackCode(fields[i][0])
			if !valid {
				ok = false
				break
			}
			feedback[i] = fb
		}
		if ok && len(fields[entities.WordLength]) == entities.WordLength {
			if g, err := entities.NewGuess(fields[entities.WordLength], feedback); err == nil {
				return g, true
			}
		}
	}

	return entities.Guess{}, false
}

// ExtractGuesses parses every line of a message, collecting valid
// guesses in order. Malformed lines are skipped silently; chat messages
// mix guesses with commentary and decoration, so parsing is best-effort.
// Returns ErrNoValidLines when nothing parses.
func ExtractGuesses(text string) ([]entities.Guess, error) {
	lines := strings.Split(text, "\n")

	var guesses []entities.Guess
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, ok := ParseGuessLine(line)
		if !ok {
			skipped++
			continue
		}
		guesses = append(guesses, g)
	}

	if len(guesses) == 0 {
		return nil, ErrNoValidLines
	}

	if skipped > 0 {
		log.WithFields(log.Fields{
			"parsed":  len(guesses),
			"skipped": skipped,
		}).Debug("Skipped unparseable lines in guess message")
	}

	return guesses, nil
}

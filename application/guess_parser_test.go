package application

import (
	"errors"
	"reflect"
	"testing"

	"wordseek/domain/entities"
)

func fb(codes string) [entities.WordLength]entities.Feedback {
	var out [entities.WordLength]entities.Feedback
	for i := 0; i < len(codes); i++ {
		f, ok := entities.ParseFeedbackCode(codes[i])
		if !ok {
			panic("bad feedback code in test")
		}
		out[i] = f
	}
	return out
}

func TestParseGuessLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantWord string
		wantFB   string
		wantOK   bool
	}{
		{
			name:     "tile glyphs plus word",
			line:     "🟩🟨🟥🟥🟨 SLATE",
			wantWord: "slate",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "tile glyphs with black and white squares",
			line:     "🟩⬛🟨⬜🟥 crane",
			wantWord: "crane",
			wantFB:   "GBYBB",
			wantOK:   true,
		},
		{
			name:     "tile glyphs with spaces between tiles",
			line:     "🟩 🟨 🟥 🟥 🟨 slate",
			wantWord: "slate",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "compact codes plus word",
			line:     "GYBBY CRANE",
			wantWord: "crane",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "compact codes lowercase",
			line:     "gybby crane",
			wantWord: "crane",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "spaced codes plus word",
			line:     "G Y B B Y HEART",
			wantWord: "heart",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "spaced codes with trailing commentary",
			line:     "G Y B B Y HEART my best so far",
			wantWord: "heart",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "hyphens collapse to whitespace",
			line:     "G-Y-B-B-Y heart",
			wantWord: "heart",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "mathematical bold unicode folds to ascii",
			line:     "𝐆𝐘𝐁𝐁𝐘 𝐂𝐑𝐀𝐍𝐄",
			wantWord: "crane",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "fullwidth unicode folds to ascii",
			line:     "ＧＹＢＢＹ ＣＲＡＮＥ",
			wantWord: "crane",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "decorative glyphs around the word are stripped",
			line:     "🟩🟨🟥🟥🟨 ✨slate✨",
			wantWord: "slate",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:     "filler glyphs are not counted as tiles",
			line:     "🔥🟩🟨🟥🟥🟨 slate",
			wantWord: "slate",
			wantFB:   "GYBBY",
			wantOK:   true,
		},
		{
			name:   "four tiles rejected",
			line:   "🟩🟨🟥🟥 slate",
			wantOK: false,
		},
		{
			name:   "six tiles rejected",
			line:   "🟩🟨🟥🟥🟨🟨 slate",
			wantOK: false,
		},
		{
			name:   "word too short after stripping",
			line:   "GYBBY cran",
			wantOK: false,
		},
		{
			name:   "word too long",
			line:   "GYBBY cranes",
			wantOK: false,
		},
		{
			name:   "bad feedback code",
			line:   "GYBBX crane",
			wantOK: false,
		},
		{
			name:   "plain commentary",
			line:   "not a guess at all",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseGuessLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseGuessLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			want := entities.Guess{Word: tt.wantWord, Feedback: fb(tt.wantFB)}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ParseGuessLine(%q) = %+v, want %+v", tt.line, got, want)
			}
		})
	}
}

func TestExtractGuesses(t *testing.T) {
	text := "Today's puzzle, wish me luck!\n" +
		"🟩🟨🟥🟥🟨 SLATE\n" +
		"some commentary in between\n" +
		"GYBBY CRANE\n" +
		"\n" +
		"G Y B B Y HEART\n"

	guesses, err := ExtractGuesses(text)
	if err != nil {
		t.Fatalf("ExtractGuesses() error = %v", err)
	}

	want := []entities.Guess{
		{Word: "slate", Feedback: fb("GYBBY")},
		{Word: "crane", Feedback: fb("GYBBY")},
		{Word: "heart", Feedback: fb("GYBBY")},
	}
	if !reflect.DeepEqual(guesses, want) {
		t.Errorf("ExtractGuesses() = %+v, want %+v", guesses, want)
	}
}

func TestExtractGuesses_NoValidLines(t *testing.T) {
	for _, text := range []string{"", "not a guess at all", "just\nsome\nlines"} {
		_, err := ExtractGuesses(text)
		if !errors.Is(err, ErrNoValidLines) {
			t.Errorf("ExtractGuesses(%q) error = %v, want ErrNoValidLines", text, err)
		}
	}
}

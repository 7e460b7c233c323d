package common

import (
	"fmt"
	"sort"
	"strings"

	"wordseek/domain/entities"
	"wordseek/domain/services"
)

// FormatGreens renders confirmed positions as "1:c, 3:a" with 1-based
// positions, or "-" when nothing is confirmed
func FormatGreens(greens map[int]byte) string {
	if len(greens) == 0 {
		return "-"
	}
	positions := make([]int, 0, len(greens))
	for pos := range greens {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	parts := make([]string, 0, len(positions))
	for _, pos := range positions {
		parts = append(parts, fmt.Sprintf("%d:%c", pos+1, greens[pos]))
	}
	return strings.Join(parts, ", ")
}

// FormatYellowBans renders per-letter banned positions as "r !@ 2,4"
func FormatYellowBans(bans map[byte]map[int]bool) string {
	if len(bans) == 0 {
		return "-"
	}
	letters := make([]byte, 0, len(bans))
	for ch := range bans {
		letters = append(letters, ch)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	parts := make([]string, 0, len(letters))
	for _, ch := range letters {
		positions := make([]int, 0, len(bans[ch]))
		for pos := range bans[ch] {
			positions = append(positions, pos)
		}
		sort.Ints(positions)

		strs := make([]string, 0, len(positions))
		for _, pos := range positions {
			strs = append(strs, fmt.Sprintf("%d", pos+1))
		}
		parts = append(parts, fmt.Sprintf("%c !@ %s", ch, strings.Join(strs, ",")))
	}
	return strings.Join(parts, ", ")
}

// FormatCounts renders per-letter counts as "a:1, s:2", or "-" when empty
func FormatCounts(counts map[byte]int) string {
	if len(counts) == 0 {
		return "-"
	}
	letters := make([]byte, 0, len(counts))
	for ch := range counts {
		letters = append(letters, ch)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	parts := make([]string, 0, len(letters))
	for _, ch := range letters {
		parts = append(parts, fmt.Sprintf("%c:%d", ch, counts[ch]))
	}
	return strings.Join(parts, ", ")
}

// FormatSuggestions renders ranked words as numbered "word (score)" lines
func FormatSuggestions(ranked []services.RankedWord, limit int) string {
	if len(ranked) == 0 {
		return "-"
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	var b strings.Builder
	for i, rw := range ranked {
		fmt.Fprintf(&b, "%d. %s (%d)\n", i+1, rw.Word, rw.Score)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatGuess renders a parsed guess as "GYBBY crane" for echoing back
func FormatGuess(g entities.Guess) string {
	return fmt.Sprintf("%s %s", g.FeedbackString(), g.Word)
}

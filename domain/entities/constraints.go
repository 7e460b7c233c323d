package entities

import (
	"strings"
)

// ConstraintSet represents the accumulated knowledge from a sequence of
// guesses. Invariants:
//   - Greens holds at most one letter per position.
//   - YellowBans only contains letters that appeared as Present in some
//     guess; each maps to the positions that letter cannot occupy.
//   - MinCounts[l] is the largest number of Correct/Present marks for l
//     seen in any single guess.
//   - MaxCounts only contains letters where some guess proved a surplus
//     (more copies guessed than confirmed); tighter bounds win.
type ConstraintSet struct {
	Greens     map[int]byte
	YellowBans map[byte]map[int]bool
	MinCounts  map[byte]int
	MaxCounts  map[byte]int
}

// NewConstraintSet creates an empty constraint set
func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{
		Greens:     make(map[int]byte),
		YellowBans: make(map[byte]map[int]bool),
		MinCounts:  make(map[byte]int),
		MaxCounts:  make(map[byte]int),
	}
}

// Satisfies reports whether word is consistent with the constraint set.
// Checks run cheapest-rejection-first: greens, yellow bans, min counts,
// max counts.
func (c *ConstraintSet) Satisfies(word string) bool {
	for i, ch := range c.Greens {
		if word[i] != ch {
			return false
		}
	}
	for ch, banned := range c.YellowBans {
		if !strings.Contains(word, string(ch)) {
			return false
		}
		for pos := range banned {
			if word[pos] == ch {
				return false
			}
		}
	}
	var counts [26]int
	for i := 0; i < len(word); i++ {
		counts[word[i]-'a']++
	}
	for l, min := range c.MinCounts {
		if counts[l-'a'] < min {
			return false
		}
	}
	for l, max := range c.MaxCounts {
		if counts[l-'a'] > max {
			return false
		}
	}
	return true
}

// BanPosition records that letter ch cannot occupy position pos
func (c *ConstraintSet) BanPosition(ch byte, pos int) {
	if c.YellowBans[ch] == nil {
		c.YellowBans[ch] = make(map[int]bool)
	}
	c.YellowBans[ch][pos] = true
}

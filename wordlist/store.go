// Package wordlist owns the authoritative puzzle word list: sanitizing
// raw lines into fixed-length lowercase words and publishing the result
// as an atomically swappable snapshot so concurrent solvers never see a
// partially reloaded list.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"unicode"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"

	"wordseek/domain/entities"
)

// Sanitize normalizes raw lines into valid puzzle words: Unicode is
// canonicalized (NFKC), non-letters stripped, letters downcased, and
// only results of exactly the puzzle word length are kept.
func Sanitize(rawLines []string) []string {
	words := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		var b strings.Builder
		for _, r := range norm.NFKC.String(line) {
			if !unicode.IsLetter(r) {
				continue
			}
			lower := unicode.ToLower(r)
			if lower >= 'a' && lower <= 'z' {
				b.WriteRune(lower)
			}
		}
		if b.Len() == entities.WordLength {
			words = append(words, b.String())
		}
	}
	return words
}

// Store holds the current word list snapshot. Reload swaps the whole
// slice behind an atomic pointer; readers keep whatever snapshot they
// grabbed, the old slice is never mutated in place.
type Store struct {
	path  string
	words atomic.Pointer[[]string]
}

// NewStore creates a store backed by the word list file at path and
// performs the initial load.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Words returns the current snapshot. Callers must not mutate it.
func (s *Store) Words() []string {
	return *s.words.Load()
}

// Len returns the size of the current snapshot
func (s *Store) Len() int {
	return len(s.Words())
}

// Reload re-reads the backing file and atomically replaces the snapshot
func (s *Store) Reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open word list %s: %w", s.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read word list %s: %w", s.path, err)
	}

	words := Sanitize(lines)
	s.words.Store(&words)

	log.WithFields(log.Fields{
		"path":  s.path,
		"words": len(words),
	}).Info("Word list loaded")

	return nil
}

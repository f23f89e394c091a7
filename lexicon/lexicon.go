// Package lexicon loads the candidate vocabulary for a fill attempt from a
// plain word-list file.
package lexicon

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Lexicon is a named, deduplicated word list. Words are uppercased on load
// so slot matching is case-insensitive.
type Lexicon struct {
	name  string
	words []string
}

// Load reads a word list, one word per line; only the first field of each
// line counts, blank lines are skipped. The lexicon is named after the
// file's base name without extension. Slot filling assumes one byte per
// cell, so words containing multi-byte characters will never be placed.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			words = append(words, strings.ToUpper(fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	words = lo.Uniq(words)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log.Debug().Str("lexicon", name).Int("words", len(words)).Msg("loaded word list")
	return &Lexicon{name: name, words: words}, nil
}

func (l *Lexicon) Name() string {
	return l.name
}

// Words returns the vocabulary. Callers must not modify the returned slice.
func (l *Lexicon) Words() []string {
	return l.words
}

// HasWord reports whether w (case-insensitively) is in the lexicon.
func (l *Lexicon) HasWord(w string) bool {
	return lo.Contains(l.words, strings.ToUpper(w))
}

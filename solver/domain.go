package solver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/01Amadeus01/crossword/board"
)

// WordSet is one variable's candidate pool. The zero value is unusable;
// make sets with NewWordSet.
type WordSet map[string]bool

func NewWordSet(words ...string) WordSet {
	ws := make(WordSet, len(words))
	for _, w := range words {
		ws[w] = true
	}
	return ws
}

func (ws WordSet) Has(w string) bool { return ws[w] }
func (ws WordSet) Len() int          { return len(ws) }

// Copy returns a set sharing nothing with the receiver. Snapshot/restore
// correctness depends on this.
func (ws WordSet) Copy() WordSet {
	n := make(WordSet, len(ws))
	for w := range ws {
		n[w] = true
	}
	return n
}

// Words returns the members in lexicographic order.
func (ws WordSet) Words() []string {
	words := lo.Keys(ws)
	sort.Strings(words)
	return words
}

// domains is the mutable store mapping each variable to its remaining
// candidates. It is narrowed in place along the search path and restored
// from snapshots on backtrack.
type domains map[board.Variable]WordSet

// copyAll deep-copies the store: no inner set is shared between the
// snapshot and the live store.
func (d domains) copyAll() domains {
	n := make(domains, len(d))
	for v, ws := range d {
		n[v] = ws.Copy()
	}
	return n
}

// Assignment maps variables to their chosen words. Partial while the
// search runs, complete (one non-empty entry per variable) on success.
type Assignment map[board.Variable]string

func (a Assignment) Copy() Assignment {
	n := make(Assignment, len(a))
	for v, w := range a {
		n[v] = w
	}
	return n
}

// assigned reports whether v carries a non-empty word in a.
func (a Assignment) assigned(v board.Variable) bool {
	return a[v] != ""
}

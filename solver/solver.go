// Package solver implements the crossword constraint-satisfaction engine:
// node consistency, AC-3 arc-consistency propagation, and a backtracking
// search with minimum-remaining-values variable selection and
// least-constraining-value ordering.
//
// The solver owns the only mutable state in the system, the domain store.
// Branch independence comes from full-state rollback: the store is
// deep-copied before every speculative commit and restored verbatim on
// backtrack.
package solver

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/01Amadeus01/crossword/board"
)

// errDeadEnd reproduces the reference behavior for a full propagation
// failure after a consistent tentative assignment: the entire search halts
// instead of backtracking the one branch. Arguably a bug in the reference;
// kept for compatibility and surfaced to callers as "no solution".
var errDeadEnd = errors.New("arc consistency emptied a domain mid-search")

// Arc is an ordered pair of variables with an overlap constraint, read as
// "make X consistent with Y".
type Arc struct {
	X board.Variable
	Y board.Variable
}

// Solver carries one solve attempt: the read-only puzzle model and the
// domain store it narrows. A Solver is not safe for concurrent use and is
// spent after Solve returns; make a new one per attempt.
type Solver struct {
	board   *board.Board
	domains domains

	// RandomTieBreak shuffles variable selection among slots tied on both
	// domain size and degree. Any tied slot is a legal choice; leave this
	// off for reproducible searches.
	RandomTieBreak bool

	nodes int
}

// New creates a solver with every variable's domain set to the full
// vocabulary. Words are matched one byte per cell, so only single-byte
// (ASCII) words can ever fit a slot; multi-byte words are filtered out
// by node consistency.
func New(b *board.Board, vocabulary []string) *Solver {
	s := &Solver{board: b, domains: make(domains, len(b.Variables()))}
	for _, v := range b.Variables() {
		s.domains[v] = NewWordSet(vocabulary...)
	}
	return s
}

// Domain returns a copy of v's current candidate set.
func (s *Solver) Domain(v board.Variable) WordSet {
	return s.domains[v].Copy()
}

// EnforceNodeConsistency drops from each domain every word whose length
// does not fit the slot. It never fails; a domain may come out empty.
func (s *Solver) EnforceNodeConsistency() {
	for v, ws := range s.domains {
		for w := range ws {
			if len(w) != v.Length {
				delete(ws, w)
			}
		}
	}
}

// Revise makes x arc-consistent with y: every word removed from x's domain
// had no partner left in y's domain agreeing on the shared cell. Reports
// whether x's domain shrank. A pair with no overlap is a no-op.
func (s *Solver) Revise(x, y board.Variable) bool {
	ov, ok := s.board.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	xdom, ydom := s.domains[x], s.domains[y]
	for w := range xdom {
		supported := false
		for w2 := range ydom {
			if w[ov.I] == w2[ov.J] {
				supported = true
				break
			}
		}
		if !supported {
			delete(xdom, w)
			revised = true
		}
	}
	return revised
}

// AC3 runs the arc-consistency worklist. A nil arcs slice means every
// ordered overlapping pair on the board. In propagate mode, shrinking x's
// domain re-enqueues (z, x) for every neighbor z other than y; single-pass
// mode revises each given arc exactly once, which is how value-ordering
// probes use it. Returns false as soon as a revision empties a domain; the
// store may be left partially narrowed, so callers needing rollback must
// snapshot first.
func (s *Solver) AC3(arcs []Arc, propagate bool) bool {
	if arcs == nil {
		arcs = s.allArcs()
	}
	queue := make([]Arc, len(arcs))
	copy(queue, arcs)
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if s.domains[arc.X].Len() == 0 {
			return false
		}
		if propagate {
			for _, z := range s.board.Neighbors(arc.X) {
				if z != arc.Y {
					queue = append(queue, Arc{X: z, Y: arc.X})
				}
			}
		}
	}
	return true
}

func (s *Solver) allArcs() []Arc {
	var arcs []Arc
	for _, x := range s.board.Variables() {
		for _, y := range s.board.Neighbors(x) {
			arcs = append(arcs, Arc{X: x, Y: y})
		}
	}
	return arcs
}

// Consistent reports whether the partial assignment violates no constraint
// so far: lengths fit, no word is used twice anywhere in the assignment,
// and every assigned pair of neighbors agrees at the shared cell. Pure
// predicate; no domain access.
func (s *Solver) Consistent(a Assignment) bool {
	seen := make([]string, 0, len(a))
	for v, w := range a {
		if w == "" {
			continue
		}
		if len(w) != v.Length {
			return false
		}
		// Linear scan is fine at crossword sizes.
		for _, prev := range seen {
			if prev == w {
				return false
			}
		}
		seen = append(seen, w)
		for _, n := range s.board.Neighbors(v) {
			nw := a[n]
			if nw == "" {
				continue
			}
			// The neighbor's own length check may not have run yet; never
			// index past a short word.
			if len(nw) != n.Length {
				return false
			}
			ov, ok := s.board.Overlap(n, v)
			if !ok {
				continue
			}
			if nw[ov.I] != w[ov.J] {
				return false
			}
		}
	}
	return true
}

// SelectUnassignedVariable picks the unassigned slot with the smallest
// domain, breaking ties by higher degree. Exact ties resolve to the first
// in board order, or to a random tied slot when RandomTieBreak is set.
// Callers must not invoke this when every variable is assigned.
func (s *Solver) SelectUnassignedVariable(a Assignment) board.Variable {
	var (
		chosen     board.Variable
		found      bool
		bestSize   int
		bestDegree int
		ties       []board.Variable
	)
	for _, v := range s.board.Variables() {
		if a.assigned(v) {
			continue
		}
		size := s.domains[v].Len()
		degree := len(s.board.Neighbors(v))
		switch {
		case !found || size < bestSize:
			chosen, found = v, true
			bestSize, bestDegree = size, degree
			ties = append(ties[:0], v)
		case size == bestSize && degree > bestDegree:
			chosen, bestDegree = v, degree
			ties = append(ties[:0], v)
		case size == bestSize && degree == bestDegree:
			ties = append(ties, v)
		}
	}
	if s.RandomTieBreak && len(ties) > 1 {
		chosen = ties[frand.Intn(len(ties))]
	}
	return chosen
}

// OrderDomainValues returns v's candidates ordered by how few choices each
// would eliminate from the domains of v's unassigned neighbors
// (least-constraining value first; lexicographic among equals). Each
// candidate is probed with a single-pass AC3 over the (neighbor, v) arcs
// against a domain restricted to just that word, and the probe is undone
// unconditionally, so the store is unchanged when this returns. Candidates
// whose probe empties a neighbor's domain are dropped from the ordering.
func (s *Solver) OrderDomainValues(v board.Variable, a Assignment) []string {
	original := s.domains[v]
	neighbors := s.board.Neighbors(v)

	saved := make(map[board.Variable]WordSet, len(neighbors))
	arcs := make([]Arc, 0, len(neighbors))
	for _, n := range neighbors {
		saved[n] = s.domains[n].Copy()
		arcs = append(arcs, Arc{X: n, Y: v})
	}

	type scoredWord struct {
		word       string
		eliminated int
	}
	candidates := make([]scoredWord, 0, original.Len())
	for _, w := range original.Words() {
		s.domains[v] = NewWordSet(w)
		if s.AC3(arcs, false) {
			eliminated := 0
			for _, n := range neighbors {
				if a.assigned(n) {
					continue
				}
				eliminated += saved[n].Len() - s.domains[n].Len()
			}
			candidates = append(candidates, scoredWord{word: w, eliminated: eliminated})
		}
		for _, n := range neighbors {
			s.domains[n] = saved[n].Copy()
		}
	}
	s.domains[v] = original

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].eliminated < candidates[j].eliminated
	})
	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words
}

// Solve enforces node and arc consistency, then runs backtracking search.
// It returns a complete assignment, or nil with a nil error when the
// puzzle is unsatisfiable. The context is checked once per search node;
// pass context.Background() for an unbounded search. Note the preserved
// reference quirk: a full propagation failure mid-branch halts the whole
// search (reported as no solution) rather than backtracking that branch.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	s.nodes = 0
	s.EnforceNodeConsistency()
	if !s.AC3(nil, true) {
		log.Debug().Msg("arc consistency proved the puzzle unsatisfiable")
		return nil, nil
	}
	for _, v := range s.board.Variables() {
		if s.domains[v].Len() == 0 {
			log.Debug().Stringer("variable", v).Msg("empty domain after preprocessing")
			return nil, nil
		}
	}
	result, err := s.backtrack(ctx, make(Assignment))
	if errors.Is(err, errDeadEnd) {
		log.Debug().Int("nodes", s.nodes).Msg("search halted by mid-branch propagation failure")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Int("nodes", s.nodes).Bool("solved", result != nil).Msg("search finished")
	return result, nil
}

// Nodes returns how many search nodes the last Solve visited.
func (s *Solver) Nodes() int {
	return s.nodes
}

func (s *Solver) complete(a Assignment) bool {
	if len(a) != len(s.board.Variables()) {
		return false
	}
	for _, w := range a {
		if w == "" {
			return false
		}
	}
	return true
}

func (s *Solver) backtrack(ctx context.Context, a Assignment) (Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.nodes++
	if s.complete(a) {
		return a, nil
	}
	v := s.SelectUnassignedVariable(a)
	for _, word := range s.OrderDomainValues(v, a) {
		a[v] = word
		if !s.Consistent(a) {
			delete(a, v)
			continue
		}
		snapshot := s.domains.copyAll()
		s.domains[v] = NewWordSet(word)
		neighbors := s.board.Neighbors(v)
		arcs := make([]Arc, 0, len(neighbors))
		for _, n := range neighbors {
			arcs = append(arcs, Arc{X: n, Y: v})
		}
		if !s.AC3(arcs, true) {
			return nil, errDeadEnd
		}
		result, err := s.backtrack(ctx, a)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		s.domains = snapshot
		delete(a, v)
	}
	return nil, nil
}

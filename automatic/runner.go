// Package automatic fills many puzzles in one run: every structure file is
// solved against the same vocabulary, fanned out across workers. Each job
// gets its own Solver, so the single-threaded search core never sees
// concurrency.
package automatic

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/01Amadeus01/crossword/board"
	"github.com/01Amadeus01/crossword/solver"
)

// Result is the outcome of one structure file.
type Result struct {
	StructurePath string
	Assignment    solver.Assignment
	Slots         int
	Nodes         int
	Elapsed       time.Duration
	Err           error
}

// Solved reports whether this puzzle got a complete fill.
func (r Result) Solved() bool {
	return r.Err == nil && r.Assignment != nil
}

// Runner batch-solves structure files.
type Runner struct {
	vocabulary     []string
	workers        int
	randomTieBreak bool
}

func NewRunner(vocabulary []string, workers int, randomTieBreak bool) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{vocabulary: vocabulary, workers: workers, randomTieBreak: randomTieBreak}
}

// SolveAll solves every structure file, at most `workers` at a time.
// Results come back indexed like paths. The only error returned is a
// context error; per-puzzle failures stay in their Result.
func (r *Runner) SolveAll(ctx context.Context, paths []string) ([]Result, error) {
	log.Debug().Int("puzzles", len(paths)).Int("workers", r.workers).Msg("starting batch solve")
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.solveOne(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) solveOne(ctx context.Context, path string) Result {
	start := time.Now()
	res := Result{StructurePath: path}

	b, err := board.LoadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Slots = len(b.Variables())

	s := solver.New(b, r.vocabulary)
	s.RandomTieBreak = r.randomTieBreak
	res.Assignment, res.Err = s.Solve(ctx)
	res.Nodes = s.Nodes()
	res.Elapsed = time.Since(start)

	log.Debug().Str("structure", path).Bool("solved", res.Solved()).
		Dur("elapsed", res.Elapsed).Msg("batch job finished")
	return res
}

// WriteLog writes one CSV line per result, with a header.
func WriteLog(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintln(w, "structure,slots,solved,nodes,elapsed_ms,error"); err != nil {
		return err
	}
	for _, res := range results {
		errMsg := ""
		if res.Err != nil {
			errMsg = res.Err.Error()
		}
		_, err := fmt.Fprintf(w, "%s,%d,%t,%d,%d,%s\n",
			res.StructurePath, res.Slots, res.Solved(), res.Nodes,
			res.Elapsed.Milliseconds(), errMsg)
		if err != nil {
			return err
		}
	}
	return nil
}

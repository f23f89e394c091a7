// xwfill is the one-shot driver: fill one structure file from a word list
// and print the result, or batch-solve a directory of structures.
//
//	xwfill [flags] <structure> <words> [output.png]
//	xwfill [flags] -batch <dir> <words>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/01Amadeus01/crossword/automatic"
	"github.com/01Amadeus01/crossword/board"
	"github.com/01Amadeus01/crossword/config"
	"github.com/01Amadeus01/crossword/lexicon"
	"github.com/01Amadeus01/crossword/render"
	"github.com/01Amadeus01/crossword/solver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if cfg.GetString("log-level") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if dir := cfg.GetString("batch"); dir != "" {
		if err := runBatch(ctx, cfg, dir); err != nil {
			log.Fatal().Err(err).Msg("")
		}
		return
	}

	args := cfg.Args()
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: xwfill [flags] structure words [output.png]")
		os.Exit(2)
	}

	b, err := board.LoadFile(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load structure")
	}
	lex, err := lexicon.Load(args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load word list")
	}

	s := solver.New(b, lex.Words())
	s.RandomTieBreak = cfg.GetBool("random-tie-break")
	a, err := s.Solve(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("search interrupted")
	}
	if a == nil {
		fmt.Println("No solution.")
		os.Exit(1)
	}
	fmt.Print(render.ToDisplayText(b, a))
	if len(args) == 3 {
		if err := render.SavePNG(b, a, args[2]); err != nil {
			log.Fatal().Err(err).Msg("could not save image")
		}
	}
}

func runBatch(ctx context.Context, cfg *config.Config, dir string) error {
	args := cfg.Args()
	if len(args) != 1 {
		return fmt.Errorf("batch mode needs exactly one word-list argument")
	}
	lex, err := lexicon.Load(args[0])
	if err != nil {
		return err
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no structure files in %s", dir)
	}

	r := automatic.NewRunner(lex.Words(), cfg.GetInt("workers"), cfg.GetBool("random-tie-break"))
	results, err := r.SolveAll(ctx, paths)
	if err != nil {
		return err
	}
	return automatic.WriteLog(os.Stdout, results)
}

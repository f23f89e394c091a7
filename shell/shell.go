// Package shell is the interactive front end: load a structure and a word
// list, fill the grid, inspect the result, save it as an image.
package shell

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/01Amadeus01/crossword/board"
	"github.com/01Amadeus01/crossword/config"
	"github.com/01Amadeus01/crossword/lexicon"
	"github.com/01Amadeus01/crossword/render"
	"github.com/01Amadeus01/crossword/solver"
)

var errExit = errors.New("exit")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curBoard      *board.Board
	curLexicon    *lexicon.Lexicon
	curAssignment solver.Assignment
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <path> - load a structure file\n")
	io.WriteString(w, "words <path> - load a word list\n")
	io.WriteString(w, "solve - fill the current grid from the current word list\n")
	io.WriteString(w, "show - display the current grid\n")
	io.WriteString(w, "save <path.png> - save the current fill as an image\n")
	io.WriteString(w, "help - this message\n")
	io.WriteString(w, "exit - quit\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mxwfill>\033[0m ",
		HistoryFile: "/tmp/readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

// resolvePath tries the path as given, then under data-path.
func (sc *ShellController) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(sc.cfg.GetString("data-path"), path)
}

func (sc *ShellController) loadStructure(path string) error {
	b, err := board.LoadFile(path)
	if err != nil && !filepath.IsAbs(path) {
		b, err = board.LoadFile(sc.resolvePath(path))
	}
	if err != nil {
		return err
	}
	sc.curBoard = b
	sc.curAssignment = nil
	log.Debug().Int("slots", len(b.Variables())).Msg("loaded structure")
	return nil
}

func (sc *ShellController) loadWords(path string) error {
	lex, err := lexicon.Load(path)
	if err != nil && !filepath.IsAbs(path) {
		lex, err = lexicon.Load(sc.resolvePath(path))
	}
	if err != nil {
		return err
	}
	sc.curLexicon = lex
	sc.curAssignment = nil
	return nil
}

func (sc *ShellController) solveCurrent() error {
	if sc.curBoard == nil {
		return errors.New("load a structure first")
	}
	if sc.curLexicon == nil {
		return errors.New("load a word list first")
	}
	s := solver.New(sc.curBoard, sc.curLexicon.Words())
	s.RandomTieBreak = sc.cfg.GetBool("random-tie-break")
	a, err := s.Solve(context.Background())
	if err != nil {
		return err
	}
	if a == nil {
		return errors.New("no solution")
	}
	sc.curAssignment = a
	return nil
}

func (sc *ShellController) saveImage(path string) error {
	if sc.curAssignment == nil {
		return errors.New("nothing solved yet")
	}
	return render.SavePNG(sc.curBoard, sc.curAssignment, path)
}

// executeLine runs one shell command. It returns errExit when the user
// asked to leave.
func (sc *ShellController) executeLine(line string, out io.Writer) error {
	switch {
	case strings.HasPrefix(line, "load "):
		if err := sc.loadStructure(strings.TrimSpace(line[5:])); err != nil {
			return err
		}
		showMessage(render.ToDisplayText(sc.curBoard, nil), out)

	case strings.HasPrefix(line, "words "):
		if err := sc.loadWords(strings.TrimSpace(line[6:])); err != nil {
			return err
		}
		showMessage("loaded "+sc.curLexicon.Name(), out)

	case line == "solve":
		if err := sc.solveCurrent(); err != nil {
			return err
		}
		showMessage(render.ToDisplayText(sc.curBoard, sc.curAssignment), out)

	case line == "show":
		if sc.curBoard == nil {
			return errors.New("load a structure first")
		}
		showMessage(render.ToDisplayText(sc.curBoard, sc.curAssignment), out)

	case strings.HasPrefix(line, "save "):
		path := strings.TrimSpace(line[5:])
		if err := sc.saveImage(path); err != nil {
			return err
		}
		showMessage("saved "+path, out)

	case line == "help":
		usage(out)

	case line == "exit" || line == "bye":
		return errExit

	case line == "":

	default:
		return errors.New("unknown command; try help")
	}
	return nil
}

func (sc *ShellController) Loop() {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)

		err = sc.executeLine(line, sc.l.Stderr())
		if errors.Is(err, errExit) {
			break
		}
		if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop...")
}

package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/01Amadeus01/crossword/config"
)

// testController skips readline so executeLine can run headless.
func testController(t *testing.T) *ShellController {
	t.Helper()
	cfg := config.DefaultConfig()
	return &ShellController{cfg: &cfg}
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteLineFullSession(t *testing.T) {
	is := is.New(t)

	sc := testController(t)
	dir := t.TempDir()
	structure := writeFile(t, dir, "grid.txt", "___\n_##\n_##\n")
	words := writeFile(t, dir, "words.txt", "car\nrat\ncat\n")
	out := &bytes.Buffer{}

	is.NoErr(sc.executeLine("load "+structure, out))
	is.NoErr(sc.executeLine("words "+words, out))
	is.NoErr(sc.executeLine("solve", out))
	is.True(sc.curAssignment != nil)
	is.True(strings.Contains(out.String(), "loaded words"))

	img := filepath.Join(dir, "fill.png")
	is.NoErr(sc.executeLine("save "+img, out))
	_, err := os.Stat(img)
	is.NoErr(err)
}

func TestExecuteLineOrdering(t *testing.T) {
	is := is.New(t)

	sc := testController(t)
	out := &bytes.Buffer{}

	err := sc.executeLine("solve", out)
	is.True(err != nil)
	err = sc.executeLine("show", out)
	is.True(err != nil)
	err = sc.executeLine("save /tmp/x.png", out)
	is.True(err != nil)
}

func TestExecuteLineNoSolution(t *testing.T) {
	is := is.New(t)

	sc := testController(t)
	dir := t.TempDir()
	structure := writeFile(t, dir, "grid.txt", "____\n")
	words := writeFile(t, dir, "words.txt", "cat\n")
	out := &bytes.Buffer{}

	is.NoErr(sc.executeLine("load "+structure, out))
	is.NoErr(sc.executeLine("words "+words, out))
	err := sc.executeLine("solve", out)
	is.True(err != nil)
	is.Equal(err.Error(), "no solution")
}

func TestExecuteLineExit(t *testing.T) {
	is := is.New(t)

	sc := testController(t)
	out := &bytes.Buffer{}
	is.True(errors.Is(sc.executeLine("exit", out), errExit))
	is.True(errors.Is(sc.executeLine("bye", out), errExit))
	is.NoErr(sc.executeLine("", out))
	is.True(sc.executeLine("frobnicate", out) != nil)
}

func TestExecuteLineHelp(t *testing.T) {
	is := is.New(t)

	sc := testController(t)
	out := &bytes.Buffer{}
	is.NoErr(sc.executeLine("help", out))
	is.True(strings.Contains(out.String(), "solve"))
}

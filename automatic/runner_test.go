package automatic

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func writeStructure(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolveAll(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	solvable := writeStructure(t, dir, "a.txt", "___", "_##", "_##")
	unsolvable := writeStructure(t, dir, "b.txt", "____")
	missing := filepath.Join(dir, "missing.txt")

	r := NewRunner([]string{"car", "rat", "cat"}, 2, false)
	results, err := r.SolveAll(context.Background(), []string{solvable, unsolvable, missing})
	is.NoErr(err)
	is.Equal(len(results), 3)

	is.True(results[0].Solved())
	is.Equal(results[0].StructurePath, solvable)
	is.Equal(results[0].Slots, 2)
	is.Equal(len(results[0].Assignment), 2)

	// No word of length 4: unsatisfiable, but not an error.
	is.True(!results[1].Solved())
	is.NoErr(results[1].Err)

	is.True(results[2].Err != nil)
}

func TestSolveAllCancelled(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner([]string{"cat"}, 1, false)
	dir := t.TempDir()
	path := writeStructure(t, dir, "a.txt", "___")
	_, err := r.SolveAll(ctx, []string{path})
	is.True(err != nil)
}

func TestWriteLog(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	path := writeStructure(t, dir, "a.txt", "___")
	r := NewRunner([]string{"cat", "dog"}, 1, false)
	results, err := r.SolveAll(context.Background(), []string{path})
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(WriteLog(&buf, results))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 2)
	is.Equal(lines[0], "structure,slots,solved,nodes,elapsed_ms,error")
	is.True(strings.HasPrefix(lines[1], path+",1,true,"))
}

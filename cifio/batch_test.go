package cifio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fractalqb/cifmod"
	"github.com/fractalqb/cifmod/ciftest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func copyTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "BaTiO3.cif"))
	require.NoError(t, err)
	dst := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(dst, data, 0644))
	return dst
}

func TestBatch_File(t *testing.T) {
	src := copyTestFile(t, t.TempDir(), "BaTiO3.cif")
	b := Batch{Instructions: cifmod.ParseInstructions(
		"a + 1; b * 2; c - 1; alpha + 1; gamma / 2; volume ^ 1",
	)}
	res, err := b.File(src, nil)
	require.NoError(t, err)
	if res.Modified != 6 {
		t.Errorf("expect 6 modified lines, got %d", res.Modified)
	}
	if res.Output != OutputPath(src, "") {
		t.Errorf("wrong output %s", res.Output)
	}
	txt, err := ReadFile(res.Output)
	require.NoError(t, err)
	ciftest.Fatal(t, "", txt.Lines)
}

func TestBatch_Run(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"x.cif", "y.cif", "z.cif"} {
		copyTestFile(t, dir, n)
	}
	paths, err := Collect(dir, "_rnd")
	require.NoError(t, err)
	run := func(suffix string) []*Text {
		b := Batch{
			Instructions: cifmod.ParseInstructions("0 -- a -- 10; 60 -- beta -- 120"),
			Suffix:       suffix,
			Jobs:         2,
			Seeded:       true,
			Seed:         4711,
		}
		res, err := b.Run(context.Background(), paths)
		require.NoError(t, err)
		require.Len(t, res, len(paths))
		var out []*Text
		for i, r := range res {
			if r.Path != paths[i] {
				t.Errorf("result %d is for %s", i, r.Path)
			}
			txt, err := ReadFile(r.Output)
			require.NoError(t, err)
			out = append(out, txt)
		}
		return out
	}
	first, second := run("_rnd"), run("_rnd2")
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Errorf("file %d differs between runs with the same seed", i)
		}
	}
	if first[0].String() == first[1].String() {
		t.Error("files got the same random values")
	}
}

func TestBatch_Run_dryRun(t *testing.T) {
	dir := t.TempDir()
	src := copyTestFile(t, dir, "BaTiO3.cif")
	b := Batch{
		Instructions: cifmod.ParseInstructions("gamma / 2"),
		DryRun:       true,
	}
	res, err := b.Run(context.Background(), []string{src})
	require.NoError(t, err)
	changes := Changes(res[0].Diff)
	if len(changes) != 2 {
		t.Fatalf("expect 2 changed lines, got %v", changes)
	}
	if changes[1].Text != "_cell_angle_gamma                  45.00" {
		t.Errorf("wrong new line [%s]", changes[1].Text)
	}
	if _, err := os.Stat(res[0].Output); !os.IsNotExist(err) {
		t.Error("dry run wrote output file")
	}
}

func TestBatch_Run_error(t *testing.T) {
	dir := t.TempDir()
	src := copyTestFile(t, dir, "BaTiO3.cif")
	b := Batch{Instructions: cifmod.ParseInstructions("a + 1; 4 -- b -- 4")}
	_, err := b.Run(context.Background(), []string{src})
	var ferr *FileError
	if !errors.As(err, &ferr) || ferr.Path != src {
		t.Fatalf("expect FileError for %s, got %v", src, err)
	}
	var rerr *cifmod.RangeError
	if !errors.As(err, &rerr) {
		t.Errorf("expect wrapped RangeError, got %v", err)
	}
	if _, err := os.Stat(OutputPath(src, "")); !os.IsNotExist(err) {
		t.Error("output written despite error")
	}
}

func TestBatch_Run_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := Batch{Instructions: cifmod.ParseInstructions("a + 1")}
	_, err := b.Run(ctx, []string{"does-not-matter.cif"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expect context.Canceled, got %v", err)
	}
}

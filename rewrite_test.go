package cifmod

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readTestLines(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestWhitespaceBetween(t *testing.T) {
	for line, n := range map[string]int{
		"_cell_length_a     4.0094(2)": 5,
		"_cell_length_a 4.0094(2)":     1,
		"  _cell_length_a\t\t4.0094":   2,
		"a a":                          1,
	} {
		got, ok := WhitespaceBetween(line)
		if !ok || got != n {
			t.Errorf("'%s': expect %d, got %d (%t)", line, n, got, ok)
		}
	}
	if _, ok := WhitespaceBetween("_cell_length_a"); ok {
		t.Error("found whitespace after single token")
	}
}

func TestRewriter_Line(t *testing.T) {
	set := ParseInstructions("a + 1; volume * 2")
	rw := Rewriter{Env: Env{Rand: NewRand(0)}}
	check := func(t *testing.T, line, expect string, mod bool) {
		t.Helper()
		res, m, err := rw.Line(set, line)
		require.NoError(t, err)
		if res != expect {
			t.Errorf("expect [%s], got [%s]", expect, res)
		}
		if m != mod {
			t.Errorf("expect modified=%t", mod)
		}
	}
	t.Run("keeps column", func(t *testing.T) {
		check(t, "_cell_length_a                     4.0094(2)",
			"_cell_length_a                     5.0094", true)
		check(t, "_cell_length_a 4.0094(2)", "_cell_length_a 5.0094", true)
	})
	t.Run("keeps tabs", func(t *testing.T) {
		check(t, "_cell_length_a\t\t4.0094(2)", "_cell_length_a\t\t5.0094", true)
	})
	t.Run("keeps indentation and trailer", func(t *testing.T) {
		check(t, "  _cell_volume   64.452(6)  # from ref", "  _cell_volume   128.904  # from ref", true)
	})
	t.Run("unchanged", func(t *testing.T) {
		check(t, "_cell_length_b   4.0094(2)", "_cell_length_b   4.0094(2)", false)
		check(t, "_cell_length_a", "_cell_length_a", false)
		check(t, "a 4.0094", "a 4.0094", false)
		check(t, "loop_", "loop_", false)
		check(t, "", "", false)
		check(t, "Ba1 Ba 0.00000 0.00000 0.00000", "Ba1 Ba 0.00000 0.00000 0.00000", false)
	})
}

func TestApplyToLines(t *testing.T) {
	lines := readTestLines(t, "testdata/BaTiO3.cif")
	set := ParseInstructions("a + 1.0\nb * 2.0\nc - 1.0\nalpha + 1.0\n45.0 -- beta -- 90.0\ngamma / 2.0")
	res, modified, err := ApplyToLines(set, lines, NewRand(0))
	require.NoError(t, err)
	if modified != 6 {
		t.Errorf("expect 6 modified lines, got %d", modified)
	}
	if len(res) != len(lines) {
		t.Fatalf("expect %d lines, got %d", len(lines), len(res))
	}
	for i, expect := range map[int]string{
		27: "_cell_length_a                     5.0094",
		28: "_cell_length_b                     8.0188",
		29: "_cell_length_c                     3.0094",
		30: "_cell_angle_alpha                  91.00",
		32: "_cell_angle_gamma                  45.00",
		33: "_cell_volume                       64.452(6)",
	} {
		if res[i] != expect {
			t.Errorf("line %d: expect [%s], got [%s]", i+1, expect, res[i])
		}
	}
	const betaPrefix = "_cell_angle_beta                   "
	beta, ok := strings.CutPrefix(res[31], betaPrefix)
	if !ok {
		t.Fatalf("beta lost its column: [%s]", res[31])
	}
	if v, err := strconv.ParseFloat(beta, 64); err != nil || v < 45 || v >= 90 {
		t.Errorf("beta %s not in [45, 90)", beta)
	}
	if Precision(beta) != 2 {
		t.Errorf("beta %s lost precision", beta)
	}
	for i := range lines {
		if i >= 27 && i <= 32 {
			continue
		}
		if res[i] != lines[i] {
			t.Errorf("line %d changed: [%s]", i+1, res[i])
		}
	}
}

func TestApplyToLines_seed(t *testing.T) {
	lines := readTestLines(t, "testdata/BaTiO3.cif")
	set := ParseInstructions("0 -- a -- 10; 70 -- alpha -- 120; volume -- 100")
	r1, _, err := ApplyToLines(set, lines, NewRand(7))
	require.NoError(t, err)
	r2, _, err := ApplyToLines(set, lines, NewRand(7))
	require.NoError(t, err)
	if strings.Join(r1, "\n") != strings.Join(r2, "\n") {
		t.Error("same seed gave different results")
	}
}

func TestApplyToLines_error(t *testing.T) {
	lines := []string{
		"data_x",
		"_cell_length_a   3.9",
		"_cell_length_b   ?",
	}
	set := ParseInstructions("a + 1; b + 1")
	res, _, err := ApplyToLines(set, lines, nil)
	if res != nil {
		t.Errorf("got lines on error: %v", res)
	}
	var lerr *LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("expect LineError, got %v", err)
	}
	if lerr.Line != 3 || lerr.Key != "_cell_length_b" {
		t.Errorf("wrong location %d:%s", lerr.Line, lerr.Key)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expect wrapped ParseError, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	lines := readTestLines(t, "testdata/BaTiO3.cif")
	v, ok := Lookup(lines, LengthA)
	if !ok || v != "4.0094(2)" {
		t.Errorf("expect 4.0094(2), got '%s' (%t)", v, ok)
	}
	if _, ok = Lookup([]string{"_cell_length_a"}, LengthA); ok {
		t.Error("found value of field without value")
	}
	cell := Cell(lines)
	if len(cell) != 7 {
		t.Errorf("expect all 7 fields, got %v", cell)
	}
	if cell[AngleGamma] != "90.00" || cell[Volume] != "64.452(6)" {
		t.Errorf("wrong cell %v", cell)
	}
}

func ExampleRewriter() {
	lines := []string{
		"_cell_length_c      12.345(3)",
		"_cell_angle_gamma   120.000",
	}
	rw := Rewriter{}
	res, n, err := rw.Lines(ParseInstructions("c * 2; gamma - 30"), lines)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range res {
		fmt.Println(l)
	}
	fmt.Println(n, "modified")
	// Output:
	// _cell_length_c      24.690
	// _cell_angle_gamma   90.000
	// 2 modified
}

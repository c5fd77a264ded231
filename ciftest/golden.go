// Package ciftest supports golden file tests of edited CIF text.
//
// Example compares the edited lines with testdata/TestEdit.golden:
//
//	func TestEdit(t *testing.T) {
//		lines, _, err := cifmod.ApplyToLines(set, input, nil)
//		if err != nil {
//			t.Fatal(err)
//		}
//		ciftest.Error(t, "", lines)
//	}
package ciftest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// When this environment variable is set to a regexp and the name of the current
// test matches calls to Error or Fatal will record the lines as new golden
// file instead of comparing them. E.g.
//
//	CIFTEST_RECORD=TestEdit go test .
const RecordEnv = "CIFTEST_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

func Error(t *testing.T, hint string, lines []string) error {
	return defaultConfig.Error(t, hint, lines)
}

func Fatal(t *testing.T, hint string, lines []string) {
	defaultConfig.Fatal(t, hint, lines)
}

func Record(t *testing.T, hint string, lines []string) {
	defaultConfig.Record(t, hint, lines)
}

type GoldenRepo struct {
	Dir    string
	Suffix string
}

const (
	StdSuffix = ".golden"
	NoSuffix  = "\x00"
)

func (gr GoldenRepo) Filename(t *testing.T, hint string) string {
	suffix := gr.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(gr.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(gr.Dir, t.Name(), hint)
	}
	return filepath.Join(gr.Dir, t.Name(), hint+suffix)
}

type Config struct {
	GoldenFileName  func(t *testing.T, hint string) string
	RecordOverwrite bool
}

var defaultConfig = Config{
	GoldenFileName:  GoldenRepo{Dir: GoTestdataDir}.Filename,
	RecordOverwrite: false,
}

func (cfg Config) Error(t *testing.T, hint string, lines []string) error {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, lines)
		return nil
	}
	err := cfg.compare(t, hint, lines)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t *testing.T, hint string, lines []string) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, lines)
		return
	}
	if err := cfg.compare(t, hint, lines); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t *testing.T) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("ciftest: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg *Config) compare(t *testing.T, hint string, lines []string) error {
	golden := cfg.GoldenFileName(t, hint)
	data, err := os.ReadFile(golden)
	if os.IsNotExist(err) {
		t.Logf("to record a golden file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("golden file %s does not exist", golden)
	} else if err != nil {
		return err
	}
	want := string(data)
	got := strings.Join(lines, "\n") + "\n"
	if want == got {
		return nil
	}
	reportDiff(t, hint, want, got)
	return fmt.Errorf("lines differ from golden file %s", golden)
}

func reportDiff(t *testing.T, hint, want, got string) {
	if hint == "" {
		hint = "lines"
	}
	dmp := diffmatchpatch.New()
	a, b, idx := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), idx)
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		default:
			continue
		}
		for _, l := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			t.Logf("%s: %c[%s]", hint, op, l)
		}
	}
}

func (cfg Config) Record(t *testing.T, hint string, lines []string) {
	t.Helper()
	golden := cfg.GoldenFileName(t, hint)
	if _, err := os.Stat(golden); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("ciftest: golden file '%s' already exists", golden)
	}
	dir := filepath.Dir(golden)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err = os.MkdirAll(dir, 0777); err != nil {
			t.Fatal(err)
		}
	}
	wr, err := os.Create(golden)
	if err != nil {
		t.Fatal(err)
	}
	defer wr.Close()
	bw := bufio.NewWriter(wr)
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	if err = bw.Flush(); err != nil {
		t.Error(err)
	}
	t.Errorf("ciftest recorder wrote: %s", golden)
}

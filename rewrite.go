package cifmod

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Rewriter applies Instructions to the lines of a CIF file. Lines are
// rewritten such that the new value starts in the same column as the old
// one. Only the value token is replaced: indentation before the key and
// any text after the value, e.g. a trailing comment, are kept as they
// are. A zero value is valid for use. It must not be used concurrently
// because Env.Rand is not safe for concurrent use.
type Rewriter struct {
	Env
	// Log receives debug output about rewritten lines. May be nil.
	Log *zap.Logger
}

func (rw *Rewriter) log() *zap.Logger {
	if rw.Log == nil {
		return zap.NewNop()
	}
	return rw.Log
}

// Lines applies set to all lines and returns all lines, modified or not,
// in their original order together with the number of modified lines.
// Any error from applying an instruction aborts the rewrite, it is
// returned as *LineError.
func (rw *Rewriter) Lines(set *Instructions, lines []string) ([]string, int, error) {
	res := make([]string, len(lines))
	modified := 0
	for i, line := range lines {
		nl, mod, err := rw.line(set, i+1, line)
		if err != nil {
			return nil, modified, err
		}
		if mod {
			modified++
		}
		res[i] = nl
	}
	rw.log().Debug("rewrote lines",
		zap.Int("lines", len(lines)),
		zap.Int("modified", modified),
	)
	return res, modified, nil
}

// Line rewrites a single line. Lines that do not start with the data name
// of a known field are returned unchanged.
func (rw *Rewriter) Line(set *Instructions, line string) (string, bool, error) {
	return rw.line(set, 0, line)
}

func (rw *Rewriter) line(set *Instructions, lno int, line string) (string, bool, error) {
	key, value, ok := keyValue(line)
	if !ok {
		return line, false, nil
	}
	f, ok := FieldByName(key)
	if !ok {
		return line, false, nil
	}
	sp, ok := splitField(line)
	if !ok {
		rw.log().Error("cannot find whitespace between key and value, skipping line",
			zap.Int("line", lno),
			zap.String("text", line),
		)
		return line, false, nil
	}
	nv, changed, err := set.ApplyKeyword(&rw.Env, KnownKeyword(f), value)
	if err != nil {
		return "", false, &LineError{Line: lno, Key: key, err: err}
	}
	if !changed {
		return line, false, nil
	}
	res := line[:sp.valueStart] + nv + line[sp.valueEnd:]
	rw.log().Debug("rewrote line",
		zap.Int("line", lno),
		zap.String("from", line),
		zap.String("to", res),
	)
	return res, true, nil
}

// ApplyToLines is a shortcut for a Rewriter that uses rnd for range
// instructions.
func ApplyToLines(set *Instructions, lines []string, rnd Rand) ([]string, int, error) {
	rw := Rewriter{Env: Env{Rand: rnd}}
	return rw.Lines(set, lines)
}

func keyValue(line string) (key, value string, ok bool) {
	words := strings.Fields(line)
	switch len(words) {
	case 0:
		return "", "", false
	case 1:
		return words[0], "", false
	}
	return words[0], words[1], true
}

// fieldSpan has the byte offsets of the key and value token in a line.
type fieldSpan struct {
	keyStart, keyEnd     int
	valueStart, valueEnd int
}

// gap returns the whitespace between key and value.
func (sp fieldSpan) gap(line string) string { return line[sp.keyEnd:sp.valueStart] }

func splitField(line string) (sp fieldSpan, ok bool) {
	sp.keyStart = strings.IndexFunc(line, isNotSpace)
	if sp.keyStart < 0 {
		return sp, false
	}
	sp.keyEnd = tokenEnd(line, sp.keyStart)
	off := strings.IndexFunc(line[sp.keyEnd:], isNotSpace)
	if off <= 0 {
		return sp, false
	}
	sp.valueStart = sp.keyEnd + off
	sp.valueEnd = tokenEnd(line, sp.valueStart)
	return sp, true
}

func tokenEnd(line string, start int) int {
	if i := strings.IndexFunc(line[start:], unicode.IsSpace); i >= 0 {
		return start + i
	}
	return len(line)
}

func isNotSpace(r rune) bool { return !unicode.IsSpace(r) }

// WhitespaceBetween returns the number of characters between the first
// two tokens of line.
func WhitespaceBetween(line string) (int, bool) {
	sp, ok := splitField(line)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(sp.gap(line)), true
}

// Lookup returns the value token of the first line that starts with the
// data name of f. The value still has its uncertainty.
func Lookup(lines []string, f Field) (string, bool) {
	name := f.String()
	for _, line := range lines {
		if key, value, ok := keyValue(line); ok && key == name {
			return value, true
		}
	}
	return "", false
}

// Cell returns the values of all fields found in lines.
func Cell(lines []string) map[Field]string {
	res := make(map[Field]string)
	for _, line := range lines {
		key, value, ok := keyValue(line)
		if !ok {
			continue
		}
		if f, ok := FieldByName(key); ok {
			if _, dup := res[f]; !dup {
				res[f] = value
			}
		}
	}
	return res
}

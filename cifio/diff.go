package cifio

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp is '-' for a removed line, '+' for an added one and ' ' for an
// unchanged one.
type DiffOp byte

const (
	DiffKeep   DiffOp = ' '
	DiffRemove DiffOp = '-'
	DiffAdd    DiffOp = '+'
)

type DiffLine struct {
	Op DiffOp
	// Line is the 1-based line number in the old text for removed and
	// kept lines and in the new text for added lines.
	Line int
	Text string
}

// Diff computes the line diff from the old to the new lines.
func Diff(from, to []string) []DiffLine {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	a, b, lines := dmp.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []DiffLine
	oldNo, newNo := 0, 0
	for _, d := range diffs {
		for _, l := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldNo++
				newNo++
				res = append(res, DiffLine{Op: DiffKeep, Line: oldNo, Text: l})
			case diffmatchpatch.DiffDelete:
				oldNo++
				res = append(res, DiffLine{Op: DiffRemove, Line: oldNo, Text: l})
			case diffmatchpatch.DiffInsert:
				newNo++
				res = append(res, DiffLine{Op: DiffAdd, Line: newNo, Text: l})
			}
		}
	}
	return res
}

// Changes drops the unchanged lines from a diff.
func Changes(diff []DiffLine) (res []DiffLine) {
	for _, d := range diff {
		if d.Op != DiffKeep {
			res = append(res, d)
		}
	}
	return res
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

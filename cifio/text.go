// Package cifio reads and writes CIF files for cifmod and runs cifmod
// instructions over many files.
package cifio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// Text is the content of a text file split into lines. It remembers the
// line separator so that writing the text back does not change line
// endings.
type Text struct {
	Lines []string
	// Sep is the separator of the first line, "\n" if there is none.
	Sep string
	// Final is true if the last line was terminated by a separator.
	Final bool
}

func ReadText(r io.Reader) (*Text, error) {
	var sep lineSepScanner
	scn := bufio.NewScanner(r)
	scn.Buffer(nil, 1024*1024)
	scn.Split(sep.ScanLines)
	res := new(Text)
	for scn.Scan() {
		res.Lines = append(res.Lines, scn.Text())
		if res.Sep == "" && len(sep) > 0 {
			res.Sep = string(sep)
		}
		res.Final = len(sep) > 0
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	if res.Sep == "" {
		res.Sep = "\n"
	}
	return res, nil
}

func ReadFile(name string) (*Text, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadText(r)
}

// WithLines returns a copy of txt with other lines.
func (txt *Text) WithLines(lines []string) *Text {
	return &Text{Lines: lines, Sep: txt.Sep, Final: txt.Final}
}

func (txt *Text) String() string {
	var sb strings.Builder
	txt.WriteTo(&sb)
	return sb.String()
}

func (txt *Text) WriteTo(w io.Writer) (n int64, err error) {
	for i, l := range txt.Lines {
		c, err := io.WriteString(w, l)
		n += int64(c)
		if err != nil {
			return n, err
		}
		if i == len(txt.Lines)-1 && !txt.Final {
			break
		}
		c, err = io.WriteString(w, txt.Sep)
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// WriteFile writes txt to a temporary file next to name and renames it
// to name, so name is never left half written.
func (txt *Text) WriteFile(name string, perm os.FileMode) (err error) {
	dir, base := splitPath(name)
	tmp, err := os.CreateTemp(dir, base+".")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	w := bufio.NewWriter(tmp)
	if _, err = txt.WriteTo(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

type lineSepScanner []byte

func (lsc *lineSepScanner) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.Scan
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		res, cr := dropCR(data[0:i])
		*lsc = data[i-cr : i+1]
		return i + 1, res, nil
	}
	if atEOF {
		res, cr := dropCR(data)
		*lsc = data[len(data)-cr:]
		return len(data), res, nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) ([]byte, int) {
	// modificated version of bufio.dropCR
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1], 1
	}
	return data, 0
}

package cifio

import "fmt"

// FileError tells which file an error belongs to.
type FileError struct {
	Path string
	Op   string
	err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.err)
}

func (e *FileError) Unwrap() error { return e.err }

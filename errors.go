package cifmod

import "fmt"

// ParseError is returned when the current value of a field is not a
// number once its uncertainty is stripped.
type ParseError struct {
	Value string
	err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("value '%s' is not numeric: %s", e.Value, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

// RangeError is returned when a range instruction resolves to an empty
// interval.
type RangeError struct {
	Instruction Instruction
	Bound       float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%g, %g) of '%s' is empty", e.Bound, e.Bound, e.Instruction)
}

// LineError locates a field error in the edited text.
type LineError struct {
	Line int
	Key  string
	err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d:%s:%s", e.Line, e.Key, e.err)
}

func (e *LineError) Unwrap() error { return e.err }

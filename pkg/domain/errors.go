package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an empty string is given for transduction.
var ErrEmptyInput = errors.New("empty input string")

// ErrTableNotFound is returned when a loader cannot find the named table.
var ErrTableNotFound = errors.New("table not found")

// FormatError reports an AT&T row whose column count is neither 1 nor 4.
type FormatError struct {
	Line   int    // 1-based line number
	Fields int    // Number of whitespace separated fields found
	Text   string // The offending row
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: incorrect number of columns: expected 1 or 4, got %d", e.Line, e.Fields)
}

// NonTerminatingError is returned when a transduction exceeds its step budget,
// which in practice means the table has an epsilon cycle on the explored path.
type NonTerminatingError struct {
	Steps int
}

func (e *NonTerminatingError) Error() string {
	return fmt.Sprintf("transduction did not terminate within %d steps (epsilon cycle?)", e.Steps)
}

// UnknownDirectionError is returned for a mode keyword other than analyze or generate.
type UnknownDirectionError struct {
	Value string
}

func (e *UnknownDirectionError) Error() string {
	return fmt.Sprintf("unknown direction %q: expected %q or %q", e.Value, DirectionAnalyze, DirectionGenerate)
}

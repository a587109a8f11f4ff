package analysis

import (
	"errors"
	"fmt"
)

// ErrUnknownStat is returned when an EV or IV line names a stat that is not
// in the alias table.
var ErrUnknownStat = errors.New("unknown stat label")

// LineError attaches a 1-based line number to a parse failure.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

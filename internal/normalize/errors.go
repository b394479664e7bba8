package normalize

import (
	"fmt"

	"acnh_sheet_data/internal/record"
)

// UnexpectedValueError is returned when a cell holds a value the formatter for
// its column does not know how to interpret. It means the upstream data shape
// changed and the run has to stop.
type UnexpectedValueError struct {
	Field string
	Value record.Value
}

func (e *UnexpectedValueError) Error() string {
	if s, ok := e.Value.Str(); ok {
		return fmt.Sprintf("unexpected %s value: %q", e.Field, s)
	}
	return fmt.Sprintf("unexpected %s value: %s", e.Field, e.Value.Kind())
}

package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode reports a state the program should never get into, such
	// as an unhandled case of a closed set of values.
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}

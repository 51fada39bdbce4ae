// Package saveerr holds the error types shared by every save codec.
package saveerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	// FormatError reports that a payload does not match the format expected for a
	// game: wrong password or key, corrupted bytes, malformed Base64, bad padding or
	// unparsable JSON. It is never recovered from silently.
	FormatError struct {
		Game   string
		Caller string
		Err    error
	}
)

func NewFormatError(game string, caller string, err error) FormatError {
	return FormatError{
		Game:   game,
		Caller: caller,
		Err:    err,
	}
}

func FormatErrorf(game string, caller string, format string, args ...any) FormatError {
	return NewFormatError(game, caller, errors.Errorf(format, args...))
}

func (r FormatError) Error() string {
	return fmt.Sprintf(
		"%s: file could not be parsed as a valid %s save: %v",
		r.Caller, r.Game, r.Err,
	)
}

func (r FormatError) Cause() error {
	return r.Err
}

func (r FormatError) Unwrap() error {
	return r.Err
}

// IsFormatError reports whether any error in the chain of err is a FormatError.
func IsFormatError(err error) bool {
	formatError := FormatError{}
	return errors.As(err, &formatError)
}

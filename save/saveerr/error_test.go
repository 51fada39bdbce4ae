package saveerr

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsFormatError(t *testing.T) {
	formatError := NewFormatError("sworn", "Decode", io.ErrUnexpectedEOF)

	assert.True(t, IsFormatError(formatError))
	assert.True(t, IsFormatError(errors.Wrap(formatError, "outer")))
	assert.False(t, IsFormatError(io.ErrUnexpectedEOF))
	assert.False(t, IsFormatError(nil))
	assert.True(t, errors.Is(formatError, io.ErrUnexpectedEOF))
	assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(formatError))
}

func TestFormatError_Error(t *testing.T) {
	err := FormatErrorf("megabonk", "Decrypt", "bad padding %d", 7)

	assert.Equal(
		t,
		"Decrypt: file could not be parsed as a valid megabonk save: bad padding 7",
		err.Error(),
	)
}

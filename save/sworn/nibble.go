package sworn

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func highNibble(b byte) byte {
	return (b >> 4) & 0x0F
}

// DecodeNibbles maps the high nibble of each byte to a character: 0 is a space
// and 1 to 15 are the letters a to o.
func DecodeNibbles(bs []byte) string {
	builder := strings.Builder{}
	builder.Grow(len(bs))
	for _, b := range bs {
		nibble := highNibble(b)
		switch {
		case nibble == 0:
			builder.WriteByte(' ')
		case nibble <= 15:
			builder.WriteByte('a' + nibble - 1)
		default:
			builder.WriteByte('?')
		}
	}
	return builder.String()
}

// DecodeNumber concatenates the decimal text of each high nibble and parses the
// result. It reports false when there is nothing to parse or the number does not
// fit an int64.
func DecodeNumber(bs []byte) (int64, bool) {
	builder := strings.Builder{}
	for _, b := range bs {
		builder.WriteString(strconv.Itoa(int(highNibble(b))))
	}
	n, err := strconv.ParseInt(builder.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func EncodeNumber(n int64) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeValue, "EncodeNumber error: %d", n)
	}
	digits := strconv.FormatInt(n, 10)
	bs := make([]byte, 0, len(digits))
	for _, digit := range digits {
		bs = append(bs, byte(digit-'0')<<4|valueLowNibble)
	}
	return bs, nil
}

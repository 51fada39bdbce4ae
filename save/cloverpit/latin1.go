package cloverpit

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/text/encoding/charmap"
)

// fromLatin1 reads every plaintext byte as the code point of the same value.
func fromLatin1(plain []byte) ([]byte, error) {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(plain)
	if err != nil {
		return nil, errors.Wrap(err, "fromLatin1 error")
	}
	return text, nil
}

// toLatin1 keeps the low byte of every UTF-16 code unit of text. Code units above
// 0xFF lose their high byte.
func toLatin1(text []byte) []byte {
	return lo.Map(codeUnits(string(text)), func(unit uint16, _ int) byte {
		return byte(unit & 0xff)
	})
}

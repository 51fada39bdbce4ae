package sworn

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

func isDelimiter(bs []byte, pos int) bool {
	return pos >= 0 && pos+1 < len(bs) && bs[pos] == delimiterHigh && bs[pos+1] == delimiterLow
}

// nextDelimiter returns the first delimiter strictly after pos, or len(bs).
// A delimiter starting exactly at pos is not considered.
func nextDelimiter(bs []byte, pos int) int {
	for i := pos + 1; i < len(bs)-1; i++ {
		if isDelimiter(bs, i) {
			return i
		}
	}
	return len(bs)
}

func skipFiller(bs []byte, pos int) int {
	for pos < len(bs) && bs[pos] == filler {
		pos++
	}
	return pos
}

// skipToQuote returns the position of the next quote at or after pos, or len(bs).
func skipToQuote(bs []byte, pos int) int {
	for pos < len(bs) && bs[pos] != quote {
		pos++
	}
	return pos
}

// Fingerprint is the hex BLAKE3-256 digest of bs.
func Fingerprint(bs []byte) string {
	sum := blake3.Sum256(bs)
	return hex.EncodeToString(sum[:])
}

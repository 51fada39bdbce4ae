package sworn

import (
	"bytes"

	"github.com/samber/lo"
)

type (
	// ValueLocation is where the value of a segment lives in the original file.
	// OriginalValue is nil when the digits there do not parse.
	ValueLocation struct {
		Offset        int
		Length        int
		OriginalValue *int64
	}
)

// LocateValues walks the segments of bs the way Encode needs them: a segment is
// editable only when A3 02 directly follows its text field, and its value runs
// from there to the next C2 byte anywhere in the rest of the file. The digits are
// not checked. Results are keyed by segment index.
//
// This scan is kept apart from the one in Decode on purpose; CompareScans
// reports where the two disagree.
func LocateValues(bs []byte) map[int]ValueLocation {
	locations := map[int]ValueLocation{}

	pos := 1
	index := 0
	for pos < len(bs)-1 {
		if !isDelimiter(bs, pos) {
			pos++
			continue
		}
		pos = skipFiller(bs, pos+2)

		if pos < len(bs) && bs[pos] == quote {
			pos = skipToQuote(bs, pos+1)
			if pos < len(bs) {
				pos++
			}
		}

		if pos+1 < len(bs) && bs[pos] == valueMarker && bs[pos+1] == filler {
			start := pos + 2
			length := bytes.IndexByte(bs[start:], valueEnd)
			if length > 0 {
				location := ValueLocation{
					Offset: start,
					Length: length,
				}
				if value, ok := DecodeNumber(bs[start : start+length]); ok {
					location.OriginalValue = lo.ToPtr(value)
				}
				locations[index] = location
			}
		}

		pos = nextDelimiter(bs, pos)
		index++
	}

	return locations
}

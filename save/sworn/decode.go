package sworn

import (
	"bytes"

	"github.com/samber/lo"

	"saveworks/save/saveerr"
)

// Decode parses every segment of bs. Segments without a readable value get a nil
// Value; only empty input is an error.
func Decode(bs []byte) (*Save, error) {
	if len(bs) == 0 {
		return nil, saveerr.FormatErrorf(Game, "sworn.Decode", "empty file")
	}

	save := Save{
		FileHeader:     int(bs[0]),
		Segments:       []Segment{},
		OriginalBlake3: Fingerprint(bs),
	}

	pos := 1
	for pos < len(bs)-1 {
		if !isDelimiter(bs, pos) {
			pos++
			continue
		}
		pos = skipFiller(bs, pos+2)

		var content []byte
		if pos < len(bs) && bs[pos] == quote {
			start := pos + 1
			pos = skipToQuote(bs, start)
			content = bs[start:pos]
			// the closing quote, or one past the end when it is missing
			pos++
		}

		end := nextDelimiter(bs, pos)
		markerStart := pos
		if markerStart > end {
			markerStart = end
		}

		text := DecodeNibbles(content)
		save.Segments = append(save.Segments, Segment{
			Index:    len(save.Segments),
			Category: Categorize(text),
			Text:     text,
			Value:    decodeEndMarker(bs[markerStart:end]),
		})
		pos = end
	}

	return &save, nil
}

// decodeEndMarker reads the digits between offset 2 of marker and the first C2
// byte after it.
func decodeEndMarker(marker []byte) *int64 {
	if len(marker) < 3 {
		return nil
	}
	end := bytes.IndexByte(marker, valueEnd)
	if end <= 2 {
		return nil
	}
	digits := marker[2:end]
	allDigits := lo.EveryBy(digits, func(b byte) bool {
		return highNibble(b) <= 9
	})
	if !allDigits {
		return nil
	}
	value, ok := DecodeNumber(digits)
	if !ok {
		return nil
	}
	return lo.ToPtr(value)
}

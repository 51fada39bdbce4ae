package ds

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func DumpJSON[T any](t T) string {
	tBytes, err := MarshalCompact(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}

// MarshalCompact encodes t without insignificant whitespace and without escaping
// HTML characters.
func MarshalCompact[T any](t T) ([]byte, error) {
	return MarshalIndent(t, "")
}

func MarshalIndent[T any](t T, indent string) ([]byte, error) {
	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(t); err != nil {
		return nil, err
	}
	// Encode always terminates the value with a newline
	bs := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return unescapeLineSeparators(bs), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 back as raw characters, the
// way JavaScript serializers leave them. An escape preceded by an escaped
// backslash is literal text and stays.
func unescapeLineSeparators(bs []byte) []byte {
	result := make([]byte, 0, len(bs))
	for i := 0; i < len(bs); i++ {
		if bs[i] == '\\' && i+5 < len(bs) && oddBackslashesEndingAt(bs, i) {
			switch string(bs[i : i+6]) {
			case `\u2028`:
				result = append(result, "\u2028"...)
				i += 5
				continue
			case `\u2029`:
				result = append(result, "\u2029"...)
				i += 5
				continue
			}
		}
		result = append(result, bs[i])
	}
	return result
}

func oddBackslashesEndingAt(bs []byte, pos int) bool {
	count := 0
	for i := pos; i >= 0 && bs[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

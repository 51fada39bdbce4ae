package sworn

type (
	// ScanMismatch is a segment on which Decode and LocateValues disagree.
	// LocatedValue is nil when the segment was not located or its digits did not
	// parse.
	ScanMismatch struct {
		Index        int
		Text         string
		DecodedValue *int64
		Located      bool
		LocatedValue *int64
	}
)

// CompareScans decodes bs and locates its values, and lists every segment whose
// decoded value is not what Encode would consider the original value.
func CompareScans(bs []byte) []ScanMismatch {
	save, err := Decode(bs)
	if err != nil {
		return nil
	}
	locations := LocateValues(bs)

	mismatches := []ScanMismatch{}
	for _, segment := range save.Segments {
		location, located := locations[segment.Index]
		if located == (segment.Value != nil) && equalValues(segment.Value, location.OriginalValue) {
			continue
		}
		mismatches = append(mismatches, ScanMismatch{
			Index:        segment.Index,
			Text:         segment.Text,
			DecodedValue: segment.Value,
			Located:      located,
			LocatedValue: location.OriginalValue,
		})
	}
	return mismatches
}

func equalValues(a *int64, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

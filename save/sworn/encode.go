package sworn

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"saveworks/ds"
)

type (
	Splice struct {
		Offset    int
		OldLength int
		NewBytes  []byte
	}
)

// Encode patches the edited values of save into a copy of original, which must be
// the exact file save was decoded from.
func Encode(save *Save, original []byte) ([]byte, error) {
	if save == nil {
		return nil, errors.New("sworn.Encode error: nil save")
	}
	if save.OriginalBlake3 != "" && save.OriginalBlake3 != Fingerprint(original) {
		return nil, errors.Wrap(ErrBaseMismatch, "sworn.Encode error")
	}
	splices, err := PlanSplices(save, original)
	if err != nil {
		return nil, errors.Wrap(err, "sworn.Encode error")
	}
	return ApplySplices(original, splices), nil
}

// PlanSplices lists one splice per segment whose value is set and differs from
// the value found at its location in original. Segments without a location are
// skipped.
func PlanSplices(save *Save, original []byte) ([]Splice, error) {
	locations := LocateValues(original)

	splices := []Splice{}
	for _, segment := range save.Segments {
		location, ok := locations[segment.Index]
		if !ok || segment.Value == nil {
			continue
		}
		if location.OriginalValue != nil && *location.OriginalValue == *segment.Value {
			continue
		}
		newBytes, err := EncodeNumber(*segment.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d", segment.Index)
		}
		splices = append(splices, Splice{
			Offset:    location.Offset,
			OldLength: location.Length,
			NewBytes:  newBytes,
		})
	}
	return splices, nil
}

// ApplySplices applies splices to a copy of original from the highest offset down,
// so that the offsets of the splices still to apply stay valid. Overlapping ranges
// are clamped to the current end of the buffer.
func ApplySplices(original []byte, splices []Splice) []byte {
	ordered := ds.ShallowCopy(splices)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Offset > ordered[j].Offset
	})

	result := ds.ShallowCopy(original)
	for _, splice := range ordered {
		// an earlier splice may have shortened result below this range
		start := lo.Min([]int{splice.Offset, len(result)})
		end := lo.Min([]int{splice.Offset + splice.OldLength, len(result)})
		spliced := make([]byte, 0, len(result)-(end-start)+len(splice.NewBytes))
		spliced = append(spliced, result[:start]...)
		spliced = append(spliced, splice.NewBytes...)
		spliced = append(spliced, result[end:]...)
		result = spliced
	}
	return result
}

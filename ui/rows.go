package ui

import (
	"fmt"
	"strconv"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"

	"saveworks/ds"
	"saveworks/save/sworn"
)

type (
	Row struct {
		Label string
		Value string
	}
)

// RowsFromModel lists the rows the browser shows for a decoded model: one per
// scalar of a JSON save and one per segment of a Sworn save.
func RowsFromModel(model any) ([]Row, error) {
	switch m := model.(type) {
	case *orderedmap.OrderedMap:
		return lo.Map(
			ds.Flatten(m),
			func(leaf ds.Leaf, _ int) Row {
				return Row{
					Label: leaf.Path,
					Value: formatValue(leaf.Value),
				}
			},
		), nil
	case *sworn.Save:
		return lo.Map(
			m.Segments,
			func(segment sworn.Segment, _ int) Row {
				value := "-"
				if segment.Value != nil {
					value = strconv.FormatInt(*segment.Value, 10)
				}
				return Row{
					Label: fmt.Sprintf("#%d %s %q", segment.Index, segment.Category, segment.Text),
					Value: value,
				}
			},
		), nil
	default:
		return nil, ds.ErrUnreachableCode{Caller: fmt.Sprintf("RowsFromModel(%T)", model)}
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Package sworn reads and patches Sworn save files.
//
// A save is a one-byte header followed by segments framed by the delimiter
// D0 A0. A segment may carry a quoted nibble-encoded text label and a numeric
// value in its trailing "end marker". Encoding never re-serializes the file: it
// splices the edited values into the original bytes and leaves everything else
// untouched.
package sworn

import (
	"github.com/pkg/errors"
)

const Game = "sworn"

const (
	delimiterHigh byte = 0xD0
	delimiterLow  byte = 0xA0
	filler        byte = 0x02
	quote         byte = 0x22
	valueMarker   byte = 0xA3
	valueEnd      byte = 0xC2

	// valueLowNibble is the low nibble found on every digit byte of the
	// observed files. Decoding ignores it.
	valueLowNibble byte = 0x3
)

type Category string

const (
	CategoryAchievement Category = "achievement"
	CategoryCode        Category = "code"
	CategoryMedal       Category = "medal"
	CategoryPlayer      Category = "player"
	CategoryPurchase    Category = "purchase"
	CategoryDialog      Category = "dialog"
	CategorySaveState   Category = "save_state"
	CategoryTracked     Category = "tracked"
	CategoryBiome       Category = "biome"
	CategoryCurrency    Category = "currency"
	CategoryMetadata    Category = "metadata"
	CategorySeparator   Category = "separator"
	CategoryOther       Category = "other"
)

type (
	Save struct {
		FileHeader int       `json:"fileHeader"`
		Segments   []Segment `json:"segments"`
		// OriginalBlake3 is the hex BLAKE3-256 digest of the decoded file. Encode
		// refuses to patch any other file when it is set.
		OriginalBlake3 string `json:"originalBlake3,omitempty"`
	}

	// Segment is one delimited record. Index is its position in decode order and
	// is what Encode uses to find the record again in the original file.
	Segment struct {
		Index    int      `json:"index"`
		Category Category `json:"category"`
		Text     string   `json:"text"`
		Value    *int64   `json:"value"`
	}
)

var (
	ErrBaseMismatch  = errors.New("sworn: patch base is not the file the save was decoded from")
	ErrNegativeValue = errors.New("sworn: values must not be negative")
)

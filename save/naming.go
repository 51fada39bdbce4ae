package save

import (
	"path/filepath"
	"strings"
)

// OutputFileName is the name the game expects for an edited copy of path.
// Sworn only loads ".dat" files, so its extension is replaced; the other games
// keep the name.
func OutputFileName(game Game, path string) string {
	if game != GameSworn {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".dat"
}

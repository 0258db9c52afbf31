// Package levels embeds the shipped level files and resolves them by
// level number.
package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/milk9111/brickbreaker/level"
)

//go:embed *.yaml
var LevelsFS embed.FS

func fileName(number int) string {
	return fmt.Sprintf("level_%d.yaml", number)
}

// Exists reports whether a level file for the number is shipped.
func Exists(number int) bool {
	_, err := fs.Stat(LevelsFS, fileName(number))
	return err == nil
}

// Load reads and parses the level file for the number.
func Load(number int) (*level.Definition, error) {
	data, err := fs.ReadFile(LevelsFS, fileName(number))
	if err != nil {
		return nil, fmt.Errorf("levels: read level %d: %w", number, err)
	}
	def, err := level.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse level %d: %w", number, err)
	}
	return def, nil
}

// Count returns how many consecutive levels are shipped starting at 1.
func Count() int {
	n := 0
	for Exists(n + 1) {
		n++
	}
	return n
}

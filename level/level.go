// Package level parses serialized level definitions and normalizes them
// into the canonical grid plus a list of entity spawn intents.
package level

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/brickbreaker/common"
)

// Definition is the on-disk representation of one level. Every field
// except Number and Matrix is optional.
type Definition struct {
	Number      int       `yaml:"number"`
	Gravity     []float64 `yaml:"gravity,flow"`
	Matrix      [][]int   `yaml:"matrix"`
	Description string    `yaml:"description"`
	Author      string    `yaml:"author"`
}

// Parse decodes a level definition. Only a syntactically broken document is
// an error; malformed shape and missing fields are normalized later.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	return &def, nil
}

// GravityVector returns the per-level gravity override, zero when absent
// or short. Extra elements are ignored.
func (d *Definition) GravityVector() common.Vec3 {
	var v common.Vec3
	if d == nil {
		return v
	}
	if len(d.Gravity) > 0 {
		v.X = d.Gravity[0]
	}
	if len(d.Gravity) > 1 {
		v.Y = d.Gravity[1]
	}
	if len(d.Gravity) > 2 {
		v.Z = d.Gravity[2]
	}
	return v
}

var authorLinkPattern = regexp.MustCompile(`^\[([^\]]*)\]\([^)]*\)$`)

// DisplayAuthor extracts the author display name. A markdown-link form
// `[Name](url)` yields Name; anything else is returned as written. Blank
// values are absent.
func (d *Definition) DisplayAuthor() string {
	if d == nil {
		return ""
	}
	return displayName(d.Author)
}

// DisplayDescription returns the description, or "" when blank.
func (d *Definition) DisplayDescription() string {
	if d == nil {
		return ""
	}
	return strings.TrimSpace(d.Description)
}

func displayName(s string) string {
	s = strings.TrimSpace(s)
	if m := authorLinkPattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// Normalize pads or truncates a matrix to exactly GridHeight rows of
// GridWidth columns. Short rows are zero-padded, long rows truncated,
// missing rows all-zero. Cell values are clamped to the 0-255 tile range.
// The transform is pure and never fails.
func Normalize(matrix [][]int) [][]int {
	out := make([][]int, common.GridHeight)
	for r := range out {
		row := make([]int, common.GridWidth)
		if r < len(matrix) {
			for c := 0; c < common.GridWidth && c < len(matrix[r]); c++ {
				row[c] = clampCode(matrix[r][c])
			}
		}
		out[r] = row
	}
	return out
}

func clampCode(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

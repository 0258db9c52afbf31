package level

import (
	"testing"

	"github.com/milk9111/brickbreaker/common"
)

func TestNormalizeShape(t *testing.T) {
	cases := []struct {
		name   string
		matrix [][]int
	}{
		{"nil_matrix", nil},
		{"empty_matrix", [][]int{}},
		{"short_rows", [][]int{{20, 20}, {13}}},
		{"too_many_rows", make([][]int, common.GridHeight+5)},
		{"long_rows", [][]int{make([]int, common.GridWidth+10)}},
		{"ragged", [][]int{{1}, nil, {2, 3, 4}, {}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := Normalize(c.matrix)
			if len(out) != common.GridHeight {
				t.Fatalf("expected %d rows, got %d", common.GridHeight, len(out))
			}
			for r, row := range out {
				if len(row) != common.GridWidth {
					t.Fatalf("row %d: expected %d cols, got %d", r, common.GridWidth, len(row))
				}
			}
		})
	}
}

func TestNormalizePreservesAndClamps(t *testing.T) {
	matrix := [][]int{
		{20, -5, 300},
		{13},
	}
	out := Normalize(matrix)

	if out[0][0] != 20 {
		t.Fatalf("expected cell (0,0)=20, got %d", out[0][0])
	}
	if out[0][1] != 0 {
		t.Fatalf("negative code should clamp to 0, got %d", out[0][1])
	}
	if out[0][2] != 255 {
		t.Fatalf("oversized code should clamp to 255, got %d", out[0][2])
	}
	if out[1][0] != 13 {
		t.Fatalf("expected cell (1,0)=13, got %d", out[1][0])
	}
	if out[1][1] != 0 || out[19][19] != 0 {
		t.Fatalf("padded cells should be zero")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	matrix := [][]int{{1, 2, 20}, {13, 0, 91}}
	once := Normalize(matrix)
	twice := Normalize(once)
	for r := range once {
		for c := range once[r] {
			if once[r][c] != twice[r][c] {
				t.Fatalf("normalize not idempotent at (%d,%d): %d vs %d", r, c, once[r][c], twice[r][c])
			}
		}
	}
}

func TestBuildPlanFirstMarkerWins(t *testing.T) {
	matrix := make([][]int, common.GridHeight)
	for r := range matrix {
		matrix[r] = make([]int, common.GridWidth)
	}
	matrix[2][3] = 1
	matrix[5][5] = 1 // duplicate, ignored
	matrix[8][1] = 2
	matrix[8][7] = 2 // duplicate, ignored

	plan := BuildPlan(matrix)
	if plan.Ball == nil || *plan.Ball != (GridPos{Row: 2, Col: 3}) {
		t.Fatalf("expected ball at (2,3), got %v", plan.Ball)
	}
	if plan.Paddle == nil || *plan.Paddle != (GridPos{Row: 8, Col: 1}) {
		t.Fatalf("expected paddle at (8,1), got %v", plan.Paddle)
	}
	if len(plan.Bricks) != 0 {
		t.Fatalf("markers must not spawn bricks, got %d", len(plan.Bricks))
	}
}

func TestBuildPlanMarkersOnlyGrid(t *testing.T) {
	// a grid holding only spawn markers yields zero bricks and a zero
	// completion counter
	matrix := make([][]int, common.GridHeight)
	for r := range matrix {
		matrix[r] = make([]int, common.GridWidth)
	}
	matrix[0][0] = 1
	matrix[5][5] = 2

	plan := BuildPlan(matrix)
	if len(plan.Bricks) != 0 {
		t.Fatalf("expected no bricks, got %d", len(plan.Bricks))
	}
	if plan.RemainingBricks() != 0 {
		t.Fatalf("expected remaining counter 0, got %d", plan.RemainingBricks())
	}
}

func TestBuildPlanBrickAccounting(t *testing.T) {
	matrix := Normalize([][]int{
		{20, 13, 42, 90, 91, 25, 3},
	})
	plan := BuildPlan(matrix)

	if len(plan.Bricks) != 7 {
		t.Fatalf("expected 7 brick spawns, got %d", len(plan.Bricks))
	}
	// indestructible (90) and hazard (91) are excluded from completion
	if got := plan.RemainingBricks(); got != 5 {
		t.Fatalf("expected 5 completion-blocking bricks, got %d", got)
	}
	if plan.Bricks[0].Pos != (GridPos{Row: 0, Col: 0}) || plan.Bricks[0].Code != 20 {
		t.Fatalf("unexpected first spawn: %+v", plan.Bricks[0])
	}
}

func TestParseAndGravity(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want [3]float64
	}{
		{"full_vector", "number: 1\ngravity: [10, 20, 30]\n", [3]float64{10, 20, 30}},
		{"short_vector", "number: 1\ngravity: [5]\n", [3]float64{5, 0, 0}},
		{"absent", "number: 1\n", [3]float64{0, 0, 0}},
		{"extra_ignored", "number: 1\ngravity: [1, 2, 3, 4, 5]\n", [3]float64{1, 2, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			def, err := Parse([]byte(c.yaml))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			g := def.GravityVector()
			if g.X != c.want[0] || g.Y != c.want[1] || g.Z != c.want[2] {
				t.Fatalf("expected %v, got %+v", c.want, g)
			}
		})
	}
}

func TestParseRejectsBrokenDocument(t *testing.T) {
	if _, err := Parse([]byte("matrix: [\n")); err == nil {
		t.Fatalf("expected error for broken yaml")
	}
}

func TestDisplayAuthor(t *testing.T) {
	cases := []struct {
		name   string
		author string
		want   string
	}{
		{"markdown_link", "[Queer Milk](https://github.com/milk9111)", "Queer Milk"},
		{"plain_name", "Queer Milk", "Queer Milk"},
		{"whitespace_only", "   ", ""},
		{"empty", "", ""},
		{"link_with_padding", "  [ Ada ](http://example.com)  ", "Ada"},
		{"unclosed_bracket", "[Ada(http://example.com)", "[Ada(http://example.com)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := &Definition{Author: c.author}
			if got := d.DisplayAuthor(); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

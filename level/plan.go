package level

import (
	"github.com/milk9111/brickbreaker/brick"
)

// GridPos is a cell address in the normalized grid.
type GridPos struct {
	Row int
	Col int
}

// BrickSpawn is one brick intent resolved from the grid.
type BrickSpawn struct {
	Pos  GridPos
	Code int
}

// Plan is the set of entity spawn intents for a normalized grid. Ball and
// Paddle are nil when the grid carries no marker; the engine supplies
// default spawn positions in that case.
type Plan struct {
	Ball   *GridPos
	Paddle *GridPos
	Bricks []BrickSpawn
}

// BuildPlan scans a normalized grid in row-major order and resolves each
// tile code. Only the first ball and first paddle marker are honored;
// later occurrences are silently ignored.
func BuildPlan(grid [][]int) Plan {
	var plan Plan
	for r := range grid {
		for c := range grid[r] {
			code := grid[r][c]
			pos := GridPos{Row: r, Col: c}
			switch brick.KindOf(code) {
			case brick.KindEmpty:
			case brick.KindBallSpawn:
				if plan.Ball == nil {
					p := pos
					plan.Ball = &p
				}
			case brick.KindPaddleSpawn:
				if plan.Paddle == nil {
					p := pos
					plan.Paddle = &p
				}
			default:
				plan.Bricks = append(plan.Bricks, BrickSpawn{Pos: pos, Code: code})
			}
		}
	}
	return plan
}

// RemainingBricks counts the spawns that block level completion.
func (p Plan) RemainingBricks() int {
	n := 0
	for _, b := range p.Bricks {
		if brick.CountsTowardCompletion(b.Code) {
			n++
		}
	}
	return n
}

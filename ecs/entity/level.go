package entity

import (
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/level"
	"github.com/milk9111/brickbreaker/prefabs"
)

// Default spawn cells used when a level carries no marker.
var (
	DefaultBallSpawn   = level.GridPos{Row: 12, Col: common.GridWidth / 2}
	DefaultPaddleSpawn = level.GridPos{Row: common.GridHeight - 2, Col: common.GridWidth / 2}
)

// LoadLevelToWorld normalizes a level definition and spawns everything it
// describes: the session entity, every brick, the ball, and the paddle.
// Score and lives seed the session so they survive level changes.
func LoadLevelToWorld(w *ecs.World, def *level.Definition, spec *prefabs.GameSpec, score, lives int) error {
	plan := level.BuildPlan(level.Normalize(def.Matrix))

	if _, err := NewSession(w, def, plan, score, lives); err != nil {
		return err
	}

	for _, spawn := range plan.Bricks {
		if _, err := NewBrick(w, spawn, spec); err != nil {
			return err
		}
	}

	ballPos := DefaultBallSpawn
	if plan.Ball != nil {
		ballPos = *plan.Ball
	}
	if _, err := NewBall(w, ballPos, spec); err != nil {
		return err
	}

	paddlePos := DefaultPaddleSpawn
	if plan.Paddle != nil {
		paddlePos = *plan.Paddle
	}
	if _, err := NewPaddle(w, paddlePos, spec); err != nil {
		return err
	}

	return nil
}

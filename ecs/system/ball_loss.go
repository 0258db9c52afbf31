package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// BallLossSystem detects the ball leaving the bottom of the arena, emits
// the life-lost signal, and puts the ball back on its spawn point.
type BallLossSystem struct{}

func NewBallLossSystem() *BallLossSystem { return &BallLossSystem{} }

func (s *BallLossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BallComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, b *component.Ball, body *component.PhysicsBody) {
		if body.Body == nil {
			return
		}
		if body.Body.Position().Y < float64(common.BaseHeight)+common.TileSize {
			return
		}

		w.Events().Push(ecs.EventLifeLost, ecs.LifeLost{Cause: "ball_lost"})

		body.Body.SetPosition(cp.Vector{X: b.SpawnX, Y: b.SpawnY})
		body.Body.SetVelocity(b.Speed*0.45, -b.Speed)
	})
}

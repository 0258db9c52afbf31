package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// paddleAccel is the per-cycle lerp factor toward the target velocity.
const paddleAccel = 0.45

// PaddleControlSystem moves the kinematic paddle from keyboard input and
// clamps it inside the arena.
type PaddleControlSystem struct{}

func NewPaddleControlSystem() *PaddleControlSystem { return &PaddleControlSystem{} }

// paddleVelocity eases the current velocity toward the input target so the
// paddle ramps instead of snapping.
func paddleVelocity(current, target float64) float64 {
	return common.Lerp(current, target, paddleAccel)
}

func (s *PaddleControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}

	ecs.ForEach2(w, component.PaddleComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Paddle, body *component.PhysicsBody) {
		if body.Body == nil {
			return
		}
		body.Body.SetVelocity(paddleVelocity(body.Body.Velocity().X, moveX*p.Speed), 0)

		pos := body.Body.Position()
		clamped := common.Clamp(pos.X, p.Width/2, float64(common.BaseWidth)-p.Width/2)
		if clamped != pos.X {
			body.Body.SetPosition(cp.Vector{X: clamped, Y: pos.Y})
			body.Body.SetVelocity(0, 0)
		}
	})
}

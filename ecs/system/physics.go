package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// PhysicsSystem steps the Chipmunk space and mirrors body positions back
// into transforms. Collision handlers record contact pairs during the
// step; the brick collision pass drains them afterwards.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	return &PhysicsSystem{dt: dt}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(s.dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil {
			return
		}
		pos := body.Body.Position()
		if body.Radius > 0 {
			t.X = pos.X - body.Radius
			t.Y = pos.Y - body.Radius
			return
		}
		t.X = pos.X - body.Width/2
		t.Y = pos.Y - body.Height/2
	})
}

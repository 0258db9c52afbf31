package entity

import (
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/ecs/render"
	"github.com/milk9111/brickbreaker/level"
	"github.com/milk9111/brickbreaker/prefabs"
)

// NewBall spawns the ball at the center of its grid cell and launches it
// upward at the configured speed.
func NewBall(w *ecs.World, pos level.GridPos, spec *prefabs.GameSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	cx := float64(pos.Col*common.TileSize) + common.TileSize/2
	cy := float64(pos.Row*common.TileSize) + common.TileSize/2
	radius := spec.Ball.Radius

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: cx - radius, Y: cy - radius, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.BallComponent.Kind(), &component.Ball{
		SpawnX: cx,
		SpawnY: cy,
		Radius: radius,
		Speed:  spec.Ball.Speed,
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image: render.BallImage(spec.Ball),
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 2}); err != nil {
		return 0, err
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body := pw.AddBall(e, cx, cy, radius)
		body.SetVelocity(spec.Ball.Speed*0.45, -spec.Ball.Speed)
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Radius: radius}); err != nil {
			return 0, err
		}
	}

	return e, nil
}

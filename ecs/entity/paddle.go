package entity

import (
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/ecs/render"
	"github.com/milk9111/brickbreaker/level"
	"github.com/milk9111/brickbreaker/prefabs"
)

// NewPaddle spawns the kinematic paddle centered on its grid cell.
func NewPaddle(w *ecs.World, pos level.GridPos, spec *prefabs.GameSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	width := spec.Paddle.Width
	height := spec.Paddle.Height
	x := float64(pos.Col*common.TileSize) + common.TileSize/2 - width/2
	y := float64(pos.Row * common.TileSize)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.PaddleComponent.Kind(), &component.Paddle{
		Width:  width,
		Height: height,
		Speed:  spec.Paddle.Speed,
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image: render.PaddleImage(spec.Paddle),
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 2}); err != nil {
		return 0, err
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body := pw.AddPaddle(e, x, y, width, height)
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Width: width, Height: height}); err != nil {
			return 0, err
		}
	}

	return e, nil
}

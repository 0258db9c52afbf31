package entity

import (
	"github.com/milk9111/brickbreaker/brick"
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/ecs/render"
	"github.com/milk9111/brickbreaker/level"
	"github.com/milk9111/brickbreaker/prefabs"
)

// NewBrick spawns a brick entity at its grid cell and registers its static
// collision shape.
func NewBrick(w *ecs.World, spawn level.BrickSpawn, spec *prefabs.GameSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	x := float64(spawn.Pos.Col * common.TileSize)
	y := float64(spawn.Pos.Row * common.TileSize)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.BrickComponent.Kind(), &component.Brick{
		Code:   spawn.Code,
		Row:    spawn.Pos.Row,
		Col:    spawn.Pos.Col,
		Counts: brick.CountsTowardCompletion(spawn.Code),
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image: render.BrickImage(spawn.Code, spec.Bricks),
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1}); err != nil {
		return 0, err
	}

	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddBrick(e, x, y, common.TileSize, common.TileSize)
	}

	return e, nil
}

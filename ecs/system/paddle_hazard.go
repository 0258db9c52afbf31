package system

import (
	"github.com/milk9111/brickbreaker/brick"
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// PaddleHazardSystem checks paddle-brick overlap independently of ball
// collisions. Touching a hazard or scoring brick costs a life; the brick
// survives. At most one life-lost signal fires per cycle no matter how
// many hazardous bricks the paddle overlaps at once.
type PaddleHazardSystem struct{}

func NewPaddleHazardSystem() *PaddleHazardSystem { return &PaddleHazardSystem{} }

type hazardAABB struct {
	x float64
	y float64
	w float64
	h float64
}

func overlapsAABB(a, b hazardAABB) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y
}

func (s *PaddleHazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	paddleEntity, ok := ecs.First(w, component.PaddleComponent.Kind())
	if !ok {
		return
	}
	p, pok := ecs.Get(w, paddleEntity, component.PaddleComponent.Kind())
	t, tok := ecs.Get(w, paddleEntity, component.TransformComponent.Kind())
	if !pok || !tok {
		return
	}
	paddleBox := hazardAABB{x: t.X, y: t.Y, w: p.Width, h: p.Height}

	// one-shot guard, reset each cycle
	fired := false
	ecs.ForEach2(w, component.BrickComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Brick, bt *component.Transform) {
		if fired || !brick.HazardousToPaddle(b.Code) {
			return
		}
		brickBox := hazardAABB{x: bt.X, y: bt.Y, w: common.TileSize, h: common.TileSize}
		if overlapsAABB(paddleBox, brickBox) {
			fired = true
			w.Events().Push(ecs.EventLifeLost, ecs.LifeLost{Cause: "hazard_brick"})
		}
	})
}

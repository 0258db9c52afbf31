package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// RenderSystem draws every sprite-carrying entity, sorted by render layer
// then entity id for a deterministic draw order.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem { return &RenderSystem{} }

// Update is a no-op; rendering happens in Draw.
func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind().ID(), component.SpriteComponent.Kind().ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		if t.Rotation != 0 {
			op.GeoM.Rotate(t.Rotation)
		}
		op.GeoM.Translate(t.X, t.Y)
		screen.DrawImage(s.Image, op)
	}
}

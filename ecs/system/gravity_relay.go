package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// GravityRelaySystem decouples gravity production from consumption. It
// walks the cycle's signals in emission order: each gravity-change request
// overwrites the current gravity (last writer wins), and any life-lost
// signal restores the level default. The resulting vector is pushed into
// the physics space every cycle.
type GravityRelaySystem struct{}

func NewGravityRelaySystem() *GravityRelaySystem { return &GravityRelaySystem{} }

func (s *GravityRelaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := ecs.First(w, component.GravityConfigComponent.Kind())
	if !ok {
		return
	}
	cfg, ok := ecs.Get(w, e, component.GravityConfigComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range w.Events().Items() {
		switch evt.Type {
		case ecs.EventGravityChanged:
			if data, ok := evt.Data.(ecs.GravityChanged); ok {
				cfg.Current = data.Gravity
			}
		case ecs.EventLifeLost:
			cfg.Current = cfg.LevelDefault
		}
	}

	if pw := w.PhysicsWorld(); pw != nil {
		pw.SetGravity(cfg.Current)
	}
}

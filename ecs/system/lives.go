package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// LivesSystem consumes the cycle's life-lost signals, whatever their
// cause, and decrements the remaining-life counter. Runs after every
// system that can emit life-lost and before the cycle's queue flush.
type LivesSystem struct{}

func NewLivesSystem() *LivesSystem { return &LivesSystem{} }

func (s *LivesSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := ecs.First(w, component.LivesComponent.Kind())
	if !ok {
		return
	}
	lives, ok := ecs.Get(w, e, component.LivesComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range w.Events().Items() {
		if evt.Type != ecs.EventLifeLost {
			continue
		}
		if lives.Remaining > 0 {
			lives.Remaining--
		}
	}
}

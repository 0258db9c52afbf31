package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// CompletionSystem watches the remaining-brick counter and marks the level
// complete the first cycle it reaches zero. Indestructible and hazard
// bricks never count, so a level shipping only those is complete on load.
type CompletionSystem struct{}

func NewCompletionSystem() *CompletionSystem { return &CompletionSystem{} }

func (s *CompletionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Get(w, e, component.LevelStateComponent.Kind())
	if !ok || state.Complete {
		return
	}

	if state.RemainingBricks <= 0 {
		state.Complete = true
		w.Events().Push(ecs.EventLevelComplete, ecs.LevelComplete{Number: state.Number})
	}
}

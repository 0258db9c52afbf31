package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// ScoreSystem accumulates the score payloads carried by the cycle's
// brick-destroyed signals.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem { return &ScoreSystem{} }

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	score, ok := ecs.Get(w, e, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range w.Events().Items() {
		if evt.Type != ecs.EventBrickDestroyed {
			continue
		}
		if data, ok := evt.Data.(ecs.BrickDestroyed); ok {
			score.Points += data.Score
		}
	}
}

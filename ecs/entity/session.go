package entity

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/level"
)

// NewSession creates the simulation entity owning the per-level shared
// state: gravity configuration, the remaining-brick counter, score, and
// lives. Score and lives carry over between levels.
func NewSession(w *ecs.World, def *level.Definition, plan level.Plan, score, lives int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	gravity := def.GravityVector()
	if err := ecs.Add(w, e, component.GravityConfigComponent.Kind(), &component.GravityConfig{
		Current:      gravity,
		LevelDefault: gravity,
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.LevelStateComponent.Kind(), &component.LevelState{
		Number:          def.Number,
		RemainingBricks: plan.RemainingBricks(),
	}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{Points: score}); err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.LivesComponent.Kind(), &component.Lives{Remaining: lives}); err != nil {
		return 0, err
	}

	return e, nil
}

package system

import (
	"math/rand"

	"github.com/milk9111/brickbreaker/brick"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/ecs/render"
	"github.com/milk9111/brickbreaker/prefabs"
)

// BrickCollisionSystem drains the cycle's ball-brick contact pairs and
// drives the brick state machine: multi-hit stage decrement, destruction,
// scoring payloads, and gravity-change emission. The rand source feeds the
// queer brick and is injected so outcomes are reproducible under test.
type BrickCollisionSystem struct {
	rng  *rand.Rand
	spec *prefabs.GameSpec
}

func NewBrickCollisionSystem(rng *rand.Rand, spec *prefabs.GameSpec) *BrickCollisionSystem {
	return &BrickCollisionSystem{rng: rng, spec: spec}
}

func (s *BrickCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	var state *component.LevelState
	if e, ok := ecs.First(w, component.LevelStateComponent.Kind()); ok {
		state, _ = ecs.Get(w, e, component.LevelStateComponent.Kind())
	}

	for _, c := range pw.DrainContacts() {
		if c.Kind != ecs.ContactBallBrick {
			continue
		}
		e := c.Brick
		if !ecs.IsAlive(w, e) {
			continue
		}
		b, ok := ecs.Get(w, e, component.BrickComponent.Kind())
		if !ok {
			continue
		}

		switch brick.KindOf(b.Code) {
		case brick.KindMultiHit:
			b.Code = brick.NextStage(b.Code)
			s.refreshAppearance(w, e, b.Code)
			w.Events().Push(ecs.EventBrickDamaged, ecs.BrickDamaged{Brick: e, Code: b.Code})

		case brick.KindSimple, brick.KindCustom:
			s.destroy(w, e, b, state, 0)

		case brick.KindScoring:
			s.destroy(w, e, b, state, brick.ScoringBonus)

		case brick.KindGravity:
			if g, ok := brick.GravityFor(b.Code, s.rng); ok {
				w.Events().Push(ecs.EventGravityChanged, ecs.GravityChanged{Gravity: g})
			}
			s.destroy(w, e, b, state, 0)

		case brick.KindIndestructible, brick.KindHazard:
			// the ball just bounces
		}
	}
}

func (s *BrickCollisionSystem) destroy(w *ecs.World, e ecs.Entity, b *component.Brick, state *component.LevelState, score int) {
	if pw := w.PhysicsWorld(); pw != nil {
		pw.RemoveBrick(e)
	}
	if state != nil && b.Counts {
		state.RemainingBricks--
	}
	w.Events().Push(ecs.EventBrickDestroyed, ecs.BrickDestroyed{Brick: e, Code: b.Code, Score: score})
	ecs.DestroyEntity(w, e)
}

func (s *BrickCollisionSystem) refreshAppearance(w *ecs.World, e ecs.Entity, code int) {
	if s.spec == nil {
		return
	}
	if spr, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		spr.Image = render.BrickImage(code, s.spec.Bricks)
	}
}

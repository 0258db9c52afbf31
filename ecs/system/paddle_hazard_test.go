package system

import (
	"testing"

	"github.com/milk9111/brickbreaker/brick"
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

func spawnTestPaddle(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PaddleComponent.Kind(), &component.Paddle{
		Width:  96,
		Height: 16,
		Speed:  420,
	}); err != nil {
		t.Fatalf("add paddle: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: x, Y: y, ScaleX: 1, ScaleY: 1,
	}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func TestPaddleHazardCostsOneLife(t *testing.T) {
	w := newTestWorld(t, 0, 3, common.Vec3{})
	rec := &eventRecorder{}
	w.AddSystem(NewPaddleHazardSystem())
	w.AddSystem(NewLivesSystem())
	w.AddSystem(rec)

	// paddle directly on top of the hazard cell
	hazard := spawnTestBrick(t, w, brick.CodeHazard, 5, 5)
	spawnTestPaddle(t, w, 5*common.TileSize, 5*common.TileSize)

	w.Update()

	if rec.countType(ecs.EventLifeLost) != 1 {
		t.Fatalf("expected one life-lost event, got %d", rec.countType(ecs.EventLifeLost))
	}
	if got := sessionLives(t, w).Remaining; got != 2 {
		t.Fatalf("expected 2 lives, got %d", got)
	}
	if !ecs.IsAlive(w, hazard) {
		t.Fatalf("hazard brick must survive paddle contact")
	}
}

func TestPaddleHazardAtMostOnePerCycle(t *testing.T) {
	w := newTestWorld(t, 0, 3, common.Vec3{})
	rec := &eventRecorder{}
	w.AddSystem(NewPaddleHazardSystem())
	w.AddSystem(NewLivesSystem())
	w.AddSystem(rec)

	// two adjacent hazardous bricks, both overlapping the paddle box
	spawnTestBrick(t, w, brick.CodeHazard, 5, 5)
	spawnTestBrick(t, w, brick.CodeScoring, 5, 6)
	spawnTestPaddle(t, w, 5*common.TileSize, 5*common.TileSize)

	w.Update()

	if rec.countType(ecs.EventLifeLost) != 1 {
		t.Fatalf("overlapping two hazards must still cost exactly one life, got %d events", rec.countType(ecs.EventLifeLost))
	}
	if got := sessionLives(t, w).Remaining; got != 2 {
		t.Fatalf("expected 2 lives, got %d", got)
	}
}

func TestPaddleHazardIgnoresSafeBricks(t *testing.T) {
	w := newTestWorld(t, 0, 3, common.Vec3{})
	rec := &eventRecorder{}
	w.AddSystem(NewPaddleHazardSystem())
	w.AddSystem(rec)

	spawnTestBrick(t, w, brick.CodeSimple, 5, 5)
	spawnTestBrick(t, w, brick.CodeIndestructible, 5, 6)
	spawnTestPaddle(t, w, 5*common.TileSize, 5*common.TileSize)

	w.Update()

	if len(rec.events) != 0 {
		t.Fatalf("safe bricks must not emit, got %d events", len(rec.events))
	}
}

func TestPaddleHazardNoOverlap(t *testing.T) {
	w := newTestWorld(t, 0, 3, common.Vec3{})
	rec := &eventRecorder{}
	w.AddSystem(NewPaddleHazardSystem())
	w.AddSystem(rec)

	spawnTestBrick(t, w, brick.CodeHazard, 2, 2)
	spawnTestPaddle(t, w, 15*common.TileSize, 18*common.TileSize)

	w.Update()

	if len(rec.events) != 0 {
		t.Fatalf("distant hazard must not emit, got %d events", len(rec.events))
	}
}

func TestLivesFloorAtZero(t *testing.T) {
	w := newTestWorld(t, 0, 1, common.Vec3{})
	w.AddSystem(&pusher{events: []ecs.Event{
		{Type: ecs.EventLifeLost, Data: ecs.LifeLost{Cause: "ball_lost"}},
		{Type: ecs.EventLifeLost, Data: ecs.LifeLost{Cause: "hazard_brick"}},
		{Type: ecs.EventLifeLost, Data: ecs.LifeLost{Cause: "ball_lost"}},
	}})
	w.AddSystem(NewLivesSystem())

	w.Update()

	if got := sessionLives(t, w).Remaining; got != 0 {
		t.Fatalf("lives must floor at zero, got %d", got)
	}
}

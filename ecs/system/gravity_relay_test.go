package system

import (
	"testing"

	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
)

// pusher emits a fixed event sequence on its first update.
type pusher struct {
	events []ecs.Event
	done   bool
}

func (p *pusher) Update(w *ecs.World) {
	if p.done {
		return
	}
	p.done = true
	for _, evt := range p.events {
		w.Events().Push(evt.Type, evt.Data)
	}
}

func TestGravityRelayLastWriterWins(t *testing.T) {
	levelDefault := common.Vec3{Z: 50}
	a := common.Vec3{X: -400}
	b := common.Vec3{X: 400}

	cases := []struct {
		name   string
		events []ecs.Event
		want   common.Vec3
	}{
		{
			name: "single_change",
			events: []ecs.Event{
				{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: a}},
			},
			want: a,
		},
		{
			name: "a_then_b",
			events: []ecs.Event{
				{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: a}},
				{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: b}},
			},
			want: b,
		},
		{
			name: "change_then_life_lost",
			events: []ecs.Event{
				{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: a}},
				{Type: ecs.EventLifeLost, Data: ecs.LifeLost{Cause: "ball_lost"}},
			},
			want: levelDefault,
		},
		{
			name: "life_lost_then_change",
			events: []ecs.Event{
				{Type: ecs.EventLifeLost, Data: ecs.LifeLost{Cause: "ball_lost"}},
				{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: b}},
			},
			want: b,
		},
		{
			name:   "no_events_keeps_default",
			events: nil,
			want:   levelDefault,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, 0, 3, levelDefault)
			w.AddSystem(&pusher{events: c.events})
			w.AddSystem(NewGravityRelaySystem())

			w.Update()

			cfg := sessionGravity(t, w)
			if cfg.Current != c.want {
				t.Fatalf("expected current gravity %+v, got %+v", c.want, cfg.Current)
			}
			if cfg.LevelDefault != levelDefault {
				t.Fatalf("level default must never change, got %+v", cfg.LevelDefault)
			}
		})
	}
}

func TestGravityRelayPushesIntoPhysics(t *testing.T) {
	w := newTestWorld(t, 0, 3, common.Vec3{})
	want := common.Vec3{X: 400, Z: -100}
	w.AddSystem(&pusher{events: []ecs.Event{
		{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: want}},
	}})
	w.AddSystem(NewGravityRelaySystem())

	w.Update()

	if got := w.PhysicsWorld().Gravity(); got != want {
		t.Fatalf("expected physics gravity %+v, got %+v", want, got)
	}
}

func TestGravityRelayChangeSurvivesCycles(t *testing.T) {
	levelDefault := common.Vec3{Z: 50}
	changed := common.Vec3{X: -400}

	w := newTestWorld(t, 0, 3, levelDefault)
	w.AddSystem(&pusher{events: []ecs.Event{
		{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: changed}},
	}})
	w.AddSystem(NewGravityRelaySystem())

	// the pusher only fires on the first cycle; later cycles carry no
	// events and must keep the changed vector
	for i := 0; i < 3; i++ {
		w.Update()
	}

	if got := sessionGravity(t, w).Current; got != changed {
		t.Fatalf("gravity change should persist across cycles, got %+v", got)
	}
}

func TestGravityRelayResetOnLifeLostAnyCause(t *testing.T) {
	for _, cause := range []string{"ball_lost", "hazard_brick"} {
		w := newTestWorld(t, 0, 3, common.Vec3{Z: 50})
		cfg := sessionGravity(t, w)
		cfg.Current = common.Vec3{X: 999}

		w.AddSystem(&pusher{events: []ecs.Event{
			{Type: ecs.EventLifeLost, Data: ecs.LifeLost{Cause: cause}},
		}})
		w.AddSystem(NewGravityRelaySystem())

		w.Update()

		if cfg.Current != cfg.LevelDefault {
			t.Fatalf("cause %q: expected reset to %+v, got %+v", cause, cfg.LevelDefault, cfg.Current)
		}
	}
}

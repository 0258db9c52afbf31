package system

import (
	"math"
	"testing"
)

func TestPaddleVelocityEasesTowardTarget(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		target  float64
	}{
		{"accelerate_right", 0, 420},
		{"accelerate_left", 0, -420},
		{"decelerate", 420, 0},
		{"reverse", 420, -420},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := paddleVelocity(c.current, c.target)
			// each step must move strictly toward the target without
			// overshooting it
			if math.Abs(c.target-v) >= math.Abs(c.target-c.current) {
				t.Fatalf("velocity did not approach target: %v -> %v (target %v)", c.current, v, c.target)
			}
			if (c.target-v)*(c.target-c.current) < 0 {
				t.Fatalf("velocity overshot target: %v -> %v (target %v)", c.current, v, c.target)
			}
		})
	}
}

func TestPaddleVelocityConverges(t *testing.T) {
	v := 0.0
	target := 420.0
	for i := 0; i < 60; i++ {
		v = paddleVelocity(v, target)
	}
	if math.Abs(target-v) > 1 {
		t.Fatalf("velocity should converge on the target within a second, got %v", v)
	}
	if at := paddleVelocity(target, target); at != target {
		t.Fatalf("velocity at target must stay put, got %v", at)
	}
}

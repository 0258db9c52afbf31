package prefabs

import "testing"

func TestGameSpecDefaults(t *testing.T) {
	var s GameSpec
	s.applyDefaults()

	if s.Lives != 3 {
		t.Fatalf("expected default lives 3, got %d", s.Lives)
	}
	if s.Paddle.Width != 96 || s.Paddle.Height != 16 || s.Paddle.Speed != 420 {
		t.Fatalf("unexpected paddle defaults: %+v", s.Paddle)
	}
	if s.Ball.Radius != 8 || s.Ball.Speed != 300 {
		t.Fatalf("unexpected ball defaults: %+v", s.Ball)
	}
}

func TestGameSpecDefaultsKeepExplicitValues(t *testing.T) {
	s := GameSpec{Lives: 5, Paddle: PaddleSpec{Width: 128}}
	s.applyDefaults()

	if s.Lives != 5 {
		t.Fatalf("explicit lives overwritten: %d", s.Lives)
	}
	if s.Paddle.Width != 128 {
		t.Fatalf("explicit paddle width overwritten: %v", s.Paddle.Width)
	}
	// unset fields still get defaults
	if s.Paddle.Speed != 420 {
		t.Fatalf("expected default speed 420, got %v", s.Paddle.Speed)
	}
}

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if spec.Lives <= 0 {
		t.Fatalf("expected positive lives, got %d", spec.Lives)
	}
	if len(spec.Bricks.Palette) == 0 {
		t.Fatalf("shipped prefab should carry a brick palette")
	}
	// the reserved codes every shipped level uses must be mapped
	for _, code := range []int{20, 13, 42, 90, 91} {
		if _, ok := spec.Bricks.Palette[code]; !ok {
			t.Fatalf("palette missing reserved code %d", code)
		}
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"game.yaml", "game.yaml"},
		{"prefabs/game.yaml", "game.yaml"},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

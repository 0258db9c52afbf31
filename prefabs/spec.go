package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and decodes a prefab YAML file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PaddleSpec tunes the player paddle.
type PaddleSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// BallSpec tunes the ball.
type BallSpec struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// BrickSetSpec is the appearance registry for brick type ids. Unlisted ids
// render with the debug fallback color.
type BrickSetSpec struct {
	Default string         `yaml:"default"`
	Palette map[int]string `yaml:"palette"`
}

// GameSpec is the root gameplay prefab.
type GameSpec struct {
	Name   string       `yaml:"name"`
	Lives  int          `yaml:"lives"`
	Paddle PaddleSpec   `yaml:"paddle"`
	Ball   BallSpec     `yaml:"ball"`
	Bricks BrickSetSpec `yaml:"bricks"`
}

// GameSpecFile is the prefab the game boots from.
const GameSpecFile = "game.yaml"

// LoadGameSpec loads the root gameplay prefab and fills in defaults for
// anything the file leaves unset.
func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameSpecFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.Lives <= 0 {
		s.Lives = 3
	}
	if s.Paddle.Width <= 0 {
		s.Paddle.Width = 96
	}
	if s.Paddle.Height <= 0 {
		s.Paddle.Height = 16
	}
	if s.Paddle.Speed <= 0 {
		s.Paddle.Speed = 420
	}
	if s.Ball.Radius <= 0 {
		s.Ball.Radius = 8
	}
	if s.Ball.Speed <= 0 {
		s.Ball.Speed = 300
	}
}

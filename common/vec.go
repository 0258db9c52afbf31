package common

// Vec3 is a world-space vector. The ball rolls in the X/Z plane; Y is the
// vertical axis and is ignored by the 2D simulation.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

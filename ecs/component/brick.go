package component

// Brick is the state of one spawned brick. Code is the current tile code;
// multi-hit stages mutate it in place. Counts marks whether the brick
// blocks level completion (false for indestructible and hazard bricks).
type Brick struct {
	Code   int
	Row    int
	Col    int
	Counts bool
}

var BrickComponent = NewComponent[Brick]()

package component

// Ball carries the ball's spawn point and launch speed so it can respawn
// after a lost life.
type Ball struct {
	SpawnX float64
	SpawnY float64
	Radius float64
	Speed  float64
}

var BallComponent = NewComponent[Ball]()

package component

import "github.com/milk9111/brickbreaker/common"

// GravityConfig is the per-level gravity state, owned by the simulation
// entity. Current drives the physics space; LevelDefault is the level's
// configured gravity (zero when the level file had none) and is restored
// whenever a life is lost.
type GravityConfig struct {
	Current      common.Vec3
	LevelDefault common.Vec3
}

var GravityConfigComponent = NewComponent[GravityConfig]()

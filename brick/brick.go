// Package brick defines the closed tile-code vocabulary of level grids and
// the per-kind gameplay rules: completion eligibility, multi-hit stage
// progression, scoring bonuses, and gravity payloads.
package brick

import (
	"math/rand"

	"github.com/milk9111/brickbreaker/common"
)

// Tile codes. Any other value >= CodeLegacySimple is a custom brick type
// whose appearance comes from the texture registry.
const (
	CodeEmpty        = 0
	CodeBallSpawn    = 1
	CodePaddleSpawn  = 2
	CodeLegacySimple = 3 // auto-migrated to CodeSimple by tooling

	CodeMultiHitMin = 10
	CodeMultiHitMax = 13

	CodeSimple = 20

	CodeGravityWest  = 21
	CodeGravityEast  = 22
	CodeGravityNorth = 23
	CodeGravitySouth = 24
	CodeQueer        = 25 // random gravity, sampled at destruction time

	CodeScoring = 42

	CodeIndestructible = 90
	CodeHazard         = 91
)

// ScoringBonus is the fixed point award for destroying a scoring brick.
const ScoringBonus = 90

// Kind is the closed behavioral classification of a tile code.
type Kind int

const (
	KindEmpty Kind = iota
	KindBallSpawn
	KindPaddleSpawn
	KindSimple
	KindMultiHit
	KindGravity
	KindScoring
	KindIndestructible
	KindHazard
	KindCustom
)

// KindOf classifies a tile code. Unreserved codes >= 3 are custom bricks:
// they spawn, count toward completion, and die like simple bricks.
func KindOf(code int) Kind {
	switch {
	case code == CodeEmpty:
		return KindEmpty
	case code == CodeBallSpawn:
		return KindBallSpawn
	case code == CodePaddleSpawn:
		return KindPaddleSpawn
	case code == CodeLegacySimple || code == CodeSimple:
		return KindSimple
	case code >= CodeMultiHitMin && code <= CodeMultiHitMax:
		return KindMultiHit
	case code >= CodeGravityWest && code <= CodeQueer:
		return KindGravity
	case code == CodeScoring:
		return KindScoring
	case code == CodeIndestructible:
		return KindIndestructible
	case code == CodeHazard:
		return KindHazard
	case code >= CodeLegacySimple:
		return KindCustom
	default:
		return KindEmpty
	}
}

// Spawns reports whether the code produces a brick entity.
func Spawns(code int) bool {
	switch KindOf(code) {
	case KindEmpty, KindBallSpawn, KindPaddleSpawn:
		return false
	}
	return true
}

// CountsTowardCompletion reports whether the brick blocks level completion.
// Only indestructible and hazard bricks are excluded.
func CountsTowardCompletion(code int) bool {
	k := KindOf(code)
	return Spawns(code) && k != KindIndestructible && k != KindHazard
}

// NextStage returns the code a multi-hit brick mutates to when hit. The
// lowest stage becomes a simple brick.
func NextStage(code int) int {
	if KindOf(code) != KindMultiHit {
		return code
	}
	if code == CodeMultiHitMin {
		return CodeSimple
	}
	return code - 1
}

// Durability returns how many ball hits the code survives before despawn.
func Durability(code int) int {
	switch KindOf(code) {
	case KindMultiHit:
		return code - CodeMultiHitMin + 2
	case KindIndestructible, KindHazard:
		return 0 // never despawns
	default:
		return 1
	}
}

// HazardousToPaddle reports whether paddle contact costs a life.
func HazardousToPaddle(code int) bool {
	k := KindOf(code)
	return k == KindHazard || k == KindScoring
}

const gravityMagnitude = 400.0

// Queer gravity sampling bounds, per axis. The X axis uses a wide
// asymmetric range, the Z axis a symmetric one; vertical Y stays zero.
const (
	QueerMinX = -900.0
	QueerMaxX = 300.0
	QueerMinZ = -300.0
	QueerMaxZ = 300.0
)

// GravityFor returns the gravity vector a destroyed gravity brick emits.
// The queer brick samples each axis independently from rng.
func GravityFor(code int, rng *rand.Rand) (common.Vec3, bool) {
	switch code {
	case CodeGravityWest:
		return common.Vec3{X: -gravityMagnitude}, true
	case CodeGravityEast:
		return common.Vec3{X: gravityMagnitude}, true
	case CodeGravityNorth:
		return common.Vec3{Z: -gravityMagnitude}, true
	case CodeGravitySouth:
		return common.Vec3{Z: gravityMagnitude}, true
	case CodeQueer:
		if rng == nil {
			return common.Vec3{}, true
		}
		return common.Vec3{
			X: QueerMinX + rng.Float64()*(QueerMaxX-QueerMinX),
			Z: QueerMinZ + rng.Float64()*(QueerMaxZ-QueerMinZ),
		}, true
	default:
		return common.Vec3{}, false
	}
}

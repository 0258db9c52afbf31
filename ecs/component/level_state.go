package component

// LevelState tracks the loaded level and its remaining-brick counter.
// RemainingBricks only counts bricks whose Counts flag is set; a level of
// nothing but indestructible bricks starts already complete.
type LevelState struct {
	Number          int
	RemainingBricks int
	Complete        bool
}

var LevelStateComponent = NewComponent[LevelState]()

package component

// HUDText marks the screen-space text entity the HUD system redraws when
// score or lives change.
type HUDText struct {
	Rendered string
}

var HUDTextComponent = NewComponent[HUDText]()

package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

const (
	hudPaddingX = 8.0
	hudPaddingY = 6.0
	hudTextW    = 288
	hudTextH    = 16
)

// HUDSystem keeps one screen-space text entity showing score, lives, and
// level number, re-rendering its sprite only when the text changes.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

func (s *HUDSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	score := 0
	lives := 0
	number := 0
	if e, ok := ecs.First(w, component.ScoreComponent.Kind()); ok {
		if sc, ok := ecs.Get(w, e, component.ScoreComponent.Kind()); ok {
			score = sc.Points
		}
		if l, ok := ecs.Get(w, e, component.LivesComponent.Kind()); ok {
			lives = l.Remaining
		}
		if st, ok := ecs.Get(w, e, component.LevelStateComponent.Kind()); ok {
			number = st.Number
		}
	}

	hudEntity, ok := ecs.First(w, component.HUDTextComponent.Kind())
	if !ok {
		hudEntity = ecs.CreateEntity(w)
		_ = ecs.Add(w, hudEntity, component.HUDTextComponent.Kind(), &component.HUDText{})
		_ = ecs.Add(w, hudEntity, component.TransformComponent.Kind(), &component.Transform{X: hudPaddingX, Y: hudPaddingY, ScaleX: 1, ScaleY: 1})
		_ = ecs.Add(w, hudEntity, component.SpriteComponent.Kind(), &component.Sprite{})
		_ = ecs.Add(w, hudEntity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 10})
	}

	hud, hok := ecs.Get(w, hudEntity, component.HUDTextComponent.Kind())
	spr, sok := ecs.Get(w, hudEntity, component.SpriteComponent.Kind())
	if !hok || !sok {
		return
	}

	next := fmt.Sprintf("Level %d    Score %d    Lives %d", number, score, lives)
	if spr.Image == nil || hud.Rendered != next {
		img := ebiten.NewImage(hudTextW, hudTextH)
		ebitenutil.DebugPrintAt(img, next, 0, 0)
		spr.Image = img
		hud.Rendered = next
	}
}

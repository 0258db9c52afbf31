package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/ecs/entity"
	"github.com/milk9111/brickbreaker/ecs/render"
	"github.com/milk9111/brickbreaker/ecs/system"
	"github.com/milk9111/brickbreaker/levels"
	"github.com/milk9111/brickbreaker/prefabs"
)

const updateDT = 1.0 / 60.0

type Game struct {
	spec        *prefabs.GameSpec
	world       *ecs.World
	levelNumber int

	paused   bool
	gameOver bool
	won      bool

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(startLevel int) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{spec: spec}
	log.Printf("%d levels shipped", levels.Count())
	if err := g.loadLevel(startLevel, 0, spec.Lives); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if watcher, err := prefabs.NewWatcher("prefabs"); err != nil {
		log.Printf("prefab watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

func (g *Game) loadLevel(number, score, lives int) error {
	def, err := levels.Load(number)
	if err != nil {
		return fmt.Errorf("load level %d: %w", number, err)
	}
	if author := def.DisplayAuthor(); author != "" {
		log.Printf("level %d by %s", number, author)
	}
	if desc := def.DisplayDescription(); desc != "" {
		log.Printf("level %d: %s", number, desc)
	}
	if g := def.GravityVector(); !g.IsZero() {
		log.Printf("level %d gravity (%v, %v, %v)", number, g.X, g.Y, g.Z)
	}

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(common.BaseWidth, common.BaseHeight)
	w.SetPhysicsWorld(pw)
	pw.SetGravity(def.GravityVector())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scheduler := ecs.NewScheduler(
		system.NewPaddleControlSystem(),
		system.NewPhysicsSystem(updateDT),
		system.NewBrickCollisionSystem(rng, g.spec),
		system.NewPaddleHazardSystem(),
		system.NewBallLossSystem(),
		system.NewLivesSystem(),
		system.NewGravityRelaySystem(),
		system.NewScoreSystem(),
		system.NewCompletionSystem(),
		system.NewHUDSystem(),
		system.NewRenderSystem(),
	)
	scheduler.Install(w)

	if err := entity.LoadLevelToWorld(w, def, g.spec, score, lives); err != nil {
		return err
	}

	g.world = w
	g.levelNumber = number
	return nil
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.gameOver || g.won {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.gameOver = false
			g.won = false
			if err := g.loadLevel(1, 0, g.spec.Lives); err != nil {
				return err
			}
		}
		return nil
	}

	g.world.Update()

	state, score, lives := g.session()
	if lives != nil && lives.Remaining <= 0 {
		g.gameOver = true
		return nil
	}
	if state != nil && state.Complete {
		points := 0
		remaining := g.spec.Lives
		if score != nil {
			points = score.Points
		}
		if lives != nil {
			remaining = lives.Remaining
		}
		next := state.Number + 1
		if !levels.Exists(next) {
			g.won = true
			return nil
		}
		if err := g.loadLevel(next, points, remaining); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})
	g.world.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
		return
	}
	if g.gameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press Enter", common.BaseWidth/2-70, common.BaseHeight/2)
	}
	if g.won {
		ebitenutil.DebugPrintAt(screen, "YOU WIN - press Enter", common.BaseWidth/2-64, common.BaseHeight/2)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// session returns the simulation entity's shared state, if loaded.
func (g *Game) session() (*component.LevelState, *component.Score, *component.Lives) {
	e, ok := ecs.First(g.world, component.LevelStateComponent.Kind())
	if !ok {
		return nil, nil, nil
	}
	state, _ := ecs.Get(g.world, e, component.LevelStateComponent.Kind())
	score, _ := ecs.Get(g.world, e, component.ScoreComponent.Kind())
	lives, _ := ecs.Get(g.world, e, component.LivesComponent.Kind())
	return state, score, lives
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			if reload {
				g.reloadSpec()
			}
			return
		}
	}
}

// reloadSpec re-reads the gameplay prefab in place and refreshes every
// sprite resolved through the palette.
func (g *Game) reloadSpec() {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("prefab reload failed: %v", err)
		return
	}
	if mt, ok := prefabs.ModTime(prefabs.GameSpecFile); ok {
		log.Printf("reloaded %s (modified %s)", prefabs.GameSpecFile, mt.Format("15:04:05"))
	}
	*g.spec = *spec
	render.Reset()

	ecs.ForEach2(g.world, component.BrickComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, b *component.Brick, s *component.Sprite) {
		s.Image = render.BrickImage(b.Code, g.spec.Bricks)
	})
	ecs.ForEach2(g.world, component.BallComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Ball, s *component.Sprite) {
		s.Image = render.BallImage(g.spec.Ball)
	})
	ecs.ForEach2(g.world, component.PaddleComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Paddle, s *component.Sprite) {
		s.Image = render.PaddleImage(g.spec.Paddle)
	})
}

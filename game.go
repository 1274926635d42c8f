package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
	"github.com/drube17/bossrush/ecs/entity"
	"github.com/drube17/bossrush/ecs/system"
	"github.com/drube17/bossrush/prefabs"
)

const (
	tickDt          = 1.0 / 60
	lastStage       = 5
	stageClearDelay = 2.5
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	signals   *component.WorldSignals

	stages  *prefabs.StagesSpec
	watcher *prefabs.Watcher

	stage      int
	score      int
	clearTimer float64
	bonus      bool
	gameOver   bool
	victory    bool

	paused  bool
	pauseUI *pauseUI
}

func NewGame(startStage int, seed int64, bonus bool, watcher *prefabs.Watcher) (*Game, error) {
	stages, err := prefabs.LoadStages()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	if seed != 0 {
		world.SetRand(rand.New(rand.NewSource(seed)))
	}

	signals := &component.WorldSignals{}
	boss := system.NewBossSystem(signals)
	scheduler := ecs.NewScheduler(
		system.NewPlayerSystem(signals, system.KeyboardInput{}),
		boss,
		system.NewMinionSystem(signals),
		system.NewProjectileSystem(signals),
		system.NewCollisionSystem(signals, boss),
		system.NewTTLSystem(),
	)

	g := &Game{
		world:     world,
		scheduler: scheduler,
		render:    system.NewRenderSystem(signals),
		signals:   signals,
		stages:    stages,
		watcher:   watcher,
		stage:     startStage,
		bonus:     bonus,
	}
	g.pauseUI = newPauseUI(g)

	entity.NewPlayer(world)
	if err := g.spawnBoss(g.stage); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) spawnBoss(stage int) error {
	spec, ok := g.stages.ByStage(stage)
	if !ok {
		return fmt.Errorf("game: no stage %d in bosses.yaml", stage)
	}
	if _, err := entity.NewBoss(g.world, spec); err != nil {
		return err
	}
	return nil
}

func (g *Game) maxStage() int {
	if g.bonus {
		last := lastStage
		for _, st := range g.stages.Stages {
			if st.Bonus && st.Stage > last {
				last = st.Stage
			}
		}
		return last
	}
	return lastStage
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.ui.Update()
		return nil
	}
	if g.gameOver || g.victory {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.restart()
		}
		return nil
	}

	g.drainWatcher()
	g.scheduler.Update(g.world, tickDt)
	g.drainEvents()

	if g.clearTimer > 0 {
		g.clearTimer -= tickDt
		if g.clearTimer <= 0 {
			if g.stage >= g.maxStage() {
				g.victory = true
			} else {
				g.stage++
				if err := g.spawnBoss(g.stage); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *Game) restart() error {
	watcher := g.watcher
	ng, err := NewGame(1, 0, g.bonus, watcher)
	if err != nil {
		return err
	}
	*g = *ng
	g.pauseUI = newPauseUI(g)
	return nil
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventBossDefeated:
			if d, ok := evt.Data.(ecs.BossDefeated); ok {
				g.score += d.Points
				entity.NewExplosionFlash(g.world, d.X, d.Y)
				g.clearTimer = stageClearDelay
			}
		case ecs.EventPlayerDefeated:
			g.gameOver = true
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab %s changed, reloading stages", name)
			stages, err := prefabs.LoadStages()
			if err != nil {
				log.Printf("game: reload failed: %v", err)
				continue
			}
			g.stages = stages
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("game: prefab watcher: %v", err)
			} else if !ok {
				g.watcher = nil
				return
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})
	g.render.Draw(g.world, screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d", g.score), 8, common.ScreenHeight-20)
	if g.gameOver {
		ebitenutil.DebugPrintAt(screen, "game over - press enter", common.ScreenWidth/2-70, common.ScreenHeight/2)
	}
	if g.victory {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("all stages cleared! score %d - press enter", g.score), common.ScreenWidth/2-120, common.ScreenHeight/2)
	}
	if g.paused {
		g.pauseUI.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

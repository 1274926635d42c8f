package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
	"github.com/drube17/bossrush/ecs/entity"
)

const (
	playerFireCooldown = 0.22
	playerShotSpeed    = 420.0
	playerShotDamage   = 25.0
)

var playerShotColor = color.NRGBA{R: 0x90, G: 0xff, B: 0xb0, A: 0xff}

// PlayerInput reports the player's intent for one tick. Abstracted so
// tests can drive the player without a keyboard.
type PlayerInput interface {
	Axis() (dx, dy float64)
	Firing() bool
}

// KeyboardInput reads WASD / arrow keys and space.
type KeyboardInput struct{}

func (KeyboardInput) Axis() (float64, float64) {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	return dx, dy
}

func (KeyboardInput) Firing() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

// PlayerSystem moves the player and fires its shots. During a time-stop
// the whole update is skipped, so i-frames and the fire cooldown freeze
// with everything else; the phase-shift movement lock only stops motion
// and firing.
type PlayerSystem struct {
	signals *component.WorldSignals
	input   PlayerInput
}

func NewPlayerSystem(signals *component.WorldSignals, input PlayerInput) *PlayerSystem {
	return &PlayerSystem{signals: signals, input: input}
}

func (s *PlayerSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}
	if s.signals != nil && s.signals.TimeStop {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent,
		func(e ecs.Entity, p *component.Player, tr *component.Transform) {
			if p.IFrames > 0 {
				p.IFrames -= dt
			}
			if p.FireCooldown > 0 {
				p.FireCooldown -= dt
			}
			if p.Locked {
				return
			}

			var dx, dy float64
			firing := false
			if s.input != nil {
				dx, dy = s.input.Axis()
				firing = s.input.Firing()
			}
			if dx != 0 || dy != 0 {
				n := math.Hypot(dx, dy)
				tr.X += dx / n * p.Speed * dt
				tr.Y += dy / n * p.Speed * dt
				tr.X = common.Clamp(tr.X, p.Width/2, common.ScreenWidth-p.Width/2)
				tr.Y = common.Clamp(tr.Y, p.Height/2, common.ScreenHeight-p.Height/2)
			}

			if firing && p.FireCooldown <= 0 {
				p.FireCooldown = playerFireCooldown
				entity.NewProjectile(w, tr.X, tr.Y-p.Height/2, playerShotSpeed, -math.Pi/2,
					playerShotDamage, component.OwnerPlayer, 6, 14, playerShotColor)
			}
		})
}

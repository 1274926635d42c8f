package entity

import (
	"image/color"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

const (
	playerSpeed  = 220.0
	playerWidth  = 28.0
	playerHeight = 32.0
	playerHealth = 100.0
)

// NewPlayer spawns the player ship at the bottom center of the screen.
func NewPlayer(w *ecs.World) ecs.Entity {
	if w == nil {
		return ecs.Entity(0)
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X: common.ScreenWidth / 2,
		Y: common.ScreenHeight - 80,
	})
	_ = ecs.Add(w, e, component.PlayerComponent, &component.Player{
		Speed:  playerSpeed,
		Width:  playerWidth,
		Height: playerHeight,
	})
	_ = ecs.Add(w, e, component.HealthComponent, &component.Health{Current: playerHealth, Max: playerHealth})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Width:  playerWidth,
		Height: playerHeight,
		Color:  color.NRGBA{R: 0x60, G: 0xd0, B: 0x80, A: 0xff},
	})
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: 3})
	return e
}

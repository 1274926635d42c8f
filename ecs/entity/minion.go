package entity

import (
	"image/color"
	"log"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

const (
	minionSpeed    = 140.0
	minionTurnRate = 2.5
	minionDamage   = 15.0
	minionWidth    = 24.0
	minionHeight   = 24.0
	minionHealth   = 50.0
)

// NewMinion spawns a homing minor enemy heading straight down.
func NewMinion(w *ecs.World, x, y float64) (ecs.Entity, bool) {
	if w == nil {
		log.Printf("entity: minion spawn dropped: world not supplied")
		return ecs.Entity(0), false
	}
	if !common.Finite(x, y) {
		log.Printf("entity: minion spawn dropped: non-finite position")
		return ecs.Entity(0), false
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.MinionComponent, &component.Minion{
		Speed:    minionSpeed,
		TurnRate: minionTurnRate,
		Heading:  halfPi, // straight down
		Damage:   minionDamage,
		Width:    minionWidth,
		Height:   minionHeight,
	})
	_ = ecs.Add(w, e, component.HealthComponent, &component.Health{Current: minionHealth, Max: minionHealth})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Width:  minionWidth,
		Height: minionHeight,
		Color:  color.NRGBA{R: 0xd0, G: 0x50, B: 0xd0, A: 0xff},
	})
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: 3})
	return e, true
}

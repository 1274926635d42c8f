package entity

import (
	"image/color"
	"math"

	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

const halfPi = math.Pi / 2

// NewExplosionFlash spawns a short-lived flash where a boss died. The
// real explosion animation is a rendering concern; simulation only needs
// something with a TTL.
func NewExplosionFlash(w *ecs.World, x, y float64) ecs.Entity {
	if w == nil {
		return ecs.Entity(0)
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.TTLComponent, &component.TTL{Seconds: 0.6})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Width:  120,
		Height: 120,
		Color:  color.NRGBA{R: 0xff, G: 0xe0, B: 0x80, A: 0xc0},
	})
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: 5})
	return e
}

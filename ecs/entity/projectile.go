package entity

import (
	"image/color"
	"log"
	"math"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

// NewProjectile spawns a projectile with its velocity resolved once from
// (speed, angle) using the screen convention: vx = speed*cos(angle),
// vy = speed*sin(angle). Firing is core game behavior, so a missing world
// or malformed input fails loudly instead of silently dropping the shot.
func NewProjectile(w *ecs.World, x, y, speed, angle, damage float64, owner component.Owner, width, height float64, col color.NRGBA) (ecs.Entity, bool) {
	if w == nil {
		log.Printf("entity: projectile spawn dropped: world not supplied")
		return ecs.Entity(0), false
	}
	if !common.Finite(x, y, speed, angle, damage) {
		log.Printf("entity: projectile spawn dropped: non-finite input (speed=%v angle=%v)", speed, angle)
		return ecs.Entity(0), false
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, Rotation: angle})
	_ = ecs.Add(w, e, component.VelocityComponent, &component.Velocity{
		VX: speed * math.Cos(angle),
		VY: speed * math.Sin(angle),
	})
	_ = ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{
		Owner:  owner,
		Damage: damage,
		Width:  width,
		Height: height,
	})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Width: width, Height: height, Color: col})
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: 2})
	return e, true
}

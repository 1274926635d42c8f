package system

import (
	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

// offscreenMargin keeps projectiles alive slightly past the edges so
// shots entering from outside aren't culled on their first tick.
const offscreenMargin = 64.0

// ProjectileSystem integrates projectile motion and culls projectiles
// once they leave the screen. It honors the world time-stop: frozen
// projectiles neither move nor expire.
type ProjectileSystem struct {
	signals *component.WorldSignals
}

func NewProjectileSystem(signals *component.WorldSignals) *ProjectileSystem {
	return &ProjectileSystem{signals: signals}
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}
	if s.signals != nil && s.signals.TimeStop {
		return
	}
	ecs.ForEach3(w,
		component.ProjectileComponent,
		component.TransformComponent,
		component.VelocityComponent,
		func(e ecs.Entity, p *component.Projectile, tr *component.Transform, v *component.Velocity) {
			tr.X += v.VX * dt
			tr.Y += v.VY * dt
			if offscreen(tr.X, tr.Y) {
				ecs.DestroyEntity(w, e)
			}
		})
}

func offscreen(x, y float64) bool {
	return x < -offscreenMargin || x > common.ScreenWidth+offscreenMargin ||
		y < -offscreenMargin || y > common.ScreenHeight+offscreenMargin
}

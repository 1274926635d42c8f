package system

import (
	"math"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

// MinionSystem steers homing minions toward the player with a capped
// turn rate. Minions freeze during a time-stop like every other moving
// entity outside the phase-shift sub-machine.
type MinionSystem struct {
	signals *component.WorldSignals
}

func NewMinionSystem(signals *component.WorldSignals) *MinionSystem {
	return &MinionSystem{signals: signals}
}

func (s *MinionSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}
	if s.signals != nil && s.signals.TimeStop {
		return
	}
	px, py, hasPlayer := playerPosition(w)

	ecs.ForEach2(w, component.MinionComponent, component.TransformComponent,
		func(e ecs.Entity, m *component.Minion, tr *component.Transform) {
			if hasPlayer {
				want := common.AngleTo(tr.X, tr.Y, px, py)
				diff := normalizeAngle(want - m.Heading)
				maxTurn := m.TurnRate * dt
				m.Heading += common.Clamp(diff, -maxTurn, maxTurn)
			}
			tr.X += m.Speed * math.Cos(m.Heading) * dt
			tr.Y += m.Speed * math.Sin(m.Heading) * dt
			tr.Rotation = m.Heading

			if offscreen(tr.X, tr.Y) {
				ecs.DestroyEntity(w, e)
			}
		})
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

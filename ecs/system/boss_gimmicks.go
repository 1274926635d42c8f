package system

import (
	"log"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
	"github.com/drube17/bossrush/pattern"
)

// beginPhaseShift starts the teleport sequence: lock the player, stop
// world time, and enter the blackout. Pending staggered shots are
// cancelled so none fire out of the teleport.
func (s *BossSystem) beginPhaseShift(w *ecs.World, e ecs.Entity, rt *component.BossRuntime) {
	ps, ok := ecs.Get(w, e, component.PhaseShiftComponent)
	if !ok {
		log.Printf("boss: phase-shift gimmick fired without phase-shift state")
		return
	}
	if ps.Executing() {
		return
	}
	rt.Pending = nil
	setPlayerLocked(w, true)
	if s.signals != nil {
		s.signals.TimeStop = true
		s.signals.BlackoutAlpha = 0
	}
	ps.State = component.PhaseBlackoutIn
	ps.Elapsed = 0
}

// updatePhaseShift owns the entire boss tick while executing:
// BlackoutIn(0.5) -> Relocate(instant) -> BlackoutOut(0.5) -> Idle.
func (s *BossSystem) updatePhaseShift(w *ecs.World, e ecs.Entity, boss *component.Boss, rt *component.BossRuntime, tr *component.Transform, ps *component.PhaseShift, dt float64) {
	switch ps.State {
	case component.PhaseBlackoutIn:
		ps.Elapsed += dt
		if s.signals != nil {
			s.signals.BlackoutAlpha = common.Clamp01(ps.Elapsed / blackoutDuration)
		}
		if ps.Elapsed >= blackoutDuration {
			ps.State = component.PhaseTeleporting
			ps.Elapsed = 0
			// Relocation is instantaneous: run it in the same tick.
			s.relocate(w, boss, tr)
			ps.State = component.PhaseBlackoutOut
			ps.Elapsed = 0
		}
	case component.PhaseTeleporting:
		// Normally handled inline above; finish if a tick lands here.
		s.relocate(w, boss, tr)
		ps.State = component.PhaseBlackoutOut
		ps.Elapsed = 0
	case component.PhaseBlackoutOut:
		ps.Elapsed += dt
		if s.signals != nil {
			s.signals.BlackoutAlpha = common.Clamp01(1 - ps.Elapsed/blackoutDuration)
		}
		if ps.Elapsed >= blackoutDuration {
			s.endPhaseShift(w, ps)
		}
	}
}

// relocate moves the boss to a random point in the safe band and
// teleports every live enemy projectile to a random on-screen point.
// Projectiles are moved, never destroyed.
func (s *BossSystem) relocate(w *ecs.World, boss *component.Boss, tr *component.Transform) {
	minX := common.BossEdgeMargin + boss.Width/2
	maxX := common.ScreenWidth - common.BossEdgeMargin - boss.Width/2
	tr.X = w.RandRange(minX, maxX)
	tr.Y = w.RandRange(relocateMinY, relocateMaxY)

	ecs.ForEach2(w, component.ProjectileComponent, component.TransformComponent,
		func(_ ecs.Entity, p *component.Projectile, pt *component.Transform) {
			if p.Owner != component.OwnerEnemy {
				return
			}
			pt.X = w.RandRange(0, common.ScreenWidth)
			pt.Y = w.RandRange(0, common.ScreenHeight)
		})
}

// endPhaseShift clears the movement lock and time-stop and returns
// control to the boss controller.
func (s *BossSystem) endPhaseShift(w *ecs.World, ps *component.PhaseShift) {
	setPlayerLocked(w, false)
	if s.signals != nil {
		s.signals.TimeStop = false
		s.signals.BlackoutAlpha = 0
	}
	ps.State = component.PhaseIdle
	ps.Elapsed = 0
}

// activateBeam freezes four firing angles around the current angle to
// the player and starts the countdown. The angles never re-aim; only the
// origin follows the boss afterwards.
func (s *BossSystem) activateBeam(w *ecs.World, e ecs.Entity, tr *component.Transform) {
	beam, ok := ecs.Get(w, e, component.BeamComponent)
	if !ok {
		log.Printf("boss: beam gimmick fired without beam state")
		return
	}
	px, py, hasPlayer := playerPosition(w)
	if !hasPlayer {
		log.Printf("boss: skipping beam gimmick: no player in world")
		return
	}
	aim := common.AngleTo(tr.X, tr.Y, px, py)
	beam.Active = true
	beam.Angles = pattern.BeamAngles(aim)
	beam.Remaining = beamDuration
}

func setPlayerLocked(w *ecs.World, locked bool) {
	e, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		log.Printf("boss: phase shift: no player to lock")
		return
	}
	if p, ok := ecs.Get(w, e, component.PlayerComponent); ok {
		p.Locked = locked
	}
}

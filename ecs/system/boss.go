package system

import (
	"log"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
	"github.com/drube17/bossrush/ecs/entity"
	"github.com/drube17/bossrush/pattern"
)

const (
	spawnEase           = 0.05
	patternCooldownTime = 0.4
	gimmickCooldownTime = 15.0
	blackoutDuration    = 0.5
	beamDuration        = 10.0
	minionFlankOffset   = 80.0

	relocateMinY = 80.0
	relocateMaxY = common.ScreenHeight / 3.0
)

// BossSystem is the per-frame boss controller: it sequences spawn,
// combat, and death, owns the pattern and gimmick timers, and drives the
// phase-shift and sustained-beam sub-machines.
type BossSystem struct {
	signals *component.WorldSignals
}

func NewBossSystem(signals *component.WorldSignals) *BossSystem {
	return &BossSystem{signals: signals}
}

func (s *BossSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}

	ecs.ForEach3(w,
		component.BossComponent,
		component.BossRuntimeComponent,
		component.TransformComponent,
		func(e ecs.Entity, boss *component.Boss, rt *component.BossRuntime, tr *component.Transform) {
			switch rt.State {
			case component.BossDead:
				// Terminal: nothing ticks.
			case component.BossSpawning:
				s.updateSpawning(rt, tr, dt)
			case component.BossActive:
				if ps, ok := ecs.Get(w, e, component.PhaseShiftComponent); ok && ps.Executing() {
					// Exclusive control: the sub-machine owns the whole tick.
					s.updatePhaseShift(w, e, boss, rt, tr, ps, dt)
					return
				}
				if s.signals != nil && s.signals.TimeStop {
					// Another entity's phase shift froze the world.
					return
				}
				s.updateActive(w, e, boss, rt, tr, dt)
			}
		})
}

// updateSpawning eases the boss toward its hold position and counts down
// the spawn timer. Damage is ignored in this state (see Damage).
func (s *BossSystem) updateSpawning(rt *component.BossRuntime, tr *component.Transform, dt float64) {
	tr.Y += (rt.TargetY - tr.Y) * spawnEase
	rt.SpawnTimer -= dt
	if rt.SpawnTimer <= 0 {
		tr.Y = rt.TargetY
		rt.State = component.BossActive
		rt.PatternCooldown = patternCooldownTime
		rt.GimmickCooldown = gimmickCooldownTime
	}
}

// updateActive runs one normal combat tick in fixed order: movement,
// pending staggered shots, pattern cooldown, gimmick cooldown, beam.
func (s *BossSystem) updateActive(w *ecs.World, e ecs.Entity, boss *component.Boss, rt *component.BossRuntime, tr *component.Transform, dt float64) {
	s.oscillate(boss, rt, tr, dt)
	s.drainPending(w, rt, tr, dt)

	rt.PatternCooldown -= dt
	if rt.PatternCooldown <= 0 {
		rt.PatternCooldown = patternCooldownTime
		s.fireBasicPattern(w, rt, tr)
	}

	rt.GimmickCooldown -= dt
	if rt.GimmickCooldown <= 0 {
		rt.GimmickCooldown = gimmickCooldownTime
		s.fireGimmick(w, e, boss, rt, tr)
	}

	if beam, ok := ecs.Get(w, e, component.BeamComponent); ok && beam.Active {
		beam.Remaining -= dt
		if beam.Remaining <= 0 {
			*beam = component.Beam{}
		}
	}
}

func (s *BossSystem) oscillate(boss *component.Boss, rt *component.BossRuntime, tr *component.Transform, dt float64) {
	if rt.Dir == 0 {
		rt.Dir = 1
	}
	minX := common.BossEdgeMargin + boss.Width/2
	maxX := common.ScreenWidth - common.BossEdgeMargin - boss.Width/2
	tr.X += rt.Dir * boss.Speed * dt
	if tr.X <= minX {
		tr.X = minX
		rt.Dir = 1
	} else if tr.X >= maxX {
		tr.X = maxX
		rt.Dir = -1
	}
}

// drainPending advances the scheduled-shot queue. Aimed shots resolve
// their angle against the player's position at this instant.
func (s *BossSystem) drainPending(w *ecs.World, rt *component.BossRuntime, tr *component.Transform, dt float64) {
	if len(rt.Pending) == 0 {
		return
	}
	px, py, hasPlayer := playerPosition(w)
	remaining := rt.Pending[:0]
	for i := range rt.Pending {
		shot := rt.Pending[i]
		shot.Delay -= dt
		if shot.Delay > 0 {
			remaining = append(remaining, shot)
			continue
		}
		angle := shot.Angle
		if shot.Aimed {
			if !hasPlayer {
				log.Printf("boss: dropping aimed shot: no player to target")
				continue
			}
			angle = common.AngleTo(tr.X, tr.Y, px, py)
		}
		entity.NewProjectile(w, tr.X, tr.Y, shot.Speed, angle, shot.Damage,
			component.OwnerEnemy, shot.Width, shot.Height, shot.Color)
	}
	rt.Pending = remaining
}

// fireBasicPattern picks one of the three basic patterns with a single
// uniform draw and spawns its shots.
func (s *BossSystem) fireBasicPattern(w *ecs.World, rt *component.BossRuntime, tr *component.Transform) {
	px, py, ok := playerPosition(w)
	if !ok {
		log.Printf("boss: skipping pattern fire: no player in world")
		return
	}
	kind := pattern.Kind(w.Intn(pattern.BasicCount))
	s.spawnShots(w, rt, tr, pattern.Resolve(kind, tr.X, tr.Y, px, py))
}

func (s *BossSystem) spawnShots(w *ecs.World, rt *component.BossRuntime, tr *component.Transform, shots []pattern.Shot) {
	for _, shot := range shots {
		if shot.Delay > 0 {
			rt.Pending = append(rt.Pending, component.PendingShot{
				Delay:  shot.Delay,
				Speed:  shot.Speed,
				Damage: shot.Damage,
				Aimed:  shot.Aimed,
				Angle:  shot.Angle,
				Width:  shot.Width,
				Height: shot.Height,
				Color:  shot.Color,
			})
			continue
		}
		entity.NewProjectile(w, tr.X, tr.Y, shot.Speed, shot.Angle, shot.Damage,
			component.OwnerEnemy, shot.Width, shot.Height, shot.Color)
	}
}

// fireGimmick dispatches the stage gimmick.
func (s *BossSystem) fireGimmick(w *ecs.World, e ecs.Entity, boss *component.Boss, rt *component.BossRuntime, tr *component.Transform) {
	switch boss.Gimmick {
	case component.GimmickNone:
		// Stage 1 has no gimmick.
	case component.GimmickMinions:
		entity.NewMinion(w, tr.X-boss.Width/2-minionFlankOffset, tr.Y)
		entity.NewMinion(w, tr.X+boss.Width/2+minionFlankOffset, tr.Y)
	case component.GimmickPhaseShift:
		s.beginPhaseShift(w, e, rt)
	case component.GimmickSustainedBeam:
		s.activateBeam(w, e, tr)
	case component.GimmickSnipe:
		px, py, ok := playerPosition(w)
		if !ok {
			log.Printf("boss: skipping snipe gimmick: no player in world")
			return
		}
		s.spawnShots(w, rt, tr, pattern.Resolve(pattern.Aimed5Way, tr.X, tr.Y, px, py))
		if shot, ok := pattern.Snipe(tr.X, tr.Y, px, py); ok {
			entity.NewProjectile(w, tr.X, tr.Y, shot.Speed, shot.Angle, shot.Damage,
				component.OwnerEnemy, shot.Width, shot.Height, shot.Color)
		}
	case component.GimmickScripted:
		if boss.Script == nil {
			log.Printf("boss: stage %d scripted gimmick has no script", boss.Stage)
			return
		}
		px, py, ok := playerPosition(w)
		if !ok {
			log.Printf("boss: skipping scripted gimmick: no player in world")
			return
		}
		shots, err := boss.Script.Shots(tr.X, tr.Y, px, py)
		if err != nil {
			log.Printf("boss: scripted gimmick %s: %v", boss.Script.Name(), err)
			return
		}
		s.spawnShots(w, rt, tr, shots)
	}
}

// Damage applies damage to a boss. Ignored unless the boss is Active;
// health clamps at zero and the Dead transition happens exactly once,
// emitting a BossDefeated event for the external observers.
func (s *BossSystem) Damage(w *ecs.World, e ecs.Entity, amount float64) {
	if w == nil || amount <= 0 || !common.Finite(amount) {
		return
	}
	boss, ok := ecs.Get(w, e, component.BossComponent)
	if !ok {
		return
	}
	rt, ok := ecs.Get(w, e, component.BossRuntimeComponent)
	if !ok {
		return
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent)
	if !ok {
		return
	}
	if rt.State != component.BossActive {
		return
	}

	hp.Current -= amount
	if hp.Current > 0 {
		return
	}
	hp.Current = 0
	rt.State = component.BossDead
	rt.Pending = nil

	// A death mid-gimmick must not leave the world frozen.
	if ps, ok := ecs.Get(w, e, component.PhaseShiftComponent); ok && ps.Executing() {
		s.endPhaseShift(w, ps)
	}
	if beam, ok := ecs.Get(w, e, component.BeamComponent); ok {
		*beam = component.Beam{}
	}

	x, y := 0.0, 0.0
	if tr, ok := ecs.Get(w, e, component.TransformComponent); ok {
		x, y = tr.X, tr.Y
	}
	w.Events().Push(ecs.Event{Type: ecs.EventBossDefeated, Data: ecs.BossDefeated{
		Entity: e,
		Stage:  boss.Stage,
		Points: boss.Points,
		X:      x,
		Y:      y,
	}})
}

func playerPosition(w *ecs.World) (float64, float64, bool) {
	e, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return 0, 0, false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return 0, 0, false
	}
	return tr.X, tr.Y, true
}

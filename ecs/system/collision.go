package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

const (
	catPlayer uint = 1 << iota
	catBoss
	catMinion
	catEnemyProjectile
	catPlayerProjectile
)

const beamHitDamage = 20.0

// CollisionSystem resolves hits with a Chipmunk space used as a spatial
// index: kinematic sensor boxes mirror entity transforms, BB queries
// resolve overlaps, and segment queries hit-test the sustained-beam
// rays. It never moves anything; motion belongs to the other systems.
type CollisionSystem struct {
	signals *component.WorldSignals
	boss    *BossSystem

	space  *cp.Space
	bodies map[ecs.Entity]*cp.Body
	shapes map[*cp.Shape]ecs.Entity
}

func NewCollisionSystem(signals *component.WorldSignals, boss *BossSystem) *CollisionSystem {
	return &CollisionSystem{
		signals: signals,
		boss:    boss,
		space:   cp.NewSpace(),
		bodies:  make(map[ecs.Entity]*cp.Body),
		shapes:  make(map[*cp.Shape]ecs.Entity),
	}
}

func (s *CollisionSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}
	if s.signals != nil && s.signals.TimeStop {
		// Nothing moved, nothing new can overlap.
		return
	}

	s.syncShapes(w)
	s.resolvePlayerHits(w)
	s.resolveBossHits(w)
	s.resolveBeams(w, dt)
}

// syncShapes mirrors every collidable entity into the space and drops
// bodies whose entities died.
func (s *CollisionSystem) syncShapes(w *ecs.World) {
	seen := make(map[ecs.Entity]bool, len(s.bodies))

	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent,
		func(e ecs.Entity, p *component.Player, tr *component.Transform) {
			s.ensureShape(e, tr.X, tr.Y, p.Width, p.Height, catPlayer)
			seen[e] = true
		})
	ecs.ForEach3(w, component.BossComponent, component.BossRuntimeComponent, component.TransformComponent,
		func(e ecs.Entity, boss *component.Boss, rt *component.BossRuntime, tr *component.Transform) {
			if rt.State == component.BossDead {
				return
			}
			s.ensureShape(e, tr.X, tr.Y, boss.Width, boss.Height, catBoss)
			seen[e] = true
		})
	ecs.ForEach2(w, component.MinionComponent, component.TransformComponent,
		func(e ecs.Entity, m *component.Minion, tr *component.Transform) {
			s.ensureShape(e, tr.X, tr.Y, m.Width, m.Height, catMinion)
			seen[e] = true
		})
	ecs.ForEach2(w, component.ProjectileComponent, component.TransformComponent,
		func(e ecs.Entity, p *component.Projectile, tr *component.Transform) {
			cat := catEnemyProjectile
			if p.Owner == component.OwnerPlayer {
				cat = catPlayerProjectile
			}
			s.ensureShape(e, tr.X, tr.Y, p.Width, p.Height, cat)
			seen[e] = true
		})

	for e, body := range s.bodies {
		if seen[e] {
			continue
		}
		body.EachShape(func(shape *cp.Shape) {
			delete(s.shapes, shape)
			s.space.RemoveShape(shape)
		})
		s.space.RemoveBody(body)
		delete(s.bodies, e)
	}
}

func (s *CollisionSystem) ensureShape(e ecs.Entity, x, y, width, height float64, cat uint) {
	body, ok := s.bodies[e]
	if !ok {
		body = cp.NewKinematicBody()
		body.SetPosition(cp.Vector{X: x, Y: y})
		shape := cp.NewBox(body, width, height, 0)
		shape.SetSensor(true)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, cat, cp.ALL_CATEGORIES))
		s.space.AddBody(body)
		s.space.AddShape(shape)
		s.bodies[e] = body
		s.shapes[shape] = e
		return
	}
	body.SetPosition(cp.Vector{X: x, Y: y})
	s.space.ReindexShapesForBody(body)
}

// resolvePlayerHits applies enemy projectile and minion contact damage
// to the player.
func (s *CollisionSystem) resolvePlayerHits(w *ecs.World) {
	pe, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	player, _ := ecs.Get(w, pe, component.PlayerComponent)
	tr, ok := ecs.Get(w, pe, component.TransformComponent)
	if player == nil || !ok {
		return
	}

	bb := boxBB(tr.X, tr.Y, player.Width, player.Height)
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, catEnemyProjectile|catMinion)
	var hits []ecs.Entity
	s.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		if e, ok := s.shapes[shape]; ok {
			hits = append(hits, e)
		}
	}, nil)

	for _, hit := range hits {
		if p, ok := ecs.Get(w, hit, component.ProjectileComponent); ok {
			s.damagePlayer(w, pe, p.Damage)
			ecs.DestroyEntity(w, hit)
			continue
		}
		if m, ok := ecs.Get(w, hit, component.MinionComponent); ok {
			s.damagePlayer(w, pe, m.Damage)
			ecs.DestroyEntity(w, hit)
		}
	}
}

// resolveBossHits applies player projectiles to bosses and minions.
func (s *CollisionSystem) resolveBossHits(w *ecs.World) {
	ecs.ForEach3(w, component.BossComponent, component.BossRuntimeComponent, component.TransformComponent,
		func(be ecs.Entity, boss *component.Boss, rt *component.BossRuntime, tr *component.Transform) {
			for _, hit := range s.playerShotsIn(boxBB(tr.X, tr.Y, boss.Width, boss.Height)) {
				if p, ok := ecs.Get(w, hit, component.ProjectileComponent); ok {
					if s.boss != nil {
						s.boss.Damage(w, be, p.Damage)
					}
					ecs.DestroyEntity(w, hit)
				}
			}
		})

	ecs.ForEach3(w, component.MinionComponent, component.HealthComponent, component.TransformComponent,
		func(me ecs.Entity, m *component.Minion, hp *component.Health, tr *component.Transform) {
			for _, hit := range s.playerShotsIn(boxBB(tr.X, tr.Y, m.Width, m.Height)) {
				p, ok := ecs.Get(w, hit, component.ProjectileComponent)
				if !ok {
					continue
				}
				hp.Current -= p.Damage
				ecs.DestroyEntity(w, hit)
				if hp.Current <= 0 {
					ecs.DestroyEntity(w, me)
					break
				}
			}
		})
}

func (s *CollisionSystem) playerShotsIn(bb cp.BB) []ecs.Entity {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, catPlayerProjectile)
	var hits []ecs.Entity
	s.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		if e, ok := s.shapes[shape]; ok {
			hits = append(hits, e)
		}
	}, nil)
	return hits
}

// resolveBeams segment-queries each active beam ray against the player.
func (s *CollisionSystem) resolveBeams(w *ecs.World, dt float64) {
	pe, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, catPlayer)

	ecs.ForEach3(w, component.BossComponent, component.BeamComponent, component.TransformComponent,
		func(_ ecs.Entity, _ *component.Boss, beam *component.Beam, tr *component.Transform) {
			for _, ray := range beam.Rays(tr.X, tr.Y) {
				start := cp.Vector{X: ray.X, Y: ray.Y}
				end := cp.Vector{
					X: ray.X + ray.Length*math.Cos(ray.Angle),
					Y: ray.Y + ray.Length*math.Sin(ray.Angle),
				}
				info := s.space.SegmentQueryFirst(start, end, ray.Width/2, filter)
				if info.Shape == nil {
					continue
				}
				if e, found := s.shapes[info.Shape]; found && e == pe {
					s.damagePlayer(w, pe, beamHitDamage)
					break
				}
			}
		})
}

func (s *CollisionSystem) damagePlayer(w *ecs.World, pe ecs.Entity, amount float64) {
	player, ok := ecs.Get(w, pe, component.PlayerComponent)
	if !ok || player.IFrames > 0 || amount <= 0 {
		return
	}
	hp, ok := ecs.Get(w, pe, component.HealthComponent)
	if !ok || hp.Current <= 0 {
		return
	}
	player.IFrames = 1.0
	hp.Current -= amount
	if hp.Current <= 0 {
		hp.Current = 0
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDefeated, Data: pe})
	}
}

func boxBB(x, y, width, height float64) cp.BB {
	return cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
}

package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
	"github.com/drube17/bossrush/ecs/entity"
)

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	w := newTestWorld(1)
	signals := &component.WorldSignals{}
	cs := NewCollisionSystem(signals, NewBossSystem(signals))

	pe := entity.NewPlayer(w)
	ptr, _ := ecs.Get(w, pe, component.TransformComponent)
	hp, _ := ecs.Get(w, pe, component.HealthComponent)
	player, _ := ecs.Get(w, pe, component.PlayerComponent)

	proj, _ := entity.NewProjectile(w, ptr.X, ptr.Y, 100, math.Pi/2, 10, component.OwnerEnemy, 10, 10, color.NRGBA{})

	cs.Update(w, 1.0/60)
	if hp.Current != hp.Max-10 {
		t.Fatalf("player health = %v, want %v", hp.Current, hp.Max-10)
	}
	if ecs.IsAlive(w, proj) {
		t.Fatal("projectile survived the hit")
	}
	if player.IFrames <= 0 {
		t.Fatal("hit did not grant invulnerability frames")
	}
}

func TestIFramesAbsorbSecondHit(t *testing.T) {
	w := newTestWorld(1)
	signals := &component.WorldSignals{}
	cs := NewCollisionSystem(signals, NewBossSystem(signals))

	pe := entity.NewPlayer(w)
	ptr, _ := ecs.Get(w, pe, component.TransformComponent)
	hp, _ := ecs.Get(w, pe, component.HealthComponent)

	entity.NewProjectile(w, ptr.X, ptr.Y, 100, 0, 10, component.OwnerEnemy, 10, 10, color.NRGBA{})
	entity.NewProjectile(w, ptr.X, ptr.Y, 100, 0, 10, component.OwnerEnemy, 10, 10, color.NRGBA{})

	cs.Update(w, 1.0/60)
	if hp.Current != hp.Max-10 {
		t.Fatalf("player health = %v after overlapping hits, want one hit's worth %v", hp.Current, hp.Max-10)
	}
}

func TestPlayerShotDamagesBoss(t *testing.T) {
	w := newTestWorld(1)
	signals := &component.WorldSignals{}
	bs := NewBossSystem(signals)
	cs := NewCollisionSystem(signals, bs)

	entity.NewPlayer(w)
	be := spawnTestBoss(t, w, 1, "none")
	makeActive(t, bs, w, be)
	btr, _ := ecs.Get(w, be, component.TransformComponent)
	hp, _ := ecs.Get(w, be, component.HealthComponent)

	shot, _ := entity.NewProjectile(w, btr.X, btr.Y, 420, -math.Pi/2, 25, component.OwnerPlayer, 6, 14, color.NRGBA{})

	cs.Update(w, 1.0/60)
	if hp.Current != hp.Max-25 {
		t.Fatalf("boss health = %v, want %v", hp.Current, hp.Max-25)
	}
	if ecs.IsAlive(w, shot) {
		t.Fatal("shot survived the hit")
	}
}

func TestSpawningBossIgnoresShots(t *testing.T) {
	w := newTestWorld(1)
	signals := &component.WorldSignals{}
	bs := NewBossSystem(signals)
	cs := NewCollisionSystem(signals, bs)

	entity.NewPlayer(w)
	be := spawnTestBoss(t, w, 1, "none")
	btr, _ := ecs.Get(w, be, component.TransformComponent)
	hp, _ := ecs.Get(w, be, component.HealthComponent)

	// the boss is still easing in; the shot is consumed but does nothing
	entity.NewProjectile(w, btr.X, btr.Y, 420, -math.Pi/2, 25, component.OwnerPlayer, 6, 14, color.NRGBA{})
	cs.Update(w, 1.0/60)
	if hp.Current != hp.Max {
		t.Fatalf("spawning boss took damage: %v/%v", hp.Current, hp.Max)
	}
}

func TestMinionContactAndShots(t *testing.T) {
	t.Run("contact_damages_player", func(t *testing.T) {
		w := newTestWorld(1)
		signals := &component.WorldSignals{}
		cs := NewCollisionSystem(signals, NewBossSystem(signals))

		pe := entity.NewPlayer(w)
		ptr, _ := ecs.Get(w, pe, component.TransformComponent)
		hp, _ := ecs.Get(w, pe, component.HealthComponent)

		me, _ := entity.NewMinion(w, ptr.X, ptr.Y)
		cs.Update(w, 1.0/60)
		if hp.Current >= hp.Max {
			t.Fatal("minion contact did no damage")
		}
		if ecs.IsAlive(w, me) {
			t.Fatal("minion survived its own contact hit")
		}
	})

	t.Run("shots_kill_minion", func(t *testing.T) {
		w := newTestWorld(1)
		signals := &component.WorldSignals{}
		cs := NewCollisionSystem(signals, NewBossSystem(signals))

		entity.NewPlayer(w)
		// away from the player so there is no contact damage
		me, _ := entity.NewMinion(w, 500, 100)
		hp, _ := ecs.Get(w, me, component.HealthComponent)

		entity.NewProjectile(w, 500, 100, 420, -math.Pi/2, 25, component.OwnerPlayer, 6, 14, color.NRGBA{})
		cs.Update(w, 1.0/60)
		if hp.Current != 25 {
			t.Fatalf("minion health = %v after one hit, want 25", hp.Current)
		}
		if !ecs.IsAlive(w, me) {
			t.Fatal("minion died with health remaining")
		}

		entity.NewProjectile(w, 500, 100, 420, -math.Pi/2, 25, component.OwnerPlayer, 6, 14, color.NRGBA{})
		cs.Update(w, 1.0/60)
		if ecs.IsAlive(w, me) {
			t.Fatal("minion survived lethal damage")
		}
	})
}

func TestBeamHitsPlayer(t *testing.T) {
	w := newTestWorld(1)
	signals := &component.WorldSignals{}
	bs := NewBossSystem(signals)
	cs := NewCollisionSystem(signals, bs)

	pe := entity.NewPlayer(w)
	ptr, _ := ecs.Get(w, pe, component.TransformComponent)
	hp, _ := ecs.Get(w, pe, component.HealthComponent)

	be := spawnTestBoss(t, w, 4, "beam")
	makeActive(t, bs, w, be)
	btr, _ := ecs.Get(w, be, component.TransformComponent)
	btr.X, btr.Y = ptr.X, 120 // directly above the player

	beam, _ := ecs.Get(w, be, component.BeamComponent)
	beam.Active = true
	beam.Remaining = 10
	// one ray straight down through the player, the rest pointing away
	beam.Angles = [4]float64{math.Pi / 2, 0, math.Pi, -math.Pi / 2}

	cs.Update(w, 1.0/60)
	if hp.Current != hp.Max-20 {
		t.Fatalf("player health = %v after beam tick, want %v", hp.Current, hp.Max-20)
	}

	// i-frames hold off the next tick's rays
	cs.Update(w, 1.0/60)
	if hp.Current != hp.Max-20 {
		t.Fatalf("beam damaged through i-frames: %v", hp.Current)
	}
}

func TestPlayerDefeatEvent(t *testing.T) {
	w := newTestWorld(1)
	signals := &component.WorldSignals{}
	cs := NewCollisionSystem(signals, NewBossSystem(signals))

	pe := entity.NewPlayer(w)
	ptr, _ := ecs.Get(w, pe, component.TransformComponent)
	hp, _ := ecs.Get(w, pe, component.HealthComponent)
	hp.Current = 5

	entity.NewProjectile(w, ptr.X, ptr.Y, 100, 0, 10, component.OwnerEnemy, 10, 10, color.NRGBA{})
	cs.Update(w, 1.0/60)

	if hp.Current != 0 {
		t.Fatalf("player health = %v, want clamped to 0", hp.Current)
	}
	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Type != ecs.EventPlayerDefeated {
		t.Fatalf("expected a defeat event, got %v", evts)
	}
}

func TestCollisionTimeStop(t *testing.T) {
	w := newTestWorld(1)
	signals := &component.WorldSignals{TimeStop: true}
	cs := NewCollisionSystem(signals, NewBossSystem(signals))

	pe := entity.NewPlayer(w)
	ptr, _ := ecs.Get(w, pe, component.TransformComponent)
	hp, _ := ecs.Get(w, pe, component.HealthComponent)

	entity.NewProjectile(w, ptr.X, ptr.Y, 100, 0, 10, component.OwnerEnemy, 10, 10, color.NRGBA{})
	cs.Update(w, 1.0/60)
	if hp.Current != hp.Max {
		t.Fatalf("collision resolved during time stop: %v/%v", hp.Current, hp.Max)
	}
}

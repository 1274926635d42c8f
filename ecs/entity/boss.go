package entity

import (
	"fmt"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
	"github.com/drube17/bossrush/pattern"
	"github.com/drube17/bossrush/prefabs"
)

const (
	healthPerStage = 1000
	pointsPerStage = 10000

	bossSpawnDuration = 2.0
	bossTargetY       = 120.0
)

// NewBoss spawns the boss for a stage spec. Stats derive from the stage
// number: maxHealth = 1000×stage, points = 10000×stage. The boss enters
// above the screen and eases down to its hold position while Spawning.
func NewBoss(w *ecs.World, spec *prefabs.StageSpec) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity(0), fmt.Errorf("entity: boss spawn: world not supplied")
	}
	if spec == nil || spec.Stage < 1 {
		return ecs.Entity(0), fmt.Errorf("entity: boss spawn: invalid stage spec")
	}

	gimmick, err := spec.GimmickKind()
	if err != nil {
		return ecs.Entity(0), fmt.Errorf("entity: boss spawn: %w", err)
	}

	var script *pattern.Script
	if gimmick == component.GimmickScripted {
		src, err := prefabs.Load(spec.Script)
		if err != nil {
			return ecs.Entity(0), fmt.Errorf("entity: boss spawn: %w", err)
		}
		script, err = pattern.CompileScript(spec.Script, src)
		if err != nil {
			return ecs.Entity(0), fmt.Errorf("entity: boss spawn: %w", err)
		}
	}

	maxHealth := float64(healthPerStage * spec.Stage)

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X: common.ScreenWidth / 2,
		Y: -spec.Sprite.Height,
	})
	_ = ecs.Add(w, e, component.BossComponent, &component.Boss{
		Stage:       spec.Stage,
		DisplayName: spec.Name,
		Width:       spec.Sprite.Width,
		Height:      spec.Sprite.Height,
		Speed:       spec.Speed,
		Points:      pointsPerStage * spec.Stage,
		Gimmick:     gimmick,
		Script:      script,
	})
	_ = ecs.Add(w, e, component.BossRuntimeComponent, &component.BossRuntime{
		State:      component.BossSpawning,
		SpawnTimer: bossSpawnDuration,
		TargetY:    bossTargetY,
		Dir:        1,
	})
	_ = ecs.Add(w, e, component.HealthComponent, &component.Health{Current: maxHealth, Max: maxHealth})
	_ = ecs.Add(w, e, component.PhaseShiftComponent, &component.PhaseShift{State: component.PhaseIdle})
	_ = ecs.Add(w, e, component.BeamComponent, &component.Beam{})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Width:  spec.Sprite.Width,
		Height: spec.Sprite.Height,
		Color:  spec.Sprite.NRGBA(),
	})
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: 4})
	return e, nil
}

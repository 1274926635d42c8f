package component

import (
	"image/color"

	"github.com/drube17/bossrush/pattern"
)

// BossState is the boss lifecycle. Dead is terminal.
type BossState int

const (
	BossSpawning BossState = iota
	BossActive
	BossDead
)

func (s BossState) String() string {
	switch s {
	case BossSpawning:
		return "spawning"
	case BossActive:
		return "active"
	case BossDead:
		return "dead"
	}
	return "unknown"
}

// GimmickKind is the per-stage scripted behavior, dispatched exhaustively
// rather than branching on the raw stage number.
type GimmickKind int

const (
	GimmickNone GimmickKind = iota
	GimmickMinions
	GimmickPhaseShift
	GimmickSustainedBeam
	GimmickSnipe
	GimmickScripted
)

func (k GimmickKind) String() string {
	switch k {
	case GimmickNone:
		return "none"
	case GimmickMinions:
		return "minions"
	case GimmickPhaseShift:
		return "phase_shift"
	case GimmickSustainedBeam:
		return "beam"
	case GimmickSnipe:
		return "snipe"
	case GimmickScripted:
		return "scripted"
	}
	return "unknown"
}

// Boss holds the static per-stage configuration. Mutable encounter state
// lives in BossRuntime, health in Health.
type Boss struct {
	Stage       int
	DisplayName string
	Width       float64
	Height      float64
	Speed       float64
	Points      int
	Gimmick     GimmickKind
	// Script backs GimmickScripted bonus stages; nil otherwise.
	Script *pattern.Script
}

// PendingShot is a scheduled projectile owned by the boss controller and
// drained each tick, so staggered bursts stay inside the synchronous
// per-tick model. Aimed shots resolve their angle against the player's
// position at their own fire instant.
type PendingShot struct {
	Delay  float64
	Speed  float64
	Damage float64
	Aimed  bool
	Angle  float64
	Width  float64
	Height float64
	Color  color.NRGBA
}

// BossRuntime is the controller's mutable state machine data.
type BossRuntime struct {
	State BossState

	// Spawning: countdown and the y the boss eases toward.
	SpawnTimer float64
	TargetY    float64

	// Active: lateral oscillation direction (+1 or -1) and the two
	// orthogonal cooldowns.
	Dir             float64
	PatternCooldown float64
	GimmickCooldown float64

	Pending []PendingShot
}

var BossComponent = NewHandle[Boss]()
var BossRuntimeComponent = NewHandle[BossRuntime]()

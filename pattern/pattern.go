// Package pattern is the boss's bullet-pattern library: pure functions
// that resolve boss and player positions into projectile-spawn
// descriptors. Nothing here touches the world; the boss controller turns
// the descriptors into entities.
package pattern

import (
	"image/color"
	"log"
	"math"

	"github.com/drube17/bossrush/common"
)

// Kind names the basic patterns the boss cycles through.
type Kind int

const (
	AimedBurst3 Kind = iota
	Circular12
	Aimed5Way
)

// BasicCount is the size of the random pattern pool.
const BasicCount = 3

func (k Kind) String() string {
	switch k {
	case AimedBurst3:
		return "aimed-burst-3"
	case Circular12:
		return "circular-12"
	case Aimed5Way:
		return "aimed-5way"
	}
	return "unknown"
}

const (
	burstSpeed    = 120.0
	burstDamage   = 10.0
	burstStagger  = 0.1
	circularSpeed = 100.0
	circularCount = 12
	fiveWaySpeed  = 110.0
	fiveWayStep   = math.Pi / 18
	basicDamage   = 10.0
	snipeSpeed    = 500.0
	snipeDamage   = 20.0

	// BeamSpread separates the four sustained-beam rays. The two central
	// rays sit at ±0.5×spread around the aim angle, so the player is
	// strictly between them at activation.
	BeamSpread = math.Pi / 6

	shotWidth  = 10.0
	shotHeight = 10.0
)

var (
	burstColor   = color.NRGBA{R: 0xff, G: 0x60, B: 0x40, A: 0xff}
	circleColor  = color.NRGBA{R: 0xff, G: 0xc8, B: 0x30, A: 0xff}
	fiveWayColor = color.NRGBA{R: 0x50, G: 0xc8, B: 0xff, A: 0xff}
	snipeColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Shot describes one projectile spawn. Delay > 0 defers the shot; an
// Aimed deferred shot re-resolves its angle against the player's position
// at its own fire instant, not the instant the pattern was chosen.
type Shot struct {
	Speed  float64
	Angle  float64
	Damage float64
	Delay  float64
	Aimed  bool
	Width  float64
	Height float64
	Color  color.NRGBA
}

// Resolve produces the shots for a basic pattern given the boss and
// player positions at fire time. Malformed positions are rejected here so
// NaN never propagates into projectile velocities.
func Resolve(kind Kind, bx, by, px, py float64) []Shot {
	if !common.Finite(bx, by, px, py) {
		log.Printf("pattern: rejecting %s fire with non-finite positions", kind)
		return nil
	}
	switch kind {
	case AimedBurst3:
		return aimedBurst3(bx, by, px, py)
	case Circular12:
		return circular12()
	case Aimed5Way:
		return aimed5Way(bx, by, px, py)
	}
	log.Printf("pattern: unknown pattern kind %d", kind)
	return nil
}

// aimedBurst3 fires three shots staggered burstStagger apart. Only the
// first resolves its angle now; the rest are aimed at fire time.
func aimedBurst3(bx, by, px, py float64) []Shot {
	shots := make([]Shot, 0, 3)
	for i := 0; i < 3; i++ {
		s := Shot{
			Speed:  burstSpeed,
			Damage: burstDamage,
			Delay:  float64(i) * burstStagger,
			Aimed:  true,
			Width:  shotWidth,
			Height: shotHeight,
			Color:  burstColor,
		}
		if i == 0 {
			s.Aimed = false
			s.Angle = common.AngleTo(bx, by, px, py)
		}
		shots = append(shots, s)
	}
	return shots
}

// circular12 emits twelve shots evenly spaced over the full circle,
// starting at angle 0, independent of the player.
func circular12() []Shot {
	shots := make([]Shot, 0, circularCount)
	for i := 0; i < circularCount; i++ {
		shots = append(shots, Shot{
			Speed:  circularSpeed,
			Angle:  float64(i) * 2 * math.Pi / circularCount,
			Damage: basicDamage,
			Width:  shotWidth,
			Height: shotHeight,
			Color:  circleColor,
		})
	}
	return shots
}

// aimed5Way emits five shots centered on the angle to the player, spread
// ±2 steps of fiveWayStep.
func aimed5Way(bx, by, px, py float64) []Shot {
	center := common.AngleTo(bx, by, px, py)
	shots := make([]Shot, 0, 5)
	for i := -2; i <= 2; i++ {
		shots = append(shots, Shot{
			Speed:  fiveWaySpeed,
			Angle:  center + float64(i)*fiveWayStep,
			Damage: basicDamage,
			Width:  shotWidth,
			Height: shotHeight,
			Color:  fiveWayColor,
		})
	}
	return shots
}

// Snipe is the stage-5 gimmick's extra shot: a single very fast shot
// aimed directly at the player.
func Snipe(bx, by, px, py float64) (Shot, bool) {
	if !common.Finite(bx, by, px, py) {
		log.Printf("pattern: rejecting snipe with non-finite positions")
		return Shot{}, false
	}
	return Shot{
		Speed:  snipeSpeed,
		Angle:  common.AngleTo(bx, by, px, py),
		Damage: snipeDamage,
		Width:  shotWidth,
		Height: shotHeight,
		Color:  snipeColor,
	}, true
}

// BeamAngles freezes the four sustained-beam angles around the aim
// angle: ±0.5 and ±1.5 times BeamSpread, ordered ascending.
func BeamAngles(aim float64) [4]float64 {
	return [4]float64{
		aim - 1.5*BeamSpread,
		aim - 0.5*BeamSpread,
		aim + 0.5*BeamSpread,
		aim + 1.5*BeamSpread,
	}
}

package component

// Player marks the player entity and carries its movement state. Locked
// is the movement-lock flag the phase-shift gimmick sets and clears.
type Player struct {
	Speed        float64
	Locked       bool
	FireCooldown float64
	IFrames      float64
	Width        float64
	Height       float64
}

var PlayerComponent = NewHandle[Player]()

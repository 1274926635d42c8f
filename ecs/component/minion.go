package component

// Minion is a homing minor enemy spawned by the stage-2 gimmick. It
// steers toward the player with a capped turn rate.
type Minion struct {
	Speed    float64
	TurnRate float64 // radians per second
	Heading  float64
	Damage   float64
	Width    float64
	Height   float64
}

var MinionComponent = NewHandle[Minion]()

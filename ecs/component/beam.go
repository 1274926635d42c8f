package component

// Beam hit-testing extents, shared with the collision and render
// collaborators.
const (
	BeamLength = 1200.0
	BeamWidth  = 8.0
)

// Beam is the sustained-laser gimmick state. The four angles are frozen
// at activation and never re-aim; only the origin tracks the boss.
type Beam struct {
	Active    bool
	Angles    [4]float64
	Remaining float64
}

// Ray is one beam ray for collision and rendering.
type Ray struct {
	X, Y   float64
	Angle  float64
	Length float64
	Width  float64
}

// Rays materializes the frozen angles from the given origin.
func (b *Beam) Rays(x, y float64) []Ray {
	if b == nil || !b.Active {
		return nil
	}
	out := make([]Ray, 0, len(b.Angles))
	for _, a := range b.Angles {
		out = append(out, Ray{X: x, Y: y, Angle: a, Length: BeamLength, Width: BeamWidth})
	}
	return out
}

var BeamComponent = NewHandle[Beam]()

package component

// Velocity is in world units per second. Projectile velocities are
// resolved once at spawn and never change afterwards.
type Velocity struct {
	VX float64
	VY float64
}

var VelocityComponent = NewHandle[Velocity]()

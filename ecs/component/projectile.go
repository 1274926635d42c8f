package component

// Owner tags who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Projectile is a moving point with a hitbox. Velocity lives in the
// Velocity component and is immutable after spawn. Projectiles are culled
// by the projectile system (off-screen) or the collision system (on hit),
// never by the boss controller.
type Projectile struct {
	Owner  Owner
	Damage float64
	Width  float64
	Height float64
}

var ProjectileComponent = NewHandle[Projectile]()

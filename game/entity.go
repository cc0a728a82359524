package game

// Faction decides which projectiles may damage which targets.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionHostile
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "player"
	}
	return "hostile"
}

// Entity is the common interface for everything the session simulates.
// It lets collision and rendering code treat every kind uniformly.
type Entity interface {
	// GetPosition returns the entity's world coordinates.
	GetPosition() Vec

	// GetRadius returns the entity's collision radius.
	GetRadius() float64

	// GetHealth returns the entity's current health.
	GetHealth() int

	// IsAlive reports health > 0 and not expired.
	IsAlive() bool
}

// Compile-time interface checks
var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Combatant)(nil)
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Pickup)(nil)
	_ Entity = (*Turret)(nil)
)

// Body holds the state shared by every entity kind.
type Body struct {
	Pos       Vec
	Radius    float64
	Health    int
	MaxHealth int
	expired   bool
}

// NewBody returns a body at full health.
func NewBody(pos Vec, radius float64, health int) Body {
	return Body{Pos: pos, Radius: radius, Health: health, MaxHealth: health}
}

// GetPosition implements Entity.
func (b *Body) GetPosition() Vec { return b.Pos }

// GetRadius implements Entity.
func (b *Body) GetRadius() float64 { return b.Radius }

// GetHealth implements Entity.
func (b *Body) GetHealth() int { return b.Health }

// IsAlive implements Entity.
func (b *Body) IsAlive() bool {
	return b.Health > 0 && !b.expired
}

// Expire marks the body dead regardless of health.
func (b *Body) Expire() {
	b.expired = true
}

// Expired reports whether Expire was called.
func (b *Body) Expired() bool {
	return b.expired
}

// TakeDamage subtracts d from health, clamped at zero, and reports whether
// this call moved the body from alive to dead. Damage to a dead body is
// ignored so the transition is reported exactly once.
func (b *Body) TakeDamage(d int) bool {
	if !b.IsAlive() || d <= 0 {
		return false
	}
	b.Health -= d
	if b.Health < 0 {
		b.Health = 0
	}
	return b.Health == 0
}

// Heal adds n health, capped at MaxHealth.
func (b *Body) Heal(n int) {
	if !b.IsAlive() {
		return
	}
	b.Health = min(b.Health+n, b.MaxHealth)
}

// Destroy kills the body and reports whether it was alive before.
func (b *Body) Destroy() bool {
	if !b.IsAlive() {
		return false
	}
	b.expired = true
	return true
}

// Overlaps reports whether two entities are closer than the sum of their radii.
func Overlaps(a, b Entity) bool {
	r := a.GetRadius() + b.GetRadius()
	return a.GetPosition().DistSq(b.GetPosition()) < r*r
}

package game

// Projectile is a bullet travelling in a straight line.
type Projectile struct {
	Body
	Vel      Vec
	Damage   int
	Lifetime int // ticks remaining
	Owner    Faction
	Fire     bool // dragon fire, drawn differently
}

// NewProjectile creates a projectile at origin moving along dir at spec.Speed.
// dir is normalized here so callers may pass any non-zero direction.
func NewProjectile(origin, dir Vec, owner Faction, damage int, spec ProjectileSpec) *Projectile {
	return &Projectile{
		Body:     NewBody(origin, spec.Radius, 1),
		Vel:      dir.Normalize().Scale(spec.Speed),
		Damage:   damage,
		Lifetime: spec.Lifetime,
		Owner:    owner,
	}
}

// Update advances the projectile by one tick. It expires when the lifetime
// runs out or it leaves bounds. Returns false once the projectile is dead.
func (p *Projectile) Update(bounds Bounds) bool {
	if !p.IsAlive() {
		return false
	}

	p.Pos = p.Pos.Add(p.Vel)
	p.Lifetime--

	if p.Lifetime <= 0 || !bounds.Contains(p.Pos) {
		p.Expire()
		return false
	}
	return true
}

// Hits reports whether the projectile is allowed to damage a target of faction f.
func (p *Projectile) Hits(f Faction) bool {
	return p.Owner != f
}

package game

// Turret is a stationary player-owned gun deployed by the Robot special.
type Turret struct {
	Body
	Range    float64
	Damage   int
	Cooldown int
}

// NewTurret places a turret on the ground at pos.
func NewTurret(pos Vec, cfg *TurretConfig) *Turret {
	pos.Y = cfg.Height
	return &Turret{
		Body:   NewBody(pos, cfg.Radius, cfg.Health),
		Range:  cfg.Range,
		Damage: cfg.Damage,
	}
}

// Update fires at the nearest live combatant in range when ready.
func (t *Turret) Update(g *Game) {
	if !t.IsAlive() {
		return
	}

	if t.Cooldown == 0 {
		if target := t.nearest(g.Combatants); target != nil {
			dir := target.Pos.Sub(t.Pos)
			g.spawnProjectile(NewProjectile(t.Pos, dir, FactionPlayer, t.Damage, g.cfg.Turret.Bullet))
			t.Cooldown = g.cfg.Turret.Cooldown
		}
	}

	if t.Cooldown > 0 {
		t.Cooldown--
	}
}

// nearest returns the closest live combatant within range. Ties keep the
// earlier container entry.
func (t *Turret) nearest(cs []*Combatant) *Combatant {
	var best *Combatant
	bestD := t.Range * t.Range
	for _, c := range cs {
		if !c.IsAlive() {
			continue
		}
		if d := t.Pos.DistSq(c.Pos); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

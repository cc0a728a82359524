package game

// resolveCollisions applies every pairwise rule once for the tick. The
// combatant grid is rebuilt first; candidate lists come back in container
// order so the earliest live combatant wins a shared projectile.
func (g *Game) resolveCollisions() {
	g.populateGrid()
	g.resolvePlayerShots()
	g.resolveHostileShots()
	g.resolvePickups()
	g.resolveContact()
}

// populateGrid clears and repopulates the combatant grid.
func (g *Game) populateGrid() {
	g.grid.Clear()
	for i, c := range g.Combatants {
		if c.IsAlive() {
			g.grid.Insert(c.Pos, c.Radius, i)
		}
	}
}

// resolvePlayerShots hits at most one combatant per player-owned projectile.
func (g *Game) resolvePlayerShots() {
	for _, p := range g.Projectiles {
		if !p.IsAlive() || !p.Hits(FactionHostile) {
			continue
		}

		g.candidates = g.grid.Candidates(p.Pos, p.Radius, g.candidates)
		for _, i := range g.candidates {
			c := g.Combatants[i]
			if !c.IsAlive() || !Overlaps(p, c) {
				continue
			}
			p.Expire()
			if c.Hurt(p.Damage) {
				g.awardKill(c)
			} else {
				g.emit(Effect{Kind: EffectHit, Pos: c.Pos, Value: p.Damage})
			}
			break
		}
	}
}

// resolveHostileShots tests hostile projectiles against the player first
// and then any deployed turrets.
func (g *Game) resolveHostileShots() {
	pl := g.Player
	for _, p := range g.Projectiles {
		if !p.IsAlive() || !p.Hits(FactionPlayer) {
			continue
		}

		if pl != nil && pl.IsAlive() && Overlaps(p, pl) {
			p.Expire()
			g.hurtPlayer(p.Damage, p.Pos)
			continue
		}

		for _, t := range g.Turrets {
			if t.IsAlive() && Overlaps(p, t) {
				p.Expire()
				t.TakeDamage(p.Damage)
				g.emit(Effect{Kind: EffectHit, Pos: t.Pos, Value: p.Damage})
				break
			}
		}
	}
}

// resolvePickups applies and removes every pickup the player touches.
func (g *Game) resolvePickups() {
	pl := g.Player
	if pl == nil || !pl.IsAlive() {
		return
	}
	for _, pk := range g.Pickups {
		if !pk.IsAlive() || !Overlaps(pk, pl) {
			continue
		}
		pk.Apply(pl, &g.cfg.Pickups)
		pk.Expire()
		g.emit(Effect{Kind: EffectPickup, Pos: pk.Pos, Value: int(pk.Kind)})
		g.log.Debug("pickup collected", "session", g.sessionID, "kind", pk.Kind)
	}
}

// resolveContact handles melee contact within ContactRadius. The combatant
// is always destroyed and scored; the divine character takes no damage.
func (g *Game) resolveContact() {
	pl := g.Player
	if g.cfg.ContactRadius <= 0 || pl == nil {
		return
	}
	for _, c := range g.Combatants {
		if !pl.IsAlive() {
			return
		}
		if !c.IsAlive() || c.Pos.Dist(pl.Pos) >= g.cfg.ContactRadius {
			continue
		}
		g.emit(Effect{Kind: EffectContact, Pos: c.Pos})
		g.hurtPlayer(g.cfg.ContactDamage, c.Pos)
		if c.Destroy() {
			g.awardKill(c)
		}
	}
}

// hurtPlayer routes damage through the player rules and emits feedback.
func (g *Game) hurtPlayer(damage int, at Vec) {
	switch g.Player.Hurt(damage) {
	case HurtDeflected:
		g.emit(Effect{Kind: EffectDeflect, Pos: at})
	case HurtShielded:
		g.emit(Effect{Kind: EffectShielded, Pos: at})
	case HurtDamaged:
		g.emit(Effect{Kind: EffectPlayerHit, Pos: at, Value: damage})
	case HurtKilled:
		g.emit(Effect{Kind: EffectPlayerHit, Pos: at, Value: damage})
		g.log.Info("player killed", "session", g.sessionID, "tick", g.tick, "score", g.Score)
	}
}

// awardKill credits score for a combatant that just died.
func (g *Game) awardKill(c *Combatant) {
	g.Score += c.Score
	g.Kills++
	g.emit(Effect{Kind: EffectDeath, Pos: c.Pos, Value: c.Score})
	g.log.Debug("combatant destroyed", "session", g.sessionID, "kind", c.Kind, "score", g.Score)
}

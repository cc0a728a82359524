package game

import "testing"

// addShot places a stationary projectile at pos.
func addShot(g *Game, pos Vec, owner Faction, damage int) *Projectile {
	p := NewProjectile(pos, Vec{}, owner, damage, ProjectileSpec{Radius: 4, Lifetime: 60})
	g.Projectiles = append(g.Projectiles, p)
	return p
}

// TestCollision_OneTargetPerProjectile tests that overlapping combatants
// share a projectile with the earliest container entry winning
func TestCollision_OneTargetPerProjectile(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	pos := Vec{X: 700, Y: 100}
	first := addCombatant(g, KindBot, pos)
	second := addCombatant(g, KindBot, pos)
	shot := addShot(g, pos, FactionPlayer, 20)

	g.resolveCollisions()

	if first.Health != 40 {
		t.Errorf("Expected first combatant at 40 hp, got %d", first.Health)
	}
	if second.Health != 60 {
		t.Errorf("Expected second combatant untouched, got %d", second.Health)
	}
	if shot.IsAlive() {
		t.Error("Expected projectile consumed")
	}
}

// TestCollision_KillScoredOnce tests three 20-damage shots on a 60 hp
// combatant in the same tick: one death, one score award
func TestCollision_KillScoredOnce(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	pos := Vec{X: 700, Y: 100}
	c := addCombatant(g, KindBot, pos)
	shots := []*Projectile{
		addShot(g, pos, FactionPlayer, 20),
		addShot(g, pos, FactionPlayer, 20),
		addShot(g, pos, FactionPlayer, 20),
	}
	spare := addShot(g, pos, FactionPlayer, 20)

	g.resolveCollisions()

	if c.IsAlive() {
		t.Error("Expected combatant dead after 60 damage")
	}
	if g.Score != 100 || g.Kills != 1 {
		t.Errorf("Expected score 100 and 1 kill, got %d and %d", g.Score, g.Kills)
	}
	for i, s := range shots {
		if s.IsAlive() {
			t.Errorf("Expected shot %d consumed", i)
		}
	}
	if !spare.IsAlive() {
		t.Error("Expected fourth shot to pass through the dead combatant")
	}

	deaths := 0
	for _, e := range g.Effects() {
		if e.Kind == EffectDeath {
			deaths++
		}
	}
	if deaths != 1 {
		t.Errorf("Expected 1 death effect, got %d", deaths)
	}
}

// TestCollision_FriendlyFireIgnored tests faction filtering in the resolver
func TestCollision_FriendlyFireIgnored(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	pos := Vec{X: 700, Y: 100}
	c := addCombatant(g, KindBot, pos)
	shot := addShot(g, pos, FactionHostile, 20)

	own := addShot(g, g.Player.Pos, FactionPlayer, 20)

	g.resolveCollisions()

	if c.Health != 60 || !shot.IsAlive() {
		t.Error("Expected hostile shot to ignore combatants")
	}
	if g.Player.Health != 100 || !own.IsAlive() {
		t.Error("Expected player shot to ignore the player")
	}
}

// TestCollision_HostileHitsPlayer tests damage and shield absorption
func TestCollision_HostileHitsPlayer(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	addShot(g, g.Player.Pos, FactionHostile, 15)

	g.resolveCollisions()
	if g.Player.Health != 85 {
		t.Errorf("Expected health 85, got %d", g.Player.Health)
	}

	g.Player.Mods.Shield.Set(10, 1)
	shielded := addShot(g, g.Player.Pos, FactionHostile, 15)
	g.resolveCollisions()
	if g.Player.Health != 85 {
		t.Errorf("Expected shield to absorb, health %d", g.Player.Health)
	}
	if shielded.IsAlive() {
		t.Error("Expected shielded projectile consumed")
	}
}

// TestCollision_HostileHitsTurret tests hostile shots damaging turrets
func TestCollision_HostileHitsTurret(t *testing.T) {
	g := newTestGame(t, ModeSurvival, CharacterRobot)
	g.deployTurret(Vec{X: 20, Z: 20})
	tr := g.Turrets[0]
	shot := NewProjectile(tr.Pos, Vec{}, FactionHostile, 15, g.cfg.Hostile)
	g.Projectiles = append(g.Projectiles, shot)

	g.resolveCollisions()

	if tr.Health != g.cfg.Turret.Health-15 {
		t.Errorf("Expected turret at %d hp, got %d", g.cfg.Turret.Health-15, tr.Health)
	}
	if shot.IsAlive() {
		t.Error("Expected projectile consumed by the turret")
	}
}

// TestCollision_Contact tests melee contact in survival
func TestCollision_Contact(t *testing.T) {
	g := newTestGame(t, ModeSurvival, CharacterPilot)
	pl := g.Player.Pos
	c := addCombatant(g, KindBasic, Vec{X: pl.X + 1, Y: pl.Y, Z: pl.Z})
	far := addCombatant(g, KindBasic, Vec{X: pl.X + 2.5, Y: pl.Y, Z: pl.Z})

	g.resolveCollisions()

	if g.Player.Health != 80 {
		t.Errorf("Expected 20 contact damage, health %d", g.Player.Health)
	}
	if c.IsAlive() {
		t.Error("Expected combatant destroyed on contact")
	}
	if g.Score != 100 {
		t.Errorf("Expected contact kill scored 100, got %d", g.Score)
	}
	if !far.IsAlive() {
		t.Error("Expected combatant outside contact radius to survive")
	}
}

// TestCollision_ContactDivine tests that divine contact costs no health
func TestCollision_ContactDivine(t *testing.T) {
	g := newTestGame(t, ModeSurvival, CharacterSecret)
	pl := g.Player.Pos
	c := addCombatant(g, KindTank, Vec{X: pl.X + 1, Y: pl.Y, Z: pl.Z})

	g.resolveCollisions()

	if g.Player.Health != g.Player.MaxHealth {
		t.Errorf("Expected divine health unchanged, got %d", g.Player.Health)
	}
	if c.IsAlive() || g.Score != 200 {
		t.Errorf("Expected tank destroyed and scored 200, alive=%v score=%d", c.IsAlive(), g.Score)
	}
}

// TestCollision_NoContactInArena tests that arena bots have no melee
func TestCollision_NoContactInArena(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	c := addCombatant(g, KindBot, g.Player.Pos)

	g.resolveCollisions()

	if !c.IsAlive() || g.Player.Health != 100 {
		t.Error("Expected no contact rule in arena mode")
	}
}

// TestCollision_Pickup tests collecting a pickup
func TestCollision_Pickup(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	g.Player.Health = 50
	pk := NewPickup(PickupHealth, g.Player.Pos, &g.cfg.Pickups)
	g.Pickups = append(g.Pickups, pk)

	g.resolveCollisions()

	if g.Player.Health != 80 {
		t.Errorf("Expected health 80, got %d", g.Player.Health)
	}
	if pk.IsAlive() {
		t.Error("Expected pickup consumed")
	}
}

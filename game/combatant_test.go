package game

import (
	"math"
	"testing"
)

// TestCombatant_EngagesAndFires tests engage state, aim and cooldown reset
func TestCombatant_EngagesAndFires(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	pl := g.Player.Pos
	c := addCombatant(g, KindBot, Vec{X: pl.X + 100, Y: pl.Y})

	c.Update(g)

	if c.State != StateEngage {
		t.Errorf("Expected engage state, got %s", c.State)
	}
	if !approx(c.Heading, math.Pi) {
		t.Errorf("Expected heading π toward the player, got %f", c.Heading)
	}
	if len(g.Projectiles) != 1 {
		t.Fatalf("Expected 1 hostile projectile, got %d", len(g.Projectiles))
	}
	if g.Projectiles[0].Owner != FactionHostile {
		t.Errorf("Expected hostile projectile, got %s", g.Projectiles[0].Owner)
	}
	if c.Cooldown != g.cfg.AI.FireCooldown {
		t.Errorf("Expected cooldown reset to %d, got %d", g.cfg.AI.FireCooldown, c.Cooldown)
	}
	if !approx(c.Pos.X, pl.X+98) {
		t.Errorf("Expected to step 2 toward the player, got X=%f", c.Pos.X)
	}
}

// TestCombatant_ArenaFireInterval tests that resetting the cooldown to its
// base keeps shots exactly FireCooldown ticks apart
func TestCombatant_ArenaFireInterval(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	c := addCombatant(g, KindBot, g.Player.Pos.Add(Vec{X: 100}))
	cd := g.cfg.AI.FireCooldown

	var shots []int
	for tick := 0; tick <= 2*cd; tick++ {
		before := len(g.Projectiles)
		c.Pos = g.Player.Pos.Add(Vec{X: 100})
		c.Update(g)
		if len(g.Projectiles) > before {
			shots = append(shots, tick)
		}
	}
	if len(shots) != 3 || shots[1]-shots[0] != cd || shots[2]-shots[1] != cd {
		t.Errorf("Expected shots every %d ticks, got %v", cd, shots)
	}
}

// TestCombatant_EngagedOutsideAttackRange tests chase without firing
func TestCombatant_EngagedOutsideAttackRange(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	pl := g.Player.Pos
	c := addCombatant(g, KindBot, Vec{X: pl.X + 250, Y: pl.Y})

	c.Update(g)

	if c.State != StateEngage {
		t.Errorf("Expected engage state, got %s", c.State)
	}
	if len(g.Projectiles) != 0 {
		t.Errorf("Expected no shot beyond attack radius, got %d", len(g.Projectiles))
	}
}

// TestCombatant_WandersOutOfRange tests wander state beyond engage radius
func TestCombatant_WandersOutOfRange(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	g.Player.Pos = Vec{X: 100, Y: 300}
	c := addCombatant(g, KindBot, Vec{X: 500, Y: 300})

	c.Update(g)

	if c.State != StateWander {
		t.Errorf("Expected wander state, got %s", c.State)
	}
	if c.Heading != 0 {
		t.Errorf("Expected zero jitter to keep heading 0, got %f", c.Heading)
	}
	if !approx(c.Pos.X, 502) {
		t.Errorf("Expected X=502, got %f", c.Pos.X)
	}
}

// TestCombatant_InvisiblePlayer tests that stealth withholds fire but
// still consumes the cooldown
func TestCombatant_InvisiblePlayer(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterNinja)
	g.Player.Invisible = true
	pl := g.Player.Pos
	c := addCombatant(g, KindBot, Vec{X: pl.X + 100, Y: pl.Y})

	c.Update(g)

	if len(g.Projectiles) != 0 {
		t.Errorf("Expected no shot at an invisible player, got %d", len(g.Projectiles))
	}
	if c.Cooldown != g.cfg.AI.BlindCooldown {
		t.Errorf("Expected blind cooldown %d, got %d", g.cfg.AI.BlindCooldown, c.Cooldown)
	}
}

// TestCombatant_ReflectsOffWall tests the arena bounce
func TestCombatant_ReflectsOffWall(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	g.Player.Pos = Vec{X: 100, Y: 500}
	c := addCombatant(g, KindBot, Vec{X: 881.5, Y: 100})

	c.Update(g)

	if !approx(c.Heading, math.Pi) {
		t.Errorf("Expected heading π after bounce, got %f", c.Heading)
	}
	if c.Pos.X != WIDTH-c.Radius {
		t.Errorf("Expected X clamped to %f, got %f", WIDTH-c.Radius, c.Pos.X)
	}
}

// TestCombatant_SurvivalClamp tests the survival footprint clamp
func TestCombatant_SurvivalClamp(t *testing.T) {
	g := newTestGame(t, ModeSurvival, CharacterPilot)
	g.Player = nil
	c := addCombatant(g, KindBasic, Vec{X: 44.99, Z: 0})

	c.Update(g)

	if c.Pos.X != SurvivalHalfExtent {
		t.Errorf("Expected X clamped to %f, got %f", SurvivalHalfExtent, c.Pos.X)
	}
	if c.Heading != 0 {
		t.Errorf("Expected clamp to leave heading alone, got %f", c.Heading)
	}
}

// TestCombatant_FireInterval tests one shot per cooldown period
func TestCombatant_FireInterval(t *testing.T) {
	g := newTestGame(t, ModeSurvival, CharacterPilot)
	c := addCombatant(g, KindBasic, Vec{X: 10, Z: 0})

	for i := 0; i < 120; i++ {
		c.Update(g)
	}
	if len(g.Projectiles) != 1 {
		t.Errorf("Expected 1 shot in the first 120 ticks, got %d", len(g.Projectiles))
	}
	c.Update(g)
	if len(g.Projectiles) != 2 {
		t.Errorf("Expected second shot on tick 121, got %d", len(g.Projectiles))
	}
}

// TestCombatant_DeadDoesNothing tests that a dead combatant is inert
func TestCombatant_DeadDoesNothing(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	pl := g.Player.Pos
	c := addCombatant(g, KindBot, Vec{X: pl.X + 100, Y: pl.Y})
	c.Destroy()
	start := c.Pos

	c.Update(g)

	if c.Pos != start || len(g.Projectiles) != 0 {
		t.Errorf("Expected dead combatant to stay put and hold fire")
	}
}

// TestTurret_FiresAtNearest tests turret targeting and cooldown
func TestTurret_FiresAtNearest(t *testing.T) {
	g := newTestGame(t, ModeSurvival, CharacterRobot)
	g.deployTurret(Vec{})
	addCombatant(g, KindBasic, Vec{X: 20})
	near := addCombatant(g, KindBasic, Vec{X: -5})

	tr := g.Turrets[0]
	tr.Update(g)

	if len(g.Projectiles) != 1 {
		t.Fatalf("Expected 1 turret shot, got %d", len(g.Projectiles))
	}
	shot := g.Projectiles[0]
	if shot.Vel.X >= 0 {
		t.Errorf("Expected shot toward the nearer combatant at %+v, velocity %+v", near.Pos, shot.Vel)
	}
	if shot.Owner != FactionPlayer {
		t.Errorf("Expected player-owned turret shot, got %s", shot.Owner)
	}

	tr.Update(g)
	if len(g.Projectiles) != 1 {
		t.Errorf("Expected cooldown to hold the second shot, got %d", len(g.Projectiles))
	}
}

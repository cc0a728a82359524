package game

import (
	"github.com/simukka/arena-blaster/common"
)

// AIState is the combatant behavior state.
type AIState int

const (
	StateWander AIState = iota
	StateEngage
)

func (s AIState) String() string {
	if s == StateEngage {
		return "engage"
	}
	return "wander"
}

// BoundsMode is how a combatant is kept inside the arena.
type BoundsMode int

const (
	// BoundsReflect mirrors the heading off the violated wall.
	BoundsReflect BoundsMode = iota
	// BoundsClamp pins the position to the footprint.
	BoundsClamp
)

// AIProfile tunes the combatant state machine for a mode.
type AIProfile struct {
	EngageRadius  float64 // 0 means always engaged
	AttackRadius  float64 // 0 means no range limit
	WanderJitter  float64
	FireCooldown  int
	BlindCooldown int // cooldown used when the player cannot be seen
	Bounds        BoundsMode
}

// Combatant is a hostile actor driven by the AI state machine.
type Combatant struct {
	Body
	Kind     CombatantKind
	State    AIState
	Heading  float64
	Speed    float64
	Damage   int
	Score    int
	Cooldown int
}

// NewCombatant creates a combatant of kind with the given stats.
func NewCombatant(kind CombatantKind, pos Vec, stats EnemyType, heading float64) *Combatant {
	return &Combatant{
		Body:    NewBody(pos, stats.Radius, stats.Health),
		Kind:    kind,
		Heading: heading,
		Speed:   stats.Speed,
		Damage:  stats.Damage,
		Score:   stats.Score,
	}
}

// Hurt applies damage and reports whether it killed the combatant.
func (c *Combatant) Hurt(damage int) bool {
	return c.TakeDamage(damage)
}

// Update runs one AI tick: count the cooldown down, pick state and
// heading, maybe fire, move, and resolve bounds. A shot leaves Cooldown at
// its configured base until the next tick.
func (c *Combatant) Update(g *Game) {
	if !c.IsAlive() {
		return
	}

	if c.Cooldown > 0 {
		c.Cooldown--
	}

	prof := &g.cfg.AI
	plane := g.cfg.Plane
	target := g.Player

	if target != nil && target.IsAlive() {
		dist := plane.PlanarDist(c.Pos, target.Pos)
		if prof.EngageRadius == 0 || dist < prof.EngageRadius {
			c.State = StateEngage
			c.Heading = plane.Angle(target.Pos.Sub(c.Pos))

			inRange := prof.AttackRadius == 0 || dist < prof.AttackRadius
			if inRange && c.Cooldown == 0 {
				if target.Invisible {
					c.Cooldown = prof.BlindCooldown
				} else {
					c.fire(g, target.Pos)
					c.Cooldown = prof.FireCooldown
				}
			}
		} else {
			c.wander(g.rng, prof)
		}
	} else {
		c.wander(g.rng, prof)
	}

	c.Pos = c.Pos.Add(plane.Dir(c.Heading).Scale(c.Speed))

	switch prof.Bounds {
	case BoundsReflect:
		c.Pos, c.Heading, _ = g.cfg.Bounds.Reflect(plane, c.Pos, c.Heading, c.Radius)
	case BoundsClamp:
		c.Pos = g.cfg.Bounds.Clamp(c.Pos, 0)
	}
}

func (c *Combatant) wander(rng common.Source, prof *AIProfile) {
	c.State = StateWander
	c.Heading += common.Jitter(rng, prof.WanderJitter)
}

// fire aims straight at the target's current position, no lead.
func (c *Combatant) fire(g *Game, at Vec) {
	dir := at.Sub(c.Pos)
	if dir.Len() == 0 {
		dir = g.cfg.Plane.Dir(c.Heading)
	}
	g.spawnProjectile(NewProjectile(c.Pos, dir, FactionHostile, c.Damage, g.cfg.Hostile))
}

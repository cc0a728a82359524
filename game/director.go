package game

import (
	"math"

	"github.com/simukka/arena-blaster/common"
)

// Director decides when and where combatants and pickups appear.
type Director interface {
	// Reset seeds the initial population for a new session.
	Reset(g *Game)
	// Update runs once per tick after entities were purged.
	Update(g *Game)
	// Victory reports whether the session has been won.
	Victory(g *Game) bool
	// Wave is the current wave number, 0 for modes without waves.
	Wave() int
}

// SteadyDirector keeps a fixed population of one combatant kind.
type SteadyDirector struct {
	cfg     SteadyConfig
	spawned int
}

// NewSteadyDirector creates a steady-population director.
func NewSteadyDirector(cfg SteadyConfig) *SteadyDirector {
	return &SteadyDirector{cfg: cfg}
}

// Reset spawns the initial population.
func (d *SteadyDirector) Reset(g *Game) {
	d.spawned = 0
	for i := 0; i < d.cfg.Target; i++ {
		d.spawn(g)
	}
}

// Update refills the population when respawning and rolls for pickups.
func (d *SteadyDirector) Update(g *Game) {
	if d.cfg.Respawn {
		for n := g.liveCombatants(); n < d.cfg.Target; n++ {
			d.spawn(g)
		}
	}
	if len(g.Pickups) < g.cfg.Pickups.MaxActive && common.Chance(g.rng, g.cfg.Pickups.Chance) {
		g.spawnPickup()
	}
}

// Victory is reached once the whole population is gone. Respawning
// sessions never end in victory.
func (d *SteadyDirector) Victory(g *Game) bool {
	return !d.cfg.Respawn && d.spawned > 0 && g.liveCombatants() == 0
}

// Wave always returns 0.
func (d *SteadyDirector) Wave() int { return 0 }

// spawn places one combatant at least SafeDistance from the player. After
// MaxAttempts rejections it falls back to the inset corner farthest from
// the player, which is out of reach whenever the area's half diagonal is.
func (d *SteadyDirector) spawn(g *Game) {
	stats, _ := EnemyStats(d.cfg.Kind)
	area := g.cfg.Bounds
	plane := g.cfg.Plane

	var best Vec
	bestD := -1.0
	for i := 0; i < max(1, d.cfg.MaxAttempts); i++ {
		pos := randomPoint(g.rng, area, plane, d.cfg.SpawnInset)
		dist := math.Inf(1)
		if g.Player != nil {
			dist = plane.PlanarDist(pos, g.Player.Pos)
		}
		if dist > bestD {
			best, bestD = pos, dist
		}
		if dist >= d.cfg.SafeDistance {
			break
		}
	}
	if bestD < d.cfg.SafeDistance && g.Player != nil {
		best = farthestCorner(area, plane, d.cfg.SpawnInset, g.Player.Pos)
	}

	g.spawnCombatant(NewCombatant(d.cfg.Kind, best, stats, common.RandomAngle(g.rng)))
	d.spawned++
}

// farthestCorner returns the corner of area shrunk by inset that lies
// farthest from p on plane.
func farthestCorner(area Bounds, plane Plane, inset float64, p Vec) Vec {
	minX, maxX := area.Min.X+inset, area.Max.X-inset
	x := minX
	if p.X-minX < maxX-p.X {
		x = maxX
	}
	if plane == PlaneXZ {
		minZ, maxZ := area.Min.Z+inset, area.Max.Z-inset
		z := minZ
		if p.Z-minZ < maxZ-p.Z {
			z = maxZ
		}
		return Vec{X: x, Z: z}
	}
	minY, maxY := area.Min.Y+inset, area.Max.Y-inset
	y := minY
	if p.Y-minY < maxY-p.Y {
		y = maxY
	}
	return Vec{X: x, Y: y}
}

// randomPoint returns a uniform point in area shrunk by inset on plane.
func randomPoint(rng common.Source, area Bounds, plane Plane, inset float64) Vec {
	p := Vec{X: common.RandomFloat(rng, area.Min.X+inset, area.Max.X-inset)}
	if plane == PlaneXZ {
		p.Z = common.RandomFloat(rng, area.Min.Z+inset, area.Max.Z-inset)
	} else {
		p.Y = common.RandomFloat(rng, area.Min.Y+inset, area.Max.Y-inset)
	}
	return p
}

// spawnPickup places a random pickup kind inside the pickup spawn area.
func (g *Game) spawnPickup() {
	cfg := &g.cfg.Pickups
	if len(cfg.Kinds) == 0 {
		return
	}
	kind := cfg.Kinds[common.RandomInt(g.rng, 0, len(cfg.Kinds))]
	pos := randomPoint(g.rng, cfg.SpawnArea, g.cfg.Plane, cfg.SpawnInset)
	if g.cfg.Plane == PlaneXZ {
		pos.Y = cfg.Height
	}
	g.Pickups = append(g.Pickups, NewPickup(kind, pos, cfg))
	g.log.Debug("pickup spawned", "session", g.sessionID, "kind", kind)
}

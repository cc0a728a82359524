package game

import (
	"math"

	"github.com/simukka/arena-blaster/common"
)

// HurtResult describes what an incoming hit did to the player.
type HurtResult int

const (
	HurtIgnored HurtResult = iota // player already dead
	HurtDeflected                 // divine character, damage discarded
	HurtShielded                  // shield modifier, damage discarded
	HurtDamaged
	HurtKilled
)

// Player holds the controlled character's state.
type Player struct {
	Body
	kind CharacterKind

	Speed  float64 // units per tick before modifiers
	Damage int
	Facing float64

	Cooldown        int
	SpecialCooldown int

	Ammo         int
	MaxAmmo      int
	InfiniteAmmo bool
	usesAmmo     bool

	Mods      Modifiers
	Invisible bool
	Flying    bool
}

// NewPlayer creates a player for kind at cfg.Spawn with full health and ammo.
func NewPlayer(kind CharacterKind, cfg PlayerConfig, infiniteAmmo bool) *Player {
	stats := kind.Stats()
	p := &Player{
		Body:         NewBody(cfg.Spawn, cfg.Radius, stats.Health),
		kind:         kind,
		Speed:        stats.Speed * cfg.SpeedScale,
		Damage:       stats.Damage,
		InfiniteAmmo: infiniteAmmo,
		usesAmmo:     cfg.UsesAmmo,
	}
	if cfg.UsesAmmo {
		p.MaxAmmo = cfg.MaxAmmo
		p.Ammo = cfg.MaxAmmo
	}
	return p
}

// Kind returns the character tag the player was created with.
func (p *Player) Kind() CharacterKind {
	return p.kind
}

// UsesAmmo reports whether firing consumes ammo.
func (p *Player) UsesAmmo() bool {
	return p.usesAmmo && !p.InfiniteAmmo
}

// MoveSpeed is the effective per-tick speed including modifiers.
func (p *Player) MoveSpeed(cfg *PlayerConfig) float64 {
	s := p.Speed * p.Mods.Speed.Or(1)
	if p.Flying {
		s *= cfg.FlightSpeedMult
	}
	return s
}

// Move applies directional input for one tick. Two perpendicular inputs are
// scaled by 1/√2 so diagonal speed matches single-axis speed.
func (p *Player) Move(in Input, cfg *Config) {
	if !p.IsAlive() {
		return
	}

	dx := axis(in.Right, in.Left)
	dy := axis(in.Down, in.Up)
	if dx != 0 && dy != 0 {
		dx *= diagonal
		dy *= diagonal
	}

	speed := p.MoveSpeed(&cfg.Player)
	var delta Vec
	inset := 0.0

	switch cfg.Plane {
	case PlaneXZ:
		// Forward is the view yaw; up input walks forward.
		sin, cos := math.Sincos(in.Yaw)
		forward := Vec{X: sin, Z: cos}
		right := Vec{X: cos, Z: -sin}
		delta = forward.Scale(-dy).Add(right.Scale(dx)).Scale(speed)
		p.Facing = in.Yaw
	default:
		delta = Vec{X: dx, Y: dy}.Scale(speed)
		inset = p.Radius
	}

	p.Pos = cfg.Bounds.Clamp(p.Pos.Add(delta), inset)
}

// Aim resolves the firing direction from input.
func (p *Player) Aim(in Input, plane Plane) Vec {
	if plane == PlaneXZ {
		return ViewDir(in.Yaw, in.Pitch)
	}
	dir := Vec{X: in.AimX - p.Pos.X, Y: in.AimY - p.Pos.Y}
	if dir.Len() == 0 {
		return plane.Dir(p.Facing)
	}
	p.Facing = plane.Angle(dir)
	return dir.Normalize()
}

// CanFire reports whether a fire request this tick would be honored.
func (p *Player) CanFire() bool {
	if !p.IsAlive() || p.Cooldown > 0 {
		return false
	}
	return !p.UsesAmmo() || p.Ammo > 0
}

// BaseCooldown is the reset value after a shot, halved under rapid fire.
func (p *Player) BaseCooldown(cfg *PlayerConfig) int {
	if p.Mods.RapidFire.Active() {
		return max(1, cfg.FireCooldown/2)
	}
	return cfg.FireCooldown
}

// ShotDamage is the per-projectile damage including the damage multiplier.
func (p *Player) ShotDamage() int {
	return int(math.Round(float64(p.Damage) * p.Mods.Damage.Or(1)))
}

// Fire spawns projectiles toward dir if allowed and reports whether it did.
// Out-of-ammo and cooldown requests are ignored without side effects.
func (p *Player) Fire(g *Game, dir Vec) bool {
	if !p.CanFire() {
		return false
	}
	cfg := &g.cfg.Player

	if p.UsesAmmo() {
		p.Ammo--
	}

	muzzle := p.Pos
	if g.cfg.Plane == PlaneXZ {
		muzzle.Y += cfg.MuzzleHeight
	}

	if p.kind.Stats().Special == SpecialFlight && cfg.SpreadCount > 0 {
		dmg := int(math.Round(float64(p.ShotDamage()) * cfg.SpreadDamageMult))
		for i := 0; i < cfg.SpreadCount; i++ {
			d := dir.Normalize().Add(Vec{
				X: common.Jitter(g.rng, cfg.SpreadJitter),
				Y: common.Jitter(g.rng, cfg.SpreadJitter),
				Z: common.Jitter(g.rng, cfg.SpreadJitter),
			})
			if g.cfg.Plane == PlaneXY {
				d.Z = 0
			}
			shot := NewProjectile(muzzle, d, FactionPlayer, dmg, cfg.Spread)
			shot.Fire = true
			g.spawnProjectile(shot)
		}
	} else {
		g.spawnProjectile(NewProjectile(muzzle, dir, FactionPlayer, p.ShotDamage(), cfg.Bullet))
	}

	p.Cooldown = p.BaseCooldown(cfg)
	g.emit(Effect{Kind: EffectMuzzle, Pos: muzzle})
	return true
}

// Hurt applies incoming damage subject to the divine and shield rules.
func (p *Player) Hurt(damage int) HurtResult {
	if !p.IsAlive() {
		return HurtIgnored
	}
	if p.kind.Stats().Special == SpecialDivine {
		return HurtDeflected
	}
	if p.Mods.Shield.Active() {
		return HurtShielded
	}
	if p.TakeDamage(damage) {
		return HurtKilled
	}
	return HurtDamaged
}

// RefillAmmo tops ammo up to the maximum.
func (p *Player) RefillAmmo() {
	p.Ammo = p.MaxAmmo
}

// UseSpecial triggers the character's special ability. It is gated by its
// own cooldown and reports whether anything happened.
func (p *Player) UseSpecial(g *Game) bool {
	if !p.IsAlive() || p.SpecialCooldown > 0 {
		return false
	}
	cfg := &g.cfg.Player

	switch p.kind.Stats().Special {
	case SpecialStealth:
		p.Invisible = !p.Invisible
	case SpecialTurret:
		if len(g.Turrets) > 0 {
			g.clearTurrets()
		} else {
			g.deployTurret(p.Pos)
		}
	case SpecialFlight:
		p.Flying = !p.Flying
		if p.Flying {
			p.Pos.Y = cfg.FlightAltitude
		} else {
			p.Pos.Y = cfg.Spawn.Y
		}
	case SpecialDivine:
		g.smite()
	default:
		return false
	}

	p.SpecialCooldown = cfg.SpecialCooldown
	g.emit(Effect{Kind: EffectSpecial, Pos: p.Pos})
	g.log.Debug("special ability", "session", g.sessionID, "character", p.kind, "special", p.kind.Stats().Special)
	return true
}

// tick counts down cooldowns and modifiers and regenerates ammo.
func (p *Player) tick(g *Game) {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.SpecialCooldown > 0 {
		p.SpecialCooldown--
	}
	p.Mods.Tick()

	if p.UsesAmmo() && p.Ammo < p.MaxAmmo && common.Chance(g.rng, g.cfg.Player.AmmoRegenChance) {
		p.Ammo++
	}
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

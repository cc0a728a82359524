package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects which mini-game a session runs.
type Mode int

const (
	ModeArena Mode = iota
	ModeSurvival
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown mode")

var modeNames = map[Mode]string{
	ModeArena:    "arena",
	ModeSurvival: "survival",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeArena, errors.Wrapf(ErrUnknownMode, "mode %q", name)
}

// ProjectileSpec describes how a weapon's projectiles fly.
type ProjectileSpec struct {
	Speed    float64
	Radius   float64
	Lifetime int
}

// PlayerConfig holds the tuning the player controller reads.
type PlayerConfig struct {
	Radius       float64
	SpeedScale   float64 // character speed to units per tick
	Spawn        Vec
	MuzzleHeight float64
	FireCooldown int
	Bullet       ProjectileSpec

	UsesAmmo        bool
	MaxAmmo         int
	AmmoRegenChance float64

	SpecialCooldown int
	FlightAltitude  float64
	FlightSpeedMult float64

	SpreadCount      int
	SpreadJitter     float64
	SpreadDamageMult float64
	Spread           ProjectileSpec
}

// PickupConfig controls pickup spawning and effect sizes.
type PickupConfig struct {
	Kinds      []PickupKind
	Radius     float64
	Height     float64
	Lifetime   int     // 0 never expires
	Chance     float64 // per-tick spawn probability, 0 to use Interval
	Interval   int     // ticks between interval spawns
	MaxActive  int
	SpawnArea  Bounds
	SpawnInset float64

	HealAmount     int
	RapidFireTicks int
	DamageBonus    int
	DamageMult     float64
	DamageTicks    int
	SpeedMult      float64
	SpeedTicks     int
	ShieldTicks    int
}

// SteadyConfig is the Arena population policy.
type SteadyConfig struct {
	Kind         CombatantKind
	Target       int
	Respawn      bool
	SafeDistance float64
	SpawnInset   float64
	MaxAttempts  int
}

// WaveEntry gates an enemy kind behind a minimum wave with a pick weight.
type WaveEntry struct {
	Kind    CombatantKind
	MinWave int
	Weight  float64
}

// WaveConfig is the Survival population policy.
type WaveConfig struct {
	BaseCount     int
	CountCap      int
	StartDelay    int
	Stagger       int
	InterDelay    int
	BonusPerWave  int
	HealthPerWave int
	SpeedPerWave  float64
	Entries       []WaveEntry
	SpawnPoints   []Vec
}

// Count returns how many combatants wave n spawns.
func (c WaveConfig) Count(n int) int {
	return min(c.BaseCount+n/2, c.CountCap)
}

// TurretConfig tunes the deployable turret.
type TurretConfig struct {
	Radius   float64
	Health   int
	Damage   int
	Range    float64
	Cooldown int
	Height   float64
	Bullet   ProjectileSpec
}

// Config is the full tuning table for one mode. Sessions copy it at Start.
type Config struct {
	Mode             Mode
	Plane            Plane
	Bounds           Bounds
	ProjectileBounds Bounds
	GridCell         float64

	Player  PlayerConfig
	AI      AIProfile
	Hostile ProjectileSpec

	ContactRadius float64
	ContactDamage int

	Pickups PickupConfig
	Steady  SteadyConfig
	Waves   WaveConfig
	Turret  TurretConfig
}

// ArenaConfig returns the 2D arena tuning.
func ArenaConfig() Config {
	return Config{
		Mode:             ModeArena,
		Plane:            PlaneXY,
		Bounds:           Rect(WIDTH, HEIGHT),
		ProjectileBounds: Rect(WIDTH, HEIGHT),
		GridCell:         64,
		Player: PlayerConfig{
			Radius:       20,
			SpeedScale:   1,
			Spawn:        Vec{X: WIDTH / 2, Y: HEIGHT / 2},
			FireCooldown: 20,
			Bullet:       ProjectileSpec{Speed: 8, Radius: 4, Lifetime: 60},
		},
		AI: AIProfile{
			EngageRadius:  300,
			AttackRadius:  200,
			WanderJitter:  0.3,
			FireCooldown:  60,
			BlindCooldown: 60,
			Bounds:        BoundsReflect,
		},
		Hostile: ProjectileSpec{Speed: 8, Radius: 4, Lifetime: 60},
		Pickups: PickupConfig{
			Kinds:          []PickupKind{PickupHealth, PickupRapidFire, PickupDamage, PickupShield},
			Radius:         15,
			Lifetime:       300,
			Chance:         0.002,
			MaxActive:      2,
			SpawnArea:      Rect(WIDTH, HEIGHT),
			SpawnInset:     20,
			HealAmount:     30,
			RapidFireTicks: 300,
			DamageBonus:    10,
			ShieldTicks:    180,
		},
		Steady: SteadyConfig{
			Kind:         KindBot,
			Target:       3,
			SafeDistance: 200,
			SpawnInset:   30,
			MaxAttempts:  64,
		},
	}
}

// SurvivalConfig returns the 3D wave tuning.
func SurvivalConfig() Config {
	return Config{
		Mode:             ModeSurvival,
		Plane:            PlaneXZ,
		Bounds:           Square(SurvivalHalfExtent),
		ProjectileBounds: Square(SurvivalBulletExtent),
		GridCell:         4,
		Player: PlayerConfig{
			Radius:           0.9,
			SpeedScale:       0.05,
			Spawn:            Vec{Y: 1},
			MuzzleHeight:     0.5,
			FireCooldown:     6,
			Bullet:           ProjectileSpec{Speed: 0.5, Radius: 0.1, Lifetime: 100},
			UsesAmmo:         true,
			MaxAmmo:          30,
			AmmoRegenChance:  0.005,
			SpecialCooldown:  30,
			FlightAltitude:   10,
			FlightSpeedMult:  1.5,
			SpreadCount:      5,
			SpreadJitter:     0.1,
			SpreadDamageMult: 1.5,
			Spread:           ProjectileSpec{Speed: 0.8, Radius: 0.3, Lifetime: 60},
		},
		AI: AIProfile{
			FireCooldown:  120,
			BlindCooldown: 60,
			Bounds:        BoundsClamp,
		},
		Hostile:       ProjectileSpec{Speed: 0.5, Radius: 0.1, Lifetime: 100},
		ContactRadius: 2,
		ContactDamage: 20,
		Pickups: PickupConfig{
			Kinds:       []PickupKind{PickupHealth, PickupAmmo, PickupSpeed, PickupDamage},
			Radius:      1.1,
			Height:      1,
			Interval:    15 * TicksPerSecond,
			MaxActive:   3,
			SpawnArea:   Square(20),
			HealAmount:  25,
			DamageMult:  1.5,
			DamageTicks: 8 * TicksPerSecond,
			SpeedMult:   1.2,
			SpeedTicks:  10 * TicksPerSecond,
		},
		Waves: WaveConfig{
			BaseCount:     3,
			CountCap:      12,
			StartDelay:    60,
			Stagger:       30,
			InterDelay:    180,
			BonusPerWave:  50,
			HealthPerWave: 10,
			SpeedPerWave:  0.005,
			Entries: []WaveEntry{
				{Kind: KindBasic, MinWave: 1, Weight: 55},
				{Kind: KindFast, MinWave: 2, Weight: 20},
				{Kind: KindTank, MinWave: 3, Weight: 15},
				{Kind: KindSniper, MinWave: 4, Weight: 10},
			},
			SpawnPoints: []Vec{
				{X: -40, Z: -40}, {X: 40, Z: -40},
				{X: -40, Z: 40}, {X: 40, Z: 40},
				{X: 0, Z: -45}, {X: 0, Z: 45},
				{X: -45, Z: 0}, {X: 45, Z: 0},
			},
		},
		Turret: TurretConfig{
			Radius:   1.2,
			Health:   75,
			Damage:   15,
			Range:    25,
			Cooldown: 2 * TicksPerSecond,
			Height:   1,
			Bullet:   ProjectileSpec{Speed: 0.6, Radius: 0.12, Lifetime: 80},
		},
	}
}

// ConfigFor returns the default tuning for a mode.
func ConfigFor(m Mode) Config {
	if m == ModeSurvival {
		return SurvivalConfig()
	}
	return ArenaConfig()
}

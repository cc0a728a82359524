//go:build js
// +build js

package web

import "github.com/simukka/arena-blaster/game"

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background colors
	BackgroundColor     string
	BackgroundLineColor string
	BackgroundGlow      string
	GroundColor         string
	SkyColor            string
	GridColor           string

	// Player colors
	ShipColor       string
	ShipGlow        string
	ShipCenterColor string

	// Shield colors
	ShieldColor     string
	ShieldGlowColor string

	// Projectile colors
	BulletColor  string
	BulletGlow   string
	HostileColor string
	HostileGlow  string
	FireColor    string

	// Combatant colors
	EnemyColor  string
	EnemyGlow   string
	TurretColor string

	// Burst colors
	ExplosionColor     string
	ExplosionGlow      string
	ExplosionLineColor string

	// UI/HUD colors
	TextPrimaryColor   string
	TextSecondaryColor string
	TextGlow           string
	TextScanlineColor  string

	// Pickup colors
	PickupColor     string
	PickupTextColor string

	// Fonts
	TextFont   string
	PickupFont string

	// Line widths
	ShipLineWidth   float64
	EnemyLineWidth  float64
	BulletLineWidth float64

	// Shadow/glow blur values
	DefaultShadowBlur   float64
	ShieldShadowBlur    float64
	BulletShadowBlur    float64
	ExplosionShadowBlur float64
}{
	// Background colors - dark space theme
	BackgroundColor:     "#000",
	BackgroundLineColor: "#111",
	BackgroundGlow:      "#444",
	GroundColor:         "#2c3e50",
	SkyColor:            "#87CEEB",
	GridColor:           "#444444",

	// Player colors - green/lime theme
	ShipColor:       "#9F0",
	ShipGlow:        "#9F0",
	ShipCenterColor: "#FFF",

	// Shield colors - bright green
	ShieldColor:     "#000",
	ShieldGlowColor: "#CF0",

	// Projectile colors
	BulletColor:  "#CF0",
	BulletGlow:   "#CF0",
	HostileColor: "#62F",
	HostileGlow:  "#62F",
	FireColor:    "#F83",

	// Combatant colors - purple/violet
	EnemyColor:  "#62F",
	EnemyGlow:   "#62F",
	TurretColor: "#0CF",

	// Burst colors - orange/red
	ExplosionColor:     "#F63",
	ExplosionGlow:      "#F63",
	ExplosionLineColor: "#FC6",

	// UI/HUD colors
	TextPrimaryColor:   "#62F",
	TextSecondaryColor: "#FFF",
	TextGlow:           "#FFF",
	TextScanlineColor:  "#62F",

	// Pickup colors
	PickupColor:     "#EFF",
	PickupTextColor: "rgba(0,0,0,.5)",

	// Fonts
	TextFont:   "Consolas,monospace",
	PickupFont: "sans-serif",

	// Line widths
	ShipLineWidth:   3.0,
	EnemyLineWidth:  3.0,
	BulletLineWidth: 3.0,

	// Shadow/glow blur values
	DefaultShadowBlur:   6.0,
	ShieldShadowBlur:    18.0,
	BulletShadowBlur:    6.0,
	ExplosionShadowBlur: 6.0,
}

// KindColors colors each survival combatant kind.
var KindColors = map[game.CombatantKind]string{
	game.KindBot:    "#62F",
	game.KindBasic:  "#f44336",
	game.KindFast:   "#ff9800",
	game.KindTank:   "#795548",
	game.KindSniper: "#9c27b0",
}

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/fx"
	"github.com/simukka/arena-blaster/game"
)

var (
	colorBackground = color.RGBA{0x0b, 0x0b, 0x1a, 0xff}
	colorGround     = color.RGBA{0x2c, 0x3e, 0x50, 0xff}
	colorPlayer     = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	colorShield     = color.RGBA{0x00, 0xbc, 0xd4, 0xff}
	colorShot       = color.RGBA{0xff, 0xeb, 0x3b, 0xff}
	colorHostile    = color.RGBA{0xff, 0x52, 0x52, 0xff}
	colorFire       = color.RGBA{0xff, 0x98, 0x00, 0xff}
	colorTurret     = color.RGBA{0x90, 0xa4, 0xae, 0xff}
	colorPickup     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorText       = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

var kindColors = map[game.CombatantKind]color.RGBA{
	game.KindBot:    {0x66, 0x22, 0xff, 0xff},
	game.KindBasic:  {0xf4, 0x43, 0x36, 0xff},
	game.KindFast:   {0xff, 0x98, 0x00, 0xff},
	game.KindTank:   {0x79, 0x55, 0x48, 0xff},
	game.KindSniper: {0x9c, 0x27, 0xb0, 0xff},
}

// healthColors follows fx.HealthColors, critical first.
var healthColors = [4]color.RGBA{
	{0xff, 0x00, 0x00, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x88, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
}

// projector maps a mode's plane onto the window. Survival is drawn
// top-down with +Z up, letterboxed into a square.
type projector struct {
	bounds  game.Bounds
	plane   game.Plane
	scale   float64
	offsetX float64
	offsetY float64
}

func newProjector(b game.Bounds, plane game.Plane, width, height int) projector {
	p := projector{bounds: b, plane: plane}
	w, h := b.Max.X-b.Min.X, b.Max.Y-b.Min.Y
	if plane == game.PlaneXZ {
		h = b.Max.Z - b.Min.Z
	}
	avail := float64(height - hudHeight)
	p.scale = math.Max(1e-3, math.Min(float64(width)/w, avail/h))
	p.offsetX = (float64(width) - w*p.scale) / 2
	p.offsetY = hudHeight + (avail-h*p.scale)/2
	return p
}

func (p projector) screen(v game.Vec) (x, y float32) {
	if p.plane == game.PlaneXZ {
		return float32(p.offsetX + (v.X-p.bounds.Min.X)*p.scale),
			float32(p.offsetY + (p.bounds.Max.Z-v.Z)*p.scale)
	}
	return float32(p.offsetX + (v.X-p.bounds.Min.X)*p.scale),
		float32(p.offsetY + (v.Y-p.bounds.Min.Y)*p.scale)
}

func (p projector) world(x, y float64) game.Vec {
	u := p.bounds.Min.X + (x-p.offsetX)/p.scale
	w := (y - p.offsetY) / p.scale
	if p.plane == game.PlaneXZ {
		return game.Vec{X: u, Z: p.bounds.Max.Z - w}
	}
	return game.Vec{X: u, Y: p.bounds.Min.Y + w}
}

func (p projector) length(r float64) float32 {
	return float32(r * p.scale)
}

// hudHeight is the strip reserved above the play field.
const hudHeight = 24

// desktopRenderer keeps the latest snapshot for ebiten's Draw.
type desktopRenderer struct {
	face   font.Face
	bursts *fx.BurstPool
	banner *fx.Banner
	rng    *common.SeededRNG
	last   *game.Snapshot
	proj   projector
	paused bool
}

func newDesktopRenderer() (*desktopRenderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &desktopRenderer{
		face:   face,
		bursts: fx.NewBurstPool(64),
		banner: fx.NewBanner(90),
		rng:    common.NewSeededRNG(5),
	}, nil
}

// Reset clears animations for a new session.
func (r *desktopRenderer) Reset() {
	r.bursts.Clear()
	r.banner.T = 0
	r.paused = false
}

// Render implements game.Renderer. Animations advance once per tick.
func (r *desktopRenderer) Render(s *game.Snapshot) {
	scale := 1.0
	if s.Mode == game.ModeArena {
		scale = 16
	}
	r.bursts.Step()
	r.banner.Step()
	r.bursts.Ingest(s.Effects, scale, r.rng)
	r.banner.Ingest(s.Effects)
	r.last = s
}

// Draw paints the latest snapshot.
func (r *desktopRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s := r.last
	if s == nil {
		return
	}
	plane := game.PlaneXY
	if s.Mode == game.ModeSurvival {
		plane = game.PlaneXZ
	}
	b := screen.Bounds()
	r.proj = newProjector(s.Bounds, plane, b.Dx(), b.Dy())

	x0, y0 := r.proj.screen(s.Bounds.Min)
	x1, y1 := r.proj.screen(s.Bounds.Max)
	vector.DrawFilledRect(screen, min(x0, x1), min(y0, y1), abs32(x1-x0), abs32(y1-y0), colorGround, false)

	for _, p := range s.Pickups {
		x, y := r.proj.screen(p.Pos)
		vector.StrokeCircle(screen, x, y, r.proj.length(p.Radius), 2, colorPickup, true)
	}
	for _, t := range s.Turrets {
		x, y := r.proj.screen(t.Pos)
		rad := r.proj.length(t.Radius)
		vector.DrawFilledRect(screen, x-rad, y-rad, rad*2, rad*2, colorTurret, true)
	}
	for _, c := range s.Combatants {
		x, y := r.proj.screen(c.Pos)
		rad := r.proj.length(c.Radius)
		vector.DrawFilledCircle(screen, x, y, rad, kindColors[c.Kind], true)
		r.drawHealthBar(screen, x, y-rad-4, rad*2, c.Health, c.MaxHealth)
	}
	for _, p := range s.Projectiles {
		x, y := r.proj.screen(p.Pos)
		clr := colorShot
		switch {
		case p.Fire:
			clr = colorFire
		case p.Owner == game.FactionHostile:
			clr = colorHostile
		}
		vector.DrawFilledCircle(screen, x, y, max(2, r.proj.length(p.Radius)), clr, true)
	}
	r.bursts.ForEachReverse(func(bu *fx.Burst, _ int) {
		x, y := r.proj.screen(bu.Pos)
		a := uint8(min(255, bu.Alpha*255))
		vector.DrawFilledCircle(screen, x, y, r.proj.length(bu.Size/2), color.RGBA{a, uint8(int(a) * 2 / 5), 0, a}, true)
	})
	if s.HasPlayer && s.Player.Alive {
		r.drawPlayer(screen, s.Player)
	}

	text.Draw(screen, hudText(s), r.face, 8, 17, colorText)
	r.drawBanner(screen, s)
}

func (r *desktopRenderer) drawPlayer(screen *ebiten.Image, p game.PlayerView) {
	x, y := r.proj.screen(p.Pos)
	rad := r.proj.length(p.Radius)
	clr := colorPlayer
	if p.Invisible {
		clr.A = 0x4c
	}
	vector.DrawFilledCircle(screen, x, y, rad, clr, true)

	// Facing tick
	dx, dy := math.Cos(p.Facing), math.Sin(p.Facing)
	if r.proj.plane == game.PlaneXZ {
		dx, dy = math.Sin(p.Facing), -math.Cos(p.Facing)
	}
	tip := float64(rad) * 1.8
	vector.StrokeLine(screen, x, y, x+float32(dx*tip), y+float32(dy*tip), 2, colorText, true)

	if p.Shielded {
		vector.StrokeCircle(screen, x, y, rad*1.5, 2, colorShield, true)
	}
}

func (r *desktopRenderer) drawHealthBar(screen *ebiten.Image, x, y, w float32, health, maxHealth int) {
	if maxHealth <= 0 || health >= maxHealth {
		return
	}
	frac := float32(max(0, health)) / float32(maxHealth)
	vector.DrawFilledRect(screen, x-w/2, y, w, 3, color.RGBA{0x33, 0x33, 0x33, 0xff}, false)
	vector.DrawFilledRect(screen, x-w/2, y, w*frac, 3, healthColors[fx.HealthLevel(health, maxHealth)], false)
}

func (r *desktopRenderer) drawBanner(screen *ebiten.Image, s *game.Snapshot) {
	var msg string
	switch {
	case r.paused:
		msg = "PAUSED - press Esc"
	case s.Phase.Terminal():
		msg = fmt.Sprintf("%s  score %d - press Enter", fx.Announcement(game.Effect{Kind: phaseEffect(s.Phase)}), s.HUD.Score)
		if s.Err != "" {
			msg += "  (" + s.Err + ")"
		}
	case r.banner.Visible():
		msg = r.banner.Text
	default:
		return
	}
	b := screen.Bounds()
	x := (b.Dx() - font.MeasureString(r.face, msg).Round()) / 2
	text.Draw(screen, msg, r.face, x, b.Dy()/2, colorText)
}

func phaseEffect(p game.Phase) game.EffectKind {
	switch p {
	case game.PhaseVictory:
		return game.EffectVictory
	case game.PhaseHalted:
		return game.EffectHalted
	}
	return game.EffectGameOver
}

// hudText formats the status line.
func hudText(s *game.Snapshot) string {
	h := s.HUD
	line := fmt.Sprintf("HP %d/%d   SCORE %d   KILLS %d", max(0, h.Health), h.MaxHealth, h.Score, h.Kills)
	if s.Mode == game.ModeSurvival {
		line += fmt.Sprintf("   WAVE %d   ENEMIES %d", h.Wave, h.Enemies)
		switch {
		case h.InfiniteAmmo:
			line += "   AMMO inf"
		case h.UsesAmmo:
			line += fmt.Sprintf("   AMMO %d/%d", h.Ammo, h.MaxAmmo)
		}
		if h.Special != game.SpecialNone {
			state := "cooling"
			if h.SpecialReady {
				state = "ready"
			}
			line += fmt.Sprintf("   %s %s", h.Special, state)
		}
	}
	return line
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/fx"
	"github.com/simukka/arena-blaster/game"
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHostile = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleFire    = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	stylePickup  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleTurret  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
)

var kindGlyphs = map[game.CombatantKind]rune{
	game.KindBot:    'x',
	game.KindBasic:  'o',
	game.KindFast:   'f',
	game.KindTank:   'T',
	game.KindSniper: 's',
}

var kindStyles = map[game.CombatantKind]tcell.Style{
	game.KindBot:    tcell.StyleDefault.Foreground(tcell.ColorMediumPurple),
	game.KindBasic:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	game.KindFast:   tcell.StyleDefault.Foreground(tcell.ColorOrange),
	game.KindTank:   tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown),
	game.KindSniper: tcell.StyleDefault.Foreground(tcell.ColorDarkViolet),
}

var pickupGlyphs = map[game.PickupKind]rune{
	game.PickupHealth:    'H',
	game.PickupRapidFire: 'R',
	game.PickupDamage:    'D',
	game.PickupShield:    'S',
	game.PickupAmmo:      'A',
	game.PickupSpeed:     'V',
}

var healthStyles = [4]tcell.Color{tcell.ColorRed, tcell.ColorYellow, tcell.ColorGreenYellow, tcell.ColorLime}

// termRenderer draws snapshots into a tcell screen.
type termRenderer struct {
	screen tcell.Screen
	bursts *fx.BurstPool
	banner *fx.Banner
	rng    common.Source
	view   viewport
	last   *game.Snapshot
	paused bool
}

func newTermRenderer(screen tcell.Screen) *termRenderer {
	return &termRenderer{
		screen: screen,
		bursts: fx.NewBurstPool(64),
		banner: fx.NewBanner(90),
		rng:    common.NewSeededRNG(3),
	}
}

// Reset clears animations for a new session.
func (r *termRenderer) Reset() {
	r.bursts.Clear()
	r.banner.T = 0
	r.paused = false
}

// Render implements game.Renderer.
func (r *termRenderer) Render(s *game.Snapshot) {
	scale := 1.0
	if s.Mode == game.ModeArena {
		scale = 16
	}
	r.bursts.Ingest(s.Effects, scale, r.rng)
	r.banner.Ingest(s.Effects)
	r.last = s
	r.draw()
	r.bursts.Step()
	r.banner.Step()
}

// Redraw repeats the last frame, for pauses and resizes.
func (r *termRenderer) Redraw() {
	if r.last != nil {
		r.draw()
	}
}

func (r *termRenderer) draw() {
	s := r.last
	plane := game.PlaneXY
	if s.Mode == game.ModeSurvival {
		plane = game.PlaneXZ
	}
	w, h := r.screen.Size()
	r.view = newViewport(s.Bounds, plane, w, h)

	r.screen.Clear()
	r.drawBorder()

	for _, p := range s.Pickups {
		r.put(p.Pos, pickupGlyphs[p.Kind], stylePickup)
	}
	for _, t := range s.Turrets {
		r.put(t.Pos, '#', styleTurret)
	}
	for _, c := range s.Combatants {
		r.put(c.Pos, kindGlyphs[c.Kind], kindStyles[c.Kind])
	}
	for _, p := range s.Projectiles {
		switch {
		case p.Fire:
			r.put(p.Pos, '*', styleFire)
		case p.Owner == game.FactionHostile:
			r.put(p.Pos, '•', styleHostile)
		default:
			r.put(p.Pos, '·', styleShot)
		}
	}
	r.bursts.ForEachReverse(func(b *fx.Burst, _ int) {
		r.drawBurst(b)
	})
	if s.HasPlayer && s.Player.Alive {
		st := stylePlayer
		if s.Player.Invisible {
			st = st.Dim(true)
		}
		if s.Player.Shielded {
			st = st.Reverse(true)
		}
		r.put(s.Player.Pos, r.view.facingGlyph(s.Player.Facing), st)
	}

	r.drawHUD(s)
	r.drawBanner()
	r.screen.Show()
}

func (r *termRenderer) put(p game.Vec, ch rune, st tcell.Style) {
	if ch == 0 {
		ch = '?'
	}
	if col, row, ok := r.view.cell(p); ok {
		r.screen.SetContent(col, row, ch, nil, st)
	}
}

func (r *termRenderer) drawBurst(b *fx.Burst) {
	col, row, ok := r.view.cell(b.Pos)
	if !ok {
		return
	}
	level := min(255, int(b.Alpha*255))
	st := styleDefault.Foreground(tcell.NewRGBColor(int32(level), int32(level*2/5), 0))
	reach := int(b.Size / 2 * r.view.cellsPer())
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if dx*dx+dy*dy > reach*reach {
				continue
			}
			r.screen.SetContent(col+dx, row+dy, '░', nil, st)
		}
	}
}

func (r *termRenderer) drawBorder() {
	v := r.view
	top, bottom := hudRows, hudRows+v.rows+1
	for x := 0; x <= v.cols+1; x++ {
		r.screen.SetContent(x, top, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(v.cols+1, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, top, '┌', nil, styleBorder)
	r.screen.SetContent(v.cols+1, top, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(v.cols+1, bottom, '┘', nil, styleBorder)
}

// hudLine formats the status row.
func hudLine(s *game.Snapshot) string {
	h := s.HUD
	var b strings.Builder
	fmt.Fprintf(&b, "HP %d/%d  SCORE %d  KILLS %d", max(0, h.Health), h.MaxHealth, h.Score, h.Kills)
	if s.Mode == game.ModeSurvival {
		fmt.Fprintf(&b, "  WAVE %d", h.Wave)
	}
	fmt.Fprintf(&b, "  ENEMIES %d", h.Enemies)
	switch {
	case h.InfiniteAmmo:
		b.WriteString("  AMMO ∞")
	case h.UsesAmmo:
		fmt.Fprintf(&b, "  AMMO %d/%d", h.Ammo, h.MaxAmmo)
	}
	if h.Special != game.SpecialNone {
		state := "ready"
		if !h.SpecialReady {
			state = "cooling"
		}
		fmt.Fprintf(&b, "  %s %s", strings.ToUpper(h.Special.String()), state)
	}
	return b.String()
}

func (r *termRenderer) drawHUD(s *game.Snapshot) {
	st := styleDefault.Foreground(healthStyles[fx.HealthLevel(s.HUD.Health, s.HUD.MaxHealth)])
	r.text(0, 0, hudLine(s), st)

	status := s.Phase.String()
	if r.paused {
		status = "paused"
	}
	w, _ := r.screen.Size()
	r.text(w-len(status)-1, 0, status, styleBorder)
}

func (r *termRenderer) drawBanner() {
	var text string
	switch {
	case r.paused:
		text = "PAUSED  P TO RESUME"
	case r.last.Phase.Terminal():
		text = fx.Announcement(game.Effect{Kind: phaseEffect(r.last.Phase)})
		text += fmt.Sprintf("  SCORE %d  ENTER TO RESTART", r.last.HUD.Score)
	case r.banner.Visible():
		text = r.banner.Text
	default:
		return
	}
	w, h := r.screen.Size()
	col := max(0, (w-len([]rune(text)))/2)
	r.text(col, h/2, text, styleBanner)
	if r.last.Phase == game.PhaseHalted && r.last.Err != "" {
		r.text(1, h/2+1, r.last.Err, styleHostile)
	}
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

func (r *termRenderer) text(col, row int, s string, st tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, st)
		col++
	}
}

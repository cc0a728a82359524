//go:build js
// +build js

package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/fx"
	"github.com/simukka/arena-blaster/game"
)

// StatsOverlay displays real-time session statistics, toggled with F10.
type StatsOverlay struct {
	Visible bool
	FPS     fx.FPSCounter
	Seed    uint32
	Bursts  *fx.BurstPool

	// Position and styling
	PanelX      int
	PanelY      int
	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

// NewStatsOverlay creates a hidden overlay for a canvas of the given width.
func NewStatsOverlay(width int) *StatsOverlay {
	return &StatsOverlay{
		PanelX:      width - 280,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  264,
		PanelHeight: 300,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// Render draws the stats panel. When world is true the snapshot is in
// canvas pixels and hitboxes are drawn too.
func (s *StatsOverlay) Render(ctx *js.Object, snap *game.Snapshot, world bool) {
	if !s.Visible {
		return
	}

	if world {
		s.renderCombatantDebug(ctx, snap)
		s.renderPlayerDebug(ctx, snap)
	}

	// Draw stats panel background
	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	// Draw panel border
	ctx.Set("strokeStyle", "#00aaff")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	// Title
	ctx.Set("fillStyle", "#00aaff")
	ctx.Set("font", "bold 14px monospace")
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "GAME STATS [F10]", s.PanelX+10, s.PanelY+20)

	// Separator
	ctx.Set("strokeStyle", "#444444")
	ctx.Call("beginPath")
	ctx.Call("moveTo", s.PanelX+10, s.PanelY+28)
	ctx.Call("lineTo", s.PanelX+s.PanelWidth-10, s.PanelY+28)
	ctx.Call("stroke")

	ctx.Set("font", "12px monospace")
	y := s.PanelY + 48

	s.drawStatLine(ctx, "FPS", strconv.FormatFloat(s.FPS.CurrentFPS, 'f', 1, 64), "#00ff00", y)
	y += s.LineHeight

	y = s.section(ctx, "── Session ──", y)
	s.drawStatLine(ctx, "Mode", snap.Mode.String(), "#ffffff", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Tick", strconv.FormatUint(snap.Tick, 10), "#aaaaaa", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Seed", strconv.FormatUint(uint64(s.Seed), 10), "#aaaaaa", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Wave", strconv.Itoa(snap.HUD.Wave), "#ffffff", y)
	y += s.LineHeight

	y = s.section(ctx, "── Entities ──", y)
	s.drawStatLine(ctx, "Projectiles", strconv.Itoa(len(snap.Projectiles)), "#ff8800", y)
	y += s.LineHeight
	if s.Bursts != nil {
		bursts := strconv.Itoa(s.Bursts.ActiveCount) + "/" + strconv.Itoa(s.Bursts.MaxSize)
		s.drawStatLine(ctx, "Bursts", bursts, "#ff4400", y)
		y += s.LineHeight
	}
	s.drawStatLine(ctx, "Pickups", strconv.Itoa(len(snap.Pickups)), "#44ff44", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Enemies", strconv.Itoa(len(snap.Combatants)), "#ff0066", y)
	y += s.LineHeight

	y = s.section(ctx, "── Player ──", y)
	hud := snap.HUD
	s.drawStatLine(ctx, "Health", strconv.Itoa(hud.Health)+"/"+strconv.Itoa(hud.MaxHealth),
		fx.HealthColors[fx.HealthLevel(hud.Health, hud.MaxHealth)], y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Character", hud.Character.String(), "#8888ff", y)
	y += s.LineHeight
	p := snap.Player.Pos
	s.drawStatLine(ctx, "Position", fmtCoord(p.X)+", "+fmtCoord(p.Y)+", "+fmtCoord(p.Z), "#aaaaaa", y)
}

func (s *StatsOverlay) section(ctx *js.Object, title string, y int) int {
	y += 5
	ctx.Set("fillStyle", "#666666")
	ctx.Call("fillText", title, s.PanelX+10, y)
	return y + s.LineHeight
}

// renderCombatantDebug draws hitboxes, headings and health bars.
func (s *StatsOverlay) renderCombatantDebug(ctx *js.Object, snap *game.Snapshot) {
	for _, c := range snap.Combatants {
		x, y := c.Pos.X, c.Pos.Y

		// Draw radius circle
		ctx.Set("strokeStyle", "rgba(255, 0, 102, 0.3)")
		ctx.Set("lineWidth", 1)
		ctx.Call("beginPath")
		ctx.Call("arc", x, y, c.Radius, 0, math.Pi*2)
		ctx.Call("stroke")

		// Draw heading indicator line
		ctx.Set("strokeStyle", "#ffff00")
		ctx.Set("lineWidth", 2)
		lineLength := c.Radius * 1.5
		ctx.Call("beginPath")
		ctx.Call("moveTo", x, y)
		ctx.Call("lineTo", x+math.Cos(c.Heading)*lineLength, y+math.Sin(c.Heading)*lineLength)
		ctx.Call("stroke")

		// Draw health bar above combatant
		barWidth := 40.0
		barHeight := 4.0
		barX := x - barWidth/2
		barY := y - c.Radius - 20

		ctx.Set("fillStyle", "rgba(0, 0, 0, 0.7)")
		ctx.Call("fillRect", barX-1, barY-1, barWidth+2, barHeight+2)

		healthPercent := 0.0
		if c.MaxHealth > 0 {
			healthPercent = math.Min(1, float64(c.Health)/float64(c.MaxHealth))
		}
		ctx.Set("fillStyle", fx.HealthColors[fx.HealthLevel(c.Health, c.MaxHealth)])
		ctx.Call("fillRect", barX, barY, barWidth*healthPercent, barHeight)

		ctx.Set("strokeStyle", "#ffffff")
		ctx.Set("lineWidth", 1)
		ctx.Call("strokeRect", barX, barY, barWidth, barHeight)

		ctx.Set("fillStyle", "#ffffff")
		ctx.Set("font", "10px monospace")
		ctx.Set("textAlign", "center")
		ctx.Call("fillText", "HP:"+strconv.Itoa(c.Health), x, barY-3)

		// State and kind below
		ctx.Set("fillStyle", "#ff0066")
		ctx.Set("font", "9px monospace")
		ctx.Call("fillText", c.Kind.String()+" "+c.State.String(), x, y+c.Radius+12)
	}

	ctx.Set("textAlign", "left")
}

// renderPlayerDebug draws the player's collision circle.
func (s *StatsOverlay) renderPlayerDebug(ctx *js.Object, snap *game.Snapshot) {
	if !snap.HasPlayer {
		return
	}
	p := snap.Player
	ctx.Set("strokeStyle", "rgba(0, 255, 0, 0.6)")
	ctx.Set("lineWidth", 1)
	ctx.Call("beginPath")
	ctx.Call("arc", p.Pos.X, p.Pos.Y, p.Radius, 0, math.Pi*2)
	ctx.Call("stroke")
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(ctx *js.Object, label, value, valueColor string, y int) {
	ctx.Set("fillStyle", "#cccccc")
	ctx.Call("fillText", label+":", s.PanelX+15, y)

	ctx.Set("fillStyle", valueColor)
	ctx.Set("textAlign", "right")
	ctx.Call("fillText", value, s.PanelX+s.PanelWidth-15, y)
	ctx.Set("textAlign", "left")
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

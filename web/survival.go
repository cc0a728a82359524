//go:build js
// +build js

package web

import (
	"math"
	"sort"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/fx"
	"github.com/simukka/arena-blaster/game"
)

const (
	survivalFOV = 75
	fogNear     = 10
	fogFar      = 100
	gridStep    = 5
)

// sprite is one depth-sorted billboard.
type sprite struct {
	depth float64
	draw  func()
}

// SurvivalRenderer draws survival snapshots as a first-person view.
type SurvivalRenderer struct {
	Ctx     *js.Object
	Camera  *fx.Camera
	View    func() (yaw, pitch float64)
	Sprites *Sprites
	Bursts  *fx.BurstPool
	Banner  *fx.Banner
	Overlay *StatsOverlay

	banner  bannerImage
	queue   []sprite
	rng     common.Source
}

// NewSurvivalRenderer returns a renderer for a width x height canvas.
// view supplies the current look angles, which may be newer than the last
// sampled tick.
func NewSurvivalRenderer(ctx *js.Object, width, height float64, view func() (float64, float64), overlay *StatsOverlay) *SurvivalRenderer {
	banner := fx.NewBanner(90)
	return &SurvivalRenderer{
		Ctx:     ctx,
		Camera:  fx.NewCamera(width, height, survivalFOV),
		View:    view,
		Sprites: NewSprites(game.ArenaConfig()),
		Bursts:  fx.NewBurstPool(64),
		Banner:  banner,
		Overlay: overlay,
		banner:  bannerImage{banner: banner},
		rng:     common.NewSeededRNG(2),
	}
}

// Render implements game.Renderer.
func (r *SurvivalRenderer) Render(s *game.Snapshot) {
	ctx := r.Ctx
	cam := r.Camera
	r.Bursts.Ingest(s.Effects, 1, r.rng)
	r.Banner.Ingest(s.Effects)

	if s.HasPlayer {
		cam.Pos = s.Player.Pos
	}
	cam.Yaw, cam.Pitch = r.View()

	// Sky and ground
	horizon := math.Max(0, math.Min(cam.Height, cam.Horizon()))
	ctx.Set("fillStyle", Theme.SkyColor)
	ctx.Call("fillRect", 0, 0, cam.Width, horizon)
	ctx.Set("fillStyle", Theme.GroundColor)
	ctx.Call("fillRect", 0, horizon, cam.Width, cam.Height-horizon)
	r.drawGrid(s.Bounds)

	r.queue = r.queue[:0]
	for _, c := range s.Combatants {
		c := c
		r.billboard(c.Pos, func(sx, sy, scale, alpha float64) {
			rad := c.Radius * scale * 0.6
			ctx.Set("globalAlpha", alpha)
			ctx.Set("fillStyle", KindColors[c.Kind])
			ctx.Call("fillRect", sx-rad, sy-rad, rad*2, rad*2)
			if c.MaxHealth > 0 {
				pct := math.Min(1, float64(c.Health)/float64(c.MaxHealth))
				ctx.Set("fillStyle", fx.HealthColors[fx.HealthLevel(c.Health, c.MaxHealth)])
				ctx.Call("fillRect", sx-rad, sy-rad-6, rad*2*pct, 3)
			}
		})
	}
	for _, t := range s.Turrets {
		t := t
		r.billboard(t.Pos, func(sx, sy, scale, alpha float64) {
			size := t.Radius * scale * 2
			ctx.Set("globalAlpha", alpha)
			ctx.Call("drawImage", r.Sprites.Turret, sx-size/2, sy-size/2, size, size)
		})
	}
	for _, p := range s.Pickups {
		img := r.Sprites.Pickups[p.Kind]
		if img == nil {
			continue
		}
		p := p
		r.billboard(p.Pos, func(sx, sy, scale, alpha float64) {
			size := p.Radius * scale * 2
			ctx.Set("globalAlpha", alpha)
			ctx.Call("drawImage", img, sx-size/2, sy-size/2, size, size)
		})
	}
	for _, pr := range s.Projectiles {
		pr := pr
		r.billboard(pr.Pos, func(sx, sy, scale, alpha float64) {
			rad := math.Max(1.5, pr.Radius*scale)
			color := Theme.BulletColor
			switch {
			case pr.Fire:
				color = Theme.FireColor
			case pr.Owner == game.FactionHostile:
				color = Theme.HostileColor
			}
			ctx.Set("globalAlpha", alpha)
			ctx.Set("fillStyle", color)
			ctx.Call("beginPath")
			ctx.Call("arc", sx, sy, rad, 0, math.Pi*2)
			ctx.Call("fill")
		})
	}
	r.Bursts.ForEachReverse(func(b *fx.Burst, _ int) {
		r.billboard(b.Pos, func(sx, sy, scale, alpha float64) {
			size := b.Size * scale
			ctx.Call("save")
			ctx.Set("globalAlpha", b.Alpha*alpha)
			ctx.Call("translate", sx, sy)
			ctx.Call("rotate", b.Angle)
			ctx.Call("drawImage", r.Sprites.Burst, -size/2, -size/2, size, size)
			ctx.Call("restore")
		})
	})
	r.Bursts.Step()

	// Far to near
	sort.Slice(r.queue, func(i, j int) bool { return r.queue[i].depth > r.queue[j].depth })
	for _, sp := range r.queue {
		sp.draw()
	}
	ctx.Set("globalAlpha", 1)

	r.drawCrosshair(s)
	r.banner.draw(ctx, cam.Width, cam.Height)

	if r.Overlay != nil {
		r.Overlay.Render(ctx, s, false)
	}
}

// billboard queues a draw at p's projected position if p is in view.
func (r *SurvivalRenderer) billboard(p game.Vec, draw func(sx, sy, scale, alpha float64)) {
	sx, sy, depth, ok := r.Camera.Project(p)
	if !ok {
		return
	}
	alpha := fx.FogAlpha(depth, fogNear, fogFar)
	if alpha <= 0 {
		return
	}
	scale := r.Camera.Scale(depth)
	r.queue = append(r.queue, sprite{depth: depth, draw: func() { draw(sx, sy, scale, alpha) }})
}

// drawGrid draws ground grid lines across the footprint.
func (r *SurvivalRenderer) drawGrid(b game.Bounds) {
	ctx := r.Ctx
	ctx.Set("strokeStyle", Theme.GridColor)
	ctx.Set("lineWidth", 1)
	ctx.Call("beginPath")
	for v := b.Min.X; v <= b.Max.X; v += gridStep {
		r.line(game.Vec{X: v, Z: b.Min.Z}, game.Vec{X: v, Z: b.Max.Z})
	}
	for v := b.Min.Z; v <= b.Max.Z; v += gridStep {
		r.line(game.Vec{X: b.Min.X, Z: v}, game.Vec{X: b.Max.X, Z: v})
	}
	ctx.Call("stroke")
}

func (r *SurvivalRenderer) line(a, b game.Vec) {
	x0, y0, x1, y1, ok := r.Camera.Segment(a, b)
	if !ok {
		return
	}
	r.Ctx.Call("moveTo", x0, y0)
	r.Ctx.Call("lineTo", x1, y1)
}

func (r *SurvivalRenderer) drawCrosshair(s *game.Snapshot) {
	ctx := r.Ctx
	cx, cy := r.Camera.Width/2, r.Camera.Height/2
	color := Theme.ShipColor
	if s.HasPlayer && s.Player.Invisible {
		color = Theme.TextSecondaryColor
	}
	ctx.Set("strokeStyle", color)
	ctx.Set("lineWidth", 2)
	ctx.Call("beginPath")
	ctx.Call("moveTo", cx-10, cy)
	ctx.Call("lineTo", cx+10, cy)
	ctx.Call("moveTo", cx, cy-10)
	ctx.Call("lineTo", cx, cy+10)
	ctx.Call("stroke")
	if s.HasPlayer && s.Player.Shielded {
		ctx.Set("strokeStyle", Theme.ShieldGlowColor)
		ctx.Call("strokeRect", 4, 4, r.Camera.Width-8, r.Camera.Height-8)
	}
}

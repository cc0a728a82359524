//go:build js
// +build js

package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/fx"
	"github.com/simukka/arena-blaster/game"
)

// ArenaBurstScale converts burst styles into arena pixels.
const ArenaBurstScale = 16

// CanvasRenderer draws arena snapshots onto a 2D canvas context.
type CanvasRenderer struct {
	Ctx     *js.Object
	Sprites *Sprites
	Bursts  *fx.BurstPool
	Banner  *fx.Banner
	Overlay *StatsOverlay

	pattern *js.Object
	banner  bannerImage
	rng     common.Source
}

// NewCanvasRenderer builds sprites for cfg and returns a renderer.
func NewCanvasRenderer(ctx *js.Object, cfg game.Config, overlay *StatsOverlay) *CanvasRenderer {
	r := &CanvasRenderer{
		Ctx:     ctx,
		Sprites: NewSprites(cfg),
		Bursts:  fx.NewBurstPool(64),
		Banner:  fx.NewBanner(90),
		Overlay: overlay,
		rng:     common.NewSeededRNG(1),
	}
	r.banner.banner = r.Banner
	r.pattern = ctx.Call("createPattern", r.Sprites.Background, "repeat")
	return r
}

// Render implements game.Renderer.
func (r *CanvasRenderer) Render(s *game.Snapshot) {
	ctx := r.Ctx
	r.Bursts.Ingest(s.Effects, ArenaBurstScale, r.rng)
	r.Banner.Ingest(s.Effects)

	ctx.Set("fillStyle", r.pattern)
	ctx.Call("fillRect", 0, 0, game.WIDTH, game.HEIGHT)

	for _, p := range s.Pickups {
		img := r.Sprites.Pickups[p.Kind]
		if img == nil {
			continue
		}
		// Blink during the last second
		if p.Lifetime > 0 && p.Lifetime < game.TicksPerSecond && p.Lifetime/6%2 == 0 {
			continue
		}
		ctx.Call("drawImage", img, p.Pos.X-p.Radius, p.Pos.Y-p.Radius)
	}

	for _, t := range s.Turrets {
		r.drawRotated(r.Sprites.Turret, t.Pos, 0, t.Radius*2, t.Radius*2, 1)
	}

	for _, c := range s.Combatants {
		r.drawRotated(r.Sprites.Bot, c.Pos, c.Heading, c.Radius*2, c.Radius*2, 1)
	}

	if s.HasPlayer && s.Player.Alive {
		p := s.Player
		alpha := 1.0
		if p.Invisible {
			alpha = 0.3
		}
		w := r.Sprites.Ship.Get("width").Float()
		h := r.Sprites.Ship.Get("height").Float()
		// Ship art points up, facing 0 is +X
		r.drawRotated(r.Sprites.Ship, p.Pos, p.Facing+math.Pi/2, w, h, alpha)
		if p.Shielded {
			sw := r.Sprites.Shield.Get("width").Float()
			ctx.Call("drawImage", r.Sprites.Shield, p.Pos.X-sw/2, p.Pos.Y-sw/2)
		}
	}

	for _, pr := range s.Projectiles {
		img := r.Sprites.Bullet
		if pr.Owner == game.FactionHostile {
			img = r.Sprites.Hostile
		}
		w := img.Get("width").Float()
		ctx.Call("drawImage", img, pr.Pos.X-w/2, pr.Pos.Y-w/2)
	}

	r.Bursts.ForEachReverse(func(b *fx.Burst, _ int) {
		ctx.Call("save")
		ctx.Set("globalAlpha", b.Alpha)
		ctx.Call("translate", b.Pos.X, b.Pos.Y)
		ctx.Call("rotate", b.Angle)
		ctx.Call("drawImage", r.Sprites.Burst, -b.Size/2, -b.Size/2, b.Size, b.Size)
		ctx.Call("restore")
	})
	r.Bursts.Step()

	r.banner.draw(ctx, game.WIDTH, game.HEIGHT)

	if r.Overlay != nil {
		r.Overlay.Render(ctx, s, true)
	}
}

func (r *CanvasRenderer) drawRotated(img *js.Object, pos game.Vec, angle, w, h, alpha float64) {
	ctx := r.Ctx
	ctx.Call("save")
	ctx.Set("globalAlpha", alpha)
	ctx.Call("translate", pos.X, pos.Y)
	ctx.Call("rotate", angle)
	ctx.Call("drawImage", img, -w/2, -h/2, w, h)
	ctx.Call("restore")
}

// bannerImage caches the rendered image of a banner's current text.
type bannerImage struct {
	banner *fx.Banner
	text   string
	img    *js.Object
}

// draw draws the fading banner centered on a width x height surface.
func (bi *bannerImage) draw(ctx *js.Object, width, height float64) {
	b := bi.banner
	if !b.Visible() {
		return
	}
	if b.Text != bi.text || bi.img == nil {
		bi.text = b.Text
		bi.img = RenderTextImage(b.Text, int(width*0.8), int(height/6))
	}
	w := bi.img.Get("width").Float()
	h := bi.img.Get("height").Float()
	ctx.Set("globalAlpha", b.Alpha())
	ctx.Call("drawImage", bi.img, (width-w)/2, (height-h)/3)
	ctx.Set("globalAlpha", 1)
	b.Step()
}

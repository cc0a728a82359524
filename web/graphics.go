//go:build js
// +build js

package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/game"
)

// RenderToCanvas creates an off-screen canvas and renders to it.
func RenderToCanvas(width, height int, renderFn func(canvas, ctx *js.Object)) *js.Object {
	document := js.Global.Get("document")
	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx := canvas.Call("getContext", "2d")
	renderFn(canvas, ctx)
	return canvas
}

// Sprites are the pre-rendered arena images.
type Sprites struct {
	Background *js.Object
	Ship       *js.Object
	Shield     *js.Object
	Bot        *js.Object
	Turret     *js.Object
	Bullet     *js.Object
	Hostile    *js.Object
	Fire       *js.Object
	Burst      *js.Object
	Pickups    map[game.PickupKind]*js.Object
}

// pickupLabels is the letter drawn on each pickup badge.
var pickupLabels = map[game.PickupKind]string{
	game.PickupHealth:    "H",
	game.PickupRapidFire: "R",
	game.PickupDamage:    "D",
	game.PickupShield:    "S",
	game.PickupAmmo:      "A",
	game.PickupSpeed:     "V",
}

// NewSprites renders all static arena graphics at the arena config's sizes.
func NewSprites(cfg game.Config) *Sprites {
	shipR := int(cfg.Player.Radius * 2)
	botStats, _ := game.EnemyStats(game.KindBot)
	botR := botStats.Radius
	bulletR := int(cfg.Player.Bullet.Radius * 4)

	s := &Sprites{Pickups: make(map[game.PickupKind]*js.Object)}

	// Background tile
	s.Background = RenderToCanvas(256, 256, func(canvas, ctx *js.Object) {
		ctx.Set("fillStyle", Theme.BackgroundColor)
		ctx.Call("fillRect", 0, 0, canvas.Get("width").Int(), canvas.Get("height").Int())
		ctx.Set("globalCompositeOperation", "lighter")

		ctx.Call("beginPath")
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()
		for i := 5; i >= 0; i-- {
			fi := float64(i)
			ctx.Call("moveTo", w*(fi+1)/4, -h)
			ctx.Call("lineTo", w*(fi-2)/4, h*2)
			ctx.Call("moveTo", -w, h*(fi-2)/4)
			ctx.Call("lineTo", w*2, h*(fi+1)/4)
		}
		ctx.Set("lineWidth", 3)
		ctx.Set("shadowBlur", Theme.DefaultShadowBlur)
		ctx.Set("strokeStyle", Theme.BackgroundLineColor)
		ctx.Set("shadowColor", Theme.BackgroundGlow)
		ctx.Call("stroke")
	})

	// Player ship, nose up
	s.Ship = RenderToCanvas(shipR, shipR*2, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()

		ctx.Call("beginPath")
		for i := 4; i >= 0; i-- {
			fi := float64(i)
			ctx.Call("moveTo", w/2, h*(1+fi)/10)
			ctx.Call("lineTo", w*(11+fi)/16, h*(15-fi)/16)
			ctx.Call("lineTo", w*(5-fi)/16, h*(15-fi)/16)
			ctx.Call("closePath")
		}
		lineWidth := int(w / 17)
		ctx.Set("lineWidth", lineWidth)
		ctx.Set("shadowBlur", lineWidth*2)
		ctx.Set("strokeStyle", Theme.ShipColor)
		ctx.Set("shadowColor", Theme.ShipGlow)
		ctx.Call("stroke")
		ctx.Call("stroke")
		renderHeart(ctx, w/2, h/2, w)
	})

	// Shield ring
	s.Shield = RenderToCanvas(shipR*2, shipR*2, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		ctx.Set("lineWidth", 6)
		ctx.Set("shadowBlur", Theme.ShieldShadowBlur)
		ctx.Set("strokeStyle", Theme.ShieldGlowColor)
		ctx.Set("shadowColor", Theme.ShieldGlowColor)
		ctx.Call("beginPath")
		ctx.Call("arc", w/2, w/2, w/2-8, 0, math.Pi*2)
		ctx.Call("stroke")
	})

	// Bot, nose pointing +X so heading rotates it directly
	s.Bot = RenderToCanvas(int(botR*2), int(botR*2), func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()

		ctx.Set("lineWidth", Theme.EnemyLineWidth)
		ctx.Set("shadowBlur", Theme.DefaultShadowBlur)
		ctx.Set("strokeStyle", Theme.EnemyColor)
		ctx.Set("shadowColor", Theme.EnemyGlow)
		ctx.Set("miterLimit", 128)
		ctx.Call("translate", w/2, h/2)
		ctx.Call("rotate", -math.Pi/2)
		ctx.Call("translate", -w/2, -h/2)
		ctx.Call("beginPath")

		for i := 4; i >= 0; i-- {
			fi := float64(i)
			x1 := w * (6 - fi) / 11
			y1 := h * (6 - fi) / 20
			x2 := w * (11 - fi) / 26
			y2 := h * (1 + fi) / 9

			ctx.Call("moveTo", w/2, h*(12-fi)/12-6)
			ctx.Call("lineTo", w-x1, y1)
			ctx.Call("lineTo", w-x2, y2)
			ctx.Call("lineTo", x2, y2)
			ctx.Call("lineTo", x1, y1)
			ctx.Call("closePath")
		}

		ctx.Call("stroke")
		ctx.Call("stroke")
		renderHeart(ctx, w/2, h/2, botR)
	})

	// Turret
	s.Turret = RenderToCanvas(int(botR*2), int(botR*2), func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()

		ctx.Set("lineWidth", Theme.EnemyLineWidth)
		ctx.Set("shadowBlur", Theme.DefaultShadowBlur)
		ctx.Set("strokeStyle", Theme.TurretColor)
		ctx.Set("shadowColor", Theme.TurretColor)
		ctx.Call("beginPath")
		for i := 0.0; i < math.Pi*2; i += math.Pi / 4 {
			rr := w * 0.4
			x := w/2 + math.Sin(i)*rr
			y := w/2 + math.Cos(i)*rr
			if i == 0 {
				ctx.Call("moveTo", x, y)
			} else {
				ctx.Call("lineTo", x, y)
			}
		}
		ctx.Call("closePath")
		ctx.Call("stroke")
		ctx.Call("stroke")
	})

	s.Bullet = diamond(bulletR, Theme.BulletColor, Theme.BulletGlow)
	s.Hostile = diamond(bulletR, Theme.HostileColor, Theme.HostileGlow)
	s.Fire = diamond(bulletR, Theme.FireColor, Theme.FireColor)

	// Burst sprite
	s.Burst = RenderToCanvas(16, 16, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()
		ctx.Set("fillStyle", Theme.ExplosionColor)
		ctx.Set("shadowBlur", Theme.ExplosionShadowBlur)
		ctx.Set("shadowColor", Theme.ExplosionGlow)
		p := 6.0

		for i := 0; i < 5; i++ {
			ctx.Call("fillRect", p, p, w-p*2, h-p*2)
		}

		ctx.Set("lineWidth", 0.3)
		ctx.Set("strokeStyle", Theme.ExplosionLineColor)
		pp := p * 0.8
		ctx.Call("beginPath")
		ctx.Call("moveTo", pp, pp)
		ctx.Call("lineTo", w-pp, h-pp)
		ctx.Call("moveTo", w-pp, pp)
		ctx.Call("lineTo", pp, h-pp)
		ctx.Call("stroke")
	})

	pickupR := int(cfg.Pickups.Radius)
	for kind, label := range pickupLabels {
		s.Pickups[kind] = pickupImage(pickupR, label)
	}

	return s
}

// diamond renders a glowing projectile sprite of radius r.
func diamond(r int, color, glow string) *js.Object {
	return RenderToCanvas(r*2, r*2, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()
		p := w / 4
		ctx.Call("beginPath")
		ctx.Call("moveTo", w/2, p)
		ctx.Call("lineTo", w-p, h/2)
		ctx.Call("lineTo", w/2, h-p)
		ctx.Call("lineTo", p, h/2)
		ctx.Call("closePath")
		ctx.Set("lineWidth", Theme.BulletLineWidth)
		ctx.Set("shadowBlur", Theme.BulletShadowBlur)
		ctx.Set("strokeStyle", color)
		ctx.Set("shadowColor", glow)
		ctx.Call("stroke")
		ctx.Call("stroke")
	})
}

// pickupImage renders a lettered pickup badge.
func pickupImage(r int, label string) *js.Object {
	return RenderToCanvas(r*2, r*2, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()

		ctx.Set("shadowBlur", Theme.DefaultShadowBlur)
		ctx.Set("fillStyle", Theme.PickupColor)
		ctx.Set("shadowColor", Theme.PickupColor)
		ctx.Call("arc", w/2, h/2, w/2-2, 0, math.Pi*2)
		ctx.Call("fill")

		ctx.Set("fillStyle", Theme.PickupTextColor)
		ctx.Set("font", "bold "+strconv.Itoa(int(w/1.8))+"px "+Theme.PickupFont)
		ctx.Set("textAlign", "center")
		ctx.Set("textBaseline", "middle")
		ctx.Call("fillText", label, w/2, h/2)
	})
}

// RenderTextImage renders a banner message image.
func RenderTextImage(text string, width, height int) *js.Object {
	return RenderToCanvas(width, height, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()

		shadowBlur := h / 10
		ctx.Set("shadowBlur", shadowBlur)
		fontSize := int(h*0.9 - shadowBlur*2)
		ctx.Set("font", "bold "+strconv.Itoa(fontSize)+"px "+Theme.TextFont)
		ctx.Set("textAlign", "center")
		ctx.Set("textBaseline", "middle")

		maxWidth := w - shadowBlur*2
		centerX := w / 2
		centerY := h / 2

		// Outer glow
		ctx.Set("fillStyle", Theme.TextPrimaryColor)
		ctx.Set("shadowColor", Theme.TextGlow)
		ctx.Call("fillText", text, centerX, centerY, maxWidth)
		ctx.Call("fillText", text, centerX, centerY, maxWidth)

		// Inner stroke
		ctx.Set("fillStyle", Theme.TextSecondaryColor)
		ctx.Set("shadowBlur", shadowBlur/4)
		ctx.Set("lineWidth", shadowBlur/4)
		ctx.Set("lineJoin", "round")
		ctx.Set("strokeStyle", Theme.TextSecondaryColor)
		ctx.Set("shadowColor", Theme.BackgroundColor)
		ctx.Call("strokeText", text, centerX, centerY, maxWidth)

		// Scanline effect
		ctx.Set("globalAlpha", 0.2)
		ctx.Set("globalCompositeOperation", "source-atop")
		ctx.Set("fillStyle", Theme.TextScanlineColor)
		for i := 0.0; i < h; i += 3 {
			ctx.Call("fillRect", 0, i, w, 1)
		}
	})
}

// renderHeart renders the diamond-shaped heart indicator.
func renderHeart(ctx *js.Object, x, y, r float64) {
	p := r / 6

	ctx.Call("beginPath")
	ctx.Call("moveTo", x-p, y)
	ctx.Call("lineTo", x, y+p)
	ctx.Call("lineTo", x+p, y)
	ctx.Call("lineTo", x, y-p)
	ctx.Call("closePath")

	ctx.Set("globalCompositeOperation", "lighter")
	ctx.Set("shadowColor", Theme.ShipCenterColor)
	ctx.Call("stroke")
}

//go:build js
// +build js

// Package web is the browser host: it draws sessions onto a canvas, feeds
// DOM input into the shared input state and drives the runner with
// requestAnimationFrame.
package web

import (
	"net/url"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/game"
)

// App wires one canvas to a game session.
type App struct {
	Canvas  *js.Object
	Ctx     *js.Object
	Game    *game.Game
	Runner  *game.Runner
	Input   *game.InputState
	Overlay *StatsOverlay
	HUD     *HUD
	Log     ConsoleLogger

	sched    *RAFScheduler
	arena    *CanvasRenderer
	survival *SurvivalRenderer
	mode     game.Mode
	endless  bool
}

// NewApp binds to the canvas with the given element id.
func NewApp(canvasID string) *App {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", canvasID)
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}
	canvas.Set("width", game.WIDTH)
	canvas.Set("height", game.HEIGHT)
	ctx := canvas.Call("getContext", "2d")

	a := &App{
		Canvas:  canvas,
		Ctx:     ctx,
		Game:    game.NewGame(),
		Input:   &game.InputState{},
		Overlay: NewStatsOverlay(game.WIDTH),
		HUD:     NewHUD(),
		Log:     ConsoleLogger{Prefix: "arena"},
		sched:   &RAFScheduler{},
	}
	a.Game.SetLogger(a.Log)

	a.Runner = game.NewRunner(a.Game, a.Input, a.sched)
	a.Runner.OnFrame = a.Overlay.FPS.Update
	a.Runner.OnEnd = a.onEnd

	a.arena = NewCanvasRenderer(ctx, game.ArenaConfig(), a.Overlay)
	a.survival = NewSurvivalRenderer(ctx, game.WIDTH, game.HEIGHT, a.Input.View, a.Overlay)

	a.mode, a.endless = modeFromLocation(a.Log)
	return a
}

// modeFromLocation reads ?mode=survival and ?endless=1 from the page URL.
func modeFromLocation(log game.Logger) (game.Mode, bool) {
	search := js.Global.Get("location").Get("search").String()
	q, err := url.ParseQuery(trimQuery(search))
	if err != nil {
		log.Warn("bad query string", "err", err)
		return game.ModeArena, false
	}
	mode := game.ModeArena
	if name := q.Get("mode"); name != "" {
		m, err := game.ParseMode(name)
		if err != nil {
			log.Warn("unknown mode, using arena", "err", err)
		} else {
			mode = m
		}
	}
	return mode, q.Get("endless") == "1"
}

func trimQuery(s string) string {
	if len(s) > 0 && s[0] == '?' {
		return s[1:]
	}
	return s
}

// SetMode selects the mode used by the next Restart.
func (a *App) SetMode(m game.Mode) {
	a.mode = m
}

// Restart starts a fresh session with the stored profile.
func (a *App) Restart() {
	a.Runner.Stop()
	a.sched.Cancel()
	a.Input.Reset()

	opts := game.Options{Mode: a.mode, Endless: a.endless}
	if a.mode == game.ModeSurvival {
		p := LoadProfile(a.Log)
		opts.Character = p.Character
		opts.InfiniteAmmo = p.InfiniteAmmo
		a.Input.SetView(0, 0)
		a.survival.Bursts.Clear()
		a.Game.SetRenderer(game.RendererFunc(a.render(a.survival)))
		a.Overlay.Bursts = a.survival.Bursts
	} else {
		opts.Character = game.CharacterPilot
		a.arena.Bursts.Clear()
		a.Game.SetRenderer(game.RendererFunc(a.render(a.arena)))
		a.Overlay.Bursts = a.arena.Bursts
	}

	if err := a.Runner.Restart(opts); err != nil {
		a.Log.Error("restart failed", "err", err)
		return
	}
	a.Overlay.Seed = a.Game.Seed()
	a.HUD.ShowPhase(a.Game.Phase(), a.Game.Score, nil)
}

func (a *App) render(r game.Renderer) func(*game.Snapshot) {
	return func(s *game.Snapshot) {
		r.Render(s)
		a.HUD.Update(s)
	}
}

// TogglePause stops or resumes the loop of a playing session.
func (a *App) TogglePause() {
	if a.Runner.Running() {
		a.Runner.Stop()
		a.sched.Cancel()
		a.Log.Info("paused", "session", a.Game.SessionID(), "tick", a.Game.Ticks())
		return
	}
	a.Input.Reset()
	a.Runner.Start()
	a.Log.Info("resumed", "session", a.Game.SessionID(), "tick", a.Game.Ticks())
}

func (a *App) onEnd(phase game.Phase, err error) {
	if js.Global.Get("document").Get("exitPointerLock") != js.Undefined {
		js.Global.Get("document").Call("exitPointerLock")
	}
	a.HUD.ShowPhase(phase, a.Game.Score, err)
	a.Log.Info("session ended",
		"session", a.Game.SessionID(),
		"phase", phase,
		"score", a.Game.Score,
		"tick", a.Game.Ticks(),
	)
}

// bindButtons attaches start and restart buttons when the page has them.
func (a *App) bindButtons() {
	doc := js.Global.Get("document")
	bind := func(id string, fn func()) {
		el := doc.Call("getElementById", id)
		if el == nil || el == js.Undefined {
			return
		}
		el.Call("addEventListener", "click", func(*js.Object) { fn() })
	}
	bind("startArena", func() {
		a.SetMode(game.ModeArena)
		a.Restart()
	})
	bind("startSurvival", func() {
		a.SetMode(game.ModeSurvival)
		a.Restart()
	})
	bind("restartButton", a.Restart)
	bind("victoryRestartButton", a.Restart)
	bind("haltedRestartButton", a.Restart)

	for _, kind := range []game.CharacterKind{
		game.CharacterSoldier, game.CharacterNinja, game.CharacterRobot, game.CharacterDragon,
	} {
		kind := kind
		bind("pick-"+kind.String(), func() {
			SaveCharacter(kind)
			a.Log.Info("character selected", "character", kind)
		})
	}
}

// Run starts the browser host on the canvas with id "c" and blocks.
func Run() {
	a := NewApp("c")
	a.BindInput()
	a.bindButtons()
	a.HUD.ShowPhase(game.PhaseMenu, 0, nil)

	js.Global.Set("ArenaBlaster", map[string]interface{}{
		"start": func(mode string) {
			m, err := game.ParseMode(mode)
			if err != nil {
				a.Log.Warn("start", "err", err)
				return
			}
			a.SetMode(m)
			a.Restart()
		},
		"pause":   a.TogglePause,
		"session": a.Game.SessionID,
	})

	select {}
}

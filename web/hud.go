//go:build js
// +build js

package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/game"
)

// HUD mirrors snapshot HUD values into DOM elements. Missing elements are
// skipped so pages may omit any of them.
type HUD struct {
	doc  *js.Object
	last game.HUD
	init bool
}

// NewHUD binds to the current document.
func NewHUD() *HUD {
	return &HUD{doc: js.Global.Get("document")}
}

func (h *HUD) element(id string) *js.Object {
	el := h.doc.Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil
	}
	return el
}

func (h *HUD) setText(id, text string) {
	if el := h.element(id); el != nil {
		el.Set("textContent", text)
	}
}

// show toggles the "hidden" class on id.
func (h *HUD) show(id string, visible bool) {
	el := h.element(id)
	if el == nil {
		return
	}
	if visible {
		el.Get("classList").Call("remove", "hidden")
	} else {
		el.Get("classList").Call("add", "hidden")
	}
}

// Update writes changed HUD values.
func (h *HUD) Update(s *game.Snapshot) {
	hud := s.HUD
	if h.init && hud == h.last {
		return
	}
	h.init = true
	h.last = hud

	h.setText("healthValue", strconv.Itoa(max(0, hud.Health)))
	if el := h.element("playerHealth"); el != nil {
		pct := 0
		if hud.MaxHealth > 0 {
			pct = max(0, hud.Health) * 100 / hud.MaxHealth
		}
		el.Get("style").Set("width", strconv.Itoa(pct)+"%")
	}
	h.setText("scoreValue", strconv.Itoa(hud.Score))
	h.setText("enemiesValue", strconv.Itoa(hud.Enemies))
	h.setText("waveValue", strconv.Itoa(hud.Wave))
	switch {
	case hud.InfiniteAmmo:
		h.setText("ammoValue", "∞")
	case !hud.UsesAmmo:
		h.setText("ammoValue", "-")
	default:
		h.setText("ammoValue", strconv.Itoa(hud.Ammo)+"/"+strconv.Itoa(hud.MaxAmmo))
	}
	special := hud.Special.String()
	if hud.Special != game.SpecialNone && !hud.SpecialReady {
		special += " …"
	}
	h.setText("specialValue", special)
}

// ShowPhase switches the menu and result panels for phase.
func (h *HUD) ShowPhase(phase game.Phase, score int, err error) {
	h.show("gameMenu", phase == game.PhaseMenu)
	h.show("gameUI", phase == game.PhasePlaying)
	h.show("gameOver", phase == game.PhaseGameOver)
	h.show("victory", phase == game.PhaseVictory)
	h.show("halted", phase == game.PhaseHalted)

	switch phase {
	case game.PhaseGameOver:
		h.setText("finalScore", strconv.Itoa(score))
	case game.PhaseVictory:
		h.setText("victoryScore", strconv.Itoa(score))
	case game.PhaseHalted:
		if err != nil {
			h.setText("haltedReason", err.Error())
		}
	}
}

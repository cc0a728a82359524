//go:build js
// +build js

package web

import "github.com/gopherjs/gopherjs/js"

// RAFScheduler schedules frames with requestAnimationFrame.
type RAFScheduler struct {
	AnimationFrameID int
}

// RequestFrame implements game.Scheduler.
func (s *RAFScheduler) RequestFrame(fn func(now float64)) {
	s.AnimationFrameID = js.Global.Call("requestAnimationFrame", fn).Int()
}

// Cancel drops the pending frame.
func (s *RAFScheduler) Cancel() {
	js.Global.Call("cancelAnimationFrame", s.AnimationFrameID)
}

package fx

import (
	"math"
	"testing"

	"github.com/simukka/arena-blaster/game"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// TestCamera_ProjectCenter tests a point straight ahead lands mid-screen
func TestCamera_ProjectCenter(t *testing.T) {
	c := NewCamera(900, 600, 90)
	sx, sy, depth, ok := c.Project(game.Vec{Z: 10})
	if !ok {
		t.Fatal("Expected point ahead to project")
	}
	if !near(sx, 450) || !near(sy, 300) || !near(depth, 10) {
		t.Errorf("Expected (450, 300) at depth 10, got (%f, %f) at %f", sx, sy, depth)
	}
}

// TestCamera_FocalFromFOV tests a 90 degree FOV puts the top edge at 45 degrees
func TestCamera_FocalFromFOV(t *testing.T) {
	c := NewCamera(900, 600, 90)
	if !near(c.Focal, 300) {
		t.Errorf("Expected focal 300, got %f", c.Focal)
	}
	_, sy, _, _ := c.Project(game.Vec{Y: 10, Z: 10})
	if !near(sy, 0) {
		t.Errorf("Expected top edge, got %f", sy)
	}
}

// TestCamera_YawTurnsRight tests the right vector matches strafing
func TestCamera_YawTurnsRight(t *testing.T) {
	c := NewCamera(900, 600, 90)
	sx, _, _, _ := c.Project(game.Vec{X: 1, Z: 10})
	if sx <= 450 {
		t.Errorf("Expected +X to be right of center at yaw 0, got %f", sx)
	}

	c.Yaw = math.Pi / 2
	sx, _, depth, ok := c.Project(game.Vec{X: 10})
	if !ok || !near(sx, 450) || !near(depth, 10) {
		t.Errorf("Expected +X straight ahead at yaw π/2, got %f at %f", sx, depth)
	}
}

// TestCamera_BehindIsClipped tests points behind the camera are rejected
func TestCamera_BehindIsClipped(t *testing.T) {
	c := NewCamera(900, 600, 75)
	if _, _, _, ok := c.Project(game.Vec{Z: -5}); ok {
		t.Error("Expected point behind the camera to be clipped")
	}

	_, _, _, _, ok := c.Segment(game.Vec{Z: -5}, game.Vec{Z: 5})
	if !ok {
		t.Error("Expected a segment crossing the near plane to be clipped, not dropped")
	}
	if _, _, _, _, ok := c.Segment(game.Vec{Z: -5}, game.Vec{X: 1, Z: -1}); ok {
		t.Error("Expected a segment behind the camera to be dropped")
	}
}

// TestCamera_PitchMovesHorizon tests looking up lowers the horizon
func TestCamera_PitchMovesHorizon(t *testing.T) {
	c := NewCamera(900, 600, 75)
	if !near(c.Horizon(), 300) {
		t.Errorf("Expected level horizon at 300, got %f", c.Horizon())
	}
	c.Pitch = 0.3
	if c.Horizon() <= 300 {
		t.Errorf("Expected horizon below center when looking up, got %f", c.Horizon())
	}
}

// TestFogAlpha tests the linear fog ramp
func TestFogAlpha(t *testing.T) {
	cases := []struct{ dist, want float64 }{
		{5, 1}, {10, 1}, {55, 0.5}, {100, 0}, {150, 0},
	}
	for _, tc := range cases {
		if got := FogAlpha(tc.dist, 10, 100); !near(got, tc.want) {
			t.Errorf("FogAlpha(%f): expected %f, got %f", tc.dist, tc.want, got)
		}
	}
}

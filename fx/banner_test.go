package fx

import (
	"testing"

	"github.com/simukka/arena-blaster/game"
)

func TestBanner_ShowAndFade(t *testing.T) {
	b := NewBanner(90)
	b.Ingest([]game.Effect{{Kind: game.EffectWaveStart, Value: 3}})

	if !b.Visible() || b.Text != "WAVE 3" {
		t.Fatalf("Expected WAVE 3 banner, got %q visible=%v", b.Text, b.Visible())
	}
	if b.Alpha() != 1 {
		t.Errorf("Expected full opacity at start, got %f", b.Alpha())
	}

	for i := 0; i < 75; i++ {
		b.Step()
	}
	if a := b.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("Expected fading opacity, got %f", a)
	}

	for i := 0; i < 20; i++ {
		b.Step()
	}
	if b.Visible() {
		t.Error("Expected banner hidden after MaxT frames")
	}
}

func TestAnnouncement(t *testing.T) {
	cases := map[game.EffectKind]string{
		game.EffectWaveClear: "WAVE CLEAR +100",
		game.EffectGameOver:  "GAME OVER",
		game.EffectVictory:   "VICTORY",
		game.EffectHit:       "",
	}
	for kind, want := range cases {
		if got := Announcement(game.Effect{Kind: kind, Value: 100}); got != want {
			t.Errorf("Kind %s: expected %q, got %q", kind, want, got)
		}
	}
}

func TestFPSCounter(t *testing.T) {
	var f FPSCounter
	for i := 1; i <= 60; i++ {
		f.Update(float64(i) * 1000 / 60)
	}
	if f.CurrentFPS < 59.9 || f.CurrentFPS > 60.1 {
		t.Errorf("Expected about 60 FPS, got %f", f.CurrentFPS)
	}
}

func TestHealthLevel(t *testing.T) {
	cases := []struct {
		health, max, want int
	}{
		{100, 100, 3},
		{60, 100, 2},
		{30, 100, 1},
		{10, 100, 0},
		{150, 200, 2},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := HealthLevel(c.health, c.max); got != c.want {
			t.Errorf("HealthLevel(%d, %d): expected %d, got %d", c.health, c.max, c.want, got)
		}
	}
}

package fx

import "testing"

func TestHealthLevelEdgeCases(t *testing.T) {
	tests := []struct {
		health, max int
		want        int
	}{
		{100, 100, 3},
		{76, 100, 3},
		{75, 100, 2},
		{51, 100, 2},
		{50, 100, 1},
		{26, 100, 1},
		{25, 100, 0},
		{0, 100, 0},
		{-10, 100, 0},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := HealthLevel(tt.health, tt.max); got != tt.want {
			t.Errorf("HealthLevel(%d, %d) = %d, want %d", tt.health, tt.max, got, tt.want)
		}
	}
}

func TestFPSCounter_UpdatesEverySecond(t *testing.T) {
	var c FPSCounter
	for i := 1; i <= 30; i++ {
		c.Update(float64(i) * 1000 / 30)
	}
	if c.CurrentFPS != 30 {
		t.Errorf("CurrentFPS = %v, want 30", c.CurrentFPS)
	}
	if c.FrameCount != 0 {
		t.Errorf("FrameCount = %d, want reset to 0", c.FrameCount)
	}

	c.Update(1500)
	if c.CurrentFPS != 30 {
		t.Errorf("CurrentFPS changed mid-second: %v", c.CurrentFPS)
	}
}

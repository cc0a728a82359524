package fx

// FPSCounter measures frames per second from frame timestamps in ms.
type FPSCounter struct {
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64
}

// Update counts a frame at currentTime.
func (s *FPSCounter) Update(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

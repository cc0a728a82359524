package fx

import (
	"strconv"

	"github.com/simukka/arena-blaster/game"
)

// Banner is a centered message that fades out, used for wave and end
// of session announcements.
type Banner struct {
	Text string
	T    int
	MaxT int
}

// NewBanner creates an empty banner that shows for maxT frames.
func NewBanner(maxT int) *Banner {
	return &Banner{MaxT: maxT}
}

// Show replaces the current message.
func (b *Banner) Show(text string) {
	b.Text = text
	b.T = b.MaxT
}

// Visible reports whether the banner should be drawn.
func (b *Banner) Visible() bool {
	return b.T > 0
}

// Alpha is the draw opacity; the last third of the banner fades.
func (b *Banner) Alpha() float64 {
	fade := b.MaxT / 3
	if fade == 0 || b.T >= fade {
		return 1
	}
	return float64(b.T) / float64(fade)
}

// Step counts the banner down by one frame.
func (b *Banner) Step() {
	if b.T > 0 {
		b.T--
	}
}

// Ingest shows a message for announcement effects.
func (b *Banner) Ingest(effects []game.Effect) {
	for _, e := range effects {
		if text := Announcement(e); text != "" {
			b.Show(text)
		}
	}
}

// Announcement returns the banner text for e, or "" if e is not announced.
func Announcement(e game.Effect) string {
	switch e.Kind {
	case game.EffectWaveStart:
		return "WAVE " + strconv.Itoa(e.Value)
	case game.EffectWaveClear:
		return "WAVE CLEAR +" + strconv.Itoa(e.Value)
	case game.EffectGameOver:
		return "GAME OVER"
	case game.EffectVictory:
		return "VICTORY"
	case game.EffectHalted:
		return "HALTED"
	}
	return ""
}

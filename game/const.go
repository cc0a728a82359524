package game

import "math"

// Constants for game configuration
const (
	WIDTH          = 900
	HEIGHT         = 600
	TicksPerSecond = 60
	FrameDuration  = 1000.0 / TicksPerSecond // ms per fixed step
)

// Survival world constants
const (
	// SurvivalHalfExtent bounds player and enemy movement on X and Z.
	SurvivalHalfExtent = 45.0
	// SurvivalBulletExtent is where projectiles are discarded.
	SurvivalBulletExtent = 50.0
	// LookSensitivity converts pointer-lock mouse movement to radians.
	LookSensitivity = 0.002
	// MaxPitch keeps the view from flipping over.
	MaxPitch = math.Pi / 2
)

// diagonal is the per-axis scale when two perpendicular inputs are held.
var diagonal = 1 / math.Sqrt2

// Phase is the session state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseVictory
	PhaseHalted
)

var phaseNames = [...]string{"menu", "playing", "game-over", "victory", "halted"}

func (p Phase) String() string {
	if int(p) >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Terminal reports whether the loop must stop advancing in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory || p == PhaseHalted
}

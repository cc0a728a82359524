package game

import "testing"

// fixedRNG always returns the same value. 0.5 makes Jitter return 0 and
// Chance fail for any probability below one half.
type fixedRNG float64

func (f fixedRNG) Random() float64 { return float64(f) }

// idleDirector never spawns and never declares victory.
type idleDirector struct{}

func (idleDirector) Reset(*Game)        {}
func (idleDirector) Update(*Game)       {}
func (idleDirector) Victory(*Game) bool { return false }
func (idleDirector) Wave() int          { return 0 }

// newTestGame starts a session with an empty world and a neutral RNG.
func newTestGame(t *testing.T, mode Mode, kind CharacterKind) *Game {
	t.Helper()
	g := NewGame()
	if err := g.Start(Options{Mode: mode, Character: kind, Seed: 42}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	g.rng = fixedRNG(0.5)
	g.director = idleDirector{}
	g.Combatants = nil
	g.Pickups = nil
	return g
}

// addCombatant places a combatant of kind at pos with base stats.
func addCombatant(g *Game, kind CombatantKind, pos Vec) *Combatant {
	stats, _ := EnemyStats(kind)
	c := NewCombatant(kind, pos, stats, 0)
	g.Combatants = append(g.Combatants, c)
	return c
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func TestNewGame_StartsInMenu(t *testing.T) {
	g := NewGame()

	if g.Phase() != PhaseMenu {
		t.Errorf("Expected menu phase, got %s", g.Phase())
	}
	if err := g.Tick(Input{}); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("Expected ErrNotPlaying from the menu, got %v", err)
	}
}

func TestStart_ArenaDefaults(t *testing.T) {
	g := NewGame()
	if err := g.Start(Options{Mode: ModeArena, Character: CharacterPilot, Seed: 1}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if g.Phase() != PhasePlaying {
		t.Errorf("Expected playing phase, got %s", g.Phase())
	}
	if _, err := uuid.Parse(g.SessionID()); err != nil {
		t.Errorf("Expected a UUID session id, got %q", g.SessionID())
	}
	if len(g.Combatants) != 3 {
		t.Errorf("Expected 3 bots, got %d", len(g.Combatants))
	}
	if g.Player.Health != 100 || g.Score != 0 {
		t.Errorf("Expected fresh player and score, got health %d score %d", g.Player.Health, g.Score)
	}
	if g.Player.Pos.X != WIDTH/2 || g.Player.Pos.Y != HEIGHT/2 {
		t.Errorf("Expected player at the arena center, got %+v", g.Player.Pos)
	}
}

func TestStart_SurvivalDefaults(t *testing.T) {
	g := NewGame()
	if err := g.Start(Options{Mode: ModeSurvival, Character: CharacterSoldier, Seed: 1}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	s := g.Snapshot()
	if s.HUD.Wave != 1 {
		t.Errorf("Expected wave 1, got %d", s.HUD.Wave)
	}
	if s.HUD.Ammo != 30 || !s.HUD.UsesAmmo {
		t.Errorf("Expected 30 rounds, got %d (uses ammo %v)", s.HUD.Ammo, s.HUD.UsesAmmo)
	}
	if len(g.Combatants) != 0 {
		t.Errorf("Expected no combatants before the start delay, got %d", len(g.Combatants))
	}
}

func TestStart_UnknownMode(t *testing.T) {
	g := NewGame()
	err := g.Start(Options{Mode: Mode(9)})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
	if g.Phase() != PhaseMenu {
		t.Errorf("Expected failed start to leave the menu phase, got %s", g.Phase())
	}
}

func TestStart_DeterministicSeed(t *testing.T) {
	a, b := NewGame(), NewGame()
	a.Start(Options{Seed: 99})
	b.Start(Options{Seed: 99})

	for i := range a.Combatants {
		if a.Combatants[i].Pos != b.Combatants[i].Pos {
			t.Errorf("Combatant %d: expected equal spawns, got %+v and %+v", i, a.Combatants[i].Pos, b.Combatants[i].Pos)
		}
	}
	if a.SessionID() == b.SessionID() {
		t.Error("Expected distinct session ids")
	}
}

func TestStart_RestartResets(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	g.Score = 500
	g.Player.Health = 0
	g.Tick(Input{})
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Phase())
	}
	old := g.SessionID()

	if err := g.Start(Options{Mode: ModeArena}); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if g.Phase() != PhasePlaying || g.Score != 0 || g.Player.Health != 100 {
		t.Errorf("Expected a fresh session, got phase %s score %d health %d", g.Phase(), g.Score, g.Player.Health)
	}
	if g.SessionID() == old {
		t.Error("Expected a new session id on restart")
	}
}

// TestTick_PlayerShotAdvancesSameTick tests the phase order: a shot fired
// in the player phase moves in the projectile phase of the same tick
func TestTick_PlayerShotAdvancesSameTick(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	pl := g.Player.Pos

	if err := g.Tick(Input{Fire: true, AimX: WIDTH, AimY: pl.Y}); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if len(g.Projectiles) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(g.Projectiles))
	}
	if !approx(g.Projectiles[0].Pos.X, pl.X+8) {
		t.Errorf("Expected projectile at X=%f, got %f", pl.X+8, g.Projectiles[0].Pos.X)
	}

	g.Tick(Input{Fire: true, AimX: WIDTH, AimY: pl.Y})
	if len(g.Projectiles) != 1 {
		t.Errorf("Expected cooldown to block the next tick's shot, got %d", len(g.Projectiles))
	}
}

func TestTick_GameOver(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	g.Player.Health = 10
	addShot(g, g.Player.Pos, FactionHostile, 15)

	g.Tick(Input{})

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Phase())
	}
	found := false
	for _, e := range g.Effects() {
		if e.Kind == EffectGameOver {
			found = true
		}
	}
	if !found {
		t.Error("Expected a game-over effect")
	}
	if err := g.Tick(Input{}); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("Expected terminal phase to refuse ticks, got %v", err)
	}
}

func TestTick_Victory(t *testing.T) {
	g := NewGame()
	g.Start(Options{Mode: ModeArena, Seed: 3})
	for _, c := range g.Combatants {
		c.Destroy()
	}

	g.Tick(Input{})

	if g.Phase() != PhaseVictory {
		t.Errorf("Expected victory, got %s", g.Phase())
	}
}

func TestTick_EndlessRespawns(t *testing.T) {
	g := NewGame()
	g.Start(Options{Mode: ModeArena, Seed: 3, Endless: true})
	for _, c := range g.Combatants {
		c.Destroy()
	}

	g.Tick(Input{})

	if g.Phase() != PhasePlaying {
		t.Errorf("Expected endless session to keep playing, got %s", g.Phase())
	}
	if g.liveCombatants() != 3 {
		t.Errorf("Expected 3 respawned bots, got %d", g.liveCombatants())
	}
}

// TestTick_PanicHalts tests that a fault halts the session and leaves
// earlier state in place
func TestTick_PanicHalts(t *testing.T) {
	g := newTestGame(t, ModeArena, CharacterPilot)
	g.Score = 42
	g.SetRenderer(RendererFunc(func(*Snapshot) { panic("boom") }))

	err := g.Tick(Input{})

	if err == nil {
		t.Fatal("Expected an error from the panicking tick")
	}
	if !strings.Contains(err.Error(), "tick 1") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Expected tick number and cause in error, got %q", err)
	}
	if g.Phase() != PhaseHalted || g.Err() == nil {
		t.Errorf("Expected halted phase with error, got %s", g.Phase())
	}
	if g.Score != 42 {
		t.Errorf("Expected score untouched, got %d", g.Score)
	}
	if g.Snapshot().Err == "" {
		t.Error("Expected snapshot to carry the halt error")
	}
}

// TestTick_RebuildsMissingPlayer tests recovery when the player is gone
func TestTick_RebuildsMissingPlayer(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(t, ModeArena, CharacterNinja)
	g.SetLogger(log.New(&buf))
	g.Player = nil

	if err := g.Tick(Input{}); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if g.Player == nil || g.Player.Kind() != CharacterNinja {
		t.Fatal("Expected the player rebuilt with the session character")
	}
	if !strings.Contains(buf.String(), "player missing") {
		t.Errorf("Expected a warning in the log, got %q", buf.String())
	}
}

func TestTick_RendersSnapshot(t *testing.T) {
	g := newTestGame(t, ModeSurvival, CharacterPilot)
	var got []*Snapshot
	g.SetRenderer(RendererFunc(func(s *Snapshot) { got = append(got, s) }))

	g.Tick(Input{})
	g.Tick(Input{})

	if len(got) != 2 {
		t.Fatalf("Expected 2 renders, got %d", len(got))
	}
	if got[1].Tick != 2 || got[1].Mode != ModeSurvival {
		t.Errorf("Expected tick 2 survival snapshot, got tick %d mode %s", got[1].Tick, got[1].Mode)
	}
	if !got[1].HasPlayer || got[1].HUD.Health != 100 {
		t.Errorf("Expected player in snapshot, got %+v", got[1].HUD)
	}
}

func TestPhase_Terminal(t *testing.T) {
	for p, want := range map[Phase]bool{
		PhaseMenu:     false,
		PhasePlaying:  false,
		PhaseGameOver: true,
		PhaseVictory:  true,
		PhaseHalted:   true,
	} {
		if p.Terminal() != want {
			t.Errorf("Phase %s: expected terminal=%v", p, want)
		}
	}
}

func TestParseCharacter(t *testing.T) {
	k, err := ParseCharacter(" Dragon ")
	if err != nil || k != CharacterDragon {
		t.Errorf("Expected dragon, got %s (%v)", k, err)
	}
	if _, err := ParseCharacter("wizard"); !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("Expected ErrUnknownCharacter, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("SURVIVAL")
	if err != nil || m != ModeSurvival {
		t.Errorf("Expected survival, got %s (%v)", m, err)
	}
	if _, err := ParseMode("racing"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
}

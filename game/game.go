package game

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/simukka/arena-blaster/common"
)

// ErrNotPlaying is returned by Tick outside the playing phase.
var ErrNotPlaying = errors.New("session is not playing")

// Options select the session a Start call creates.
type Options struct {
	Mode         Mode
	Character    CharacterKind
	Seed         uint32 // 0 derives a seed from the session ID
	InfiniteAmmo bool
	Endless      bool    // arena keeps respawning and never reports victory
	Config       *Config // overrides the mode's default tuning
}

// Game holds the complete simulation state of one session.
type Game struct {
	// Entity containers, in spawn order
	Player      *Player
	Combatants  []*Combatant
	Projectiles []*Projectile
	Pickups     []*Pickup
	Turrets     []*Turret

	Score int
	Kills int

	cfg       Config
	opts      Options
	phase     Phase
	tick      uint64
	err       error
	sessionID string
	seed      uint32
	rng       common.Source
	director  Director

	// Collision detection
	grid       *SpatialGrid
	candidates []int

	effects  []Effect
	renderer Renderer
	log      Logger
}

// NewGame creates a game in the menu phase.
func NewGame() *Game {
	return &Game{
		phase: PhaseMenu,
		cfg:   ArenaConfig(),
		log:   nopLogger{},
	}
}

// SetLogger routes session logs to l. A nil l discards them.
func (g *Game) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	g.log = l
}

// SetRenderer sets the renderer called at the end of every tick.
func (g *Game) SetRenderer(r Renderer) {
	g.renderer = r
}

// Phase returns the session phase.
func (g *Game) Phase() Phase { return g.phase }

// Err returns the fault that halted the session, if any.
func (g *Game) Err() error { return g.err }

// SessionID returns the current session's identifier.
func (g *Game) SessionID() string { return g.sessionID }

// Seed returns the seed the session's random stream started from.
func (g *Game) Seed() uint32 { return g.seed }

// Ticks returns how many ticks the session has run.
func (g *Game) Ticks() uint64 { return g.tick }

// Config returns the session's tuning table.
func (g *Game) Config() Config { return g.cfg }

// Director returns the session's spawn director.
func (g *Game) Director() Director { return g.director }

// Effects returns the feedback events emitted by the last tick.
func (g *Game) Effects() []Effect { return g.effects }

// Start discards any previous session and begins a new one. It may be
// called from any phase.
func (g *Game) Start(opts Options) error {
	var cfg Config
	switch {
	case opts.Config != nil:
		cfg = *opts.Config
	case opts.Mode == ModeArena || opts.Mode == ModeSurvival:
		cfg = ConfigFor(opts.Mode)
	default:
		return errors.Wrapf(ErrUnknownMode, "mode %d", opts.Mode)
	}
	if _, ok := characters[opts.Character]; !ok {
		return errors.Wrapf(ErrUnknownCharacter, "character %d", opts.Character)
	}

	id := uuid.New()
	seed := opts.Seed
	if seed == 0 {
		seed = binary.BigEndian.Uint32(id[:4])
	}

	*g = Game{
		cfg:       cfg,
		opts:      opts,
		phase:     PhasePlaying,
		sessionID: id.String(),
		seed:      seed,
		rng:       common.NewSeededRNG(seed),
		grid:      NewSpatialGrid(cfg.Bounds, cfg.Plane, cfg.GridCell),
		renderer:  g.renderer,
		log:       g.log,
	}
	g.Player = NewPlayer(opts.Character, cfg.Player, opts.InfiniteAmmo)

	switch cfg.Mode {
	case ModeSurvival:
		g.director = NewWaveDirector(cfg.Waves)
	default:
		steady := cfg.Steady
		steady.Respawn = steady.Respawn || opts.Endless
		g.director = NewSteadyDirector(steady)
	}
	g.director.Reset(g)

	g.log.Info("session started",
		"session", g.sessionID,
		"mode", cfg.Mode,
		"character", opts.Character,
		"seed", seed,
	)
	return nil
}

// Tick advances the session by one fixed step and renders it. A panic in
// any phase halts the session and is returned as an error; entities are
// left as they were when the fault happened.
func (g *Game) Tick(in Input) (err error) {
	if g.phase != PhasePlaying {
		return ErrNotPlaying
	}

	defer func() {
		if r := recover(); r != nil {
			g.halt(errors.Errorf("tick %d: %v", g.tick, r))
			err = g.err
		}
	}()

	g.tick++
	g.effects = g.effects[:0]
	g.ensurePlayer()

	// Player Input Processing
	g.updatePlayer(in)

	// Combatant AI, turrets, then projectile and pickup lifetimes
	for _, c := range g.Combatants {
		c.Update(g)
	}
	for _, t := range g.Turrets {
		t.Update(g)
	}
	for _, p := range g.Projectiles {
		p.Update(g.cfg.ProjectileBounds)
	}
	for _, p := range g.Pickups {
		p.Update()
	}

	g.resolveCollisions()
	g.purge()
	g.director.Update(g)
	g.checkTerminal()

	if g.renderer != nil {
		g.renderer.Render(g.Snapshot())
	}
	return nil
}

// Render draws the current state without advancing it. Hosts use it for
// menu and end screens.
func (g *Game) Render() {
	if g.renderer != nil {
		g.renderer.Render(g.Snapshot())
	}
}

// ensurePlayer rebuilds a missing player so the tick can proceed.
func (g *Game) ensurePlayer() {
	if g.Player != nil {
		return
	}
	g.log.Warn("player missing, rebuilding", "session", g.sessionID, "tick", g.tick)
	g.Player = NewPlayer(g.opts.Character, g.cfg.Player, g.opts.InfiniteAmmo)
}

func (g *Game) updatePlayer(in Input) {
	p := g.Player
	p.tick(g)
	if !p.IsAlive() {
		return
	}
	p.Move(in, &g.cfg)
	dir := p.Aim(in, g.cfg.Plane)
	if in.Fire || in.FireHeld {
		p.Fire(g, dir)
	}
	if in.Special {
		p.UseSpecial(g)
	}
}

func (g *Game) checkTerminal() {
	switch {
	case !g.Player.IsAlive():
		g.phase = PhaseGameOver
		g.emit(Effect{Kind: EffectGameOver, Pos: g.Player.Pos, Value: g.Score})
		g.log.Info("game over", "session", g.sessionID, "tick", g.tick, "score", g.Score, "kills", g.Kills)
	case g.director.Victory(g):
		g.phase = PhaseVictory
		g.emit(Effect{Kind: EffectVictory, Value: g.Score})
		g.log.Info("victory", "session", g.sessionID, "tick", g.tick, "score", g.Score)
	}
}

// halt stops the session after an unexpected fault.
func (g *Game) halt(err error) {
	g.phase = PhaseHalted
	g.err = err
	g.emit(Effect{Kind: EffectHalted})
	g.log.Error("session halted", "session", g.sessionID, "tick", g.tick, "err", err)
}

// purge drops dead entities while keeping spawn order.
func (g *Game) purge() {
	g.Combatants = purgeDead(g.Combatants)
	g.Projectiles = purgeDead(g.Projectiles)
	g.Pickups = purgeDead(g.Pickups)
	g.Turrets = purgeDead(g.Turrets)
}

func purgeDead[T Entity](items []T) []T {
	n := 0
	for _, it := range items {
		if it.IsAlive() {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}

func (g *Game) liveCombatants() int {
	n := 0
	for _, c := range g.Combatants {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

func (g *Game) emit(e Effect) {
	g.effects = append(g.effects, e)
}

func (g *Game) spawnProjectile(p *Projectile) {
	g.Projectiles = append(g.Projectiles, p)
}

func (g *Game) spawnCombatant(c *Combatant) {
	g.Combatants = append(g.Combatants, c)
}

func (g *Game) deployTurret(pos Vec) {
	g.Turrets = append(g.Turrets, NewTurret(pos, &g.cfg.Turret))
}

func (g *Game) clearTurrets() {
	for _, t := range g.Turrets {
		t.Expire()
	}
}

// smite destroys every live combatant and awards its score.
func (g *Game) smite() {
	for _, c := range g.Combatants {
		if c.Destroy() {
			g.awardKill(c)
		}
	}
}

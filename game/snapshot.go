package game

// Renderer draws a snapshot. Render runs inside Tick, so a panic in a
// renderer halts the session like any other tick fault.
type Renderer interface {
	Render(s *Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s *Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s *Snapshot) { f(s) }

// HUD is the heads-up summary shown by every host.
type HUD struct {
	Health       int
	MaxHealth    int
	Score        int
	Kills        int
	Wave         int
	Enemies      int
	Ammo         int
	MaxAmmo      int
	UsesAmmo     bool
	InfiniteAmmo bool
	Character    CharacterKind
	Special      Special
	SpecialReady bool
	RapidFire    int // ticks remaining
	Shield       int
	Invisible    bool
	Flying       bool
}

// PlayerView is the renderable player state.
type PlayerView struct {
	Pos       Vec
	Radius    float64
	Facing    float64
	Invisible bool
	Flying    bool
	Shielded  bool
	Alive     bool
}

// CombatantView is the renderable combatant state.
type CombatantView struct {
	Pos       Vec
	Radius    float64
	Heading   float64
	Kind      CombatantKind
	State     AIState
	Health    int
	MaxHealth int
}

// ProjectileView is the renderable projectile state.
type ProjectileView struct {
	Pos    Vec
	Vel    Vec
	Radius float64
	Owner  Faction
	Fire   bool
}

// PickupView is the renderable pickup state.
type PickupView struct {
	Pos      Vec
	Radius   float64
	Kind     PickupKind
	Lifetime int
}

// TurretView is the renderable turret state.
type TurretView struct {
	Pos       Vec
	Radius    float64
	Health    int
	MaxHealth int
}

// Snapshot is a read-only copy of the world after a tick. Renderers may
// keep it; it shares no memory with the simulation.
type Snapshot struct {
	SessionID string
	Mode      Mode
	Phase     Phase
	Tick      uint64
	Bounds    Bounds
	Err       string

	HasPlayer   bool
	Player      PlayerView
	Combatants  []CombatantView
	Projectiles []ProjectileView
	Pickups     []PickupView
	Turrets     []TurretView
	Effects     []Effect
	HUD         HUD
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		SessionID: g.sessionID,
		Mode:      g.cfg.Mode,
		Phase:     g.phase,
		Tick:      g.tick,
		Bounds:    g.cfg.Bounds,
		Effects:   append([]Effect(nil), g.effects...),
	}
	if g.err != nil {
		s.Err = g.err.Error()
	}

	s.HUD = HUD{
		Score: g.Score,
		Kills: g.Kills,
	}
	if g.director != nil {
		s.HUD.Wave = g.director.Wave()
	}

	if p := g.Player; p != nil {
		s.HasPlayer = true
		s.Player = PlayerView{
			Pos:       p.Pos,
			Radius:    p.Radius,
			Facing:    p.Facing,
			Invisible: p.Invisible,
			Flying:    p.Flying,
			Shielded:  p.Mods.Shield.Active(),
			Alive:     p.IsAlive(),
		}
		s.HUD.Health = p.Health
		s.HUD.MaxHealth = p.MaxHealth
		s.HUD.Ammo = p.Ammo
		s.HUD.MaxAmmo = p.MaxAmmo
		s.HUD.UsesAmmo = p.UsesAmmo()
		s.HUD.InfiniteAmmo = p.InfiniteAmmo
		s.HUD.Character = p.Kind()
		s.HUD.Special = p.Kind().Stats().Special
		s.HUD.SpecialReady = p.SpecialCooldown == 0
		s.HUD.RapidFire = p.Mods.RapidFire.T
		s.HUD.Shield = p.Mods.Shield.T
		s.HUD.Invisible = p.Invisible
		s.HUD.Flying = p.Flying
	}

	for _, c := range g.Combatants {
		if !c.IsAlive() {
			continue
		}
		s.Combatants = append(s.Combatants, CombatantView{
			Pos:       c.Pos,
			Radius:    c.Radius,
			Heading:   c.Heading,
			Kind:      c.Kind,
			State:     c.State,
			Health:    c.Health,
			MaxHealth: c.MaxHealth,
		})
	}
	s.HUD.Enemies = len(s.Combatants)

	for _, p := range g.Projectiles {
		if !p.IsAlive() {
			continue
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{
			Pos:    p.Pos,
			Vel:    p.Vel,
			Radius: p.Radius,
			Owner:  p.Owner,
			Fire:   p.Fire,
		})
	}

	for _, p := range g.Pickups {
		if !p.IsAlive() {
			continue
		}
		s.Pickups = append(s.Pickups, PickupView{Pos: p.Pos, Radius: p.Radius, Kind: p.Kind, Lifetime: p.Lifetime})
	}

	for _, t := range g.Turrets {
		if !t.IsAlive() {
			continue
		}
		s.Turrets = append(s.Turrets, TurretView{Pos: t.Pos, Radius: t.Radius, Health: t.Health, MaxHealth: t.MaxHealth})
	}

	return s
}

package game

import (
	"github.com/simukka/arena-blaster/common"
)

// WaveState is the wave bookkeeping exposed for HUDs and tests.
type WaveState struct {
	Wave       int
	Remaining  int // combatants still to spawn this wave
	StartDelay int // ticks before the first spawn
	Stagger    int // ticks until the next spawn
	NextWave   int // ticks until the next wave, counted after completion
	InProgress bool
	Completed  int
}

// WaveDirector spawns escalating waves. A wave completes only when every
// combatant has spawned, the start delay has elapsed and none are alive.
type WaveDirector struct {
	cfg         WaveConfig
	State       WaveState
	pickupTimer int
	announce    bool
	rng         common.Source // spawn stream, reseeded per wave
}

// NewWaveDirector creates a wave director.
func NewWaveDirector(cfg WaveConfig) *WaveDirector {
	return &WaveDirector{cfg: cfg, rng: common.NewSeededRNG(1)}
}

// Reset starts wave 1.
func (d *WaveDirector) Reset(g *Game) {
	d.State = WaveState{}
	d.pickupTimer = 0
	d.begin(g, 1)
}

// Wave returns the current wave number.
func (d *WaveDirector) Wave() int { return d.State.Wave }

// Victory is never reached; survival ends when the player dies.
func (d *WaveDirector) Victory(*Game) bool { return false }

func (d *WaveDirector) begin(g *Game, n int) {
	d.State = WaveState{
		Wave:       n,
		Remaining:  d.cfg.Count(n),
		StartDelay: d.cfg.StartDelay,
		InProgress: true,
		Completed:  d.State.Completed,
	}
	d.announce = true
	d.rng = common.NewSeededRNG(common.LevelSeed(g.seed, n))
	g.log.Info("wave started", "session", g.sessionID, "wave", n, "count", d.State.Remaining)
}

// Update advances spawning, completion and the inter-wave countdown.
func (d *WaveDirector) Update(g *Game) {
	s := &d.State
	if d.announce {
		g.emit(Effect{Kind: EffectWaveStart, Value: s.Wave})
		d.announce = false
	}

	if s.InProgress {
		if s.StartDelay > 0 {
			s.StartDelay--
		}
		if s.StartDelay == 0 && s.Remaining > 0 {
			if s.Stagger > 0 {
				s.Stagger--
			}
			if s.Stagger == 0 {
				d.spawn(g)
				s.Remaining--
				s.Stagger = d.cfg.Stagger
			}
		}
		if s.StartDelay == 0 && s.Remaining == 0 && g.liveCombatants() == 0 {
			d.complete(g)
		}
	} else {
		s.NextWave--
		if s.NextWave <= 0 {
			d.begin(g, s.Wave+1)
		}
	}

	d.pickupTimer++
	if d.pickupTimer >= g.cfg.Pickups.Interval && len(g.Pickups) < g.cfg.Pickups.MaxActive {
		g.spawnPickup()
		d.pickupTimer = 0
	}
}

func (d *WaveDirector) complete(g *Game) {
	s := &d.State
	bonus := s.Wave * d.cfg.BonusPerWave
	g.Score += bonus
	s.InProgress = false
	s.Completed++
	s.NextWave = d.cfg.InterDelay
	g.emit(Effect{Kind: EffectWaveClear, Value: bonus})
	g.log.Info("wave complete", "session", g.sessionID, "wave", s.Wave, "bonus", bonus, "score", g.Score)
}

// pickKind draws a kind among the entries unlocked at the current wave.
func (d *WaveDirector) pickKind(rng common.Source) CombatantKind {
	weights := make([]float64, len(d.cfg.Entries))
	for i, e := range d.cfg.Entries {
		if d.State.Wave >= e.MinWave {
			weights[i] = e.Weight
		}
	}
	if i := common.WeightedIndex(rng, weights); i >= 0 {
		return d.cfg.Entries[i].Kind
	}
	return KindBasic
}

// spawn places one scaled combatant at a random spawn point facing the
// player. Draws come from the per-wave stream, so wave n has the same
// roster for a given session seed.
func (d *WaveDirector) spawn(g *Game) {
	kind := d.pickKind(d.rng)
	stats, _ := EnemyStats(kind)
	step := d.State.Wave - 1
	stats.Health += step * d.cfg.HealthPerWave
	stats.Speed += float64(step) * d.cfg.SpeedPerWave

	var pos Vec
	if n := len(d.cfg.SpawnPoints); n > 0 {
		pos = d.cfg.SpawnPoints[common.RandomInt(d.rng, 0, n)]
	}
	pos.Y = stats.Height

	heading := common.RandomAngle(d.rng)
	if g.Player != nil {
		heading = g.cfg.Plane.Angle(g.Player.Pos.Sub(pos))
	}
	g.spawnCombatant(NewCombatant(kind, pos, stats, heading))
}

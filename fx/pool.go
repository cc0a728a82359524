// Package fx holds renderer-side animation state shared by every host.
// It turns per-tick simulation effects into short-lived visuals; nothing
// here feeds back into the simulation.
package fx

import (
	"math"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/game"
)

// Burst is an expanding, fading, rotating sprite spawned from an effect.
type Burst struct {
	Pos       game.Vec
	Kind      game.EffectKind
	Size      float64
	Grow      float64
	Angle     float64
	D         float64 // Rotation speed
	Alpha     float64
	PoolIndex int
}

// BurstPool manages reusable burst objects.
type BurstPool struct {
	Pool        []*Burst
	ActiveCount int
	MaxSize     int
}

// NewBurstPool creates a new burst pool.
func NewBurstPool(maxSize int) *BurstPool {
	pool := &BurstPool{
		Pool:    make([]*Burst, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Burst{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available burst from the pool. Returns nil when full.
func (p *BurstPool) Acquire() *Burst {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	b := p.Pool[p.ActiveCount]
	b.PoolIndex = p.ActiveCount
	p.ActiveCount++
	return b
}

// Release returns a burst to the pool.
func (p *BurstPool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
	}
	p.ActiveCount--
}

// Clear resets the pool.
func (p *BurstPool) Clear() {
	p.ActiveCount = 0
}

// ForEachReverse iterates over active objects in reverse order.
func (p *BurstPool) ForEachReverse(fn func(*Burst, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}

// burstStyle is the starting size and growth per effect kind, in units of
// the mode's scale.
var burstStyle = map[game.EffectKind]struct{ size, grow float64 }{
	game.EffectHit:       {0.5, 0.3},
	game.EffectDeath:     {1, 1},
	game.EffectPlayerHit: {0.8, 0.5},
	game.EffectDeflect:   {1, 0.4},
	game.EffectShielded:  {1, 0.4},
	game.EffectContact:   {1.2, 0.8},
	game.EffectPickup:    {0.6, 0.6},
}

// Ingest spawns a burst for every visual effect in effects. scale converts
// the base style into world units: 16 for the arena, 1 for survival.
func (p *BurstPool) Ingest(effects []game.Effect, scale float64, rng common.Source) {
	for _, e := range effects {
		style, ok := burstStyle[e.Kind]
		if !ok {
			continue
		}
		b := p.Acquire()
		if b == nil {
			return
		}
		b.Pos = e.Pos
		b.Kind = e.Kind
		b.Size = style.size * scale
		b.Grow = style.grow * scale
		b.Angle = common.RandomAngle(rng)
		b.D = common.Jitter(rng, math.Pi/4)
		b.Alpha = 1
	}
}

// Step animates every burst by one frame and releases faded ones.
func (p *BurstPool) Step() {
	p.ForEachReverse(func(b *Burst, idx int) {
		b.Size += b.Grow
		b.Angle += b.D
		b.Alpha -= 0.1
		if b.Alpha < 0.1 {
			p.Release(idx)
		}
	})
}

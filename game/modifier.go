package game

// Timed is a modifier with a tick expiry. T counts down to zero; at zero
// the modifier is inactive and Value no longer applies.
type Timed struct {
	T     int
	Value float64
}

// Active reports whether the modifier has ticks remaining.
func (m Timed) Active() bool {
	return m.T > 0
}

// Set (re)starts the modifier. Picking up the same bonus twice refreshes
// the timer instead of stacking the value.
func (m *Timed) Set(ticks int, value float64) {
	m.T = ticks
	m.Value = value
}

// Or returns Value while active and def otherwise.
func (m Timed) Or(def float64) float64 {
	if m.Active() {
		return m.Value
	}
	return def
}

func (m *Timed) tick() {
	if m.T > 0 {
		m.T--
	}
}

// Modifiers are the player's transient bonuses.
type Modifiers struct {
	RapidFire Timed
	Damage    Timed
	Speed     Timed
	Shield    Timed
}

// Tick counts every modifier down by one.
func (m *Modifiers) Tick() {
	m.RapidFire.tick()
	m.Damage.tick()
	m.Speed.tick()
	m.Shield.tick()
}

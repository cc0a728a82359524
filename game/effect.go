package game

// EffectKind is a one-tick feedback event for renderers.
type EffectKind int

const (
	EffectHit EffectKind = iota
	EffectDeath
	EffectPlayerHit
	EffectDeflect
	EffectShielded
	EffectContact
	EffectPickup
	EffectMuzzle
	EffectSpecial
	EffectWaveStart
	EffectWaveClear
	EffectGameOver
	EffectVictory
	EffectHalted
)

var effectNames = [...]string{
	"hit", "death", "player-hit", "deflect", "shielded", "contact", "pickup",
	"muzzle", "special", "wave-start", "wave-clear", "game-over", "victory", "halted",
}

func (k EffectKind) String() string {
	if int(k) >= 0 && int(k) < len(effectNames) {
		return effectNames[k]
	}
	return "unknown"
}

// Effect is emitted during a tick and cleared at the start of the next one.
// Renderers animate them; the simulation never reads them back.
type Effect struct {
	Kind  EffectKind
	Pos   Vec
	Value int // score, damage or wave number depending on Kind
}

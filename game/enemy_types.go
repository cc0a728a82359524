package game

// CombatantKind identifies a hostile archetype.
type CombatantKind int

const (
	KindBot CombatantKind = iota
	KindBasic
	KindFast
	KindTank
	KindSniper
)

// CombatantKindNames maps CombatantKind to display names for the HUD and logs
var CombatantKindNames = map[CombatantKind]string{
	KindBot:    "bot",
	KindBasic:  "basic",
	KindFast:   "fast",
	KindTank:   "tank",
	KindSniper: "sniper",
}

func (k CombatantKind) String() string {
	if name, ok := CombatantKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// EnemyType holds the base stats of a combatant kind before wave scaling.
type EnemyType struct {
	Health int
	Speed  float64
	Damage int
	Radius float64
	Height float64 // resting Y in Survival
	Score  int
}

// Standard enemy stats
var enemyTypes = map[CombatantKind]EnemyType{
	// Arena bot
	KindBot: {Health: 60, Speed: 2, Damage: 15, Radius: 18, Score: 100},

	// Survival waves. Height is three quarters of the model size.
	KindBasic:  {Health: 60, Speed: 0.05, Damage: 15, Radius: 1.4, Height: 0.8 * 0.75, Score: 100},
	KindFast:   {Health: 40, Speed: 0.08, Damage: 10, Radius: 1.4, Height: 0.6 * 0.75, Score: 150},
	KindTank:   {Health: 100, Speed: 0.03, Damage: 20, Radius: 1.4, Height: 1.2 * 0.75, Score: 200},
	KindSniper: {Health: 50, Speed: 0.04, Damage: 25, Radius: 1.4, Height: 0.7 * 0.75, Score: 175},
}

// EnemyStats returns the base stats for kind.
func EnemyStats(kind CombatantKind) (EnemyType, bool) {
	t, ok := enemyTypes[kind]
	return t, ok
}

package game

// PickupKind tags what a pickup does when collected.
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupRapidFire
	PickupDamage
	PickupShield
	PickupAmmo
	PickupSpeed
)

var pickupNames = map[PickupKind]string{
	PickupHealth:    "health",
	PickupRapidFire: "rapidfire",
	PickupDamage:    "damage",
	PickupShield:    "shield",
	PickupAmmo:      "ammo",
	PickupSpeed:     "speed",
}

func (k PickupKind) String() string {
	if name, ok := pickupNames[k]; ok {
		return name
	}
	return "unknown"
}

// Pickup is a stationary collectible.
type Pickup struct {
	Body
	Kind     PickupKind
	Lifetime int // ticks remaining, 0 never expires
	expires  bool
}

// NewPickup creates a pickup of kind at pos.
func NewPickup(kind PickupKind, pos Vec, cfg *PickupConfig) *Pickup {
	return &Pickup{
		Body:     NewBody(pos, cfg.Radius, 1),
		Kind:     kind,
		Lifetime: cfg.Lifetime,
		expires:  cfg.Lifetime > 0,
	}
}

// Update counts the lifetime down. Returns false once the pickup is dead.
func (p *Pickup) Update() bool {
	if !p.IsAlive() {
		return false
	}
	if p.expires {
		p.Lifetime--
		if p.Lifetime <= 0 {
			p.Expire()
			return false
		}
	}
	return true
}

// Apply grants the pickup's effect to pl.
func (p *Pickup) Apply(pl *Player, cfg *PickupConfig) {
	switch p.Kind {
	case PickupHealth:
		pl.Heal(cfg.HealAmount)
	case PickupRapidFire:
		pl.Mods.RapidFire.Set(cfg.RapidFireTicks, 1)
	case PickupDamage:
		if cfg.DamageBonus > 0 {
			pl.Damage += cfg.DamageBonus
		}
		if cfg.DamageMult > 0 {
			pl.Mods.Damage.Set(cfg.DamageTicks, cfg.DamageMult)
		}
	case PickupShield:
		pl.Mods.Shield.Set(cfg.ShieldTicks, 1)
	case PickupAmmo:
		pl.RefillAmmo()
	case PickupSpeed:
		pl.Mods.Speed.Set(cfg.SpeedTicks, cfg.SpeedMult)
	}
}

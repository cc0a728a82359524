package fx

// HealthLevel buckets a health percentage for color selection: 3 is
// healthy, 0 is critical.
func HealthLevel(health, maxHealth int) int {
	if maxHealth <= 0 {
		return 0
	}
	pct := health * 100 / maxHealth
	switch {
	case pct > 75:
		return 3
	case pct > 50:
		return 2
	case pct > 25:
		return 1
	}
	return 0
}

// HealthColors are the overlay colors per HealthLevel.
var HealthColors = [4]string{"#ff0000", "#ffff00", "#88ff00", "#00ff00"}

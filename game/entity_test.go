package game

import "testing"

// TestTakeDamage_ReportsDeathOnce tests that only the killing blow reports
func TestTakeDamage_ReportsDeathOnce(t *testing.T) {
	b := NewBody(Vec{}, 1, 30)

	if b.TakeDamage(20) {
		t.Error("Expected 20 damage not to kill a 30 hp body")
	}
	if !b.TakeDamage(20) {
		t.Error("Expected second hit to kill")
	}
	if b.Health != 0 {
		t.Errorf("Expected health clamped at 0, got %d", b.Health)
	}
	if b.TakeDamage(20) {
		t.Error("Expected damage to a dead body to be ignored")
	}
}

// TestTakeDamage_IgnoresNonPositive tests zero and negative damage
func TestTakeDamage_IgnoresNonPositive(t *testing.T) {
	b := NewBody(Vec{}, 1, 30)
	b.TakeDamage(0)
	b.TakeDamage(-5)
	if b.Health != 30 {
		t.Errorf("Expected health unchanged at 30, got %d", b.Health)
	}
}

// TestHeal_CapsAtMax tests healing cannot exceed max health
func TestHeal_CapsAtMax(t *testing.T) {
	b := NewBody(Vec{}, 1, 100)
	b.Health = 90
	b.Heal(30)
	if b.Health != 100 {
		t.Errorf("Expected health capped at 100, got %d", b.Health)
	}
}

// TestExpire_KillsAtFullHealth tests that expiry alone makes a body dead
func TestExpire_KillsAtFullHealth(t *testing.T) {
	b := NewBody(Vec{}, 1, 100)
	b.Expire()
	if b.IsAlive() {
		t.Error("Expected expired body to be dead")
	}
	if b.Destroy() {
		t.Error("Expected Destroy on a dead body to report false")
	}
}

// TestOverlaps_SumOfRadii tests the strict sum-of-radii rule
func TestOverlaps_SumOfRadii(t *testing.T) {
	a := &Pickup{Body: NewBody(Vec{X: 0}, 5, 1)}
	b := &Pickup{Body: NewBody(Vec{X: 9.9}, 5, 1)}
	c := &Pickup{Body: NewBody(Vec{X: 10}, 5, 1)}

	if !Overlaps(a, b) {
		t.Error("Expected overlap at distance 9.9 with radii 5+5")
	}
	if Overlaps(a, c) {
		t.Error("Expected touching circles not to overlap")
	}
}

// TestPurgeDead_KeepsOrder tests that purging keeps survivors in spawn order
func TestPurgeDead_KeepsOrder(t *testing.T) {
	var cs []*Combatant
	for i := 0; i < 5; i++ {
		stats, _ := EnemyStats(KindBot)
		cs = append(cs, NewCombatant(KindBot, Vec{X: float64(i)}, stats, 0))
	}
	cs[1].Destroy()
	cs[3].Destroy()

	cs = purgeDead(cs)
	if len(cs) != 3 {
		t.Fatalf("Expected 3 survivors, got %d", len(cs))
	}
	for i, want := range []float64{0, 2, 4} {
		if cs[i].Pos.X != want {
			t.Errorf("Expected survivor %d at X=%f, got %f", i, want, cs[i].Pos.X)
		}
	}
}

package system

import (
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
)

func addUnit(w *entity.World, x, y float64, health int) (types.EntityID, *component.Unit) {
	id := w.NewEntity()
	u := &component.Unit{
		Pos:       component.Position{X: x, Y: y},
		Health:    health,
		MaxHealth: health,
		Radius:    config.UnitBaseRadius,
		Alive:     true,
	}
	w.Units.Add(id, u)
	return id, u
}

func addTower(w *entity.World, x, y float64) *component.Structure {
	st := &component.Structure{
		DefID:           "gun",
		Footprint:       2,
		Range:           120,
		Damage:          10,
		FireRate:        2,
		ProjectileSpeed: 8,
		Center:          component.Position{X: x, Y: y},
	}
	w.Structures.Add(w.NewEntity(), st)
	return st
}

func TestTowerTargetsNearestInRange(t *testing.T) {
	w := entity.NewWorld()
	st := addTower(w, 100, 100)
	addUnit(w, 150, 100, 100)
	near, _ := addUnit(w, 100, 130, 100)
	addUnit(w, 100, 300, 100)

	NewCombatSystem(w).Update(config.TickMillis)
	if len(st.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(st.Projectiles))
	}
	if st.Projectiles[0].Target != near {
		t.Errorf("expected target %d, got %d", near, st.Projectiles[0].Target)
	}
	if st.Cooldown != 500 {
		t.Errorf("expected cooldown 500, got %v", st.Cooldown)
	}
}

func TestRangeIsStrict(t *testing.T) {
	w := entity.NewWorld()
	st := addTower(w, 100, 100)
	addUnit(w, 220, 100, 100)

	NewCombatSystem(w).Update(config.TickMillis)
	if len(st.Projectiles) != 0 {
		t.Fatalf("a unit exactly at range must not be targeted, got %d shots", len(st.Projectiles))
	}
}

func TestTowerIgnoresDeadAndFinishedUnits(t *testing.T) {
	w := entity.NewWorld()
	st := addTower(w, 100, 100)
	_, dead := addUnit(w, 110, 100, 100)
	dead.Alive = false
	_, home := addUnit(w, 90, 100, 100)
	home.Alive = false
	home.ReachedGoal = true

	NewCombatSystem(w).Update(config.TickMillis)
	if len(st.Projectiles) != 0 {
		t.Fatalf("expected no shots, got %d", len(st.Projectiles))
	}
}

func TestProjectilesHitAndRespectCooldown(t *testing.T) {
	w := entity.NewWorld()
	st := addTower(w, 100, 100)
	_, u := addUnit(w, 130, 100, 1000)
	cs := NewCombatSystem(w)

	// 45 ticks is 750 ms: shots at 0 and 500 ms, both landed.
	for i := 0; i < 45; i++ {
		cs.Update(config.TickMillis)
	}
	if u.Health != 980 {
		t.Fatalf("expected 980 health after two hits, got %d", u.Health)
	}
	if len(st.Projectiles) != 0 {
		t.Errorf("expected no projectile in flight, got %d", len(st.Projectiles))
	}
}

func TestProjectileFizzlesWhenTargetDies(t *testing.T) {
	w := entity.NewWorld()
	st := addTower(w, 100, 100)
	_, u := addUnit(w, 200, 100, 100)
	cs := NewCombatSystem(w)

	cs.Update(config.TickMillis)
	if len(st.Projectiles) != 1 {
		t.Fatalf("expected a shot, got %d", len(st.Projectiles))
	}
	u.Alive = false
	cs.Update(config.TickMillis)
	if len(st.Projectiles) != 0 {
		t.Fatalf("projectile should vanish with its target, got %d", len(st.Projectiles))
	}
	if u.Health != 100 {
		t.Errorf("fizzled projectile dealt damage: health %d", u.Health)
	}
}

func TestProjectileFizzlesWhenTargetRemoved(t *testing.T) {
	w := entity.NewWorld()
	st := addTower(w, 100, 100)
	id, _ := addUnit(w, 200, 100, 100)
	cs := NewCombatSystem(w)

	cs.Update(config.TickMillis)
	w.Units.Remove(id)
	cs.Update(config.TickMillis)
	if len(st.Projectiles) != 0 {
		t.Fatalf("projectile should vanish with a stale target, got %d", len(st.Projectiles))
	}
}

func TestWallNeverFires(t *testing.T) {
	w := entity.NewWorld()
	wall := &component.Structure{DefID: "wall", Footprint: 1, Center: component.Position{X: 100, Y: 100}}
	w.Structures.Add(w.NewEntity(), wall)
	addUnit(w, 110, 100, 100)

	cs := NewCombatSystem(w)
	for i := 0; i < 10; i++ {
		cs.Update(config.TickMillis)
	}
	if len(wall.Projectiles) != 0 {
		t.Fatalf("walls must not fire, got %d shots", len(wall.Projectiles))
	}
}

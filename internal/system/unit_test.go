package system

import (
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
)

func TestUnitWalksHome(t *testing.T) {
	f := newCorridor(t, 10, 3)
	_, u := f.spawnAt(t, defs.UnitNormal, 60, 0, 1)

	for i := 0; i < 1000 && f.world.Units.Len() > 0; i++ {
		f.tick()
		if u.Alive && u.ReachedGoal {
			t.Fatal("unit is alive and at home at the same time")
		}
	}
	if f.world.Units.Len() != 0 {
		t.Fatalf("expected the unit to be gone, state %s at %+v", u.State, u.Pos)
	}
	if f.counts[event.UnitReachedHome] != 1 {
		t.Errorf("expected 1 UnitReachedHome, got %d", f.counts[event.UnitReachedHome])
	}
	if f.counts[event.UnitKilled] != 0 {
		t.Errorf("reaching home must not pay a kill reward, got %d kills", f.counts[event.UnitKilled])
	}
}

func TestFollowPathDoesNotEnterObstacles(t *testing.T) {
	f := newCorridor(t, 8, 5)
	// wall with a gap on the bottom row
	for row := 0; row < 4; row++ {
		f.build(t, "wall", 4, row)
	}
	_, u := f.spawnAt(t, defs.UnitNormal, 60, 0, 2)

	for i := 0; i < 1000 && u.Alive; i++ {
		f.units.Update(config.TickMillis)
		col, row := f.units.cellOf(u)
		if _, owned := f.grid.OwnerAt(col, row); owned && u.State == component.Pathing {
			t.Fatalf("pathing unit walked onto a footprint at (%d,%d)", col, row)
		}
	}
	if !u.ReachedGoal {
		t.Fatalf("expected the unit to go round the wall, state %s", u.State)
	}
}

func TestBlockedUnitAttacksWithinOneTick(t *testing.T) {
	f := newCorridor(t, 10, 3)
	_, u := f.spawnAt(t, defs.UnitNormal, 60, 0, 1)
	f.tick()
	if u.State != component.Pathing || len(u.Path) == 0 {
		t.Fatalf("expected a route home, state %s", u.State)
	}

	f.build(t, "wall", 5, 0)
	middle := f.build(t, "wall", 5, 1)
	f.build(t, "wall", 5, 2)
	if !u.NeedsPath {
		t.Fatal("placement should invalidate the path")
	}

	f.tick()
	if u.State != component.AttackingStructure {
		t.Fatalf("expected %s, got %s", component.AttackingStructure, u.State)
	}
	if u.Target != middle {
		t.Errorf("expected nearest wall %d as target, got %d", middle, u.Target)
	}
}

func TestUnitDestroysStructureAfterFiveHits(t *testing.T) {
	f := newCorridor(t, 10, 3)
	_, u := f.spawnAt(t, defs.UnitNormal, 60, 0, 1)
	f.build(t, "wall", 5, 0)
	middle := f.build(t, "wall", 5, 1)
	f.build(t, "wall", 5, 2)

	st, _ := f.world.Structures.Get(middle)
	maxHits := 0
	for i := 0; i < 2000 && f.counts[event.StructureDestroyed] == 0; i++ {
		f.tick()
		if st.Hits > maxHits {
			maxHits = st.Hits
		}
	}
	if f.counts[event.StructureDestroyed] != 1 {
		t.Fatalf("expected the wall to be destroyed, hits %d", st.Hits)
	}
	if maxHits != config.HitsToDestroy {
		t.Errorf("expected %d hits, got %d", config.HitsToDestroy, maxHits)
	}
	if _, ok := f.world.Structures.Get(middle); ok {
		t.Error("destroyed wall still registered")
	}
	if f.grid.IsCellOccupied(5, 1) {
		t.Error("destroyed wall footprint still occupied")
	}
	if !f.grid.IsCellOccupied(5, 0) || !f.grid.IsCellOccupied(5, 2) {
		t.Error("neighbouring walls must keep their cells")
	}

	f.tick()
	if u.State != component.Pathing {
		t.Fatalf("expected the unit to replan through the gap, got %s", u.State)
	}
}

func TestDestroyedStructureReplansEveryUnit(t *testing.T) {
	f := newCorridor(t, 12, 5)
	f.units.chance = func(float64) bool { return false }
	_, walker := f.spawnAt(t, defs.UnitNormal, 60, 0, 2)
	f.tick()
	if walker.State != component.Pathing || len(walker.Path) == 0 {
		t.Fatalf("expected the walker on a route home, state %s", walker.State)
	}

	wall := f.build(t, "wall", 6, 0)
	st, _ := f.world.Structures.Get(wall)
	_, attacker := f.spawnAt(t, defs.UnitNormal, 60, 6, 1)
	attacker.Pos = component.Position{X: st.Center.X, Y: st.Center.Y + 20}
	attacker.State = component.AttackingStructure
	attacker.Target = wall
	attacker.NeedsPath = false
	st.Hits = config.HitsToDestroy - 1

	// the walker replans first in this tick, so only the destruction can
	// leave it invalidated afterwards
	f.tick()
	if f.counts[event.StructureDestroyed] != 1 {
		t.Fatalf("expected the wall to fall this tick, hits %d", st.Hits)
	}
	for name, u := range map[string]*component.Unit{"walker": walker, "attacker": attacker} {
		if !u.NeedsPath {
			t.Errorf("%s: destruction should invalidate the path", name)
		}
	}

	f.tick()
	for name, u := range map[string]*component.Unit{"walker": walker, "attacker": attacker} {
		if u.State != component.Pathing || len(u.Path) == 0 || u.NeedsPath {
			t.Errorf("%s: expected a fresh route, state %s path %d needsPath %v", name, u.State, len(u.Path), u.NeedsPath)
		}
	}
}

func TestCellCheckAttackHoldsForTheTick(t *testing.T) {
	f := newCorridor(t, 10, 3)
	_, u := f.spawnAt(t, defs.UnitNormal, 60, 0, 1)
	f.tick()
	col, row := f.units.cellOf(u)
	wall := f.build(t, "wall", col, row)

	f.units.chance = func(float64) bool { return true }
	for i := 0; i < 3; i++ {
		f.units.Update(config.TickMillis)
		if u.State != component.AttackingStructure || u.Target != wall {
			t.Fatalf("tick %d: expected to attack the wall underfoot, state %s target %d", i, u.State, u.Target)
		}
		if u.NeedsPath {
			t.Fatalf("tick %d: the attack must not be replanned away", i)
		}
	}
}

func TestStaleTargetReplans(t *testing.T) {
	f := newCorridor(t, 10, 3)
	_, u := f.spawnAt(t, defs.UnitNormal, 60, 0, 1)
	u.NeedsPath = false
	u.State = component.AttackingStructure
	u.Target = types.EntityID(999)

	f.tick()
	if u.State != component.Pathing || u.Target != 0 {
		t.Fatalf("expected replanning after a stale target, got %s target %d", u.State, u.Target)
	}
}

func TestIdleWithoutPathOrStructures(t *testing.T) {
	f := newCorridor(t, 6, 3)
	f.grid.Reserve(3, 0, 1, 3, 0)
	_, u := f.spawnAt(t, defs.UnitNormal, 60, 0, 1)

	f.tick()
	if u.State != component.Idle {
		t.Fatalf("expected %s, got %s", component.Idle, u.State)
	}
}

func TestSplitterSplitsOnce(t *testing.T) {
	f := newCorridor(t, 10, 3)
	_, parent := f.spawnAt(t, defs.UnitSplitter, 41, 0, 1)
	if !parent.WillSplit {
		t.Fatal("splitters should be flagged to split")
	}

	ApplyDamage(parent, 1000)
	if parent.Health != 0 || parent.Alive {
		t.Fatalf("expected clamped dead unit, got health %d alive %v", parent.Health, parent.Alive)
	}
	f.units.Resolve()

	if f.world.Units.Len() != config.SplitChildren {
		t.Fatalf("expected %d children, got %d", config.SplitChildren, f.world.Units.Len())
	}
	positions := map[component.Position]bool{}
	f.world.Units.Each(func(_ types.EntityID, c *component.Unit) {
		if c.Health != 20 || c.MaxHealth != 20 {
			t.Errorf("expected child health 20, got %d/%d", c.Health, c.MaxHealth)
		}
		if c.WillSplit {
			t.Error("children must not split again")
		}
		if c.Speed != parent.Speed*config.SplitSpeedFactor {
			t.Errorf("expected speed %v, got %v", parent.Speed*config.SplitSpeedFactor, c.Speed)
		}
		if c.Radius != parent.Radius*config.SplitRadiusFactor {
			t.Errorf("expected radius %v, got %v", parent.Radius*config.SplitRadiusFactor, c.Radius)
		}
		positions[c.Pos] = true
	})
	if len(positions) != config.SplitChildren {
		t.Errorf("children should not overlap, got %v", positions)
	}

	f.units.Resolve()
	if f.world.Units.Len() != config.SplitChildren {
		t.Fatalf("a second resolve must not split again, got %d units", f.world.Units.Len())
	}

	f.world.Units.Each(func(_ types.EntityID, c *component.Unit) { ApplyDamage(c, 1000) })
	f.units.Resolve()
	if f.world.Units.Len() != 0 {
		t.Fatalf("expected an empty field, got %d units", f.world.Units.Len())
	}
	if f.counts[event.UnitKilled] != 3 {
		t.Errorf("expected 3 kills, got %d", f.counts[event.UnitKilled])
	}
}

func TestApplyDamage(t *testing.T) {
	u := &component.Unit{Health: 10, MaxHealth: 10, Alive: true}
	ApplyDamage(u, 4)
	if u.Health != 6 || !u.Alive {
		t.Fatalf("expected 6 health, got %d", u.Health)
	}
	ApplyDamage(u, 0)
	if u.Health != 6 {
		t.Fatalf("zero damage changed health to %d", u.Health)
	}
	ApplyDamage(u, 50)
	if u.Health != 0 || u.Alive {
		t.Fatalf("expected 0 health and dead, got %d alive %v", u.Health, u.Alive)
	}
	ApplyDamage(u, 5)
	if u.Health != 0 {
		t.Fatalf("health went below zero: %d", u.Health)
	}
}

package system

import (
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/grid"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/tilemap"
)

type fixture struct {
	m      *tilemap.Map
	world  *entity.World
	grid   *grid.Grid
	events *event.Dispatcher
	units  *UnitSystem
	counts map[event.EventType]int
}

// newCorridor builds an open cols x rows field with the start on the left
// and home on the right edge of the middle row.
func newCorridor(t *testing.T, cols, rows int) *fixture {
	t.Helper()
	start := tilemap.Point{X: 0, Y: rows / 2}
	home := tilemap.Point{X: cols - 1, Y: rows / 2}
	m := tilemap.NewMap(cols, rows, []tilemap.Point{start}, []tilemap.Point{home})
	f := &fixture{
		m:      m,
		world:  entity.NewWorld(),
		grid:   grid.New(m),
		events: event.NewDispatcher(),
		counts: make(map[event.EventType]int),
	}
	f.units = NewUnitSystem(f.world, f.grid, utils.NewPRNGService(42), f.events, m.Ends)
	for _, et := range []event.EventType{event.UnitSpawned, event.UnitKilled, event.UnitReachedHome, event.StructureDestroyed} {
		et := et
		f.events.Subscribe(et, event.ListenerFunc(func(event.Event) { f.counts[et]++ }))
	}
	return f
}

func (f *fixture) spawnAt(t *testing.T, ut defs.UnitType, health, col, row int) (types.EntityID, *component.Unit) {
	t.Helper()
	x, y := grid.CellCenter(col, row)
	id := f.units.Spawn(ut, health, component.Position{X: x, Y: y})
	u, ok := f.world.Units.Get(id)
	if !ok {
		t.Fatalf("spawned unit %d not registered", id)
	}
	return id, u
}

// build places a structure without the player-facing checks.
func (f *fixture) build(t *testing.T, defID string, col, row int) types.EntityID {
	t.Helper()
	def, err := defs.Structure(defID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.grid.CanPlaceFootprint(col, row, def.Footprint, def.Footprint) {
		t.Fatalf("cannot place %s at (%d,%d)", defID, col, row)
	}
	id := f.world.NewEntity()
	cx, cy := grid.FootprintCenter(col, row, def.Footprint)
	f.world.Structures.Add(id, &component.Structure{
		DefID:           def.ID,
		Kind:            def.Kind,
		Col:             col,
		Row:             row,
		Footprint:       def.Footprint,
		Range:           def.Range,
		Damage:          def.Damage,
		FireRate:        def.FireRate,
		ProjectileSpeed: def.ProjectileSpeed,
		Cost:            def.Cost,
		Center:          component.Position{X: cx, Y: cy},
	})
	f.grid.Reserve(col, row, def.Footprint, def.Footprint, id)
	f.events.Dispatch(event.Event{Type: event.StructurePlaced, Data: id})
	return id
}

func (f *fixture) tick() {
	f.units.Update(config.TickMillis)
	f.units.Resolve()
}

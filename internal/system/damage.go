// internal/system/damage.go
package system

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/grid"
	"go-grid-defense/internal/types"
)

// ApplyDamage hurts a unit. Health never drops below zero and a unit at
// zero health is marked dead; rewards and splits are settled later by
// UnitSystem.Resolve.
func ApplyDamage(u *component.Unit, damage int) {
	if !u.Alive || damage <= 0 {
		return
	}
	u.Health -= damage
	if u.Health <= 0 {
		u.Health = 0
		u.Alive = false
	}
}

// ReleaseStructure removes a structure from the registry and frees exactly
// its footprint. It reports false for unknown or stale IDs.
func ReleaseStructure(w *entity.World, g *grid.Grid, id types.EntityID) (*component.Structure, bool) {
	st, ok := w.Structures.Get(id)
	if !ok {
		return nil, false
	}
	g.Release(st.Col, st.Row, st.Footprint, st.Footprint)
	w.Structures.Remove(id)
	return st, true
}

func logStructureDestroyed(id types.EntityID, st *component.Structure) {
	log.Printf("Structure %d (%s) at (%d,%d) destroyed after %d hits", id, st.DefID, st.Col, st.Row, st.Hits)
}

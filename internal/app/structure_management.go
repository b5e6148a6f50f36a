// internal/app/structure_management.go
package app

import (
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/grid"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/utils"
)

// PlaceStructure builds a structure of typeID with its top-left footprint
// cell at (col, row).
func (g *Game) PlaceStructure(col, row int, typeID string) bool {
	def, ok := g.canPlace(col, row, typeID)
	if !ok {
		return false
	}

	id := g.world.NewEntity()
	cx, cy := grid.FootprintCenter(col, row, def.Footprint)
	g.world.Structures.Add(id, &component.Structure{
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
	g.grid.Reserve(col, row, def.Footprint, def.Footprint, id)
	g.economy.Scraps -= def.Cost

	g.EventDispatcher.Dispatch(event.Event{Type: event.StructurePlaced, Data: id})
	return true
}

// CanPlaceStructure runs the placement checks without building anything.
func (g *Game) CanPlaceStructure(col, row int, typeID string) bool {
	_, ok := g.canPlace(col, row, typeID)
	return ok
}

func (g *Game) canPlace(col, row int, typeID string) (defs.StructureDefinition, bool) {
	if g.IsGameOver() {
		return defs.StructureDefinition{}, false
	}
	def, err := defs.Structure(typeID)
	if err != nil {
		return def, false
	}
	if def.Cost > g.economy.Scraps {
		return def, false
	}
	if !g.grid.CanPlaceFootprint(col, row, def.Footprint, def.Footprint) {
		return def, false
	}
	if g.nearEndpoint(col, row, def.Footprint) {
		return def, false
	}
	return def, true
}

// nearEndpoint reports whether any footprint cell is closer than
// MinPlacementDistance to a start or home cell.
func (g *Game) nearEndpoint(col, row, size int) bool {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			x, y := col+dx, row+dy
			for _, p := range g.tileMap.Starts {
				if utils.Chebyshev(x, y, p.X, p.Y) < config.MinPlacementDistance {
					return true
				}
			}
			for _, p := range g.tileMap.Ends {
				if utils.Chebyshev(x, y, p.X, p.Y) < config.MinPlacementDistance {
					return true
				}
			}
		}
	}
	return false
}

// RemoveStructure sells a structure and returns the refund. Unknown or
// stale IDs refund nothing.
func (g *Game) RemoveStructure(id types.EntityID) int {
	if g.IsGameOver() {
		return 0
	}
	st, ok := system.ReleaseStructure(g.world, g.grid, id)
	if !ok {
		return 0
	}
	refund := int(math.Floor(float64(st.Cost) * config.RefundRatio))
	g.economy.Scraps += refund

	g.EventDispatcher.Dispatch(event.Event{Type: event.StructureRemoved, Data: id})
	return refund
}

// StructureAt returns the structure whose footprint covers (col, row).
func (g *Game) StructureAt(col, row int) (types.EntityID, bool) {
	return g.grid.OwnerAt(col, row)
}

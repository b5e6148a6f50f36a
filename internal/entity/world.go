// internal/entity/world.go
package entity

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
)

// World holds the unit and structure registries of one session.
type World struct {
	NextID     types.EntityID
	Units      *Store[component.Unit]
	Structures *Store[component.Structure]
}

func NewWorld() *World {
	return &World{
		NextID:     1,
		Units:      NewStore[component.Unit](),
		Structures: NewStore[component.Structure](),
	}
}

// NewEntity hands out a fresh ID. IDs are never reused within a World.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AliveUnits counts units that are still on the field.
func (w *World) AliveUnits() int {
	n := 0
	w.Units.Each(func(_ types.EntityID, u *component.Unit) {
		if u.Alive && !u.ReachedGoal {
			n++
		}
	})
	return n
}

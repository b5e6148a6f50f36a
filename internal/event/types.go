// internal/event/types.go
package event

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
)

const (
	UnitSpawned        EventType = "UnitSpawned"        // Data: types.EntityID
	UnitKilled         EventType = "UnitKilled"         // Data: UnitKilledData
	UnitReachedHome    EventType = "UnitReachedHome"    // Data: types.EntityID
	StructurePlaced    EventType = "StructurePlaced"    // Data: types.EntityID
	StructureRemoved   EventType = "StructureRemoved"   // Data: types.EntityID
	StructureDestroyed EventType = "StructureDestroyed" // Data: types.EntityID
	WaveStarted        EventType = "WaveStarted"        // Data: wave number
	WaveEnded          EventType = "WaveEnded"          // Data: wave number
	GameOver           EventType = "GameOver"
)

// UnitKilledData is the payload of UnitKilled.
type UnitKilledData struct {
	ID   types.EntityID
	Type defs.UnitType
	// RewardFactor scales the kill reward for this unit type.
	RewardFactor float64
}

// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

//go:embed data/*.json
var embedded embed.FS

// ErrUnknownDefinition is returned when a lookup id has no definition.
var ErrUnknownDefinition = errors.New("unknown definition")

// StructureLibrary holds all structure definitions, keyed by their ID.
var StructureLibrary map[string]StructureDefinition

// StructureOrder lists structure IDs in file order.
var StructureOrder []string

// UnitLibrary holds all unit definitions, keyed by their type.
var UnitLibrary map[UnitType]UnitDefinition

func init() {
	if err := loadStructures(mustEmbedded("data/structures.json")); err != nil {
		panic(err)
	}
	if err := loadUnits(mustEmbedded("data/units.json")); err != nil {
		panic(err)
	}
}

func mustEmbedded(name string) []byte {
	data, err := embedded.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// LoadStructureDefinitions reads a structure file and replaces StructureLibrary.
func LoadStructureDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read structure definitions file: %w", err)
	}
	if err := loadStructures(file); err != nil {
		return err
	}
	log.Printf("Loaded %d structure definitions", len(StructureLibrary))
	return nil
}

// LoadUnitDefinitions reads a unit file and replaces UnitLibrary.
func LoadUnitDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	if err := loadUnits(file); err != nil {
		return err
	}
	log.Printf("Loaded %d unit definitions", len(UnitLibrary))
	return nil
}

func loadStructures(data []byte) error {
	var list []StructureDefinition
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal structure definitions: %w", err)
	}
	lib := make(map[string]StructureDefinition, len(list))
	order := make([]string, 0, len(list))
	for _, def := range list {
		if def.Footprint < 1 {
			return fmt.Errorf("structure %q: footprint must be at least 1", def.ID)
		}
		lib[def.ID] = def
		order = append(order, def.ID)
	}
	StructureLibrary = lib
	StructureOrder = order
	return nil
}

func loadUnits(data []byte) error {
	var list []UnitDefinition
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}
	lib := make(map[UnitType]UnitDefinition, len(list))
	for _, def := range list {
		lib[def.Type] = def
	}
	UnitLibrary = lib
	return nil
}

// Structure looks up a structure definition.
func Structure(id string) (StructureDefinition, error) {
	def, ok := StructureLibrary[id]
	if !ok {
		return StructureDefinition{}, fmt.Errorf("structure %q: %w", id, ErrUnknownDefinition)
	}
	return def, nil
}

// Unit looks up a unit definition.
func Unit(t UnitType) (UnitDefinition, error) {
	def, ok := UnitLibrary[t]
	if !ok {
		return UnitDefinition{}, fmt.Errorf("unit %q: %w", t, ErrUnknownDefinition)
	}
	return def, nil
}

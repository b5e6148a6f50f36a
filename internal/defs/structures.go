// internal/defs/structures.go
package defs

import "image/color"

// StructureKind defines the role of a structure.
type StructureKind string

const (
	KindTower    StructureKind = "TOWER"
	KindWall     StructureKind = "WALL"
	KindScrapper StructureKind = "SCRAPPER"
)

// StructureDefinition holds all the static data for a buildable structure.
type StructureDefinition struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Kind            StructureKind `json:"kind"`
	Footprint       int           `json:"footprint"`        // side length in cells
	Range           float64       `json:"range"`            // pixels
	Damage          int           `json:"damage"`
	FireRate        float64       `json:"fire_rate"`        // shots per 1000 ms
	ProjectileSpeed float64       `json:"projectile_speed"` // pixels per tick
	Cost            int           `json:"cost"`
	Visuals         Visuals       `json:"visuals"`
}

// Fires reports whether the structure has a combat role.
func (d StructureDefinition) Fires() bool {
	return d.Kind == KindTower && d.Damage > 0 && d.Range > 0 && d.FireRate > 0
}

// CooldownMillis is the time between two shots.
func (d StructureDefinition) CooldownMillis() float64 {
	if d.FireRate <= 0 {
		return 0
	}
	return 1000 / d.FireRate
}

// Visuals contains parameters for drawing an entity.
type Visuals struct {
	Color color.RGBA `json:"color"`
}

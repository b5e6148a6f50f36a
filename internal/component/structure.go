// internal/component/structure.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
)

// Structure is a player-built tower, wall or scrapper.
type Structure struct {
	DefID     string
	Kind      defs.StructureKind
	Col, Row  int // top-left footprint cell
	Footprint int
	Range     float64
	Damage    int
	FireRate  float64
	Cost      int

	ProjectileSpeed float64

	Center   Position
	Hits     int     // melee hits taken from units
	Cooldown float64 // milliseconds until the next shot

	Projectiles []*Projectile
}

// Projectile is a shot in flight. The target is referenced by ID and can
// disappear before impact.
type Projectile struct {
	Pos    Position
	Target types.EntityID
	Damage int
	Speed  float64
	Active bool
}

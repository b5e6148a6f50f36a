// internal/component/unit.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
)

// UnitState is the behaviour a hostile unit is currently running.
type UnitState int

const (
	Pathing UnitState = iota
	AttackingStructure
	Idle
)

func (s UnitState) String() string {
	switch s {
	case Pathing:
		return "pathing"
	case AttackingStructure:
		return "attacking"
	default:
		return "idle"
	}
}

// Position is a continuous world position in pixels.
type Position struct {
	X, Y float64
}

// Unit is a hostile creep walking towards the home point.
type Unit struct {
	Type      defs.UnitType
	Pos       Position
	Health    int
	MaxHealth int
	Speed     float64 // pixels per tick
	Radius    float64
	Damage    int // melee damage against structures
	WillSplit bool

	State UnitState
	// Path holds waypoint centres in pixels. NeedsPath asks the movement step
	// to replan before moving.
	Path      []Position
	PathIndex int
	NeedsPath bool

	// Target is the structure being attacked; it may go stale at any time.
	Target         types.EntityID
	AttackCooldown float64 // milliseconds left

	Alive       bool
	ReachedGoal bool
	Resolved    bool // rewards/splits already handled
}

// HealthFraction is used by health bars.
func (u *Unit) HealthFraction() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	return float64(u.Health) / float64(u.MaxHealth)
}

// ClearPath drops the current route and asks for a new one.
func (u *Unit) ClearPath() {
	u.Path = nil
	u.PathIndex = 0
	u.NeedsPath = true
}

// internal/defs/units.go
package defs

// UnitType enumerates hostile unit archetypes.
type UnitType string

const (
	UnitNormal   UnitType = "normal"
	UnitFast     UnitType = "fast"
	UnitTank     UnitType = "tank"
	UnitSplitter UnitType = "splitter"
	UnitBoss     UnitType = "boss"
	UnitMiniBoss UnitType = "miniBoss"
)

// UnitDefinition scales the normal baseline for one unit type.
type UnitDefinition struct {
	Type         UnitType `json:"type"`
	HealthFactor float64  `json:"health_factor"`
	SpeedFactor  float64  `json:"speed_factor"`
	RadiusFactor float64  `json:"radius_factor"`
	AttackDamage int      `json:"attack_damage"`
	RewardFactor float64  `json:"reward_factor"`
	Splits       bool     `json:"splits"`
	Visuals      Visuals  `json:"visuals"`
}

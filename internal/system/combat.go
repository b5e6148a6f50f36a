// internal/system/combat.go
package system

import (
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
)

// CombatSystem lets towers pick targets and fire projectiles.
type CombatSystem struct {
	world *entity.World
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world}
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.world.Structures.Each(func(_ types.EntityID, st *component.Structure) {
		s.updateProjectiles(st)
		if st.Damage <= 0 || st.Range <= 0 || st.FireRate <= 0 {
			return
		}
		if st.Cooldown > 0 {
			st.Cooldown -= deltaTime
			if st.Cooldown > 0 {
				return
			}
		}
		targetID, ok := s.findTarget(st)
		if !ok {
			return
		}
		st.Projectiles = append(st.Projectiles, &component.Projectile{
			Pos:    st.Center,
			Target: targetID,
			Damage: st.Damage,
			Speed:  st.ProjectileSpeed,
			Active: true,
		})
		st.Cooldown = 1000 / st.FireRate
	})
}

// findTarget returns the nearest living unit strictly inside range. Ties go
// to the unit spawned first.
func (s *CombatSystem) findTarget(st *component.Structure) (types.EntityID, bool) {
	var bestID types.EntityID
	best := math.MaxFloat64
	s.world.Units.Each(func(id types.EntityID, u *component.Unit) {
		if !u.Alive || u.ReachedGoal {
			return
		}
		d := distance(st.Center, u.Pos)
		if d < st.Range && d < best {
			best = d
			bestID = id
		}
	})
	return bestID, bestID != 0
}

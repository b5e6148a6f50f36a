// internal/system/projectile.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
)

// updateProjectiles moves a tower's shots and drops the spent ones.
func (s *CombatSystem) updateProjectiles(st *component.Structure) {
	kept := st.Projectiles[:0]
	for _, p := range st.Projectiles {
		s.advance(p)
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(st.Projectiles); i++ {
		st.Projectiles[i] = nil
	}
	st.Projectiles = kept
}

// advance homes a projectile on its target. A target that died or left the
// field makes the projectile vanish without effect.
func (s *CombatSystem) advance(p *component.Projectile) {
	u, ok := s.world.Units.Get(p.Target)
	if !ok || !u.Alive || u.ReachedGoal {
		p.Active = false
		return
	}
	moveTowards(&p.Pos, u.Pos, p.Speed)
	if distance(p.Pos, u.Pos) <= u.Radius+config.ProjectileRadius {
		ApplyDamage(u, p.Damage)
		p.Active = false
	}
}

// internal/system/unit.go
package system

import (
	"log"
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/grid"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/pathfind"
	pkgutils "go-grid-defense/pkg/utils"
)

// UnitSystem drives hostile units: path following, falling back to
// attacking structures when no route exists, and settling dead units.
type UnitSystem struct {
	world           *entity.World
	grid            *grid.Grid
	finder          *pathfind.Pathfinder
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	homes           []pathfind.Point
	// chance rolls the per-tick revalidation checks.
	chance func(p float64) bool
}

func NewUnitSystem(world *entity.World, g *grid.Grid, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, homes []pathfind.Point) *UnitSystem {
	s := &UnitSystem{
		world:           world,
		grid:            g,
		finder:          pathfind.New(pathfind.Diagonal),
		rng:             rng,
		eventDispatcher: eventDispatcher,
		homes:           homes,
		chance:          rng.Chance,
	}
	eventDispatcher.Subscribe(event.StructurePlaced, s)
	eventDispatcher.Subscribe(event.StructureRemoved, s)
	eventDispatcher.Subscribe(event.StructureDestroyed, s)
	return s
}

// OnEvent invalidates every live unit's route whenever the footprint layout
// changes.
func (s *UnitSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.StructurePlaced, event.StructureRemoved, event.StructureDestroyed:
		s.InvalidatePaths()
	}
}

func (s *UnitSystem) InvalidatePaths() {
	s.world.Units.Each(func(_ types.EntityID, u *component.Unit) {
		if u.Alive && !u.ReachedGoal {
			u.ClearPath()
		}
	})
}

// Spawn creates a unit of type t with the given health at pos.
func (s *UnitSystem) Spawn(t defs.UnitType, health int, pos component.Position) types.EntityID {
	def, err := defs.Unit(t)
	if err != nil {
		log.Printf("Error: %v, spawning a normal unit instead", err)
		def = defs.UnitLibrary[defs.UnitNormal]
		t = defs.UnitNormal
	}
	if health < 1 {
		health = 1
	}
	u := &component.Unit{
		Type:      t,
		Pos:       pos,
		Health:    health,
		MaxHealth: health,
		Speed:     config.UnitBaseSpeed * def.SpeedFactor,
		Radius:    config.UnitBaseRadius * def.RadiusFactor,
		Damage:    def.AttackDamage,
		WillSplit: def.Splits,
		State:     component.Pathing,
		NeedsPath: true,
		Alive:     true,
	}
	return s.add(u)
}

func (s *UnitSystem) add(u *component.Unit) types.EntityID {
	id := s.world.NewEntity()
	s.world.Units.Add(id, u)
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitSpawned, Data: id})
	return id
}

func (s *UnitSystem) Update(deltaTime float64) {
	s.world.Units.Each(func(id types.EntityID, u *component.Unit) {
		if !u.Alive || u.ReachedGoal {
			return
		}
		s.revalidate(u)
		if u.NeedsPath {
			s.plan(u)
		}
		switch u.State {
		case component.Pathing:
			s.followPath(id, u)
		case component.AttackingStructure:
			s.attack(u, deltaTime)
		}
	})
}

// revalidate runs the two cheap random re-checks: whether the unit is
// standing on a footprint (it then attacks that structure for the rest of
// the tick) and whether an attacking or idle unit can walk home again.
func (s *UnitSystem) revalidate(u *component.Unit) {
	if s.chance(config.UnitCellCheckChance) {
		col, row := s.cellOf(u)
		if owner, ok := s.grid.OwnerAt(col, row); ok {
			if u.State != component.AttackingStructure || u.Target != owner {
				u.State = component.AttackingStructure
				u.Target = owner
				u.Path = nil
				u.PathIndex = 0
			}
			u.NeedsPath = false
			return
		}
		if s.grid.IsObstacle(col, row) {
			u.ClearPath()
		}
	}
	if u.State != component.Pathing && s.chance(config.AttackReplanChance) {
		if path := s.findHome(u); path != nil {
			s.walk(u, path)
		}
	}
}

// plan computes a route home or, failing that, picks the structure to
// break through.
func (s *UnitSystem) plan(u *component.Unit) {
	u.NeedsPath = false
	if path := s.findHome(u); path != nil {
		s.walk(u, path)
		return
	}
	u.Path = nil
	u.PathIndex = 0
	if id, ok := s.nearestStructure(u.Pos); ok {
		u.State = component.AttackingStructure
		u.Target = id
		return
	}
	u.State = component.Idle
	u.Target = 0
}

func (s *UnitSystem) walk(u *component.Unit, path []component.Position) {
	u.State = component.Pathing
	u.Target = 0
	u.Path = path
	u.PathIndex = 0
	u.NeedsPath = false
}

// findHome returns the shortest route in waypoint centres to any home cell.
func (s *UnitSystem) findHome(u *component.Unit) []component.Position {
	col, row := s.cellOf(u)
	from := pathfind.Point{X: col, Y: row}
	var best []pathfind.Point
	for _, h := range s.homes {
		path := s.finder.FindPath(s.grid, from, h)
		if path != nil && (best == nil || len(path) < len(best)) {
			best = path
		}
	}
	if best == nil {
		return nil
	}
	waypoints := make([]component.Position, len(best))
	for i, p := range best {
		x, y := grid.CellCenter(p.X, p.Y)
		waypoints[i] = component.Position{X: x, Y: y}
	}
	return waypoints
}

func (s *UnitSystem) cellOf(u *component.Unit) (int, int) {
	col, row := grid.CellOf(u.Pos.X, u.Pos.Y)
	return pkgutils.Clamp(col, 0, s.grid.Cols()-1), pkgutils.Clamp(row, 0, s.grid.Rows()-1)
}

func (s *UnitSystem) nearestStructure(pos component.Position) (types.EntityID, bool) {
	var bestID types.EntityID
	best := math.MaxFloat64
	s.world.Structures.Each(func(id types.EntityID, st *component.Structure) {
		if d := distance(pos, st.Center); d < best {
			best = d
			bestID = id
		}
	})
	return bestID, bestID != 0
}

func (s *UnitSystem) followPath(id types.EntityID, u *component.Unit) {
	if s.atHome(u) {
		s.reachHome(id, u)
		return
	}
	if len(u.Path) == 0 {
		return
	}
	for u.PathIndex < len(u.Path)-1 && distance(u.Pos, u.Path[u.PathIndex]) <= 2*u.Speed {
		u.PathIndex++
	}
	moveTowards(&u.Pos, u.Path[u.PathIndex], u.Speed)
	if s.atHome(u) {
		s.reachHome(id, u)
	}
}

func (s *UnitSystem) atHome(u *component.Unit) bool {
	for _, h := range s.homes {
		x, y := grid.CellCenter(h.X, h.Y)
		if distance(u.Pos, component.Position{X: x, Y: y}) <= config.HomeRadius+u.Radius {
			return true
		}
	}
	return false
}

func (s *UnitSystem) reachHome(id types.EntityID, u *component.Unit) {
	u.ReachedGoal = true
	u.Alive = false
	u.Path = nil
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitReachedHome, Data: id})
}

// attack closes in on the target structure and lands a hit every
// AttackCooldownMillis once in contact.
func (s *UnitSystem) attack(u *component.Unit, deltaTime float64) {
	st, ok := s.world.Structures.Get(u.Target)
	if !ok {
		u.Target = 0
		s.plan(u)
		return
	}
	if u.AttackCooldown > 0 {
		u.AttackCooldown -= deltaTime
	}
	contact := u.Radius + float64(st.Footprint)*config.CellSize/2 + config.AttackContactMargin
	if distance(u.Pos, st.Center) > contact {
		moveTowards(&u.Pos, st.Center, u.Speed)
		return
	}
	if u.AttackCooldown > 0 {
		return
	}
	u.AttackCooldown = config.AttackCooldownMillis
	st.Hits++
	if st.Hits >= config.HitsToDestroy {
		s.destroy(u.Target)
	}
}

func (s *UnitSystem) destroy(id types.EntityID) {
	st, ok := ReleaseStructure(s.world, s.grid, id)
	if !ok {
		return
	}
	logStructureDestroyed(id, st)
	s.eventDispatcher.Dispatch(event.Event{Type: event.StructureDestroyed, Data: id})
}

// Resolve settles every dead unit exactly once: killed units pay out and
// may split, units that reached home are simply dropped.
func (s *UnitSystem) Resolve() {
	s.world.Units.Each(func(id types.EntityID, u *component.Unit) {
		if u.Alive {
			return
		}
		if !u.Resolved && !u.ReachedGoal {
			u.Resolved = true
			if u.WillSplit {
				s.split(u)
			}
			factor := 1.0
			if def, err := defs.Unit(u.Type); err == nil {
				factor = def.RewardFactor
			}
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.UnitKilled,
				Data: event.UnitKilledData{ID: id, Type: u.Type, RewardFactor: factor},
			})
		}
		s.world.Units.Remove(id)
	})
}

// split spawns the children of a dead splitter on either side of it.
func (s *UnitSystem) split(parent *component.Unit) {
	health := parent.MaxHealth / 2
	if health < 1 {
		health = 1
	}
	for i := 0; i < config.SplitChildren; i++ {
		angle := 2 * math.Pi * float64(i) / config.SplitChildren
		child := &component.Unit{
			Type: parent.Type,
			Pos: component.Position{
				X: parent.Pos.X + math.Cos(angle)*parent.Radius,
				Y: parent.Pos.Y + math.Sin(angle)*parent.Radius,
			},
			Health:    health,
			MaxHealth: health,
			Speed:     parent.Speed * config.SplitSpeedFactor,
			Radius:    parent.Radius * config.SplitRadiusFactor,
			Damage:    parent.Damage,
			State:     component.Pathing,
			NeedsPath: true,
			Alive:     true,
		}
		s.add(child)
	}
}

// internal/app/game.go
package app

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/grid"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/pathfind"
	"go-grid-defense/pkg/tilemap"
)

// DefaultDensity selects config.ObstacleDensity.
const DefaultDensity = -1

// Options configures a session. Zero-valued sizes and attempts take the
// defaults from internal/config.
type Options struct {
	Cols, Rows   int
	Starts, Ends []pathfind.Point
	// ObstacleDensity is the share of the field seeded with obstacles.
	// Zero generates an open field, any negative value (DefaultDensity)
	// the configured default.
	ObstacleDensity float64
	MaxAttempts     int
	// Seed drives map generation and every random decision of the
	// simulation. Zero picks a time based seed.
	Seed int64
	// Map, when set, is used instead of generating one. Each session works
	// on its own copy.
	Map *tilemap.Map
}

func (o Options) withDefaults() Options {
	if o.Cols <= 0 {
		o.Cols = config.MapCols
	}
	if o.Rows <= 0 {
		o.Rows = config.MapRows
	}
	if o.ObstacleDensity < 0 {
		o.ObstacleDensity = config.ObstacleDensity
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = config.MaxMapAttempts
	}
	return o
}

// Game holds one simulation session and is the only entry point hosts use
// to mutate it.
type Game struct {
	opts Options
	seed int64

	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	UnitSystem      *system.UnitSystem
	CombatSystem    *system.CombatSystem
	WaveSystem      *system.WaveSystem

	tileMap *tilemap.Map
	grid    *grid.Grid
	world   *entity.World
	wave    *component.Wave
	economy *component.Economy
	ticks   uint64
}

// NewGame initializes a new game session.
func NewGame(opts Options) *Game {
	g := &Game{opts: opts.withDefaults()}
	g.reset(g.opts.Seed)
	return g
}

// Restart discards all state and builds a fresh session. A fixed seed is
// advanced by one so consecutive sessions differ but stay reproducible.
func (g *Game) Restart() {
	var next int64
	if g.opts.Seed != 0 {
		next = g.seed + 1
	}
	g.reset(next)
}

func (g *Game) reset(seed int64) {
	g.Rng = utils.NewPRNGService(seed)
	g.seed = g.Rng.Seed()

	if g.opts.Map != nil {
		g.tileMap = g.opts.Map.Clone()
		g.tileMap.Connected = g.tileMap.AnyPairConnected()
	} else {
		g.tileMap = tilemap.Generate(tilemap.Config{
			Cols:            g.opts.Cols,
			Rows:            g.opts.Rows,
			Starts:          g.opts.Starts,
			Ends:            g.opts.Ends,
			ObstacleDensity: g.opts.ObstacleDensity,
			MaxAttempts:     g.opts.MaxAttempts,
		}, g.Rng)
	}

	g.grid = grid.New(g.tileMap)
	g.world = entity.NewWorld()
	g.wave = &component.Wave{}
	g.economy = &component.Economy{Scraps: config.StartingScraps, Lives: config.StartingLives}
	g.ticks = 0

	g.EventDispatcher = event.NewDispatcher()
	g.UnitSystem = system.NewUnitSystem(g.world, g.grid, g.Rng, g.EventDispatcher, g.tileMap.Ends)
	g.CombatSystem = system.NewCombatSystem(g.world)
	g.WaveSystem = system.NewWaveSystem(g.world, g.UnitSystem, g.Rng, g.EventDispatcher, g.wave, g.economy, g.tileMap.Starts)

	if g.opts.Map != nil {
		log.Printf("New session: seed %d, supplied %dx%d map, connected=%v",
			g.seed, g.tileMap.Cols, g.tileMap.Rows, g.tileMap.Connected)
		return
	}
	log.Printf("New session: seed %d, %dx%d map, connected=%v after %d attempts",
		g.seed, g.tileMap.Cols, g.tileMap.Rows, g.tileMap.Connected, g.tileMap.Attempts)
}

// Update advances the simulation by one fixed tick.
func (g *Game) Update() {
	if g.wave.Phase == component.PhaseGameOver {
		return
	}
	dt := config.TickMillis
	g.WaveSystem.Update(dt)
	g.UnitSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.UnitSystem.Resolve()
	g.WaveSystem.CheckCompletion()
	g.ticks++
}

// StartNextWave begins the next wave; it fails while a wave is running or
// after game over.
func (g *Game) StartNextWave() bool {
	return g.WaveSystem.StartNextWave()
}

func (g *Game) Scraps() int               { return g.economy.Scraps }
func (g *Game) Lives() int                { return g.economy.Lives }
func (g *Game) WaveNumber() int           { return g.wave.Number }
func (g *Game) Phase() component.Phase    { return g.wave.Phase }
func (g *Game) IsGameOver() bool          { return g.wave.Phase == component.PhaseGameOver }
func (g *Game) Map() *tilemap.Map         { return g.tileMap }
func (g *Game) Grid() *grid.Grid          { return g.grid }
func (g *Game) World() *entity.World      { return g.world }
func (g *Game) Events() *event.Dispatcher { return g.EventDispatcher }
func (g *Game) Seed() int64               { return g.seed }
func (g *Game) Ticks() uint64             { return g.ticks }

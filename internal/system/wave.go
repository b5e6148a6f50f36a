// internal/system/wave.go
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
)

// Spawner places new units on the field.
type Spawner interface {
	Spawn(t defs.UnitType, health int, pos component.Position) types.EntityID
}

// WaveSystem runs the wave lifecycle and the economy: spawning, kill
// rewards, lives, the completion bonus and scrapper income.
type WaveSystem struct {
	world           *entity.World
	spawner         Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	wave            *component.Wave
	economy         *component.Economy
	spawnPoints     []component.Position
}

func NewWaveSystem(world *entity.World, spawner Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher,
	wave *component.Wave, economy *component.Economy, starts []pathfind.Point) *WaveSystem {
	ws := &WaveSystem{
		world:           world,
		spawner:         spawner,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		wave:            wave,
		economy:         economy,
	}
	for _, p := range starts {
		x, y := grid.CellCenter(p.X, p.Y)
		ws.spawnPoints = append(ws.spawnPoints, component.Position{X: x, Y: y})
	}
	eventDispatcher.Subscribe(event.UnitKilled, ws)
	eventDispatcher.Subscribe(event.UnitReachedHome, ws)
	return ws
}

// CreepsForWave is the number of units a wave spawns.
func CreepsForWave(n int) int {
	if n%config.BossWaveEvery == 0 || n%config.MiniBossWaveEvery == 0 {
		return config.BossBatchSize
	}
	return config.BaseCreepsPerWave + config.CreepsPerWaveStep*n
}

// UnitHealth is the starting health of a unit of type def on wave n.
func UnitHealth(n int, def defs.UnitDefinition) int {
	h := config.BaseHealth * math.Pow(config.HealthGrowthPerWave, float64(n)) * def.HealthFactor
	return int(math.Floor(h))
}

// KillReward is the scrap paid for killing a unit on wave n.
func KillReward(n int, rewardFactor float64) int {
	base := config.KillRewardBase + int(math.Floor(config.KillRewardPerWave*float64(n)))
	return int(math.Floor(float64(base) * rewardFactor))
}

// CompletionBonus is paid once when wave n is cleared.
func CompletionBonus(n int) int {
	return config.WaveBonusBase + config.WaveBonusPerWave*n
}

// StartNextWave begins the next wave. It only succeeds between waves.
func (s *WaveSystem) StartNextWave() bool {
	if s.wave.Phase != component.PhaseIdle {
		return false
	}
	s.wave.Number++
	s.wave.CreepsToSpawn = CreepsForWave(s.wave.Number)
	s.wave.Spawned = 0
	s.wave.SpawnTimer = 0
	s.wave.ScrapTimer = 0
	s.wave.Phase = component.PhaseWaveActive
	log.Printf("Wave %d started: %d units", s.wave.Number, s.wave.CreepsToSpawn)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.wave.Number})
	return true
}

// Update spawns units on the wave's interval and pays scrapper income.
func (s *WaveSystem) Update(deltaTime float64) {
	if !s.wave.Active() {
		return
	}
	if s.wave.CreepsToSpawn > 0 {
		s.wave.SpawnTimer += deltaTime
		if s.wave.SpawnTimer >= config.SpawnIntervalMillis {
			s.spawnUnit()
			s.wave.CreepsToSpawn--
			s.wave.SpawnTimer = 0
		}
	}
	s.wave.ScrapTimer += deltaTime
	if s.wave.ScrapTimer >= config.ScrapperIntervalMillis {
		s.wave.ScrapTimer -= config.ScrapperIntervalMillis
		s.payScrappers()
	}
}

func (s *WaveSystem) spawnUnit() {
	if len(s.spawnPoints) == 0 {
		log.Println("Error: no spawn points, skipping unit")
		return
	}
	t := s.unitTypeFor(s.wave.Number)
	def, err := defs.Unit(t)
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}
	pos := s.spawnPoints[s.wave.Spawned%len(s.spawnPoints)]
	s.spawner.Spawn(t, UnitHealth(s.wave.Number, def), pos)
	s.wave.Spawned++
}

func (s *WaveSystem) unitTypeFor(n int) defs.UnitType {
	switch {
	case n%config.BossWaveEvery == 0:
		return defs.UnitBoss
	case n%config.MiniBossWaveEvery == 0:
		return defs.UnitMiniBoss
	default:
		return s.rng.ChooseWeighted(defs.MixForWave(n))
	}
}

func (s *WaveSystem) payScrappers() {
	n := 0
	s.world.Structures.Each(func(_ types.EntityID, st *component.Structure) {
		if st.Kind == defs.KindScrapper {
			n++
		}
	})
	s.economy.Scraps += n * config.ScrapperYield
}

// CheckCompletion ends the wave once everything has spawned and no unit is
// left on the field.
func (s *WaveSystem) CheckCompletion() {
	if !s.wave.Active() || s.wave.CreepsToSpawn > 0 || s.world.AliveUnits() > 0 {
		return
	}
	bonus := CompletionBonus(s.wave.Number)
	s.economy.Scraps += bonus
	s.wave.Phase = component.PhaseIdle
	log.Printf("Wave %d cleared, bonus %d", s.wave.Number, bonus)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: s.wave.Number})
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitKilled:
		data, ok := e.Data.(event.UnitKilledData)
		if !ok || s.wave.Phase == component.PhaseGameOver {
			return
		}
		s.economy.Scraps += KillReward(s.wave.Number, data.RewardFactor)
	case event.UnitReachedHome:
		if s.wave.Phase == component.PhaseGameOver {
			return
		}
		s.economy.Lives--
		if s.economy.Lives <= 0 {
			s.economy.Lives = 0
			s.wave.Phase = component.PhaseGameOver
			log.Printf("Game over on wave %d", s.wave.Number)
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.wave.Number})
		}
	}
}

// internal/config/config.go
package config

import "image/color"

const (
	MapCols         = 30
	MapRows         = 20
	CellSize        = 32.0 // pixels per grid cell
	ObstacleDensity = 0.3
	MaxMapAttempts  = 10

	HUDHeight = 48 // status rows under the map

	TickMillis = 1000.0 / 60 // one fixed simulation step

	MaxDeltaTime     = 0.25 // seconds of wall time simulated per frame at most
	MaxTicksPerFrame = 5

	StartingScraps = 500
	StartingLives  = 20

	BaseHealth          = 50
	HealthGrowthPerWave = 1.2
	SpawnIntervalMillis = 900
	BaseCreepsPerWave   = 5
	CreepsPerWaveStep   = 2
	BossWaveEvery       = 10
	MiniBossWaveEvery   = 5
	BossBatchSize       = 3

	KillRewardBase    = 15
	KillRewardPerWave = 1.5
	WaveBonusBase     = 20
	WaveBonusPerWave  = 10

	UnitBaseSpeed  = 1.5 // pixels per tick
	UnitBaseRadius = 8.0
	HomeRadius     = CellSize / 2

	HitsToDestroy        = 5
	AttackCooldownMillis = 1000
	AttackContactMargin  = 2.0

	// Per-tick chances of the background re-checks a unit performs.
	UnitCellCheckChance = 0.01
	AttackReplanChance  = 0.02

	SplitChildren     = 2
	SplitSpeedFactor  = 1.2
	SplitRadiusFactor = 0.6

	ProjectileRadius = 3.0

	RefundRatio          = 0.5
	MinPlacementDistance = 2 // cells, Chebyshev, from any start or home

	ScrapperIntervalMillis = 5000
	ScrapperYield          = 10
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FloorColor      = color.RGBA{70, 100, 120, 255}
	ObstacleColor   = color.RGBA{110, 80, 60, 255}
	StartColor      = color.RGBA{0, 200, 0, 255}
	HomeColor       = color.RGBA{220, 40, 40, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	GridLineColor   = color.RGBA{40, 60, 75, 255}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	HealthBackColor = color.RGBA{90, 20, 20, 255}
	ProjectileColor = color.RGBA{255, 230, 90, 255}
	HitsColor       = color.RGBA{255, 120, 0, 255}
)

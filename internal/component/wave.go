// internal/component/wave.go
package component

// Phase is the wave controller state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWaveActive
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWaveActive:
		return "wave"
	default:
		return "game over"
	}
}

// Wave is the spawn state of the current wave.
type Wave struct {
	Number        int
	CreepsToSpawn int
	Spawned       int
	SpawnTimer    float64 // milliseconds since the last spawn
	ScrapTimer    float64 // milliseconds since the last scrapper payout
	Phase         Phase
}

// Active reports whether a wave is in progress.
func (w *Wave) Active() bool {
	return w.Phase == PhaseWaveActive
}

// Economy is the player's resource balance and remaining lives.
type Economy struct {
	Scraps int
	Lives  int
}

// internal/defs/waves.go
package defs

// WaveMixEntry is one weighted option when rolling the type of a regular
// (non-boss) wave creep. Entries unlock from MinWave onwards.
type WaveMixEntry struct {
	Type    UnitType
	Weight  int
	MinWave int
}

// WaveMix is the table regular waves draw from.
var WaveMix = []WaveMixEntry{
	{Type: UnitNormal, Weight: 10, MinWave: 1},
	{Type: UnitFast, Weight: 4, MinWave: 3},
	{Type: UnitTank, Weight: 3, MinWave: 4},
	{Type: UnitSplitter, Weight: 3, MinWave: 6},
}

// MixForWave returns the entries available on the given wave.
func MixForWave(wave int) []WaveMixEntry {
	var out []WaveMixEntry
	for _, e := range WaveMix {
		if wave >= e.MinWave {
			out = append(out, e)
		}
	}
	return out
}

// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the wave number in Roman numerals, red on boss waves.
type WaveIndicator struct {
	X, Y  int
	Color color.Color
	Font  font.Face
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Color: config.TextLightColor, Font: face}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	clr := i.Color
	switch {
	case waveNumber%config.BossWaveEvery == 0:
		clr = color.RGBA{255, 60, 60, 255}
	case waveNumber%config.MiniBossWaveEvery == 0:
		clr = color.RGBA{255, 160, 60, 255}
	}
	label := toRoman(waveNumber)
	w := text.BoundString(i.Font, label).Dx()
	text.Draw(screen, label, i.Font, i.X-w, i.Y, clr)
}

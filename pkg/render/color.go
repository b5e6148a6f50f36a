// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the colors the grid renderer needs.
type MapColors struct {
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	ObstacleColor   color.RGBA
	StartColor      color.RGBA
	HomeColor       color.RGBA
	GridLineColor   color.RGBA
	TextColor       color.RGBA
	HealthBarColor  color.RGBA
	HealthBackColor color.RGBA
	ProjectileColor color.RGBA
	HitsColor       color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

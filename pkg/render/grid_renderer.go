// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GridRenderer draws a session. It only reads simulation state.
type GridRenderer struct {
	colors   *MapColors
	cellSize float32
	fontFace font.Face
	mapImage *ebiten.Image // terrain, redrawn only when the map changes
}

func NewGridRenderer(colors *MapColors) *GridRenderer {
	return &GridRenderer{
		colors:   colors,
		cellSize: float32(config.CellSize),
		fontFace: basicfont.Face7x13,
	}
}

// FontFace is the face used for all text.
func (r *GridRenderer) FontFace() font.Face {
	return r.fontFace
}

// RenderMapImage prerenders the terrain of m.
func (r *GridRenderer) RenderMapImage(m *tilemap.Map) {
	w, h := int(float32(m.Cols)*r.cellSize), int(float32(m.Rows)*r.cellSize)
	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	r.mapImage = ebiten.NewImage(w, h)
	r.mapImage.Fill(r.colors.BackgroundColor)

	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			clr := r.colors.FloorColor
			if m.At(x, y) == tilemap.Obstacle {
				clr = r.colors.ObstacleColor
			}
			r.fillCell(r.mapImage, x, y, clr)
		}
	}
	for _, p := range m.Starts {
		r.fillCell(r.mapImage, p.X, p.Y, r.colors.StartColor)
	}
	for _, p := range m.Ends {
		r.fillCell(r.mapImage, p.X, p.Y, r.colors.HomeColor)
	}
}

func (r *GridRenderer) fillCell(dst *ebiten.Image, x, y int, clr color.Color) {
	px, py := float32(x)*r.cellSize, float32(y)*r.cellSize
	vector.DrawFilledRect(dst, px, py, r.cellSize, r.cellSize, clr, false)
	vector.StrokeRect(dst, px, py, r.cellSize, r.cellSize, 1, r.colors.GridLineColor, false)
}

// DrawMap blits the prerendered terrain.
func (r *GridRenderer) DrawMap(screen *ebiten.Image) {
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	}
}

// DrawStructures draws footprints, accumulated hits and shots in flight.
func (r *GridRenderer) DrawStructures(screen *ebiten.Image, w *entity.World) {
	w.Structures.Each(func(_ types.EntityID, st *component.Structure) {
		clr := color.RGBA{200, 200, 200, 255}
		if def, err := defs.Structure(st.DefID); err == nil {
			clr = def.Visuals.Color
		}
		size := float32(st.Footprint) * r.cellSize
		x, y := float32(st.Col)*r.cellSize, float32(st.Row)*r.cellSize
		vector.DrawFilledRect(screen, x+2, y+2, size-4, size-4, clr, false)
		vector.StrokeRect(screen, x+2, y+2, size-4, size-4, 2, DarkenColor(clr), false)
		if st.Range > 0 && st.Damage > 0 {
			vector.DrawFilledCircle(screen, float32(st.Center.X), float32(st.Center.Y), size/6, DarkenColor(clr), true)
		}
		for i := 0; i < st.Hits; i++ {
			vector.DrawFilledRect(screen, x+4+float32(i)*6, y+size-9, 4, 4, r.colors.HitsColor, false)
		}
		for _, p := range st.Projectiles {
			vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileRadius, r.colors.ProjectileColor, true)
		}
	})
}

// DrawRanges outlines the reach of every firing structure.
func (r *GridRenderer) DrawRanges(screen *ebiten.Image, w *entity.World) {
	w.Structures.Each(func(_ types.EntityID, st *component.Structure) {
		if st.Range > 0 && st.Damage > 0 {
			vector.StrokeCircle(screen, float32(st.Center.X), float32(st.Center.Y), float32(st.Range), 1, WithAlpha(r.colors.TextColor, 60), true)
		}
	})
}

// DrawUnits draws every unit still on the field with a health bar.
func (r *GridRenderer) DrawUnits(screen *ebiten.Image, w *entity.World) {
	w.Units.Each(func(_ types.EntityID, u *component.Unit) {
		if !u.Alive {
			return
		}
		clr := color.RGBA{200, 200, 200, 255}
		if def, ok := defs.UnitLibrary[u.Type]; ok {
			clr = def.Visuals.Color
		}
		x, y, rad := float32(u.Pos.X), float32(u.Pos.Y), float32(u.Radius)
		vector.DrawFilledCircle(screen, x, y, rad, clr, true)
		if u.State == component.AttackingStructure {
			vector.StrokeCircle(screen, x, y, rad+1, 1.5, r.colors.HitsColor, true)
		}

		barW := rad * 2
		vector.DrawFilledRect(screen, x-rad, y-rad-6, barW, 3, r.colors.HealthBackColor, false)
		vector.DrawFilledRect(screen, x-rad, y-rad-6, barW*float32(u.HealthFraction()), 3, r.colors.HealthBarColor, false)
	})
}

// DrawGhost previews a footprint under the cursor.
func (r *GridRenderer) DrawGhost(screen *ebiten.Image, col, row, size int, valid bool) {
	clr := color.RGBA{0, 255, 0, 80}
	if !valid {
		clr = color.RGBA{255, 0, 0, 80}
	}
	s := float32(size) * r.cellSize
	vector.DrawFilledRect(screen, float32(col)*r.cellSize, float32(row)*r.cellSize, s, s, clr, false)
}

// HUD is the status line shown under the map.
type HUD struct {
	Scraps, Lives, Wave int
	Phase               component.Phase
	Selected            string
	Seed                int64
}

// DrawHUD draws the status line starting at y.
func (r *GridRenderer) DrawHUD(screen *ebiten.Image, y int, hud HUD) {
	line := fmt.Sprintf("Scraps: %d   Lives: %d   Wave: %d (%s)   Build: %s   Seed: %d",
		hud.Scraps, hud.Lives, hud.Wave, hud.Phase, hud.Selected, hud.Seed)
	text.Draw(screen, line, r.fontFace, 8, y+16, r.colors.TextColor)
}

// DrawText draws label at (x, y) using the renderer's face.
func (r *GridRenderer) DrawText(screen *ebiten.Image, label string, x, y int, clr color.Color) {
	text.Draw(screen, label, r.fontFace, x, y, clr)
}

// DrawCenteredText draws label centred on (x, y).
func (r *GridRenderer) DrawCenteredText(screen *ebiten.Image, label string, x, y int, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(screen, label, r.fontFace, x-bounds.Dx()/2, y+bounds.Dy()/2, clr)
}

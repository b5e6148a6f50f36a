// internal/ui/toolbar.go
package ui

import (
	"fmt"
	"image/color"

	"go-grid-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var selectKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}

// Toolbar lists the buildable structures and tracks the selected one.
type Toolbar struct {
	X, Y     int
	Items    []string // structure definition IDs in key order
	Selected int
	Font     font.Face
}

func NewToolbar(x, y int, face font.Face) *Toolbar {
	return &Toolbar{X: x, Y: y, Items: defs.StructureOrder, Font: face}
}

// SelectedID returns the structure definition ID to build.
func (t *Toolbar) SelectedID() string {
	if t.Selected < 0 || t.Selected >= len(t.Items) {
		return ""
	}
	return t.Items[t.Selected]
}

// Select picks the item at index i, ignoring indexes out of range.
func (t *Toolbar) Select(i int) bool {
	if i < 0 || i >= len(t.Items) {
		return false
	}
	t.Selected = i
	return true
}

// HandleKeys selects an item with the number keys.
func (t *Toolbar) HandleKeys(pressed func(ebiten.Key) bool) {
	for i, k := range selectKeys {
		if pressed(k) {
			t.Select(i)
		}
	}
}

// Label is the text shown for item i.
func (t *Toolbar) Label(i int) string {
	def, err := defs.Structure(t.Items[i])
	if err != nil {
		return fmt.Sprintf("%d %s", i+1, t.Items[i])
	}
	return fmt.Sprintf("%d %s (%d)", i+1, def.Name, def.Cost)
}

func (t *Toolbar) Draw(screen *ebiten.Image) {
	x := t.X
	for i := range t.Items {
		label := t.Label(i)
		w := text.BoundString(t.Font, label).Dx() + 12
		if i == t.Selected {
			vector.StrokeRect(screen, float32(x-2), float32(t.Y-13), float32(w), 18, 1, color.White, false)
		}
		clr := color.RGBA{200, 200, 200, 255}
		if def, err := defs.Structure(t.Items[i]); err == nil {
			clr = def.Visuals.Color
		}
		text.Draw(screen, label, t.Font, x+4, t.Y, clr)
		x += w + 6
	}
}

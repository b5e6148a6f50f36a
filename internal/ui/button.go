// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Font       font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.Black,
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{150, 150, 150, 255},
		Font:       face,
	}
}

// Contains reports whether a screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports a left click on the button during this frame.
func (b *Button) IsClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Contains(ebiten.CursorPosition())
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{80, 80, 80, 255}, false)

	bounds := text.BoundString(b.Font, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

var textOp = &ebiten.DrawImageOptions{}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y, clr)
}

// drawScaledCentered draws s centred on the screen, scaled about its
// middle.
func drawScaledCentered(screen *ebiten.Image, s string, face font.Face, scale float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	cx := float64(screen.Bounds().Dx()) / 2
	cy := float64(screen.Bounds().Dy()) / 2

	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	// BoundString is relative to the dot, so shift its origin to the centre.
	textOp.GeoM.Translate(-float64(bounds.Min.X)-w/2, -float64(bounds.Min.Y)-h/2)
	textOp.GeoM.Scale(scale, scale)
	textOp.GeoM.Translate(cx, cy)
	textOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, textOp)
}

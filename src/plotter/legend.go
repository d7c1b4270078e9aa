package plotter

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawLegendTitle stamps the legend title onto a rendered chart image, just
// below the chart title where the legend box sits.
func drawLegendTitle(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	x := b.Min.X + 20
	y := b.Min.Y + 34
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionHeight fits basicfont.Face7x13 with a little breathing room.
const captionHeight = 16

// Caption returns img with a label bar added above the artwork. The bar is
// its own strip so the label can never cover sprite pixels.
func Caption(img *image.NRGBA, label string) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))

	bar := image.Rect(0, 0, b.Dx(), captionHeight)
	draw.Draw(out, bar, image.NewUniform(color.NRGBA{A: 255}), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, captionHeight, b.Dx(), b.Dy()+captionHeight), img, b.Min, draw.Src)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, captionHeight-4),
	}
	d.DrawString(label)
	return out
}

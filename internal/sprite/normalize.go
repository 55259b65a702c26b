package sprite

import (
	"image"

	"golang.org/x/image/draw"
)

// RefSize is the reference frame edge length all part art is aligned to.
const RefSize = 128

// Normalize fits part art to the reference frame. Exactly-double art
// (256×256, common for beards) is half-scaled with CatmullRom; any other
// size is pasted centered without scaling so authored offsets survive.
// The same filter applies to every layer.
func Normalize(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == RefSize && h == RefSize {
		return img
	}

	if w == 2*RefSize && h == 2*RefSize {
		dst := image.NewNRGBA(image.Rect(0, 0, RefSize, RefSize))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		return dst
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, RefSize, RefSize))
	ox := (RefSize - w) / 2
	oy := (RefSize - h) / 2
	draw.Draw(canvas, image.Rect(ox, oy, ox+w, oy+h), img, b.Min, draw.Over)
	return canvas
}

// Package sheet lays composed frames out into a single output image:
// a horizontal direction strip, or a cols×rows contact sheet for sweeps.
// Both are pure functions of their inputs; callers persist the result.
package sheet

import (
	"image"
	"image/draw"
)

// Strip concatenates frames left to right with pad pixels between them,
// vertically centering frames shorter than the tallest.
func Strip(frames []*image.NRGBA, pad int) *image.NRGBA {
	if len(frames) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	totalW := pad * (len(frames) - 1)
	maxH := 0
	for _, fr := range frames {
		totalW += fr.Bounds().Dx()
		if h := fr.Bounds().Dy(); h > maxH {
			maxH = h
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, totalW, maxH))
	x := 0
	for _, fr := range frames {
		b := fr.Bounds()
		y := (maxH - b.Dy()) / 2
		draw.Draw(out, image.Rect(x, y, x+b.Dx(), y+b.Dy()), fr, b.Min, draw.Over)
		x += b.Dx() + pad
	}
	return out
}

// Grid lays tiles into a cols-wide contact sheet in row-major order. Every
// cell is the size of the largest tile; smaller tiles sit centered in
// their cell.
func Grid(tiles []*image.NRGBA, cols int) *image.NRGBA {
	if len(tiles) == 0 || cols <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	cellW, cellH := 0, 0
	for _, t := range tiles {
		if w := t.Bounds().Dx(); w > cellW {
			cellW = w
		}
		if h := t.Bounds().Dy(); h > cellH {
			cellH = h
		}
	}

	rows := (len(tiles) + cols - 1) / cols
	out := image.NewNRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	for i, t := range tiles {
		b := t.Bounds()
		x := (i%cols)*cellW + (cellW-b.Dx())/2
		y := (i/cols)*cellH + (cellH-b.Dy())/2
		draw.Draw(out, image.Rect(x, y, x+b.Dx(), y+b.Dy()), t, b.Min, draw.Over)
	}
	return out
}

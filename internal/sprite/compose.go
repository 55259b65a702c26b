// Package sprite composes layered pawn frames: fixed category draw order,
// per-direction offset tables, deterministic scaling, and offset-grid
// sweeps for calibration.
//
// Blending is Porter-Duff "over" through image/draw, which premultiplies
// internally; buffers at rest are straight-alpha NRGBA. That choice is
// load-bearing for pixel-identical output and must not vary per layer.
package sprite

import (
	"image"
	"image/draw"
	"sort"
)

// Layer is one named part ready for compositing: a normalized buffer plus
// the category that fixes its draw rank and offset basis.
type Layer struct {
	Name     string
	Category Category
	Image    *image.NRGBA
}

// Compose renders one frame for a direction. Layers are stably sorted by
// category rank (ties keep input order), placed at their resolved offsets,
// and alpha-composited bottom to top. The frame is the reference size
// grown by the positive canvas padding for the direction, so padded runs
// keep headroom for tall headgear. Pure function; no I/O.
func Compose(d Direction, layers []Layer, off Offsets) *image.NRGBA {
	ordered := make([]Layer, len(layers))
	copy(ordered, layers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Category < ordered[j].Category
	})

	w, h := FrameSize(d, off)
	frame := image.NewNRGBA(image.Rect(0, 0, w, h))
	for _, l := range ordered {
		if l.Image == nil {
			continue
		}
		at := off.PlacementAt(l.Category, d)
		b := l.Image.Bounds()
		r := image.Rect(at.X, at.Y, at.X+b.Dx(), at.Y+b.Dy())
		draw.Draw(frame, r, l.Image, b.Min, draw.Over)
	}
	return frame
}

// FrameSize returns the composed frame dimensions for a direction: the
// reference frame plus any positive canvas padding. Negative padding
// shifts layers without shrinking the frame.
func FrameSize(d Direction, off Offsets) (w, h int) {
	c := off.CanvasAt(d)
	w, h = RefSize, RefSize
	if c.X > 0 {
		w += c.X
	}
	if c.Y > 0 {
		h += c.Y
	}
	return w, h
}

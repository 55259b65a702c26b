// Package preview builds pawn preview images from a part selection: it
// resolves and decodes every selected layer, hands them to the sprite
// compositor, and lays the per-direction frames or sweep tiles out into
// the final sheet.
package preview

import (
	"errors"
	"fmt"
	"image"

	"pawn-preview/internal/assets"
	"pawn-preview/internal/sheet"
	"pawn-preview/internal/sprite"
)

// ErrLayerMissing indicates a part that was explicitly selected could not
// be resolved to a buffer. Selected parts are required; unset optional
// parts are simply omitted.
var ErrLayerMissing = errors.New("preview: required layer missing")

// Renderer holds the immutable per-run state.
type Renderer struct {
	Library *assets.Library
	Sel     assets.Selection
	Off     sprite.Offsets
	Colors  sprite.Colors
	Pad     int // inter-frame padding in direction strips
}

// Layers resolves, decodes, normalizes and tints every selected part for
// one direction, in input order. Any selected part that fails to resolve
// aborts with the failed path; decode failures propagate as-is.
func (r *Renderer) Layers(d sprite.Direction) ([]sprite.Layer, error) {
	var layers []sprite.Layer
	dir := d.String()

	add := func(name string, cat sprite.Category, path string, pathErr error) error {
		if pathErr != nil {
			return fmt.Errorf("preview: %s layer (%s): %w: %w", name, dir, pathErr, ErrLayerMissing)
		}
		img, err := r.Library.Load(path)
		if err != nil {
			return fmt.Errorf("preview: %s layer (%s): %w", name, dir, err)
		}
		img = sprite.Normalize(img)
		if c, ok := r.Colors[cat]; ok {
			img = sprite.Tint(img, c)
		}
		layers = append(layers, sprite.Layer{Name: name, Category: cat, Image: img})
		return nil
	}

	// The body is always required.
	path, err := r.Library.BodyPath(r.Sel.BodyType, dir)
	if err := add("body", sprite.CategoryBody, path, err); err != nil {
		return nil, err
	}

	if r.Sel.Head != "" {
		path, err := r.Library.HeadPath(r.Sel.Head, dir)
		if err := add("head", sprite.CategoryHead, path, err); err != nil {
			return nil, err
		}
	}
	if r.Sel.Hair != "" {
		path, err := r.Library.HairPath(r.Sel.Hair, dir)
		if err := add("hair", sprite.CategoryHair, path, err); err != nil {
			return nil, err
		}
	}
	if r.Sel.Eyes != "" {
		path, err := r.Library.EyesPath(r.Sel.Eyes, r.Sel.EyesGender)
		if err := add("eyes", sprite.CategoryEyes, path, err); err != nil {
			return nil, err
		}
	}
	// Beards ship no north art; north omits the beard rather than failing.
	if r.Sel.Beard != "" && d != sprite.North {
		path, err := r.Library.BeardPath(r.Sel.Beard, dir)
		if err := add("beard", sprite.CategoryBeard, path, err); err != nil {
			return nil, err
		}
	}
	for _, name := range r.Sel.Apparel {
		path, err := r.Library.ApparelPath(name, r.Sel.BodyType, dir)
		if err := add(name, sprite.CategorizeApparel(name), path, err); err != nil {
			return nil, err
		}
	}

	return layers, nil
}

// Strip composes one frame per direction and concatenates them
// horizontally in the requested order.
func (r *Renderer) Strip(dirs []sprite.Direction) (*image.NRGBA, error) {
	frames := make([]*image.NRGBA, 0, len(dirs))
	for _, d := range dirs {
		layers, err := r.Layers(d)
		if err != nil {
			return nil, err
		}
		frames = append(frames, sprite.Compose(d, layers, r.Off))
	}
	return sheet.Strip(frames, r.Pad), nil
}

// Grid sweeps the target category's offset over the given axes for a
// single direction and lays the labeled tiles out len(xs) columns wide.
func (r *Renderer) Grid(d sprite.Direction, target sprite.Category, xs, ys []int) (*image.NRGBA, error) {
	layers, err := r.Layers(d)
	if err != nil {
		return nil, err
	}
	tiles, err := sprite.Sweep(d, layers, r.Off, target, xs, ys)
	if err != nil {
		return nil, err
	}
	imgs := make([]*image.NRGBA, len(tiles))
	for i, t := range tiles {
		imgs[i] = t.Image
	}
	return sheet.Grid(imgs, len(xs)), nil
}

package sprite

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ErrBadRangeSpec indicates a malformed or inconsistent min:max:step range.
var ErrBadRangeSpec = errors.New("sprite: invalid range spec")

// ParseRange expands "min:max:step" into the offsets it covers, inclusive
// of max when the step lands on it exactly. Negative steps walk downward;
// a zero step is rejected, as is a step walking away from max.
func ParseRange(spec string) ([]int, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q (want min:max:step)", ErrBadRangeSpec, spec)
	}
	var nums [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q (want min:max:step)", ErrBadRangeSpec, spec)
		}
		nums[i] = v
	}
	min, max, step := nums[0], nums[1], nums[2]

	if step == 0 {
		return nil, fmt.Errorf("%w: %q (step cannot be 0)", ErrBadRangeSpec, spec)
	}
	if min == max {
		return []int{min}, nil
	}

	var vals []int
	switch {
	case min < max && step > 0:
		for v := min; v <= max; v += step {
			vals = append(vals, v)
		}
	case min > max && step < 0:
		for v := min; v >= max; v += step {
			vals = append(vals, v)
		}
	default:
		return nil, fmt.Errorf("%w: %q (step walks away from max)", ErrBadRangeSpec, spec)
	}
	return vals, nil
}

// ParseGridSpec splits "xmin:xmax:xstep,ymin:ymax:ystep" into the expanded
// x and y axes of a sweep grid.
func ParseGridSpec(spec string) (xs, ys []int, err error) {
	xspec, yspec, ok := strings.Cut(spec, ",")
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (want xmin:xmax:xstep,ymin:ymax:ystep)", ErrBadRangeSpec, spec)
	}
	if xs, err = ParseRange(xspec); err != nil {
		return nil, nil, err
	}
	if ys, err = ParseRange(yspec); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// Tile is one sweep result: the effective offset used and the captioned
// frame rendered with it.
type Tile struct {
	Offset Point
	Image  *image.NRGBA
}

// Sweep composes one tile per grid point, adding each (dx,dy) to the
// target category's effective offset without changing its basis: the head
// target moves absolutely, hair/eyes/beard/headgear move relative to the
// head. Iteration is row-major, y outermost, so tile order is reproducible.
// Each tile carries a caption bar naming the effective offset.
func Sweep(d Direction, layers []Layer, off Offsets, target Category, xs, ys []int) ([]Tile, error) {
	if target != CategoryHead && !target.HeadAnchored() {
		return nil, fmt.Errorf("sprite: cannot sweep %s offsets", target)
	}

	tiles := make([]Tile, 0, len(xs)*len(ys))
	for _, dy := range ys {
		for _, dx := range xs {
			local, eff := off.withDelta(target, d, Point{dx, dy})
			frame := Compose(d, layers, local)
			tiles = append(tiles, Tile{Offset: eff, Image: Caption(frame, eff.String())})
		}
	}
	return tiles, nil
}

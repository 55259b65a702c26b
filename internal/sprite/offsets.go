package sprite

import "fmt"

// Point is a pixel offset in canvas coordinates, y growing downward.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// OffsetTable maps directions to a pixel offset for one category. A nil
// table means "use defaults everywhere".
type OffsetTable map[Direction]Point

// lookup returns the user-supplied offset for d, falling back to the
// default table, then to (0,0).
func (t OffsetTable) lookup(d Direction, defaults OffsetTable) Point {
	if p, ok := t[d]; ok {
		return p
	}
	return defaults[d]
}

func (t OffsetTable) clone() OffsetTable {
	out := make(OffsetTable, len(t))
	for d, p := range t {
		out[d] = p
	}
	return out
}

// Default placement tables, calibrated against the reference art pack.
// Head-anchored layers (hair, eyes, beard, headgear) hold offsets relative
// to the resolved head position, not the canvas.
var (
	defaultCanvasOffsets = OffsetTable{South: {0, 10}}
	defaultHeadOffsets   = OffsetTable{South: {0, -30}}
	defaultHairOffsets   = OffsetTable{South: {0, -5}}
	defaultEyesOffsets   = OffsetTable{South: {0, -5}}
	defaultBeardOffsets  = OffsetTable{South: {0, -5}}
	defaultHatOffsets    = OffsetTable{South: {0, -5}}
)

// Offsets carries every per-run offset override. The zero value uses the
// default tables for all directions.
type Offsets struct {
	Canvas OffsetTable // pre-composite frame padding, shifts every layer
	Body   OffsetTable
	Head   OffsetTable
	// Relative to the resolved head position.
	Hair     OffsetTable
	Eyes     OffsetTable
	Beard    OffsetTable
	Headgear OffsetTable
}

// CanvasAt returns the effective canvas padding offset for a direction.
func (o Offsets) CanvasAt(d Direction) Point {
	return o.Canvas.lookup(d, defaultCanvasOffsets)
}

// HeadAt returns the effective absolute head offset for a direction.
func (o Offsets) HeadAt(d Direction) Point {
	return o.Head.lookup(d, defaultHeadOffsets)
}

// RelativeAt returns the effective head-relative offset of a head-anchored
// category for a direction.
func (o Offsets) RelativeAt(c Category, d Direction) Point {
	switch c {
	case CategoryHair:
		return o.Hair.lookup(d, defaultHairOffsets)
	case CategoryEyes:
		return o.Eyes.lookup(d, defaultEyesOffsets)
	case CategoryBeard:
		return o.Beard.lookup(d, defaultBeardOffsets)
	case CategoryHeadgear:
		return o.Headgear.lookup(d, defaultHatOffsets)
	}
	return Point{}
}

// PlacementAt resolves a category's absolute placement for a direction:
// canvas padding, plus the body/head base offset, plus the head-relative
// delta for anchored layers. The head position is fixed before any
// anchored layer resolves against it.
func (o Offsets) PlacementAt(c Category, d Direction) Point {
	at := o.CanvasAt(d)
	switch {
	case c == CategoryBody:
		at = at.Add(o.Body.lookup(d, nil))
	case c == CategoryHead:
		at = at.Add(o.HeadAt(d))
	case c.HeadAnchored():
		at = at.Add(o.HeadAt(d)).Add(o.RelativeAt(c, d))
	}
	// Body apparel (pants, shirt, outer, belt, other) sits at the canvas
	// origin like the body art it was authored over.
	return at
}

// withDelta returns a copy of o with delta added to the target category's
// effective offset for d, preserving the offset basis. Supported targets
// are the head (absolute) and the head-anchored layers (relative).
func (o Offsets) withDelta(target Category, d Direction, delta Point) (Offsets, Point) {
	switch target {
	case CategoryHead:
		eff := o.HeadAt(d).Add(delta)
		o.Head = o.Head.clone()
		o.Head[d] = eff
		return o, eff
	case CategoryHair:
		eff := o.RelativeAt(CategoryHair, d).Add(delta)
		o.Hair = o.Hair.clone()
		o.Hair[d] = eff
		return o, eff
	case CategoryEyes:
		eff := o.RelativeAt(CategoryEyes, d).Add(delta)
		o.Eyes = o.Eyes.clone()
		o.Eyes[d] = eff
		return o, eff
	case CategoryBeard:
		eff := o.RelativeAt(CategoryBeard, d).Add(delta)
		o.Beard = o.Beard.clone()
		o.Beard[d] = eff
		return o, eff
	case CategoryHeadgear:
		eff := o.RelativeAt(CategoryHeadgear, d).Add(delta)
		o.Headgear = o.Headgear.clone()
		o.Headgear[d] = eff
		return o, eff
	}
	return o, Point{}
}

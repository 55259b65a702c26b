package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// solid returns a w×h buffer filled with one color.
func solid(w, h int, r, g, b, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func at(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

func TestComposeBodyOnlySouth(t *testing.T) {
	body := solid(RefSize, RefSize, 200, 100, 50, 255)
	frame := Compose(South, []Layer{{Name: "body", Category: CategoryBody, Image: body}}, Offsets{})

	// South pads the canvas by (0,10): frame is 128×138 with the body
	// shifted down by the padding offset.
	require.Equal(t, 128, frame.Bounds().Dx())
	require.Equal(t, 138, frame.Bounds().Dy())
	require.Equal(t, color.NRGBA{}, at(frame, 0, 0))
	require.Equal(t, color.NRGBA{}, at(frame, 64, 9))
	require.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, at(frame, 0, 10))
	require.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, at(frame, 127, 137))
}

func TestComposeBodyOnlyNorthEastUnpadded(t *testing.T) {
	body := solid(RefSize, RefSize, 1, 2, 3, 255)
	for _, d := range []Direction{North, East} {
		frame := Compose(d, []Layer{{Name: "body", Category: CategoryBody, Image: body}}, Offsets{})
		require.Equal(t, 128, frame.Bounds().Dx(), d.String())
		require.Equal(t, 128, frame.Bounds().Dy(), d.String())
		require.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, at(frame, 0, 0), d.String())
	}
}

func TestComposeOrderInvariantToInput(t *testing.T) {
	body := solid(RefSize, RefSize, 255, 0, 0, 255)
	shirt := solid(RefSize, RefSize, 0, 255, 0, 255)
	pants := solid(RefSize, RefSize, 0, 0, 255, 255)

	forward := Compose(North, []Layer{
		{Name: "body", Category: CategoryBody, Image: body},
		{Name: "pants", Category: CategoryPants, Image: pants},
		{Name: "shirt", Category: CategoryShirt, Image: shirt},
	}, Offsets{})
	reversed := Compose(North, []Layer{
		{Name: "shirt", Category: CategoryShirt, Image: shirt},
		{Name: "pants", Category: CategoryPants, Image: pants},
		{Name: "body", Category: CategoryBody, Image: body},
	}, Offsets{})

	require.Equal(t, forward.Pix, reversed.Pix)
	// Shirt ranks above pants regardless of input order.
	require.Equal(t, color.NRGBA{G: 255, A: 255}, at(forward, 64, 64))
}

func TestComposeOpaqueLayerOccludes(t *testing.T) {
	under := solid(RefSize, RefSize, 255, 255, 255, 255)
	over := solid(RefSize, RefSize, 0, 0, 0, 255)
	frame := Compose(North, []Layer{
		{Name: "body", Category: CategoryBody, Image: under},
		{Name: "WarMask", Category: CategoryHeadgear, Image: over},
	}, Offsets{})
	require.Equal(t, color.NRGBA{A: 255}, at(frame, 64, 64))
}

func TestComposeHeadRelativePlacement(t *testing.T) {
	// A single opaque row at the top of the hair art makes the resolved
	// offset observable: hair south = head (0,-30) + relative (0,-5),
	// i.e. (0,-35) from the canvas origin, plus the (0,10) canvas pad.
	hair := image.NewNRGBA(image.Rect(0, 0, RefSize, RefSize))
	for x := 0; x < RefSize; x++ {
		hair.SetNRGBA(x, 60, color.NRGBA{R: 9, A: 255})
	}
	frame := Compose(South, []Layer{{Name: "hair", Category: CategoryHair, Image: hair}}, Offsets{})

	// Row 60 of the art lands at 60 - 35 + 10 = 35.
	require.Equal(t, color.NRGBA{R: 9, A: 255}, at(frame, 5, 35))
	require.Equal(t, color.NRGBA{}, at(frame, 5, 60))
}

func TestComposeEmptySelection(t *testing.T) {
	frame := Compose(South, nil, Offsets{})
	require.Equal(t, 128, frame.Bounds().Dx())
	require.Equal(t, 138, frame.Bounds().Dy())
	for i := 3; i < len(frame.Pix); i += 4 {
		require.Zero(t, frame.Pix[i])
	}
}

func TestPlacementAt(t *testing.T) {
	var off Offsets
	require.Equal(t, Point{0, 10}, off.PlacementAt(CategoryBody, South))
	require.Equal(t, Point{0, -20}, off.PlacementAt(CategoryHead, South))
	require.Equal(t, Point{0, -25}, off.PlacementAt(CategoryHair, South))
	require.Equal(t, Point{}, off.PlacementAt(CategoryHead, North))
	require.Equal(t, Point{}, off.PlacementAt(CategoryShirt, North))

	// User overrides replace the defaults but keep the anchoring.
	off.Head = OffsetTable{South: {4, -20}}
	off.Hair = OffsetTable{South: {1, 1}}
	require.Equal(t, Point{4, -10}, off.PlacementAt(CategoryHead, South))
	require.Equal(t, Point{5, -9}, off.PlacementAt(CategoryHair, South))
}

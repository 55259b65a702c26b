package sprite

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePassthrough(t *testing.T) {
	img := solid(RefSize, RefSize, 5, 5, 5, 255)
	require.Same(t, img, Normalize(img))
}

func TestNormalizeHalfScalesDoubleArt(t *testing.T) {
	img := solid(2*RefSize, 2*RefSize, 80, 90, 100, 255)
	out := Normalize(img)
	require.Equal(t, RefSize, out.Bounds().Dx())
	require.Equal(t, RefSize, out.Bounds().Dy())
	// Uniform input survives resampling unchanged.
	require.Equal(t, color.NRGBA{R: 80, G: 90, B: 100, A: 255}, out.NRGBAAt(64, 64))
}

func TestNormalizeCentersOddSizes(t *testing.T) {
	img := solid(42, 42, 7, 7, 7, 255) // eyes art
	out := Normalize(img)
	require.Equal(t, RefSize, out.Bounds().Dx())
	require.Equal(t, RefSize, out.Bounds().Dy())
	// (128-42)/2 = 43: art spans [43,85).
	require.Equal(t, color.NRGBA{}, out.NRGBAAt(42, 64))
	require.Equal(t, color.NRGBA{R: 7, G: 7, B: 7, A: 255}, out.NRGBAAt(43, 64))
	require.Equal(t, color.NRGBA{R: 7, G: 7, B: 7, A: 255}, out.NRGBAAt(84, 64))
	require.Equal(t, color.NRGBA{}, out.NRGBAAt(85, 64))
}

func TestNormalizeDeterministic(t *testing.T) {
	img := solid(2*RefSize, 2*RefSize, 13, 77, 200, 128)
	a := Normalize(img)
	b := Normalize(img)
	require.Equal(t, a.Pix, b.Pix)
}

package sprite

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptionNeverCoversArtwork(t *testing.T) {
	tile := solid(RefSize, RefSize, 50, 60, 70, 255)
	out := Caption(tile, "(0,-35)")

	require.Equal(t, RefSize, out.Bounds().Dx())
	require.Equal(t, RefSize+captionHeight, out.Bounds().Dy())

	// Artwork sits below the bar, pixel for pixel.
	for _, y := range []int{0, 64, 127} {
		require.Equal(t, color.NRGBA{R: 50, G: 60, B: 70, A: 255}, out.NRGBAAt(100, y+captionHeight))
	}
	// The bar's far corner is plain background, not artwork.
	require.Equal(t, color.NRGBA{A: 255}, out.NRGBAAt(RefSize-1, 0))
}

func TestCaptionDeterministic(t *testing.T) {
	tile := solid(64, 64, 1, 1, 1, 255)
	a := Caption(tile, "(-2,-40)")
	b := Caption(tile, "(-2,-40)")
	require.Equal(t, a.Pix, b.Pix)
}

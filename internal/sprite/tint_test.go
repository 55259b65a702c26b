package sprite

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#3B2A1F", color.NRGBA{R: 0x3B, G: 0x2A, B: 0x1F, A: 255}},
		{"3B2A1F", color.NRGBA{R: 0x3B, G: 0x2A, B: 0x1F, A: 255}},
		{"59,42,31", color.NRGBA{R: 59, G: 42, B: 31, A: 255}},
		{" 0 , 128 , 255 ", color.NRGBA{G: 128, B: 255, A: 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got, c.in)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "zzzzzz", "#12345", "1,2", "1,2,3,4", "300,0,0"} {
		_, err := ParseColor(in)
		require.Error(t, err, in)
	}
}

func TestTintMultiplies(t *testing.T) {
	white := solid(4, 4, 255, 255, 255, 255)
	out := Tint(white, color.NRGBA{R: 59, G: 42, B: 31, A: 255})
	require.Equal(t, color.NRGBA{R: 59, G: 42, B: 31, A: 255}, out.NRGBAAt(0, 0))

	gray := solid(4, 4, 128, 128, 128, 200)
	out = Tint(gray, color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	got := out.NRGBAAt(1, 1)
	require.Equal(t, uint8(128), got.R)
	require.Equal(t, uint8(0), got.G)
	require.Equal(t, uint8(200), got.A, "alpha must pass through untouched")
}

func TestTintLeavesInputAlone(t *testing.T) {
	img := solid(2, 2, 100, 100, 100, 255)
	Tint(img, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	require.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 255}, img.NRGBAAt(0, 0))
}

func TestDefaultColorsLeaveOtherUntinted(t *testing.T) {
	colors := DefaultColors()
	_, ok := colors[CategoryOther]
	require.False(t, ok)
	_, ok = colors[CategoryEyes]
	require.False(t, ok)
}

package sprite

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors maps draw categories to tint colors. Categories absent from the
// map render untinted.
type Colors map[Category]color.NRGBA

// DefaultColors returns the stock palette for the reference art pack:
// brown hair and beard, leather headgear, light skin, and muted cloth
// tones. Uncategorized apparel stays untinted unless a color is set.
func DefaultColors() Colors {
	skin := color.NRGBA{R: 239, G: 208, B: 175, A: 255}
	hair := color.NRGBA{R: 59, G: 42, B: 31, A: 255}
	return Colors{
		CategoryBody:     skin,
		CategoryHead:     skin,
		CategoryHair:     hair,
		CategoryBeard:    hair,
		CategoryHeadgear: {R: 194, G: 168, B: 120, A: 255},
		CategoryPants:    {R: 58, G: 74, B: 90, A: 255},
		CategoryShirt:    {R: 159, G: 211, B: 242, A: 255},
		CategoryOuter:    {R: 47, G: 62, B: 92, A: 255},
		CategoryBelt:     {R: 85, G: 107, B: 120, A: 255},
	}
}

// ParseColor accepts "#RRGGBB", "RRGGBB" or "R,G,B".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return color.NRGBA{}, fmt.Errorf("sprite: color %q: want R,G,B", s)
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || v < 0 || v > 255 {
				return color.NRGBA{}, fmt.Errorf("sprite: color %q: components must be 0-255", s)
			}
			ch[i] = uint8(v)
		}
		return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("sprite: color %q: %v", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Tint multiplies every pixel's color channels by c, leaving alpha alone.
// Part art is authored in grayscale, so the multiply is the colorize step.
func Tint(img *image.NRGBA, c color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		out.Pix[i] = mul8(out.Pix[i], c.R)
		out.Pix[i+1] = mul8(out.Pix[i+1], c.G)
		out.Pix[i+2] = mul8(out.Pix[i+2], c.B)
	}
	return out
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

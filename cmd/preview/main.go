package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pawn-preview/internal/assets"
	"pawn-preview/internal/config"
	"pawn-preview/internal/output"
	"pawn-preview/internal/preview"
	"pawn-preview/internal/sprite"
)

// stringList collects repeatable flags like -apparel.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var directionNames = []string{"north", "south", "east"}

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	assetsRoot := flag.String("assets-root", "", "Path to Humanlike assets folder (…/Things/Pawn/Humanlike)")
	out := flag.String("out", "", "Output image path (.png, .jpg or .webp)")
	bodyType := flag.String("body-type", "", "Body type variant: Male, Female, Thin, Fat, Hulk (default: Male)")
	head := flag.String("head", "", "Head name, e.g. Female_Average_Normal (default: <BodyType>_Average_Normal)")
	hairName := flag.String("hair", "", "Hair name, e.g. Afro, Bob")
	beard := flag.String("beard", "", "Beard name without the 'Beard' prefix, e.g. Stubble, Full")
	eyes := flag.String("eyes", "", "Eyes attachment folder, e.g. GrayEyes")
	eyesGender := flag.String("eyes-gender", "", "Gender variant for eyes art (default: from body type)")
	dirs := flag.String("dirs", "", "Comma-separated directions to render (default: north,south,east)")

	var apparel stringList
	flag.Var(&apparel, "apparel", "Apparel item under Apparel/ (repeatable)")

	// Offset flags: a global 'x,y' plus per-direction overrides for each
	// offsettable category. Hair/eyes/headgear offsets are relative to the
	// resolved head position.
	offsetFlags := make(map[string]*string)
	for _, name := range []string{"body-offset", "head-offset", "canvas-offset", "hair-offset", "eyes-offset", "headgear-offset"} {
		offsetFlags[name] = flag.String(name, "", fmt.Sprintf("Global %s 'x,y' for all rendered directions", name))
		for _, d := range directionNames {
			key := name + "-" + d
			offsetFlags[key] = flag.String(key, "", fmt.Sprintf("%s 'x,y' for %s only", name, d))
		}
	}

	gridHead := flag.String("grid-head", "", "Sweep head offsets: 'x0:x1:step,y0:y1:step' (e.g. -2:2:1,-10:2:2)")
	gridHair := flag.String("grid-hair", "", "Sweep hair offsets relative to head: 'x0:x1:step,y0:y1:step'")
	gridHeadgear := flag.String("grid-headgear", "", "Sweep headgear offsets relative to head: 'x0:x1:step,y0:y1:step'")

	colorFlags := make(map[string]*string)
	for _, name := range []string{"skin", "hair", "beard", "headgear", "pants", "shirt", "outer", "belt", "apparel"} {
		colorFlags[name] = flag.String("color-"+name, "", fmt.Sprintf("%s color ('#RRGGBB' or 'R,G,B')", name))
	}

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fail("%v", err)
		}
	}
	cfg.Resolve(config.Flags{
		AssetsRoot: *assetsRoot,
		Output:     *out,
		BodyType:   *bodyType,
		Directions: *dirs,
	})

	if cfg.AssetsRoot == "" {
		fail("missing -assets-root")
	}
	if cfg.Output == "" {
		fail("missing -out")
	}

	renderDirs, err := sprite.ParseDirections(cfg.Directions)
	if err != nil {
		fail("%v", err)
	}

	off := sprite.Offsets{
		Body:     offsetTable(offsetFlags, "body-offset", renderDirs),
		Head:     offsetTable(offsetFlags, "head-offset", renderDirs),
		Canvas:   offsetTable(offsetFlags, "canvas-offset", renderDirs),
		Hair:     offsetTable(offsetFlags, "hair-offset", renderDirs),
		Eyes:     offsetTable(offsetFlags, "eyes-offset", renderDirs),
		Headgear: offsetTable(offsetFlags, "headgear-offset", renderDirs),
	}

	colors := buildColors(colorFlags)

	sel := assets.Selection{
		BodyType:   cfg.BodyType,
		Head:       *head,
		Hair:       *hairName,
		Beard:      *beard,
		Eyes:       *eyes,
		EyesGender: *eyesGender,
		Apparel:    apparel,
	}.WithDefaults()

	r := &preview.Renderer{
		Library: assets.NewLibrary(cfg.AssetsRoot),
		Sel:     sel,
		Off:     off,
		Colors:  colors,
		Pad:     cfg.StripPadding,
	}

	grids := 0
	for _, g := range []string{*gridHead, *gridHair, *gridHeadgear} {
		if g != "" {
			grids++
		}
	}
	if grids > 1 {
		fail("pick one of -grid-head, -grid-hair, -grid-headgear")
	}

	if grids == 1 {
		target := sprite.CategoryHead
		spec := *gridHead
		switch {
		case *gridHair != "":
			if sel.Hair == "" {
				fail("-grid-hair requires -hair")
			}
			target, spec = sprite.CategoryHair, *gridHair
		case *gridHeadgear != "":
			if !hasHeadgear(sel.Apparel) {
				fail("-grid-headgear requires a headgear item passed via -apparel (e.g. CowboyHat)")
			}
			target, spec = sprite.CategoryHeadgear, *gridHeadgear
		}

		xs, ys, err := sprite.ParseGridSpec(spec)
		if err != nil {
			fail("%v", err)
		}

		// Sweeps render a single direction: the first requested.
		d := renderDirs[0]
		img, err := r.Grid(d, target, xs, ys)
		if err != nil {
			fail("%v", err)
		}
		if err := output.Write(cfg.Output, img); err != nil {
			fail("%v", err)
		}
		b := img.Bounds()
		fmt.Printf("Wrote grid %s (%dx%d), cols=%d, rows=%d\n", cfg.Output, b.Dx(), b.Dy(), len(xs), len(ys))
		return
	}

	img, err := r.Strip(renderDirs)
	if err != nil {
		fail("%v", err)
	}
	if err := output.Write(cfg.Output, img); err != nil {
		fail("%v", err)
	}
	b := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d)\n", cfg.Output, b.Dx(), b.Dy())
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// parseXY parses an offset like "0,-6".
func parseXY(v string) (sprite.Point, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return sprite.Point{}, fmt.Errorf("invalid offset %q: use 'x,y' (e.g. 0,-6)", v)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return sprite.Point{}, fmt.Errorf("invalid offset %q: use 'x,y' (e.g. 0,-6)", v)
	}
	return sprite.Point{X: x, Y: y}, nil
}

// offsetTable assembles one category's offset overrides: the global flag
// seeds every rendered direction, then per-direction flags win.
func offsetTable(flags map[string]*string, name string, renderDirs []sprite.Direction) sprite.OffsetTable {
	t := make(sprite.OffsetTable)
	if v := *flags[name]; v != "" {
		p, err := parseXY(v)
		if err != nil {
			fail("-%s: %v", name, err)
		}
		for _, d := range renderDirs {
			t[d] = p
		}
	}
	for _, dn := range directionNames {
		v := *flags[name+"-"+dn]
		if v == "" {
			continue
		}
		p, err := parseXY(v)
		if err != nil {
			fail("-%s-%s: %v", name, dn, err)
		}
		d, _ := sprite.ParseDirection(dn)
		t[d] = p
	}
	if len(t) == 0 {
		return nil
	}
	return t
}

func buildColors(flags map[string]*string) sprite.Colors {
	colors := sprite.DefaultColors()
	set := func(flagName string, cats ...sprite.Category) {
		v := *flags[flagName]
		if v == "" {
			return
		}
		c, err := sprite.ParseColor(v)
		if err != nil {
			fail("-color-%s: %v", flagName, err)
		}
		for _, cat := range cats {
			colors[cat] = c
		}
	}
	set("skin", sprite.CategoryBody, sprite.CategoryHead)
	set("hair", sprite.CategoryHair)
	set("beard", sprite.CategoryBeard)
	set("headgear", sprite.CategoryHeadgear)
	set("pants", sprite.CategoryPants)
	set("shirt", sprite.CategoryShirt)
	set("outer", sprite.CategoryOuter)
	set("belt", sprite.CategoryBelt)
	set("apparel", sprite.CategoryOther)
	return colors
}

func hasHeadgear(apparel []string) bool {
	for _, name := range apparel {
		if sprite.CategorizeApparel(name) == sprite.CategoryHeadgear {
			return true
		}
	}
	return false
}

// Command inspect prints the resolved asset path for every layer of a
// selection, per direction, without compositing anything. Useful for
// checking what a preview run would pick up from the pack.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"pawn-preview/internal/assets"
	"pawn-preview/internal/sprite"
)

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	assetsRoot := flag.String("assets-root", "", "Path to Humanlike assets folder")
	bodyType := flag.String("body-type", "Male", "Body type variant")
	head := flag.String("head", "", "Head name")
	hair := flag.String("hair", "", "Hair name")
	beard := flag.String("beard", "", "Beard name without the 'Beard' prefix")
	eyes := flag.String("eyes", "", "Eyes attachment folder")
	eyesGender := flag.String("eyes-gender", "", "Gender variant for eyes art")
	var apparel stringList
	flag.Var(&apparel, "apparel", "Apparel item (repeatable)")
	flag.Parse()

	if *assetsRoot == "" {
		fmt.Fprintln(os.Stderr, "Error: missing -assets-root")
		os.Exit(1)
	}

	sel := assets.Selection{
		BodyType:   *bodyType,
		Head:       *head,
		Hair:       *hair,
		Beard:      *beard,
		Eyes:       *eyes,
		EyesGender: *eyesGender,
		Apparel:    apparel,
	}.WithDefaults()

	lib := assets.NewLibrary(*assetsRoot)
	fmt.Printf("Assets: %s (%d apparel dirs indexed)\n", lib.Root(), lib.ApparelCount())

	missing := 0
	show := func(name, path string, err error) {
		if err != nil {
			fmt.Printf("  %-12s MISSING\n", name)
			missing++
			return
		}
		fmt.Printf("  %-12s %s\n", name, path)
	}

	for _, d := range []sprite.Direction{sprite.North, sprite.South, sprite.East} {
		dir := d.String()
		fmt.Printf("%s:\n", dir)

		path, err := lib.BodyPath(sel.BodyType, dir)
		show("body", path, err)

		if sel.Head != "" {
			path, err := lib.HeadPath(sel.Head, dir)
			show("head", path, err)
		}
		if sel.Hair != "" {
			path, err := lib.HairPath(sel.Hair, dir)
			show("hair", path, err)
		}
		if sel.Eyes != "" {
			path, err := lib.EyesPath(sel.Eyes, sel.EyesGender)
			show("eyes", path, err)
		}
		if sel.Beard != "" && d != sprite.North {
			path, err := lib.BeardPath(sel.Beard, dir)
			show("beard", path, err)
		}
		for _, name := range sel.Apparel {
			path, err := lib.ApparelPath(name, sel.BodyType, dir)
			show(name, path, err)
		}
	}

	if missing > 0 {
		fmt.Printf("%d missing\n", missing)
		os.Exit(1)
	}
}

package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// Library resolves logical part names to files under a Humanlike art pack
// root and decodes them through a per-run cache. The path templates are a
// contract with the art pack and are not configurable.
type Library struct {
	root    string
	apparel *Index
	cache   *cache
}

// NewLibrary indexes the pack at root and returns a resolver over it.
func NewLibrary(root string) *Library {
	return &Library{
		root:    root,
		apparel: BuildIndex(root),
		cache:   newCache(),
	}
}

// Root returns the assets root the library was built over.
func (l *Library) Root() string { return l.root }

// BodyPath resolves Bodies/Naked_<BodyType>_<dir>.png.
func (l *Library) BodyPath(bodyType, dir string) (string, error) {
	return l.firstExisting(
		filepath.Join(l.root, "Bodies", fmt.Sprintf("Naked_%s_%s.png", bodyType, dir)),
	)
}

// HeadPath resolves a head under Heads/<Gender>/ when the name carries a
// Male_/Female_ prefix, falling back to the Heads/ top level. PNG variants
// are preferred over PSD.
func (l *Library) HeadPath(head, dir string) (string, error) {
	var candidates []string
	if gender, _, ok := strings.Cut(head, "_"); ok && (gender == "Male" || gender == "Female") {
		candidates = append(candidates,
			filepath.Join(l.root, "Heads", gender, fmt.Sprintf("%s_%s.png", head, dir)),
			filepath.Join(l.root, "Heads", gender, fmt.Sprintf("%s_%s.psd", head, dir)),
		)
	}
	candidates = append(candidates,
		filepath.Join(l.root, "Heads", fmt.Sprintf("%s_%s.png", head, dir)),
		filepath.Join(l.root, "Heads", fmt.Sprintf("%s_%s.psd", head, dir)),
	)
	return l.firstExisting(candidates...)
}

// HairPath resolves Hairs/<Hair>_<dir>.png.
func (l *Library) HairPath(hair, dir string) (string, error) {
	return l.firstExisting(
		filepath.Join(l.root, "Hairs", fmt.Sprintf("%s_%s.png", hair, dir)),
	)
}

// BeardPath resolves Beards/Beard<Beard>_<dir>.png. Beards have no north
// variant by pack convention; callers skip that direction.
func (l *Library) BeardPath(beard, dir string) (string, error) {
	return l.firstExisting(
		filepath.Join(l.root, "Beards", fmt.Sprintf("Beard%s_%s.png", beard, dir)),
	)
}

// EyesPath resolves HeadAttachments/<Eyes>/<Gender>/<Eyes>_<Gender>.png.
// Eyes art is direction-independent.
func (l *Library) EyesPath(eyes, gender string) (string, error) {
	return l.firstExisting(
		filepath.Join(l.root, "HeadAttachments", eyes, gender, fmt.Sprintf("%s_%s.png", eyes, gender)),
	)
}

// ApparelPath resolves an item under Apparel/<Name>/, trying the body-type
// variant, then the direction variant, then the bare sprite, for PNG, PSD
// and TGA in that order. The directory lookup is case-insensitive.
func (l *Library) ApparelPath(name, bodyType, dir string) (string, error) {
	itemDir, ok := l.apparel.ResolveDir(name)
	if !ok {
		return "", fmt.Errorf("assets: %s: %w", filepath.Join(l.root, "Apparel", name), ErrNotFound)
	}
	base := filepath.Base(itemDir)

	var candidates []string
	for _, ext := range []string{".png", ".psd", ".tga"} {
		candidates = append(candidates,
			filepath.Join(itemDir, fmt.Sprintf("%s_%s_%s%s", base, bodyType, dir, ext)),
			filepath.Join(itemDir, fmt.Sprintf("%s_%s%s", base, dir, ext)),
			filepath.Join(itemDir, base+ext),
		)
	}
	return l.firstExisting(candidates...)
}

// Load decodes the image at path through the run cache.
func (l *Library) Load(path string) (*image.NRGBA, error) {
	return l.cache.load(path)
}

// ApparelCount reports how many apparel directories the pack provides.
func (l *Library) ApparelCount() int { return l.apparel.Len() }

func (l *Library) firstExisting(candidates ...string) (string, error) {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("assets: %s: %w", candidates[0], ErrNotFound)
}

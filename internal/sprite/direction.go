package sprite

import (
	"fmt"
	"strings"
)

// Direction is one of the three camera-facing variants a part may ship art
// for.
type Direction int

const (
	North Direction = iota
	South
	East
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "north", "south" or "east" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north":
		return North, nil
	case "south":
		return South, nil
	case "east":
		return East, nil
	}
	return 0, fmt.Errorf("sprite: unknown direction %q", s)
}

// ParseDirections parses a comma-separated direction list such as
// "north,south,east", preserving order and skipping empty entries.
func ParseDirections(s string) ([]Direction, error) {
	var dirs []Direction
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseDirection(part)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("sprite: no directions in %q", s)
	}
	return dirs, nil
}

package sprite

// Category identifies a layer's slot in the pawn stack. The constant order
// is the draw order: lower values composite first and end up underneath.
// Draw order is always derived from the category, never from the order
// parts were named on the command line.
type Category int

const (
	CategoryBody Category = iota
	CategoryPants
	CategoryShirt
	CategoryOuter
	CategoryBelt
	CategoryHead
	CategoryHair
	CategoryEyes
	CategoryBeard
	CategoryHeadgear
	CategoryOther // uncategorized apparel draws on top of everything
)

func (c Category) String() string {
	switch c {
	case CategoryBody:
		return "body"
	case CategoryPants:
		return "pants"
	case CategoryShirt:
		return "shirt"
	case CategoryOuter:
		return "outer"
	case CategoryBelt:
		return "belt"
	case CategoryHead:
		return "head"
	case CategoryHair:
		return "hair"
	case CategoryEyes:
		return "eyes"
	case CategoryBeard:
		return "beard"
	case CategoryHeadgear:
		return "headgear"
	}
	return "apparel"
}

// HeadAnchored reports whether the category's placement is resolved
// relative to the head position rather than the canvas origin.
func (c Category) HeadAnchored() bool {
	switch c {
	case CategoryHair, CategoryEyes, CategoryBeard, CategoryHeadgear:
		return true
	}
	return false
}

// Known apparel item names per category, matching the reference art pack.
var (
	headgearItems = map[string]bool{
		"AdvancedHelmet":    true,
		"BowlerHat":         true,
		"ClothMask":         true,
		"CowboyHat":         true,
		"Hood":              true,
		"PowerArmorHelmet":  true,
		"PsychicFoilHelmet": true,
		"ReconArmorHelmet":  true,
		"SimpleHelmet":      true,
		"TribalHeaddress":   true,
		"Tuque":             true,
		"Veil":              true,
		"WarMask":           true,
	}

	outerItems = map[string]bool{
		"Cape":       true,
		"Duster":     true,
		"FlakJacket": true,
		"Jacket":     true,
		"Parka":      true,
		"PlateArmor": true,
		"PowerArmor": true,
		"ReconArmor": true,
		"Robe":       true,
	}

	shirtItems = map[string]bool{"ShirtBasic": true, "ShirtButton": true}
	pantsItems = map[string]bool{"Pants": true, "FlakPants": true}
	beltItems  = map[string]bool{"ShieldBelt": true, "FirefoamPack": true, "SmokepopPack": true}
)

// CategorizeApparel maps an apparel item name to its draw category.
// Unknown items fall into CategoryOther.
func CategorizeApparel(name string) Category {
	switch {
	case pantsItems[name]:
		return CategoryPants
	case shirtItems[name]:
		return CategoryShirt
	case outerItems[name]:
		return CategoryOuter
	case beltItems[name]:
		return CategoryBelt
	case headgearItems[name]:
		return CategoryHeadgear
	}
	return CategoryOther
}

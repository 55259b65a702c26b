package assets

// Selection names the parts chosen for one preview run. Built once from
// flags and never mutated.
type Selection struct {
	BodyType   string
	Head       string
	Hair       string
	Beard      string
	Eyes       string
	EyesGender string
	Apparel    []string // input order is preserved within a draw category
}

// WithDefaults fills derived fields: Male/Female body types get the average
// normal head unless one was named, and the eyes gender follows the body
// type when unset.
func (s Selection) WithDefaults() Selection {
	if s.Head == "" && (s.BodyType == "Male" || s.BodyType == "Female") {
		s.Head = s.BodyType + "_Average_Normal"
	}
	if s.EyesGender == "" {
		if s.BodyType == "Male" || s.BodyType == "Female" {
			s.EyesGender = s.BodyType
		} else {
			s.EyesGender = "Male"
		}
	}
	return s
}

package series

import (
	"slices"
	"strings"
)

// Category identifies the kind of record a spectrum belongs to.
type Category string

const (
	CategoryDye     Category = "d"
	CategoryProtein Category = "p"
	CategoryLight   Category = "l"
	CategoryFilter  Category = "f"
	CategoryCamera  Category = "c"
)

// Subtype identifies what a spectrum measures.
type Subtype string

const (
	SubtypeExcitation   Subtype = "ex"
	SubtypeAbsorption   Subtype = "ab"
	SubtypeEmission     Subtype = "em"
	SubtypeTwoPhoton    Subtype = "2p"
	SubtypeBandpass     Subtype = "bp"
	SubtypeBandpassEx   Subtype = "bx"
	SubtypeBandpassEm   Subtype = "bm"
	SubtypeShortpass    Subtype = "sp"
	SubtypeLongpass     Subtype = "lp"
	SubtypeBeamsplitter Subtype = "bs"
	SubtypeQuantumEff   Subtype = "qe"
	SubtypePowerDistrib Subtype = "pd"
)

var categoryNames = map[Category]string{
	CategoryDye:     "Dye",
	CategoryProtein: "Protein",
	CategoryLight:   "Light Source",
	CategoryFilter:  "Filter",
	CategoryCamera:  "Camera",
}

var subtypeNames = map[Subtype]string{
	SubtypeExcitation:   "Excitation",
	SubtypeAbsorption:   "Absorption",
	SubtypeEmission:     "Emission",
	SubtypeTwoPhoton:    "Two Photon Absorption",
	SubtypeBandpass:     "Bandpass",
	SubtypeBandpassEx:   "Bandpass (Excitation)",
	SubtypeBandpassEm:   "Bandpass (Emission)",
	SubtypeShortpass:    "Shortpass",
	SubtypeLongpass:     "Longpass",
	SubtypeBeamsplitter: "Beamsplitter",
	SubtypeQuantumEff:   "Quantum Efficiency",
	SubtypePowerDistrib: "Power Distribution",
}

var fluorophoreSubtypes = []Subtype{SubtypeExcitation, SubtypeAbsorption, SubtypeEmission, SubtypeTwoPhoton}

// categorySubtypes lists the subtypes each category accepts.
var categorySubtypes = map[Category][]Subtype{
	CategoryDye:     fluorophoreSubtypes,
	CategoryProtein: fluorophoreSubtypes,
	CategoryFilter: {
		SubtypeBandpass, SubtypeBandpassEx, SubtypeBandpassEm,
		SubtypeShortpass, SubtypeLongpass, SubtypeBeamsplitter,
	},
	CategoryCamera: {SubtypeQuantumEff},
	CategoryLight:  {SubtypePowerDistrib},
}

// String returns the display name of c.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categorySubtypes[c]
	return ok
}

// Subtypes returns the subtypes allowed for c.
func (c Category) Subtypes() []Subtype {
	return slices.Clone(categorySubtypes[c])
}

// String returns the display name of s.
func (s Subtype) String() string {
	if name, ok := subtypeNames[s]; ok {
		return name
	}
	return string(s)
}

// Tag pairs a category with a subtype.
type Tag struct {
	Category Category
	Subtype  Subtype
}

// IsZero reports whether t is unset, as on composited path products.
func (t Tag) IsZero() bool {
	return t.Category == "" && t.Subtype == ""
}

// IsTwoPhoton reports whether t describes a two-photon cross-section.
func (t Tag) IsTwoPhoton() bool {
	return t.Subtype == SubtypeTwoPhoton
}

// Clean forces the single-subtype categories (camera: quantum efficiency,
// light: power distribution) and validates the subtype against the category.
func (t Tag) Clean() (Tag, error) {
	switch t.Category {
	case CategoryCamera:
		t.Subtype = SubtypeQuantumEff
	case CategoryLight:
		t.Subtype = SubtypePowerDistrib
	}

	allowed, ok := categorySubtypes[t.Category]
	if !ok {
		return t, Invalid("category", "unknown category %q", string(t.Category))
	}
	if !slices.Contains(allowed, t.Subtype) {
		codes := make([]string, len(allowed))
		for i, s := range allowed {
			codes[i] = string(s)
		}
		return t, Invalid("subtype", "%s spectrum subtype must be one of: %s",
			t.Category, strings.Join(codes, " "))
	}
	return t, nil
}

func (t Tag) String() string {
	if t.IsZero() {
		return "untagged"
	}
	return string(t.Category) + "/" + string(t.Subtype)
}

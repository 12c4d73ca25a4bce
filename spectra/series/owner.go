package series

import "fmt"

// OwnerKind enumerates the record kinds that can own a spectrum.
type OwnerKind int

const (
	OwnerDye OwnerKind = iota + 1
	OwnerProtein
	OwnerFilter
	OwnerLight
	OwnerCamera
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerDye:
		return "dye"
	case OwnerProtein:
		return "protein"
	case OwnerFilter:
		return "filter"
	case OwnerLight:
		return "light"
	case OwnerCamera:
		return "camera"
	default:
		return fmt.Sprintf("OwnerKind(%d)", int(k))
	}
}

// Owner is a typed back-reference to the record owning a spectrum.
type Owner struct {
	Kind OwnerKind
	ID   string
	Name string
}

// Category returns the spectrum category implied by the owner kind.
func (o Owner) Category() (Category, error) {
	switch o.Kind {
	case OwnerDye:
		return CategoryDye, nil
	case OwnerProtein:
		return CategoryProtein, nil
	case OwnerFilter:
		return CategoryFilter, nil
	case OwnerLight:
		return CategoryLight, nil
	case OwnerCamera:
		return CategoryCamera, nil
	default:
		return "", Invalid("owner", "unknown owner kind %d", int(o.Kind))
	}
}

// Validate checks that the owner has a known kind and an identifier.
func (o Owner) Validate() error {
	if _, err := o.Category(); err != nil {
		return err
	}
	if o.ID == "" {
		return Invalid("owner", "%s owner has no identifier", o.Kind)
	}
	return nil
}

// OwnerKindFor returns the owner kind that owns spectra of category c.
func OwnerKindFor(c Category) (OwnerKind, error) {
	switch c {
	case CategoryDye:
		return OwnerDye, nil
	case CategoryProtein:
		return OwnerProtein, nil
	case CategoryFilter:
		return OwnerFilter, nil
	case CategoryLight:
		return OwnerLight, nil
	case CategoryCamera:
		return OwnerCamera, nil
	default:
		return 0, Invalid("category", "unknown category %q", string(c))
	}
}

// Peak is a located maximum of a spectrum.
type Peak struct {
	Wavelength int
	Value      float64
}

// Spectrum is a canonical series together with its owner.
type Spectrum struct {
	Owner  Owner
	Series *Series

	// TwoPhotonPeak holds the pre-normalization peak of two-photon spectra.
	TwoPhotonPeak *Peak
}

// NewSpectrum binds s to owner after checking that the owner is valid and
// that its category matches the series tag.
func NewSpectrum(owner Owner, s *Series) (*Spectrum, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, Invalid("data", "spectrum has no data")
	}
	cat, _ := owner.Category()
	if s.Tag().Category != cat {
		return nil, Invalid("category", "%s owner cannot own a %s spectrum", owner.Kind, s.Tag().Category)
	}
	return &Spectrum{Owner: owner, Series: s}, nil
}

// Name returns a display key such as "EGFP em".
func (sp *Spectrum) Name() string {
	label := sp.Owner.Name
	if label == "" {
		label = sp.Owner.ID
	}
	return label + " " + string(sp.Series.Tag().Subtype)
}

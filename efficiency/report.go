package efficiency

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is the result for one fluorophore. Ex and Em are nil when the
// fluorophore lacks the spectra needed to compute them.
type Entry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Kind       Kind     `json:"ftype"`
	Color      string   `json:"color"`
	Ex         *float64 `json:"ex"`
	Em         *float64 `json:"em"`
	Brightness float64  `json:"bright"`
	Error      string   `json:"error,omitempty"`

	// Err is the failure recorded for this fluorophore, if any.
	Err error `json:"-"`
}

// Report holds one entry per fluorophore, in input order.
type Report struct {
	Config  string  `json:"config"`
	Laser   int     `json:"laser,omitempty"`
	Entries []Entry `json:"entries"`
}

// Lookup returns the entry for a fluorophore identifier.
func (r *Report) Lookup(id string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ByID returns the entries keyed by fluorophore identifier.
func (r *Report) ByID() map[string]Entry {
	out := make(map[string]Entry, len(r.Entries))
	for _, e := range r.Entries {
		out[e.ID] = e
	}
	return out
}

// SortField selects the value Ranked orders by.
type SortField string

const (
	SortBrightness SortField = "bright"
	SortExcitation SortField = "ex"
	SortEmission   SortField = "em"
)

// ParseSortField accepts bright, ex or em.
func ParseSortField(name string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(name))); f {
	case SortBrightness, SortExcitation, SortEmission:
		return f, nil
	case "":
		return SortBrightness, nil
	default:
		return "", fmt.Errorf("efficiency: unknown sort field %q", name)
	}
}

// Value returns the field of e that f names. Unset efficiencies count as -1
// so they rank below zero.
func (f SortField) Value(e Entry) float64 {
	switch f {
	case SortExcitation:
		return deref(e.Ex)
	case SortEmission:
		return deref(e.Em)
	default:
		return e.Brightness
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}

// Ranked returns the entries sorted by field in descending order, ties
// broken by identifier. A positive limit truncates the result.
func (r *Report) Ranked(field SortField, limit int) []Entry {
	out := slices.Clone(r.Entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		va, vb := field.Value(a), field.Value(b)
		switch {
		case va > vb:
			return -1
		case va < vb:
			return 1
		default:
			return strings.Compare(a.ID, b.ID)
		}
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

package rivals

import "strings"

// Filter narrows the listing board. Zero value matches everything.
type Filter struct {
	Query     string
	Kind      Kind
	Levels    []Level
	Locations []string
	Days      []string
	Times     []TimeOfDay
}

func (f Filter) Matches(l Listing) bool {
	p := l.Summary()

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(string(p.Location)), q) {
			return false
		}
	}
	if f.Kind != "" && f.Kind != KindAll && f.Kind != KindOf(l) {
		return false
	}
	if len(f.Levels) > 0 && !contains(f.Levels, p.Level) {
		return false
	}
	if len(f.Times) > 0 && !contains(f.Times, p.TimePreference) {
		return false
	}
	if len(f.Locations) > 0 && !containsAny(string(p.Location), f.Locations) {
		return false
	}
	if len(f.Days) > 0 && !containsAny(p.DayPreference, f.Days) {
		return false
	}
	return true
}

// Apply keeps the input order.
func (f Filter) Apply(listings []Listing) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

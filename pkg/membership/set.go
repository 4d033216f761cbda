// Package membership defines the member identity types shared across the
// costsync system: login handles, deduplicating member sets, and group
// specifiers naming where membership is sourced from.
//
// Logins are opaque and case-sensitive. Equality is exact string equality;
// no normalization (case-folding, trimming) is ever applied.
package membership

// Login identifies a person by their directory login handle.
type Login string

// String returns the string representation of a login.
func (l Login) String() string {
	return string(l)
}

// Set is a deduplicating collection of logins that preserves insertion
// order. Insertion order is what makes reconciliation output deterministic,
// so Set is used for both desired and current membership snapshots.
//
// The zero value is not usable; use NewSet.
type Set struct {
	order []Login
	index map[Login]struct{}
}

// NewSet creates a set containing the given logins, in order, with
// duplicates and empty logins dropped.
func NewSet(logins ...Login) *Set {
	s := &Set{index: make(map[Login]struct{}, len(logins))}
	for _, l := range logins {
		s.Add(l)
	}
	return s
}

// Add inserts a login into the set. It reports whether the set changed;
// duplicates and empty logins are rejected.
func (s *Set) Add(login Login) bool {
	if login == "" {
		return false
	}
	if _, ok := s.index[login]; ok {
		return false
	}
	s.index[login] = struct{}{}
	s.order = append(s.order, login)
	return true
}

// Merge inserts every login of other into the set, preserving other's
// insertion order for logins not already present.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, l := range other.order {
		s.Add(l)
	}
}

// Contains reports whether the set holds the given login.
func (s *Set) Contains(login Login) bool {
	_, ok := s.index[login]
	return ok
}

// Len returns the number of logins in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Logins returns the set's logins in insertion order. The returned slice
// is a copy.
func (s *Set) Logins() []Login {
	out := make([]Login, len(s.order))
	copy(out, s.order)
	return out
}

// Strings returns the set's logins in insertion order as plain strings.
func (s *Set) Strings() []string {
	out := make([]string, len(s.order))
	for i, l := range s.order {
		out[i] = string(l)
	}
	return out
}

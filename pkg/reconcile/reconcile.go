// Package reconcile computes the minimal change set between a desired and a
// current membership snapshot. It is pure set algebra: no I/O, no side
// effects, and deterministic output order so the rendered summary is stable
// across runs with the same inputs.
package reconcile

import (
	"github.com/costsync/costsync/pkg/membership"
)

// Changeset holds the mutations needed to converge current membership on
// desired membership. Add and Remove are disjoint by construction and each
// preserves the insertion order of the set it was derived from.
type Changeset struct {
	Add    []membership.Login
	Remove []membership.Login
}

// Diff computes the changeset between desired and current membership.
// Add is desired minus current, in desired's insertion order; Remove is
// current minus desired, in current's insertion order. Nil sets are treated
// as empty.
func Diff(desired, current *membership.Set) *Changeset {
	if desired == nil {
		desired = membership.NewSet()
	}
	if current == nil {
		current = membership.NewSet()
	}

	cs := &Changeset{}
	for _, login := range desired.Logins() {
		if !current.Contains(login) {
			cs.Add = append(cs.Add, login)
		}
	}
	for _, login := range current.Logins() {
		if !desired.Contains(login) {
			cs.Remove = append(cs.Remove, login)
		}
	}
	return cs
}

// Empty reports whether the changeset contains no mutations.
func (c *Changeset) Empty() bool {
	return len(c.Add) == 0 && len(c.Remove) == 0
}

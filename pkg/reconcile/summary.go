package reconcile

import (
	"strings"

	"github.com/costsync/costsync/pkg/membership"
)

// Summary renders the changeset as the run's result string:
//
//	Added users: <add list>, Removed users: <remove list>
//
// Lists are joined with ", " and an empty list renders as the empty string,
// not a placeholder. Downstream consumers match this format verbatim, so it
// must not change.
func (c *Changeset) Summary() string {
	var b strings.Builder
	b.WriteString("Added users: ")
	b.WriteString(joinLogins(c.Add))
	b.WriteString(", Removed users: ")
	b.WriteString(joinLogins(c.Remove))
	return b.String()
}

func joinLogins(logins []membership.Login) string {
	parts := make([]string, len(logins))
	for i, l := range logins {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

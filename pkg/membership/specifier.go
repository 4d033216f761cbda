package membership

import (
	"strings"

	"github.com/costsync/costsync/pkg/errors"
)

// Specifier names a membership source: a whole organization, or a single
// team within one when Team is non-empty.
type Specifier struct {
	Org  string
	Team string
}

// Scoped reports whether the specifier is narrowed to a team.
func (sp Specifier) Scoped() bool {
	return sp.Team != ""
}

// String renders the specifier in "org" or "org/team" form.
func (sp Specifier) String() string {
	if sp.Team == "" {
		return sp.Org
	}
	return sp.Org + "/" + sp.Team
}

// Validate checks that the specifier names at least an organization.
func (sp Specifier) Validate() error {
	if sp.Org == "" {
		return errors.NewValidationError("org", "organization name must not be empty")
	}
	return nil
}

// ParseSpecifier parses "org" or "org/team" input as used by CLI flags and
// sources files.
func ParseSpecifier(s string) (Specifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Specifier{}, errors.NewValidationError("source", "source specifier must not be empty")
	}
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		sp := Specifier{Org: parts[0]}
		return sp, sp.Validate()
	case 2:
		if parts[1] == "" {
			return Specifier{}, errors.NewValidationError("source", "team name must not be empty in "+s)
		}
		sp := Specifier{Org: parts[0], Team: parts[1]}
		return sp, sp.Validate()
	default:
		return Specifier{}, errors.NewValidationError("source", "expected org or org/team, got "+s)
	}
}

// Package costcenter implements the target group store collaborator: the
// GitHub Enterprise billing cost-center API. A cost center is the billing
// grouping whose membership this system reconciles.
package costcenter

import (
	"github.com/costsync/costsync/pkg/membership"
)

// Resource kinds carried on a cost center record. Kinds other than these
// are ignored during resolution so new resource types cannot break a run.
const (
	ResourceTypeUser = "User"
	ResourceTypeOrg  = "Org"
)

// Resource is one entry attached to a cost center record.
type Resource struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// CostCenter is a billing group record: an id, a display name, and the
// resources currently assigned to it.
type CostCenter struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Resources []Resource `json:"resources"`
}

// Members returns the cost center's direct user members in record order.
// This is the "current" set for reconciliation.
func (cc *CostCenter) Members() *membership.Set {
	set := membership.NewSet()
	for _, r := range cc.Resources {
		if r.Type == ResourceTypeUser {
			set.Add(membership.Login(r.Name))
		}
	}
	return set
}

// LinkedOrgs returns the organizations linked to the cost center in record
// order. These become membership sources when no explicit sources are
// configured.
func (cc *CostCenter) LinkedOrgs() []membership.Specifier {
	var specs []membership.Specifier
	for _, r := range cc.Resources {
		if r.Type == ResourceTypeOrg {
			specs = append(specs, membership.Specifier{Org: r.Name})
		}
	}
	return specs
}

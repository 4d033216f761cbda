package costcenter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/costsync/costsync/internal/transport"
	"github.com/costsync/costsync/pkg/errors"
	"github.com/costsync/costsync/pkg/membership"
)

// DefaultAPIURL is the public GitHub API endpoint hosting the billing API.
const DefaultAPIURL = "https://api.github.com"

// Client manages cost centers under one enterprise account.
type Client struct {
	t          *transport.Client
	enterprise string
}

// New creates a billing client scoped to the given enterprise slug. An
// empty baseURL selects the public API; a separate token and base URL are
// accepted because some deployments host the billing store apart from the
// directory API.
func New(baseURL, token, enterprise string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		t:          transport.New("billing", baseURL, &transport.TokenAuth{Token: token}),
		enterprise: enterprise,
	}
}

// listResponse is the wire shape of the cost-center listing.
type listResponse struct {
	CostCenters []CostCenter `json:"costCenters"`
}

// resourceRequest is the wire shape of add/remove mutations.
type resourceRequest struct {
	Users []string `json:"users"`
}

func (c *Client) costCentersPath() string {
	return fmt.Sprintf("/enterprises/%s/settings/billing/cost-centers", url.PathEscape(c.enterprise))
}

// List returns every cost center visible under the enterprise.
func (c *Client) List(ctx context.Context) ([]CostCenter, error) {
	var resp listResponse
	if err := c.t.Get(ctx, c.costCentersPath(), &resp); err != nil {
		return nil, err
	}
	return resp.CostCenters, nil
}

// FindByName resolves a cost center by exact name match. When no cost
// center matches, the returned NotFoundError lists the available names so
// the operator can diagnose the run from its failure message.
func (c *Client) FindByName(ctx context.Context, name string) (*CostCenter, error) {
	centers, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, len(centers))
	for i := range centers {
		if centers[i].Name == name {
			return &centers[i], nil
		}
		available = append(available, centers[i].Name)
	}
	return nil, errors.NewNotFoundError("cost center", name, available)
}

// AddUser assigns one user to the cost center. One request per member; the
// caller owns batching and ordering.
func (c *Client) AddUser(ctx context.Context, id string, login membership.Login) error {
	path := fmt.Sprintf("%s/%s/resource", c.costCentersPath(), url.PathEscape(id))
	return c.t.Post(ctx, path, resourceRequest{Users: []string{string(login)}}, nil)
}

// RemoveUser unassigns one user from the cost center.
func (c *Client) RemoveUser(ctx context.Context, id string, login membership.Login) error {
	path := fmt.Sprintf("%s/%s/resource", c.costCentersPath(), url.PathEscape(id))
	return c.t.Delete(ctx, path, resourceRequest{Users: []string{string(login)}})
}

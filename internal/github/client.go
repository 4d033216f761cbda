// Package github implements the membership source collaborator: fetching
// the complete member list of an organization or of a team within one from
// the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/costsync/costsync/internal/transport"
	"github.com/costsync/costsync/pkg/membership"
)

// DefaultAPIURL is the public GitHub API endpoint. Deployments against
// GitHub Enterprise Server override it.
const DefaultAPIURL = "https://api.github.com"

// pageSize is the per_page value used when listing members.
const pageSize = 100

// Client fetches organization and team membership.
type Client struct {
	t *transport.Client
}

// New creates a membership client. An empty baseURL selects the public API.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		t: transport.New("github", baseURL, &transport.TokenAuth{Token: token}),
	}
}

// member is the subset of the API's user object this system reads.
type member struct {
	Login string `json:"login"`
}

// Members returns the complete, deduplicated member set for the given
// specifier: team members when the specifier is team-scoped, all
// organization members otherwise.
func (c *Client) Members(ctx context.Context, spec membership.Specifier) (*membership.Set, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var path string
	if spec.Scoped() {
		path = fmt.Sprintf("/orgs/%s/teams/%s/members", url.PathEscape(spec.Org), url.PathEscape(spec.Team))
	} else {
		path = fmt.Sprintf("/orgs/%s/members", url.PathEscape(spec.Org))
	}
	return c.list(ctx, path)
}

// list walks the paginated listing until a short page signals the end.
func (c *Client) list(ctx context.Context, path string) (*membership.Set, error) {
	set := membership.NewSet()
	for page := 1; ; page++ {
		var batch []member
		paged := fmt.Sprintf("%s?per_page=%d&page=%d", path, pageSize, page)
		if err := c.t.Get(ctx, paged, &batch); err != nil {
			return nil, err
		}
		for _, m := range batch {
			set.Add(membership.Login(m.Login))
		}
		if len(batch) < pageSize {
			return set, nil
		}
	}
}

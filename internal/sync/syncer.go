// Package sync orchestrates one reconciliation run: resolve the target
// cost center, collect desired membership from the configured sources,
// diff, and apply the resulting mutations.
package sync

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/costsync/costsync/internal/costcenter"
	"github.com/costsync/costsync/pkg/errors"
	"github.com/costsync/costsync/pkg/logging"
	"github.com/costsync/costsync/pkg/membership"
	"github.com/costsync/costsync/pkg/reconcile"
)

// MembershipSource supplies the complete member set for one group
// specifier. Implemented by the github package; faked in tests.
type MembershipSource interface {
	Members(ctx context.Context, spec membership.Specifier) (*membership.Set, error)
}

// Store is the target group store: cost-center lookup plus per-member
// mutations. Implemented by the costcenter package; faked in tests.
type Store interface {
	FindByName(ctx context.Context, name string) (*costcenter.CostCenter, error)
	AddUser(ctx context.Context, id string, login membership.Login) error
	RemoveUser(ctx context.Context, id string, login membership.Login) error
}

// Options configure a single run.
type Options struct {
	// CostCenter is the exact name of the target group. Required.
	CostCenter string

	// Sources are the explicit membership sources. When empty, the cost
	// center record's linked organizations are used instead, and its direct
	// user members are folded into the desired set (the record-embedded
	// variant, which can only grow membership).
	Sources []membership.Specifier
}

// Result reports what one run changed.
type Result struct {
	CostCenter string
	Changes    *reconcile.Changeset
}

// Output renders the run's result string in the format the invoking
// environment consumes.
func (r *Result) Output() string {
	return r.Changes.Summary()
}

// Syncer drives the reconciliation pipeline. All remote calls happen
// sequentially; a run is stateless and holds nothing between invocations.
type Syncer struct {
	source MembershipSource
	store  Store
	logger *zerolog.Logger
}

// New creates a syncer over the given collaborators.
func New(source MembershipSource, store Store, opts ...Option) *Syncer {
	s := &Syncer{
		source: source,
		store:  store,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option customizes a Syncer.
type Option func(*Syncer)

// WithLogger sets the logger used for run progress and source warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Run executes one reconciliation. On any failure the run terminates with
// that failure; mutations already applied stay applied.
func (s *Syncer) Run(ctx context.Context, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// Step 1: Validate inputs
	if opts.CostCenter == "" {
		return nil, errors.NewValidationError("cost_center", "target cost center name is required")
	}

	// Step 2: Resolve the target cost center and its current member set
	cc, err := s.store.FindByName(ctx, opts.CostCenter)
	if err != nil {
		return nil, err
	}
	current := cc.Members()

	// Step 3: Determine sources and whether direct members count as desired
	sources := opts.Sources
	includeDirect := false
	if len(sources) == 0 {
		sources = cc.LinkedOrgs()
		includeDirect = true
	}

	s.logger.Debug().
		Str("cost_center", cc.Name).
		Int("current_members", current.Len()).
		Int("sources", len(sources)).
		Bool("record_embedded", includeDirect).
		Msg("Resolved target cost center")

	// Step 4: Collect the desired member set across all sources
	desired := membership.NewSet()
	if includeDirect {
		desired.Merge(current)
	}
	fetched, err := s.collectDesired(ctx, sources)
	if err != nil {
		return nil, err
	}
	desired.Merge(fetched)

	// Step 5: Reconcile
	changes := reconcile.Diff(desired, current)
	if changes.Empty() {
		s.logger.Info().Str("cost_center", cc.Name).Msg("No changes detected")
	} else {
		s.logger.Info().
			Str("cost_center", cc.Name).
			Int("add", len(changes.Add)).
			Int("remove", len(changes.Remove)).
			Msg("Changes detected")
	}

	// Step 6: Apply removals, then additions, one member at a time
	if err := s.apply(ctx, cc, changes); err != nil {
		return nil, err
	}

	return &Result{CostCenter: cc.Name, Changes: changes}, nil
}

// collectDesired fetches and merges membership across all sources.
//
// Failure policy: with two or more sources a failed fetch is logged and
// contributes zero members, so one unreachable organization cannot block
// reconciliation of the rest. With exactly one source its failure is the
// run's failure.
func (s *Syncer) collectDesired(ctx context.Context, sources []membership.Specifier) (*membership.Set, error) {
	desired := membership.NewSet()
	failFast := len(sources) == 1

	for _, spec := range sources {
		members, err := s.source.Members(ctx, spec)
		if err != nil {
			if failFast {
				return nil, errors.WrapFetch(spec.String(), err)
			}
			s.logger.Warn().
				Err(err).
				Str("source", spec.String()).
				Msg("Skipping unreachable source")
			continue
		}
		s.logger.Debug().
			Str("source", spec.String()).
			Int("members", members.Len()).
			Msg("Fetched source members")
		desired.Merge(members)
	}
	return desired, nil
}

// apply issues one mutation per member. The first failure aborts the rest
// of the batch; there is no rollback.
func (s *Syncer) apply(ctx context.Context, cc *costcenter.CostCenter, changes *reconcile.Changeset) error {
	for _, login := range changes.Remove {
		if err := s.store.RemoveUser(ctx, cc.ID, login); err != nil {
			return errors.NewMutationError("remove", cc.Name, string(login), err)
		}
		s.logger.Debug().Str("login", string(login)).Msg("Removed user from cost center")
	}
	for _, login := range changes.Add {
		if err := s.store.AddUser(ctx, cc.ID, login); err != nil {
			return errors.NewMutationError("add", cc.Name, string(login), err)
		}
		s.logger.Debug().Str("login", string(login)).Msg("Added user to cost center")
	}
	return nil
}

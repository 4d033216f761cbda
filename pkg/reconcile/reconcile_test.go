package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/costsync/costsync/pkg/membership"
	"github.com/costsync/costsync/pkg/reconcile"
)

func logins(names ...string) []membership.Login {
	out := make([]membership.Login, len(names))
	for i, n := range names {
		out[i] = membership.Login(n)
	}
	return out
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name       string
		desired    []membership.Login
		current    []membership.Login
		wantAdd    []membership.Login
		wantRemove []membership.Login
	}{
		{
			name:       "overlapping sets",
			desired:    logins("user1", "user2"),
			current:    logins("user2", "user3"),
			wantAdd:    logins("user1"),
			wantRemove: logins("user3"),
		},
		{
			name:    "already in sync",
			desired: logins("a", "b", "c"),
			current: logins("a", "b", "c"),
		},
		{
			name:       "empty desired removes everyone",
			current:    logins("a", "b"),
			wantRemove: logins("a", "b"),
		},
		{
			name:    "empty current adds everyone",
			desired: logins("a", "b"),
			wantAdd: logins("a", "b"),
		},
		{
			name: "both empty",
		},
		{
			name:       "disjoint sets swap entirely",
			desired:    logins("x", "y"),
			current:    logins("a", "b"),
			wantAdd:    logins("x", "y"),
			wantRemove: logins("a", "b"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := reconcile.Diff(membership.NewSet(tt.desired...), membership.NewSet(tt.current...))
			assert.Equal(t, tt.wantAdd, cs.Add)
			assert.Equal(t, tt.wantRemove, cs.Remove)
		})
	}
}

func TestDiffOutputsAreDisjoint(t *testing.T) {
	desired := membership.NewSet("a", "b", "c", "d")
	current := membership.NewSet("c", "d", "e", "f")
	cs := reconcile.Diff(desired, current)

	seen := map[membership.Login]bool{}
	for _, l := range cs.Add {
		seen[l] = true
	}
	for _, l := range cs.Remove {
		assert.False(t, seen[l], "login %s appears in both Add and Remove", l)
	}
}

func TestDiffPreservesInsertionOrder(t *testing.T) {
	// Order deliberately not sorted; the diff must keep it.
	desired := membership.NewSet("zeta", "alpha", "mike")
	current := membership.NewSet("omega", "beta")

	cs := reconcile.Diff(desired, current)
	assert.Equal(t, logins("zeta", "alpha", "mike"), cs.Add)
	assert.Equal(t, logins("omega", "beta"), cs.Remove)
}

func TestDiffNilSets(t *testing.T) {
	cs := reconcile.Diff(nil, nil)
	assert.True(t, cs.Empty())

	cs = reconcile.Diff(membership.NewSet("a"), nil)
	assert.Equal(t, logins("a"), cs.Add)
	assert.Empty(t, cs.Remove)
}

func TestDiffIdempotence(t *testing.T) {
	set := membership.NewSet("u1", "u2", "u3")
	cs := reconcile.Diff(set, set)
	assert.True(t, cs.Empty())
	assert.Equal(t, "Added users: , Removed users: ", cs.Summary())
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		add    []membership.Login
		remove []membership.Login
		want   string
	}{
		{
			name:   "one each",
			add:    logins("user1"),
			remove: logins("user3"),
			want:   "Added users: user1, Removed users: user3",
		},
		{
			name: "both empty",
			want: "Added users: , Removed users: ",
		},
		{
			name: "multiple added only",
			add:  logins("a", "b", "c"),
			want: "Added users: a, b, c, Removed users: ",
		},
		{
			name:   "multiple removed only",
			remove: logins("x", "y"),
			want:   "Added users: , Removed users: x, y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := &reconcile.Changeset{Add: tt.add, Remove: tt.remove}
			assert.Equal(t, tt.want, cs.Summary())
		})
	}
}

func TestSummaryMatchesDiffScenario(t *testing.T) {
	cs := reconcile.Diff(
		membership.NewSet("user1", "user2"),
		membership.NewSet("user2", "user3"),
	)
	assert.Equal(t, "Added users: user1, Removed users: user3", cs.Summary())
}

package membership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costsync/costsync/pkg/errors"
	"github.com/costsync/costsync/pkg/membership"
)

func TestParseSpecifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    membership.Specifier
		wantErr bool
	}{
		{name: "org only", input: "acme", want: membership.Specifier{Org: "acme"}},
		{name: "org and team", input: "acme/platform", want: membership.Specifier{Org: "acme", Team: "platform"}},
		{name: "surrounding whitespace", input: "  acme/platform ", want: membership.Specifier{Org: "acme", Team: "platform"}},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "missing team after slash", input: "acme/", wantErr: true},
		{name: "missing org before slash", input: "/platform", wantErr: true},
		{name: "too many segments", input: "a/b/c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := membership.ParseSpecifier(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecifierString(t *testing.T) {
	assert.Equal(t, "acme", membership.Specifier{Org: "acme"}.String())
	assert.Equal(t, "acme/platform", membership.Specifier{Org: "acme", Team: "platform"}.String())
}

func TestSpecifierScoped(t *testing.T) {
	assert.False(t, membership.Specifier{Org: "acme"}.Scoped())
	assert.True(t, membership.Specifier{Org: "acme", Team: "platform"}.Scoped())
}

func TestSpecifierValidate(t *testing.T) {
	assert.NoError(t, membership.Specifier{Org: "acme"}.Validate())
	assert.Error(t, membership.Specifier{Team: "platform"}.Validate())
}

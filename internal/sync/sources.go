package sync

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/costsync/costsync/pkg/errors"
	"github.com/costsync/costsync/pkg/membership"
)

// sourcesFile is the YAML shape accepted by --sources-file:
//
//	sources:
//	  - org: acme
//	    team: platform
//	  - org: widgets
type sourcesFile struct {
	Sources []sourceEntry `yaml:"sources"`
}

type sourceEntry struct {
	Org  string `yaml:"org"`
	Team string `yaml:"team"`
}

// LoadSourcesFile reads a YAML file listing org/team source specifiers.
func LoadSourcesFile(path string) ([]membership.Specifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("sources-file", "failed to read "+path, err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.NewConfigError("sources-file", "failed to parse "+path, err)
	}
	if len(f.Sources) == 0 {
		return nil, errors.NewConfigError("sources-file", path+" lists no sources", nil)
	}

	specs := make([]membership.Specifier, 0, len(f.Sources))
	for _, entry := range f.Sources {
		spec := membership.Specifier{Org: entry.Org, Team: entry.Team}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

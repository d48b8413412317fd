package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
)

// Mirror overrides where a dataset's files are fetched from. When set, every
// file of the dataset resolves to URLPrefix + filename instead of the
// canonical URLs.
type Mirror struct {
	URLPrefix string `toml:"url_prefix"`
	Token     string `toml:"token" masq:"secret"`
}

// Mirrors is a per-dataset mirror table loaded from a TOML file:
//
//	[datasets.mnist]
//	url_prefix = "https://mirror.example.com/mnist/"
//	token = "..."
type Mirrors struct {
	Datasets map[string]Mirror `toml:"datasets"`
}

// LoadMirrors reads a mirror table from a TOML file
func LoadMirrors(path string) (*Mirrors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read mirror config", goerr.V("path", path))
	}

	var mirrors Mirrors
	if err := toml.Unmarshal(data, &mirrors); err != nil {
		return nil, goerr.Wrap(err, "failed to parse mirror config", goerr.V("path", path))
	}

	return &mirrors, nil
}

// Lookup returns the mirror entry for a dataset, if any
func (m *Mirrors) Lookup(name types.Dataset) (Mirror, bool) {
	if m == nil || m.Datasets == nil {
		return Mirror{}, false
	}
	mirror, ok := m.Datasets[string(name)]
	return mirror, ok
}

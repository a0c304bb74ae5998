// Package split resolves which configuration split a runtime environment
// enables.
//
// A configuration split is a named bundle of overrides layered onto the base
// configuration when its status flag is set. Apply is the only place an
// environment turns a split on; everything else about a split (label, weight,
// overrides, a status set explicitly by the operator) is owned by the caller.
package split

import (
	"sort"
	"strings"

	"github.com/arthur-debert/cfgsplit/pkg/environment"
	"github.com/arthur-debert/cfgsplit/pkg/logging"
)

// IDPrefix is prepended to a split's machine name to form its ID.
const IDPrefix = "config_split.config_split."

// Split is the record stored under a split ID.
type Split struct {
	Status    bool                   `koanf:"status" json:"status" yaml:"status" toml:"status"`
	Label     string                 `koanf:"label" json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Weight    int                    `koanf:"weight" json:"weight" yaml:"weight" toml:"weight"`
	Overrides map[string]interface{} `koanf:"overrides" json:"overrides,omitempty" yaml:"overrides,omitempty" toml:"overrides,omitempty"`
}

// Flags maps split IDs to their records. It is owned by the caller.
type Flags map[string]Split

var environmentSplits = map[environment.Environment]string{
	environment.Test:        ID("test"),
	environment.Development: ID("dev"),
	environment.CI:          ID("ci"),
	environment.Local:       ID("local"),
}

// ID returns the split ID for a machine name, e.g. "dev" becomes
// "config_split.config_split.dev".
func ID(machineName string) string {
	return IDPrefix + machineName
}

// MachineName strips IDPrefix from id. IDs without the prefix are returned
// unchanged.
func MachineName(id string) string {
	return strings.TrimPrefix(id, IDPrefix)
}

// Name returns the split ID an environment enables, if any.
func Name(env environment.Environment) (string, bool) {
	id, ok := environmentSplits[env]
	return id, ok
}

// Apply sets the status of the split matching env to true, creating the entry
// if it is absent. Environments without a split leave flags untouched, as do
// nil flags.
func Apply(env environment.Environment, flags Flags) {
	logger := logging.GetLogger("split.apply")

	id, ok := Name(env)
	if !ok {
		logger.Debug().Str("environment", env.String()).Msg("No split for environment")
		return
	}
	if flags == nil {
		logger.Debug().Str("split", id).Msg("Nil flags, nothing to enable")
		return
	}

	s := flags[id]
	s.Status = true
	flags[id] = s

	logger.Debug().
		Str("environment", env.String()).
		Str("split", id).
		Msg("Enabled split")
}

// Enabled returns the IDs of active splits ordered by weight, then ID.
func Enabled(flags Flags) []string {
	var ids []string
	for id, s := range flags {
		if s.Status {
			ids = append(ids, id)
		}
	}
	sortByWeight(ids, flags)
	return ids
}

// IDs returns every split ID in flags ordered by weight, then ID.
func IDs(flags Flags) []string {
	ids := make([]string, 0, len(flags))
	for id := range flags {
		ids = append(ids, id)
	}
	sortByWeight(ids, flags)
	return ids
}

func sortByWeight(ids []string, flags Flags) {
	sort.Slice(ids, func(i, j int) bool {
		wi, wj := flags[ids[i]].Weight, flags[ids[j]].Weight
		if wi != wj {
			return wi < wj
		}
		return ids[i] < ids[j]
	})
}

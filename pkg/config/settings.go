package config

import (
	"strings"

	"github.com/arthur-debert/cfgsplit/pkg/environment"
	"github.com/arthur-debert/cfgsplit/pkg/errors"
	"github.com/arthur-debert/cfgsplit/pkg/split"
)

// Settings is the decoded form of all loaded layers.
type Settings struct {
	// Environment is the raw label; see environment.Parse.
	Environment string                 `koanf:"environment"`
	Base        map[string]interface{} `koanf:"base"`
	// Splits is keyed by machine name, not by split ID.
	Splits map[string]split.Split `koanf:"splits"`
}

// Flags builds the caller-owned flag mapping handed to split.Apply.
func (s *Settings) Flags() split.Flags {
	flags := make(split.Flags, len(s.Splits))
	for name, sp := range s.Splits {
		flags[split.ID(name)] = sp
	}
	return flags
}

// Validate checks the split definitions. An unknown environment label is
// not an error: it simply enables no split.
func (s *Settings) Validate() error {
	for name, sp := range s.Splits {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrSplitInvalid, "split machine name is empty")
		}
		if strings.Contains(name, ".") {
			return errors.Newf(errors.ErrSplitInvalid, "split machine name %q contains a dot", name)
		}
		if sp.Weight < 0 {
			return errors.Newf(errors.ErrConfigValid, "split %q has negative weight %d", name, sp.Weight).
				WithDetail("split", split.ID(name))
		}
	}
	return nil
}

// Resolved is the outcome of a configuration-resolution pass.
type Resolved struct {
	Environment environment.Environment
	Flags       split.Flags
	// Applied lists the split IDs whose overrides were merged, in merge order.
	Applied   []string
	Base      map[string]interface{}
	Effective map[string]interface{}
	// Sources names the layers that were loaded, lowest precedence first.
	Sources []string
}

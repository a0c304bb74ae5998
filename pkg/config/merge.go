package config

import (
	"github.com/mitchellh/copystructure"

	"github.com/arthur-debert/cfgsplit/pkg/errors"
	"github.com/arthur-debert/cfgsplit/pkg/split"
)

// Merge layers the overrides of every enabled split over a copy of base, in
// split.Enabled order. base and the split records are not modified. It
// returns the effective configuration and the IDs that were applied.
func Merge(base map[string]interface{}, flags split.Flags) (map[string]interface{}, []string, error) {
	effective, err := copyMap(base)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrInternal, "failed to copy base configuration")
	}

	applied := split.Enabled(flags)
	for _, id := range applied {
		overrides, err := copyMap(flags[id].Overrides)
		if err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrInternal, "failed to copy overrides of %s", id)
		}
		mergeMaps(effective, overrides)
	}

	return effective, applied, nil
}

// mergeMaps merges src into dest. Nested maps merge key by key; any other
// value, slices included, replaces what dest holds.
func mergeMaps(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		destVal, destOk := dest[key]
		if !destOk {
			dest[key] = srcVal
			continue
		}

		if srcMap, srcOk := srcVal.(map[string]interface{}); srcOk {
			if destMap, destOk := destVal.(map[string]interface{}); destOk {
				mergeMaps(destMap, srcMap)
				continue
			}
		}

		dest[key] = srcVal
	}
}

func copyMap(m map[string]interface{}) (map[string]interface{}, error) {
	if m == nil {
		return map[string]interface{}{}, nil
	}
	c, err := copystructure.Copy(m)
	if err != nil {
		return nil, err
	}
	return c.(map[string]interface{}), nil
}

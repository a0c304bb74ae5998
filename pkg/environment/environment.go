// Package environment defines the runtime environment labels cfgsplit
// understands. Reading the label from the process is the loader's job.
package environment

import "strings"

// Environment is a deployment context label such as "dev" or "prod".
type Environment string

const (
	Test        Environment = "test"
	Development Environment = "dev"
	CI          Environment = "ci"
	Local       Environment = "local"
	Production  Environment = "prod"
)

var known = []Environment{Test, Development, CI, Local, Production}

var aliases = map[string]Environment{
	"test":                   Test,
	"testing":                Test,
	"dev":                    Development,
	"development":            Development,
	"ci":                     CI,
	"continuous-integration": CI,
	"continuous_integration": CI,
	"local":                  Local,
	"prod":                   Production,
	"production":             Production,
	"live":                   Production,
}

// Parse normalises s into an Environment. Values that are not a known label
// or alias are returned lower-cased and trimmed rather than rejected.
func Parse(s string) Environment {
	normalised := strings.ToLower(strings.TrimSpace(s))
	if env, ok := aliases[normalised]; ok {
		return env
	}
	return Environment(normalised)
}

func (e Environment) String() string {
	return string(e)
}

// IsKnown reports whether e is one of the declared labels.
func (e Environment) IsKnown() bool {
	for _, k := range known {
		if e == k {
			return true
		}
	}
	return false
}

// Known returns the declared labels in declaration order.
func Known() []Environment {
	out := make([]Environment, len(known))
	copy(out, known)
	return out
}

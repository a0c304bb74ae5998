package cfgsplit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve environment configuration splits"
	MsgResolveShort    = "Print the split the environment enables"
	MsgResolveLong     = "Print the ID of the split the current environment enables. Nothing is printed for environments without a split."
	MsgSplitsShort     = "List splits and their final status"
	MsgShowShort       = "Show the effective configuration"
	MsgShowLong        = "Show the base configuration with the overrides of every enabled split merged in weight order."
	MsgExplainShort    = "Explain how splits were resolved"
	MsgGenConfigShort  = "Generate a commented settings file"
	MsgGenConfigLong   = "Output the default settings with every value commented out, or write them to a file with -w."
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = "Generate a completion script for bash, zsh, fish or powershell and print it to stdout."

	// Status messages
	MsgConfigWritten   = "Wrote settings to %s\n"
	MsgVersionTemplate = "cfgsplit %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrNoSplit   = "environment %q enables no split"
	MsgErrNoKey     = "key %s not found in the effective configuration"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Settings file (TOML or YAML); defaults to $CFGSPLIT_CONFIG or ./cfgsplit.toml"
	MsgFlagEnv     = "Environment label, overriding CFGSPLIT_ENVIRONMENT and the settings file"
	MsgFlagFormat  = "Output format: auto, term, text, json, toml, yaml"
	MsgFlagWrite   = "Write settings to a file instead of stdout"
	MsgFlagForce   = "Overwrite an existing file"
	MsgFlagBase    = "Show the base configuration without any split applied"
	MsgFlagKey     = "Show a single dotted key, e.g. system.logging.error_level"
	MsgFlagRequire = "Fail when the environment enables no split"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/gen-config-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

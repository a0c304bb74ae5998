// Package config loads cfgsplit settings and produces the effective
// configuration.
//
// Settings are layered with koanf: embedded defaults, then a TOML or YAML
// settings file, then CFGSPLIT_* environment variables, then explicit caller
// overrides. The resulting environment label is handed to split.Apply, and
// the overrides of every enabled split are merged over the base
// configuration in weight order.
package config

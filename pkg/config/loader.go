package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/cfgsplit/pkg/environment"
	"github.com/arthur-debert/cfgsplit/pkg/errors"
	"github.com/arthur-debert/cfgsplit/pkg/logging"
	"github.com/arthur-debert/cfgsplit/pkg/split"
)

const (
	// EnvPrefix is the prefix of environment variables read as settings.
	EnvPrefix = "CFGSPLIT_"
	// ConfigFileEnv names an explicit settings file.
	ConfigFileEnv = "CFGSPLIT_CONFIG"
)

// settingsFileNames are tried in the working directory when no file is given.
var settingsFileNames = []string{"cfgsplit.toml", ".cfgsplit.toml", "cfgsplit.yaml", "cfgsplit.yml"}

// LoadOptions controls a resolution pass.
type LoadOptions struct {
	// ConfigFile is an explicit settings file. It must exist when set.
	ConfigFile string
	// Environment overrides every other source of the environment label.
	Environment string
	// WorkDir is searched for settings files; defaults to ".".
	WorkDir string
}

// Load layers all settings sources, enables the environment's split and
// merges the enabled splits over the base configuration.
func Load(opts LoadOptions) (*Resolved, error) {
	logger := logging.GetLogger("config.load")
	done := logging.LogOperationStart(logger, "config.load")
	defer done()

	k, sources, err := loadLayers(opts)
	if err != nil {
		return nil, err
	}

	settings, err := decode(k)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	env := environment.Parse(settings.Environment)
	flags := settings.Flags()
	split.Apply(env, flags)

	effective, applied, err := Merge(settings.Base, flags)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("environment", env.String()).
		Strs("applied", applied).
		Strs("sources", sources).
		Msg("Configuration resolved")

	return &Resolved{
		Environment: env,
		Flags:       flags,
		Applied:     applied,
		Base:        settings.Base,
		Effective:   effective,
		Sources:     sources,
	}, nil
}

func loadLayers(opts LoadOptions) (*koanf.Koanf, []string, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	sources = append(sources, "defaults")

	// 2. Settings file
	path, err := findSettingsFile(opts)
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, "file:"+path)
	}

	// 3. Environment variables
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		if s == ConfigFileEnv || s == logging.LogFileEnv {
			return ""
		}
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	sources = append(sources, "env")

	// 4. Explicit overrides
	if opts.Environment != "" {
		overrides := map[string]interface{}{"environment": opts.Environment}
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
		sources = append(sources, "flags")
	}

	return k, sources, nil
}

func decode(k *koanf.Koanf) (*Settings, error) {
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}
	return &settings, nil
}

// findSettingsFile returns the settings file to load, or "" when none exists.
func findSettingsFile(opts LoadOptions) (string, error) {
	explicit := opts.ConfigFile
	if explicit == "" {
		explicit = os.Getenv(ConfigFileEnv)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "settings file %s not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	candidates := make([]string, 0, len(settingsFileNames)+1)
	for _, name := range settingsFileNames {
		candidates = append(candidates, filepath.Join(workDir, name))
	}
	candidates = append(candidates, filepath.Join(xdg.ConfigHome, logging.AppDirName, "config.toml"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported settings file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Package cfgsplit holds the cobra commands of the cfgsplit CLI.
package cfgsplit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cfgsplit/internal/version"
	"github.com/arthur-debert/cfgsplit/pkg/config"
	"github.com/arthur-debert/cfgsplit/pkg/errors"
	"github.com/arthur-debert/cfgsplit/pkg/logging"
	"github.com/arthur-debert/cfgsplit/pkg/split"
	"github.com/arthur-debert/cfgsplit/pkg/ui"
)

// DefaultSettingsFile is what gen-config -w writes without a path.
const DefaultSettingsFile = "cfgsplit.toml"

type globalOptions struct {
	verbosity  int
	configFile string
	env        string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "cfgsplit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.env, "env", "e", "", MsgFlagEnv)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newSplitsCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// load runs a resolution pass with the global flags.
func (o *globalOptions) load() (*config.Resolved, ui.Format, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, ui.FormatAuto, err
	}

	resolved, err := config.Load(config.LoadOptions{
		ConfigFile:  o.configFile,
		Environment: o.env,
	})
	if err != nil {
		return nil, ui.FormatAuto, err
	}

	return resolved, format, nil
}

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var mustMatch bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: MsgResolveShort,
		Long:  MsgResolveLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, format, err := opts.load()
			if err != nil {
				return err
			}
			if _, ok := split.Name(resolved.Environment); !ok && mustMatch {
				return errors.Newf(errors.ErrSplitNotFound, MsgErrNoSplit, resolved.Environment).
					WithDetail("environment", resolved.Environment.String())
			}
			return ui.RenderResolve(cmd.OutOrStdout(), resolved, format)
		},
	}
	cmd.Flags().BoolVar(&mustMatch, "require", false, MsgFlagRequire)

	return cmd
}

func newSplitsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "splits",
		Aliases: []string{"list", "ls"},
		Short:   MsgSplitsShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, format, err := opts.load()
			if err != nil {
				return err
			}
			return ui.RenderSplits(cmd.OutOrStdout(), resolved, format)
		},
	}
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	var (
		baseOnly bool
		key      string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, format, err := opts.load()
			if err != nil {
				return err
			}
			if baseOnly {
				return ui.RenderConfig(cmd.OutOrStdout(), resolved.Base, format)
			}
			if key == "" {
				return ui.RenderConfig(cmd.OutOrStdout(), resolved.Effective, format)
			}

			value, ok := resolved.LookupPath(key)
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrNoKey, key).WithDetail("key", key)
			}
			return ui.RenderValue(cmd.OutOrStdout(), key, value, format)
		},
	}
	cmd.Flags().BoolVar(&baseOnly, "base", false, MsgFlagBase)
	cmd.Flags().StringVarP(&key, "key", "k", "", MsgFlagKey)
	cmd.MarkFlagsMutuallyExclusive("base", "key")

	return cmd
}

func newExplainCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: MsgExplainShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, format, err := opts.load()
			if err != nil {
				return err
			}
			return ui.RenderExplain(cmd.OutOrStdout(), resolved, format)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config [path]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := DefaultSettingsFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeSettingsFile(path, content, force); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("Settings file written")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func writeSettingsFile(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileExists, "%s already exists, use --force to overwrite", path).
			WithDetail("path", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/dotfiles/internal/version"
	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/installer"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/manifest"
	"github.com/arthur-debert/dotfiles/pkg/ui/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		home      string
		noColor   bool
		settings  *config.Settings
	)

	rootCmd := &cobra.Command{
		Use:     "dotfiles [flags] <manifest>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load()
			if err != nil {
				return err
			}

			s.Verbosity += verbosity
			if home != "" {
				s.Home = home
			}
			if noColor {
				s.Color = config.ColorNever
			}
			settings = s

			logging.SetupLogger(s.Verbosity, s.Log.File)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], settings)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&home, "home", "", MsgFlagHome)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(func() *config.Settings { return settings }))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newConfigCmd(current func() *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := current().TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// runInstall loads the manifest at manifestArg and installs every entry,
// reporting as it goes. Sources resolve against the manifest's directory.
func runInstall(cmd *cobra.Command, manifestArg string, s *config.Settings) error {
	logger := logging.GetLogger("cli.install")
	out := output.NewRenderer(cmd.OutOrStdout(), s.Color)

	manifestPath, err := filepath.Abs(manifestArg)
	if err != nil {
		return err
	}
	if resolved, err := filepath.EvalSymlinks(manifestPath); err == nil {
		manifestPath = resolved
	}

	m, err := manifest.Load(filesystem.NewOS(), manifestPath)
	if err != nil {
		return err
	}

	out.Using(filepath.Base(manifestPath))

	if m.Len() == 0 {
		out.NoConfigs()
		return nil
	}

	inst, err := installer.New(filepath.Dir(manifestPath), installer.WithHome(s.Home))
	if err != nil {
		return err
	}

	logger.Info().
		Str("manifest", manifestPath).
		Str("baseDir", inst.BaseDir()).
		Str("home", inst.Home()).
		Int("entries", m.Len()).
		Msg("Starting install")

	for _, named := range m.Entries {
		out.Installing(named.Name)
		result, err := inst.Install(named.Name, named.Entry)
		if err != nil {
			return err
		}
		out.Result(result)
	}

	out.Summary(inst.Dependencies())
	return nil
}

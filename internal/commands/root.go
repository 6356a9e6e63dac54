package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/txreport/txreport/internal/buildinfo"
	"github.com/txreport/txreport/internal/config"
	"github.com/txreport/txreport/internal/logging"
	"github.com/txreport/txreport/internal/menu"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "txreport",
		Short:   "Balance, largest transaction and counts from a transactions CSV",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return menu.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger).Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", config.FileName, "config file (defaults apply when missing)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newReportCommand(flags))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// load reads the config and builds the logger for a command invocation.
func (f *globalFlags) load(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.LoadOrDefault(f.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	logger.Debug("config loaded", "path", f.configPath, "default_input", cfg.Input.DefaultPath)

	return cfg, logger, nil
}

package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/txreport/txreport/internal/config"
	"github.com/txreport/txreport/internal/console"
	"github.com/txreport/txreport/internal/loader"
	"github.com/txreport/txreport/internal/report"
)

func newReportCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "report <balance|highest|counts|full> [file]",
		Short:     "Print one report without the interactive menu",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"balance", "highest", "counts", "full"},
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := report.ParseView(args[0])
			if err != nil {
				return err
			}

			cfg, logger, err := flags.load(cmd)
			if err != nil {
				return err
			}

			path := cfg.Input.DefaultPath
			if len(args) > 1 {
				path = args[1]
			}
			return runReport(cmd.OutOrStdout(), cfg, logger, view, path)
		},
	}
	return cmd
}

func runReport(w io.Writer, cfg *config.Config, logger *log.Logger, view report.View, path string) error {
	res, err := loader.LoadWithStats(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded transactions",
		"path", path,
		"lines", res.Lines,
		"accepted", len(res.Transactions),
		"skipped", res.Skipped)

	printer := console.NewPrinter(w, console.Options{Color: cfg.Display.Color})
	reporter := report.New(report.Labels{Credit: cfg.Kinds.Credit, Debit: cfg.Kinds.Debit})
	if err := printer.Report(reporter, view, res.Transactions); err != nil {
		return fmt.Errorf("%s report for %s: %w", view, path, err)
	}
	return nil
}

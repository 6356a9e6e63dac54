package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/txreport/txreport/internal/config"
	"github.com/txreport/txreport/internal/console"
	"github.com/txreport/txreport/internal/loader"
	"github.com/txreport/txreport/internal/model"
	"github.com/txreport/txreport/internal/report"
)

// Main menu options.
const (
	optLoad = "1"
	optExit = "2"
)

// Report menu options.
const (
	optBalance = "1"
	optHighest = "2"
	optCounts  = "3"
	optFull    = "4"
	optBack    = "5"
)

// Session runs the interactive two-level menu.
type Session struct {
	menu        config.MenuConfig
	defaultPath string
	printer     *console.Printer
	prompter    *console.Prompter
	reporter    *report.Reporter
	logger      *log.Logger
}

// NewSession creates a Session reading keystrokes from in and writing to out.
func NewSession(in io.Reader, out io.Writer, cfg *config.Config, logger *log.Logger) *Session {
	printer := console.NewPrinter(out, console.Options{
		Color:       cfg.Display.Color,
		ClearScreen: cfg.Display.ClearScreen,
	})
	return &Session{
		menu:        cfg.Menu,
		defaultPath: cfg.Input.DefaultPath,
		printer:     printer,
		prompter:    console.NewPrompter(in, printer),
		reporter:    report.New(report.Labels{Credit: cfg.Kinds.Credit, Debit: cfg.Kinds.Debit}),
		logger:      logger,
	}
}

// Run shows the main menu until the user exits or input ends.
func (s *Session) Run() error {
	err := s.mainLoop()
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed, leaving menu")
		return nil
	}
	return err
}

func (s *Session) mainLoop() error {
	for {
		s.printer.Clear()
		s.printer.Heading(s.menu.MainTitle)
		s.printer.Option(1, s.menu.LoadFile)
		s.printer.Option(2, s.menu.Exit)
		s.printer.Println("")

		opt, err := s.prompter.ReadOption(s.menu.Select)
		if err != nil {
			return err
		}
		s.logger.Debug("main menu", "option", opt)

		switch opt {
		case optLoad:
			if err := s.loadAndReport(); err != nil {
				return err
			}
		case optExit:
			s.printer.Println("")
			s.printer.Println(s.menu.Goodbye)
			return nil
		default:
			s.printer.Warning(s.menu.InvalidOption)
		}

		if err := s.prompter.Pause(s.menu.Continue); err != nil {
			return err
		}
	}
}

// loadAndReport prompts for a path, loads it and enters the report menu.
// Load failures are shown as warnings and return to the main menu.
func (s *Session) loadAndReport() error {
	s.printer.Println("")
	path, err := s.prompter.ReadPath(expand(s.menu.PathPrompt, s.defaultPath), s.defaultPath)
	if err != nil {
		return err
	}

	res, err := loader.LoadWithStats(path)
	if errors.Is(err, loader.ErrFileNotFound) {
		s.logger.Debug("input file not found", "path", path)
		s.printer.Warning(expand(s.menu.FileNotFound, path))
		return nil
	}
	if err != nil {
		s.logger.Error("loading transactions", "path", path, "err", err)
		s.printer.Warning(err.Error())
		return nil
	}
	s.logger.Debug("loaded transactions",
		"path", path,
		"lines", res.Lines,
		"accepted", len(res.Transactions),
		"skipped", res.Skipped)

	if len(res.Transactions) == 0 {
		s.printer.Warning(s.menu.NoTransactions)
		return nil
	}
	return s.reportLoop(res.Transactions)
}

func (s *Session) reportLoop(txns []model.Transaction) error {
	views := map[string]struct {
		view    report.View
		heading string
	}{
		optBalance: {report.ViewBalance, s.menu.BalanceHeading},
		optHighest: {report.ViewHighest, s.menu.HighestHeading},
		optCounts:  {report.ViewCounts, s.menu.CountsHeading},
		optFull:    {report.ViewFull, s.menu.FullHeading},
	}

	for {
		s.printer.Clear()
		s.printer.Heading(s.menu.ReportTitle)
		s.printer.Option(1, s.menu.Balance)
		s.printer.Option(2, s.menu.Highest)
		s.printer.Option(3, s.menu.Counts)
		s.printer.Option(4, s.menu.Full)
		s.printer.Option(5, s.menu.Back)
		s.printer.Println("")

		opt, err := s.prompter.ReadOption(s.menu.Select)
		if err != nil {
			return err
		}
		s.logger.Debug("report menu", "option", opt)

		if opt == optBack {
			return nil
		}

		s.printer.Separator()
		if v, ok := views[opt]; ok {
			s.printer.Heading(v.heading)
			if err := s.printer.Report(s.reporter, v.view, txns); err != nil {
				s.printer.Warning(err.Error())
			}
			s.printer.Separator()
		} else {
			s.printer.Warning(s.menu.InvalidOption)
		}

		if err := s.prompter.Pause(s.menu.Continue); err != nil {
			return err
		}
	}
}

// expand substitutes arg into format when it carries a %s verb.
func expand(format, arg string) string {
	if strings.Contains(format, "%s") {
		return fmt.Sprintf(format, arg)
	}
	return format
}

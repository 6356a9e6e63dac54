package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"

	"github.com/txreport/txreport/internal/model"
	"github.com/txreport/txreport/internal/report"
)

// Separator frames every report block.
const Separator = "\n====================================\n"

const (
	clearSequence = "\033[H\033[2J"
	bell          = "\a"
	warningPrefix = "⚠️ "
)

// Options controls how a Printer renders.
type Options struct {
	Color       bool
	ClearScreen bool
}

// Printer writes menus, warnings and report views to an output stream.
type Printer struct {
	out      io.Writer
	terminal bool
	clear    bool

	heading *color.Color
	warning *color.Color
	value   *color.Color
}

// NewPrinter creates a Printer. Color and screen clearing are only used
// when out is a terminal.
func NewPrinter(out io.Writer, opts Options) *Printer {
	p := &Printer{
		out:      out,
		terminal: IsTerminal(out),
		heading:  color.New(color.Bold),
		warning:  color.New(color.FgYellow),
		value:    color.New(color.FgCyan, color.Bold),
	}
	p.clear = opts.ClearScreen && p.terminal

	for _, c := range []*color.Color{p.heading, p.warning, p.value} {
		if opts.Color && p.terminal {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Writer returns the underlying output stream.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Clear clears the screen when enabled.
func (p *Printer) Clear() {
	if p.clear {
		fmt.Fprint(p.out, clearSequence)
	}
}

// Bell emits an audible alert.
func (p *Printer) Bell() {
	fmt.Fprint(p.out, bell)
}

// Print writes s without a trailing newline.
func (p *Printer) Print(s string) {
	fmt.Fprint(p.out, s)
}

// Println writes s followed by a newline.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Heading writes a bold title followed by a blank line.
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.out, p.heading.Sprint(title))
	fmt.Fprintln(p.out)
}

// Option writes one numbered menu entry.
func (p *Printer) Option(n int, label string) {
	fmt.Fprintf(p.out, "%d. %s\n", n, label)
}

// Separator writes the block separator.
func (p *Printer) Separator() {
	fmt.Fprint(p.out, Separator+"\n")
}

// Warning writes a highlighted warning line.
func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.out, p.warning.Sprint(warningPrefix+msg))
}

// Balance writes the balance view.
func (p *Printer) Balance(balance decimal.Decimal) {
	fmt.Fprintf(p.out, "Balance Final: %s\n", p.value.Sprint(FormatAmount(balance)))
}

// Highest writes the highest-transaction view.
func (p *Printer) Highest(txn model.Transaction) {
	fmt.Fprintf(p.out, "Transacción de Mayor Monto: ID %d - %s\n", txn.ID, p.value.Sprint(FormatAmount(txn.Amount)))
}

// Counts writes the per-kind counts view.
func (p *Printer) Counts(c report.Counts, labels report.Labels) {
	fmt.Fprintf(p.out, "Conteo de Transacciones: %s: %s %s: %s\n",
		labels.Credit, p.value.Sprint(c.Credit),
		labels.Debit, p.value.Sprint(c.Debit))
}

// Summary writes all three views.
func (p *Printer) Summary(s report.Summary, labels report.Labels) {
	p.Balance(s.Balance)
	p.Highest(s.Highest)
	p.Counts(s.Counts, labels)
}

// FormatAmount renders d keeping the number of decimal places it was
// parsed or computed with, so 70.00 stays "70.00".
func FormatAmount(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}

// Report computes view over txns with r and writes it.
func (p *Printer) Report(r *report.Reporter, view report.View, txns []model.Transaction) error {
	switch view {
	case report.ViewBalance:
		p.Balance(r.Balance(txns))
	case report.ViewHighest:
		highest, err := r.Highest(txns)
		if err != nil {
			return err
		}
		p.Highest(highest)
	case report.ViewCounts:
		p.Counts(r.Counts(txns), r.Labels())
	case report.ViewFull:
		summary, err := r.Full(txns)
		if err != nil {
			return err
		}
		p.Summary(summary, r.Labels())
	default:
		return fmt.Errorf("unknown report %q", view)
	}
	return nil
}

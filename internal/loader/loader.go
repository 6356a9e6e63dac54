package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/txreport/txreport/internal/model"
)

// ErrFileNotFound is returned by Load when the input path does not name a regular file.
var ErrFileNotFound = errors.New("file not found")

const (
	numFields = 3
	colID     = 0
	colKind   = 1
	colAmount = 2
	separator = ","

	// maxScale is the most decimal places an amount may carry.
	maxScale = 28
)

// Result holds the accepted transactions plus row statistics for a parse.
type Result struct {
	Transactions []model.Transaction
	Lines        int // data lines read, header excluded
	Skipped      int // data lines dropped as malformed
}

// Load reads the transactions CSV at path.
func Load(path string) ([]model.Transaction, error) {
	res, err := LoadWithStats(path)
	if err != nil {
		return nil, err
	}
	return res.Transactions, nil
}

// LoadWithStats is Load plus the row statistics of the parse.
func LoadWithStats(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseData(data), nil
}

// Parse reads transactions from r. The first line is a header and is never
// inspected. Malformed data lines are dropped without error.
func Parse(r io.Reader) ([]model.Transaction, error) {
	res, err := ParseWithStats(r)
	if err != nil {
		return nil, err
	}
	return res.Transactions, nil
}

// ParseWithStats is Parse plus the row statistics.
func ParseWithStats(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("reading transactions CSV: %w", err)
	}
	return parseData(data), nil
}

// parseData splits data into lines on '\n', dropping a trailing '\r' from
// each. Line length is unbounded.
func parseData(data []byte) Result {
	res := Result{Transactions: []model.Transaction{}}

	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return res
	}

	// Skip header row.
	for _, line := range lines[1:] {
		res.Lines++
		txn, ok := ParseLine(strings.TrimSuffix(line, "\r"))
		if !ok {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, txn)
	}
	return res
}

// ParseLine converts one data line to a Transaction. It reports false when
// the line does not have exactly three fields or the id or amount do not parse.
func ParseLine(line string) (model.Transaction, bool) {
	fields := strings.Split(line, separator)
	if len(fields) != numFields {
		return model.Transaction{}, false
	}

	id, err := parseID(fields[colID])
	if err != nil {
		return model.Transaction{}, false
	}

	amount, err := parseAmount(fields[colAmount])
	if err != nil {
		return model.Transaction{}, false
	}

	return model.Transaction{
		ID:     id,
		Kind:   strings.TrimSpace(fields[colKind]),
		Amount: amount,
	}, true
}

func parseID(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing id %q: %w", s, err)
	}
	return int(n), nil
}

// parseAmount accepts an optionally signed decimal with '.' as the separator.
// Exponent notation and more than maxScale decimal places are rejected.
func parseAmount(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if strings.ContainsAny(v, "eE") {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: exponent notation not supported", s)
	}
	if rest, ok := strings.CutPrefix(v, "+"); ok {
		if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
			return decimal.Decimal{}, fmt.Errorf("parsing amount %q: repeated sign", s)
		}
		v = rest
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if -d.Exponent() > maxScale {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: more than %d decimal places", s, maxScale)
	}
	return d, nil
}

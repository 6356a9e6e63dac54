package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestLoad_Testdata(t *testing.T) {
	txns, err := Load("../../testdata/transactions.csv")
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, 1, txns[0].ID)
	assert.Equal(t, "Crédito", txns[0].Kind)
	assert.True(t, txns[0].Amount.Equal(dec("100.00")))

	assert.Equal(t, 2, txns[1].ID)
	assert.Equal(t, "Débito", txns[1].Kind)
	assert.True(t, txns[1].Amount.Equal(dec("40")))

	assert.Equal(t, 3, txns[2].ID)
}

func TestLoadWithStats_Mixed(t *testing.T) {
	res, err := LoadWithStats("../../testdata/mixed.csv")
	require.NoError(t, err)

	assert.Equal(t, 10, res.Lines)
	assert.Equal(t, 5, res.Skipped)
	require.Len(t, res.Transactions, 5)

	// File order is preserved across dropped rows.
	ids := make([]int, len(res.Transactions))
	for i, txn := range res.Transactions {
		ids[i] = txn.ID
	}
	assert.Equal(t, []int{1, 2, 7, 8, 9}, ids)

	assert.Equal(t, "crédito", res.Transactions[2].Kind, "kind label should be trimmed")
	assert.True(t, res.Transactions[2].Amount.Equal(dec("20")))
	assert.True(t, res.Transactions[4].Amount.Equal(dec("-5.5")))
}

func TestLoad_FileNotFound(t *testing.T) {
	txns, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Nil(t, txns)
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoad_HeaderOnly(t *testing.T) {
	txns, err := Load("../../testdata/header_only.csv")
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestLoad_CRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.csv")
	err := os.WriteFile(path, []byte("id,tipo,monto\r\n1,Crédito,10.00\r\n2,Débito,3.50\r\n"), 0o644)
	require.NoError(t, err)

	txns, err := Load(path)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.True(t, txns[1].Amount.Equal(dec("3.50")))
}

func TestParse_Empty(t *testing.T) {
	txns, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestParse_HeaderNotValidated(t *testing.T) {
	// A header that looks like data is still skipped.
	txns, err := Parse(strings.NewReader("1,Crédito,99.00\n2,Débito,1.00\n"))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, 2, txns[0].ID)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		ok     bool
		id     int
		kind   string
		amount string
	}{
		{"1,Crédito,150.50", true, 1, "Crédito", "150.50"},
		{" 2 ,Débito, 40 ", true, 2, "Débito", "40"},
		{"-3,Crédito,-7.25", true, -3, "Crédito", "-7.25"},
		{"+4,Crédito,+7.25", true, 4, "Crédito", "7.25"},
		{"5,  Otro  ,0", true, 5, "Otro", "0"},
		{"6,,1.5", true, 6, "", "1.5"},
		{"7,Crédito,.5", true, 7, "Crédito", "0.5"},
		{"4,Crédito,abc", false, 0, "", ""},
		{"x,Crédito,1.00", false, 0, "", ""},
		{"1.5,Crédito,1.00", false, 0, "", ""},
		{"1,Crédito", false, 0, "", ""},
		{"1,Crédito,1.00,extra", false, 0, "", ""},
		{"1,Crédito,1,000.00", false, 0, "", ""},
		{"1,Crédito,", false, 0, "", ""},
		{"1,Crédito,+", false, 0, "", ""},
		{"1,Crédito,++1", false, 0, "", ""},
		{"1,Crédito,+-1", false, 0, "", ""},
		{"1,Crédito,--1", false, 0, "", ""},
		{"1,Crédito,1e3", false, 0, "", ""},
		{"1,Crédito,2.5E2", false, 0, "", ""},
		{"1,Crédito,1e-100000000", false, 0, "", ""},
		{"1,Crédito,0." + strings.Repeat("1", 29), false, 0, "", ""},
		{"8,Crédito,0." + strings.Repeat("1", 28), true, 8, "Crédito", "0." + strings.Repeat("1", 28)},
		{"99999999999,Crédito,1.00", false, 0, "", ""},
		{"", false, 0, "", ""},
	}
	for _, tt := range tests {
		txn, ok := ParseLine(tt.line)
		require.Equal(t, tt.ok, ok, "ParseLine(%q)", tt.line)
		if !tt.ok {
			continue
		}
		assert.Equal(t, tt.id, txn.ID, "id for %q", tt.line)
		assert.Equal(t, tt.kind, txn.Kind, "kind for %q", tt.line)
		assert.True(t, txn.Amount.Equal(dec(tt.amount)), "amount for %q: got %s", tt.line, txn.Amount)
	}
}

func TestParse_LongLine(t *testing.T) {
	// A valid row with a kind label over 1 MiB, between two ordinary rows.
	long := "9," + strings.Repeat("x", 2<<20) + ",1.00"
	input := "h\n1,Crédito,5.00\n" + long + "\n2,Débito,1.00\n"

	res, err := ParseWithStats(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 3)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, []int{1, 9, 2}, []int{res.Transactions[0].ID, res.Transactions[1].ID, res.Transactions[2].ID})
	assert.Len(t, res.Transactions[1].Kind, 2<<20)
}

func TestParse_LongMalformedLine(t *testing.T) {
	input := "h\n1,Crédito,5.00\n" + strings.Repeat(",", 2<<20) + "\n2,Débito,1.00"

	res, err := ParseWithStats(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, res.Transactions, 2)
	assert.Equal(t, 3, res.Lines)
	assert.Equal(t, 1, res.Skipped)
}

func TestParse_CountMatchesValidLines(t *testing.T) {
	input := strings.Join([]string{
		"header",
		"1,Crédito,100.00",
		"2,Débito,40.00",
		"4,Crédito,abc",
		"3,Crédito,10.00",
	}, "\n")

	txns, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, 3, txns[2].ID)
}

package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1.500"},
		{250000, "250.000"},
		{1234567, "1.234.567"},
		{50000000, "50.000.000"},
		{-1500, "(1.500)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(decimal.NewFromInt(tt.in)))
	}

	t.Run("rounds to whole rupiah", func(t *testing.T) {
		assert.Equal(t, "1.235", FormatRupiah(decimal.NewFromFloat(1234.6)))
	})
}

func TestFormatRupiahOrDash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", FormatRupiahOrDash(decimal.Zero))
	assert.Equal(t, "1.000", FormatRupiahOrDash(decimal.NewFromInt(1000)))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Kas", Truncate("Kas", 10))
	assert.Equal(t, "Pendapa...", Truncate("Pendapatan Jasa Simpan Pinjam", 10))
	assert.Equal(t, "Pen", Truncate("Pendapatan", 3))
}

func TestDocumentRender(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Title:     "Neraca Saldo BUMDes",
		Subtitles: []string{"Periode: Maret 2025"},
		Header:    []string{"No", "Akun", "Debit (Rp)"},
		Widths:    []float64{20, 120, 50},
		Aligns:    []string{"C", "L", "R"},
		Rows: [][]string{
			{"1", "Kas", "50.000.000"},
			{"", "Jumlah", "50.000.000"},
		},
		BoldRows: map[int]bool{1: true},
	}

	data, err := doc.Render()
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF stream")
}

func TestDocumentRenderDefaultsWidths(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Title:  "Laporan",
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}},
	}

	data, err := doc.Render()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

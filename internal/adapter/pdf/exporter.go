// Package pdf lays out finalized tabular datasets as printable bordered
// documents with a title and period header.
package pdf

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	pageWidth  = 190.0 // printable A4 width in mm
	footerText = "Dicetak dari Sistem Akuntansi BUMDes"
)

// Document is a finalized tabular dataset: header row plus ordered data
// rows, every cell pre-formatted as display text.
type Document struct {
	Title     string
	Subtitles []string
	Header    []string
	Widths    []float64 // per-column mm; when empty, columns share the page evenly
	Aligns    []string  // "L", "C" or "R" per column; defaults to "C"
	Rows      [][]string
	BoldRows  map[int]bool // indexes into Rows rendered bold (totals, result lines)
}

// Render lays the document out and returns the PDF byte stream.
func (d *Document) Render() ([]byte, error) {
	p := fpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.AddPage()

	p.SetFont("Arial", "B", 14)
	p.CellFormat(0, 10, tr(d.Title), "", 1, "C", false, 0, "")
	p.SetFont("Arial", "", 12)
	for _, sub := range d.Subtitles {
		p.CellFormat(0, 8, tr(sub), "", 1, "C", false, 0, "")
	}
	p.Ln(5)

	widths := d.Widths
	if len(widths) == 0 {
		widths = make([]float64, len(d.Header))
		for i := range widths {
			widths[i] = pageWidth / float64(len(d.Header))
		}
	}

	p.SetFont("Arial", "B", 10)
	for i, h := range d.Header {
		p.CellFormat(widths[i], 10, tr(h), "1", 0, "C", false, 0, "")
	}
	p.Ln(-1)

	p.SetFont("Arial", "", 9)
	for rowIdx, row := range d.Rows {
		if d.BoldRows[rowIdx] {
			p.SetFont("Arial", "B", 9)
		}
		for i, cell := range row {
			align := "C"
			if i < len(d.Aligns) && d.Aligns[i] != "" {
				align = d.Aligns[i]
			}
			p.CellFormat(widths[i], 8, tr(cell), "1", 0, align, false, 0, "")
		}
		p.Ln(-1)
		if d.BoldRows[rowIdx] {
			p.SetFont("Arial", "", 9)
		}
	}

	p.Ln(5)
	p.SetFont("Arial", "I", 8)
	p.CellFormat(0, 5, tr(footerText), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatRupiah renders an amount with "." thousands separators and
// parentheses for negatives, the presentation the printed reports use.
func FormatRupiah(d decimal.Decimal) string {
	rounded := d.Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if rounded.IsNegative() {
		return "(" + b.String() + ")"
	}
	return b.String()
}

// FormatRupiahOrDash renders zero as "-", used by the trial balance table.
func FormatRupiahOrDash(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return FormatRupiah(d)
}

// Truncate shortens a cell to fit its column.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

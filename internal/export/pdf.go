package export

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// DejaVu Sans Condensed, as shipped with fpdf. A UTF-8 font keeps names
// and addresses that the core PDF fonts cannot encode.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

const pdfFont = "DejaVu"

// Column widths in mm for a Letter page with 10mm margins
var pdfColumnWidths = []float64{30, 50, 25, 38, 34, 18}

const (
	pdfFontSize   = 9
	pdfLineHeight = 4.5
	pdfPadding    = 1.5
	pdfHeaderPad  = 3
)

type rgb struct{ r, g, b int }

var (
	pdfHeaderFill = rgb{128, 128, 128} // grey
	pdfHeaderText = rgb{245, 245, 245} // whitesmoke
	pdfBodyFill   = rgb{245, 245, 220} // beige
	pdfGrid       = rgb{0, 0, 0}
)

// newPDF returns a Letter document with the table font loaded
func newPDF() (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddUTF8FontFromBytes(pdfFont, "", fontRegular)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", fontBold)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to load PDF font: %w", err)
	}
	pdf.SetFont(pdfFont, "", pdfFontSize)
	return pdf, nil
}

// WritePDF renders the leads as a single table on Letter pages: a grey header
// row in bold white, beige body rows, a black grid, centred cells.
// Rows that do not fit start a new page with the header repeated.
func WritePDF(w io.Writer, leads []*models.Lead) error {
	pdf, err := newPDF()
	if err != nil {
		return err
	}
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(pdfGrid.r, pdfGrid.g, pdfGrid.b)

	pageW, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	var tableW float64
	for _, cw := range pdfColumnWidths {
		tableW += cw
	}
	left := (pageW - tableW) / 2

	header := func() {
		pdf.SetFont(pdfFont, "B", pdfFontSize)
		pdf.SetFillColor(pdfHeaderFill.r, pdfHeaderFill.g, pdfHeaderFill.b)
		pdf.SetTextColor(pdfHeaderText.r, pdfHeaderText.g, pdfHeaderText.b)
		drawRow(pdf, left, Headers, pdfHeaderPad)
		pdf.SetFont(pdfFont, "", pdfFontSize)
		pdf.SetFillColor(pdfBodyFill.r, pdfBodyFill.g, pdfBodyFill.b)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	header()
	for _, lead := range leads {
		row := Row(lead)
		if pdf.GetY()+rowHeight(pdf, row, pdfPadding) > pageH-bottom {
			pdf.AddPage()
			header()
		}
		drawRow(pdf, left, row, pdfPadding)
	}

	return pdf.Output(w)
}

// rowHeight is the height of the tallest wrapped cell in row
func rowHeight(pdf *fpdf.Fpdf, cells []string, pad float64) float64 {
	lines := 1
	for i, text := range cells {
		if n := len(wrapCell(pdf, text, pdfColumnWidths[i]-2*pdfPadding)); n > lines {
			lines = n
		}
	}
	return float64(lines)*pdfLineHeight + 2*pad
}

// drawRow draws one table row at the current Y and moves below it
func drawRow(pdf *fpdf.Fpdf, left float64, cells []string, pad float64) {
	y := pdf.GetY()
	h := rowHeight(pdf, cells, pad)

	x := left
	for i, text := range cells {
		cw := pdfColumnWidths[i]
		pdf.Rect(x, y, cw, h, "FD")

		lines := wrapCell(pdf, text, cw-2*pdfPadding)
		textY := y + (h-float64(len(lines))*pdfLineHeight)/2
		for j, line := range lines {
			pdf.SetXY(x, textY+float64(j)*pdfLineHeight)
			pdf.CellFormat(cw, pdfLineHeight, line, "", 0, "C", false, 0, "")
		}
		x += cw
	}
	pdf.SetXY(left, y+h)
}

// wrapCell breaks text into lines no wider than w in the current font.
// Words wider than the cell are cut between runes.
func wrapCell(pdf *fpdf.Fpdf, text string, w float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if pdf.GetStringWidth(candidate) <= w {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			runes := []rune(word)
			for pdf.GetStringWidth(string(runes)) > w && len(runes) > 1 {
				cut := len(runes) - 1
				for cut > 1 && pdf.GetStringWidth(string(runes[:cut])) > w {
					cut--
				}
				lines = append(lines, string(runes[:cut]))
				runes = runes[cut:]
			}
			line = string(runes)
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

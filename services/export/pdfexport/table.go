package pdfexport

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/trezcool/rapor/core/tabular"
)

type cellStyle struct {
	font string
	text rgb
	fill *rgb
}

var (
	headerStyle = cellStyle{font: "B", text: headerText, fill: &headerFill}
	bodyStyle   = cellStyle{text: bodyText}
	stripeStyle = cellStyle{text: bodyText, fill: &stripeFill}
)

// table lays out a Document under the page header block.
// Cell text is wrapped, never truncated; a row taller than what is left of the page continues on the next one,
// and every page starts with the column headers.
type table struct {
	pdf    *gofpdf.Fpdf
	header []string
	rows   [][]string
	widths []float64

	pad, lineH float64
	bottom     float64
	y          float64
	pageRows   int // rows drawn on the current page, after its header
}

func newTable(pdf *gofpdf.Fpdf, tr func(string) string, doc tabular.Document) *table {
	t := &table{
		pdf:    pdf,
		header: make([]string, len(doc.Columns)),
		rows:   make([][]string, 0, len(doc.Rows)),
		pad:    pdf.PointConvert(paddingPt),
		lineH:  pdf.PointConvert(tableSize) * lineSpread,
	}
	_, pageH := pdf.GetPageSize()
	t.bottom = pageH - marginY

	for i, col := range doc.Columns {
		t.header[i] = tr(col)
	}
	for _, row := range doc.Rows {
		texts := make([]string, len(doc.Columns))
		for i := range texts {
			var c tabular.Cell // missing cells are undefined
			if i < len(row) {
				c = row[i]
			}
			texts[i] = tr(c.Display())
		}
		t.rows = append(t.rows, texts)
	}
	t.layoutColumns()
	return t
}

// layoutColumns gives each column its natural width, then scales all of them to fill the page width.
func (t *table) layoutColumns() {
	pageW, _ := t.pdf.GetPageSize()
	natural := make([]float64, len(t.header))
	var total float64

	t.pdf.SetFont("Helvetica", "B", tableSize)
	for i, h := range t.header {
		natural[i] = t.pdf.GetStringWidth(h)
	}
	t.pdf.SetFont("Helvetica", "", tableSize)
	for _, row := range t.rows {
		for i, s := range row {
			if w := t.pdf.GetStringWidth(s); w > natural[i] {
				natural[i] = w
			}
		}
	}
	for i := range natural {
		natural[i] += 2 * t.pad
		total += natural[i]
	}

	scale := (pageW - 2*marginX) / total
	t.widths = make([]float64, len(natural))
	for i, w := range natural {
		t.widths[i] = w * scale
	}
}

func (t *table) wrap(texts []string, style cellStyle) [][]string {
	t.pdf.SetFont("Helvetica", style.font, tableSize)
	lines := make([][]string, len(texts))
	for i, s := range texts {
		for _, l := range t.pdf.SplitLines([]byte(s), t.widths[i]-2*t.pad) {
			lines[i] = append(lines[i], string(l))
		}
		if len(lines[i]) == 0 {
			lines[i] = []string{""}
		}
	}
	return lines
}

func (t *table) draw() {
	t.y = tableY
	t.drawHeader()
	for i, row := range t.rows {
		style := bodyStyle
		if i%2 == 1 {
			style = stripeStyle
		}
		t.drawRow(t.wrap(row, style), style)
	}
}

func (t *table) drawHeader() {
	lines := t.wrap(t.header, headerStyle)
	t.segment(lines, maxLines(lines), headerStyle)
	t.pageRows = 0
}

func (t *table) newPage() {
	t.pdf.AddPage()
	t.y = marginY
	t.drawHeader()
}

func (t *table) drawRow(lines [][]string, style cellStyle) {
	for {
		n := maxLines(lines)
		fit := int((t.bottom - t.y - 2*t.pad) / t.lineH)
		if n <= fit {
			t.segment(lines, n, style)
			t.pageRows++
			return
		}
		if t.pageRows > 0 {
			// start the row on a fresh page before breaking it
			t.newPage()
			continue
		}
		if fit < 1 {
			fit = 1
		}
		t.segment(lines, fit, style)
		for i := range lines {
			if len(lines[i]) > fit {
				lines[i] = lines[i][fit:]
			} else {
				lines[i] = nil
			}
		}
		t.newPage()
	}
}

// segment draws the first `n` lines of every cell of a row.
func (t *table) segment(lines [][]string, n int, style cellStyle) {
	h := float64(n)*t.lineH + 2*t.pad
	x := marginX

	t.pdf.SetFont("Helvetica", style.font, tableSize)
	setTextColor(t.pdf, style.text)
	if style.fill != nil {
		setFillColor(t.pdf, *style.fill)
	}
	for i, w := range t.widths {
		if style.fill != nil {
			t.pdf.Rect(x, t.y, w, h, "F")
		}
		for j := 0; j < n && j < len(lines[i]); j++ {
			t.pdf.SetXY(x+t.pad, t.y+t.pad+float64(j)*t.lineH)
			t.pdf.CellFormat(w-2*t.pad, t.lineH, lines[i][j], "", 0, "L", false, 0, "")
		}
		x += w
	}
	t.y += h
}

func maxLines(lines [][]string) int {
	var max int
	for _, l := range lines {
		if len(l) > max {
			max = len(l)
		}
	}
	return max
}

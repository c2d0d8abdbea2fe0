package pdfexport

import (
	"fmt"
	"io"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/tabular"
)

// page layout, in mm
const (
	marginX    = 14.0
	marginY    = 14.0
	titleY     = 18.0
	stampY     = 25.0
	tableY     = 30.0
	titleSize  = 16.0
	stampSize  = 9.0
	tableSize  = 9.0
	paddingPt  = 4.0
	lineSpread = 1.15
)

const lblPrintedOn = "export.pdf.printedOn"

var Labels = core.Translations{
	lblPrintedOn: {"en": "Printed on: {0}", "id": "Dicetak pada: {0}"},
}

type rgb struct{ r, g, b int }

var (
	headerFill = rgb{79, 70, 229}
	headerText = rgb{255, 255, 255}
	stripeFill = rgb{248, 247, 255}
	bodyText   = rgb{40, 40, 40}
	stampText  = rgb{100, 100, 100}
)

type Option func(exp *Exporter)

// WithClock sets the clock of the "printed on" line.
func WithClock(now func() time.Time) Option {
	return func(exp *Exporter) { exp.now = now }
}

// WithoutCompression leaves page content streams uncompressed.
func WithoutCompression() Option {
	return func(exp *Exporter) { exp.compress = false }
}

// Exporter renders documents as A4 landscape tables, one title and a timestamp on top.
type Exporter struct {
	translator ut.Translator
	now        func() time.Time
	compress   bool
}

var _ tabular.Exporter = (*Exporter)(nil)

func New(translator ut.Translator, opts ...Option) (*Exporter, error) {
	if err := core.RegisterTranslations(translator, Labels); err != nil {
		return nil, errors.Wrap(err, "registering pdf labels")
	}
	exp := &Exporter{translator: translator, now: time.Now, compress: true}
	for _, opt := range opts {
		opt(exp)
	}
	return exp, nil
}

func (exp *Exporter) Extension() string   { return "pdf" }
func (exp *Exporter) ContentType() string { return "application/pdf" }

// printedOn formats `t` like "05 March 2025, 09:07", with the translator's month names.
func (exp *Exporter) printedOn(t time.Time) string {
	stamp := fmt.Sprintf("%02d %s %d, %02d:%02d", t.Day(), exp.translator.MonthWide(t.Month()), t.Year(), t.Hour(), t.Minute())
	return core.T(exp.translator, lblPrintedOn, stamp)
}

func (exp *Exporter) Export(w io.Writer, doc tabular.Document, meta tabular.Meta) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(exp.compress)
	pdf.SetTitle(meta.Title, true)
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(false, marginY)
	pdf.SetCellMargin(0)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginX, titleY, tr(meta.Title))

	pdf.SetFont("Helvetica", "", stampSize)
	setTextColor(pdf, stampText)
	pdf.Text(marginX, stampY, tr(exp.printedOn(exp.now())))

	if len(doc.Columns) > 0 {
		newTable(pdf, tr, doc).draw()
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}

func setTextColor(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFillColor(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

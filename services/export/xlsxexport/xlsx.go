package xlsxexport

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/rapor/core/tabular"
)

const (
	DefaultSheetName = "Data"

	minColWidth  = 12
	maxColWidth  = 50
	colWidthPad  = 4
	maxSheetName = 31
)

// Exporter renders documents as a single-sheet workbook: headers on the first row, then one row per record.
type Exporter struct{}

var _ tabular.Exporter = Exporter{}

func New() Exporter { return Exporter{} }

func (Exporter) Extension() string { return "xlsx" }
func (Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ColumnWidth is the width of a column whose longest text is `l` characters long.
func ColumnWidth(l int) int {
	w := l + colWidthPad
	if w < minColWidth {
		return minColWidth
	}
	if w > maxColWidth {
		return maxColWidth
	}
	return w
}

// SheetName turns `name` into a valid worksheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	// sheet names can neither start nor end with a quote
	for trimmed := ""; trimmed != name; {
		trimmed = name
		name = strings.Trim(strings.TrimSpace(name), "'")
	}
	if name == "" {
		return DefaultSheetName
	}
	return name
}

func cellValue(c tabular.Cell) interface{} {
	if c.Kind() == tabular.KindNumber {
		return c.Value()
	}
	return c.Display()
}

func (Exporter) Export(w io.Writer, doc tabular.Document, meta tabular.Meta) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing workbook")
		}
	}()

	sheet := SheetName(meta.SheetName)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return errors.Wrap(err, "naming sheet")
	}

	header := make([]interface{}, len(doc.Columns))
	for i, col := range doc.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "writing header")
	}

	for r, row := range doc.Rows {
		values := make([]interface{}, len(row))
		for i, c := range row {
			values[i] = cellValue(c)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return errors.Wrap(err, "writing rows")
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "writing row %d", r+1)
		}
	}

	for i := range doc.Columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Wrap(err, "sizing columns")
		}
		if err := f.SetColWidth(sheet, col, col, float64(ColumnWidth(doc.ColumnLen(i)))); err != nil {
			return errors.Wrapf(err, "sizing column %s", col)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

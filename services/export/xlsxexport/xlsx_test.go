package xlsxexport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/rapor/core/tabular"
)

func export(t *testing.T, doc tabular.Document, meta tabular.Meta) *excelize.File {
	var buf bytes.Buffer
	require.NoError(t, New().Export(&buf, doc, meta))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		l, want int
	}{
		{0, 12}, {2, 12}, {8, 12}, {9, 13}, {20, 24}, {46, 50}, {47, 50}, {300, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnWidth(tt.l), "ColumnWidth(%d)", tt.l)
	}
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Grades X IPA 1", SheetName("Grades X IPA 1"))
	assert.Equal(t, "Grades X_IPA_1", SheetName("Grades X/IPA:1"))
	assert.Equal(t, DefaultSheetName, SheetName("  "))
	assert.Equal(t, "Nilai Kelas Dua Belas IPA Satu", SheetName("Nilai Kelas Dua Belas IPA Satu - Matematika"))
	assert.Equal(t, "Grades X IPA 1", SheetName("'Grades X IPA 1'"))
	assert.Equal(t, "Grades ABCDEFGHIJKLMNOPQRSTUVW", SheetName("Grades ABCDEFGHIJKLMNOPQRSTUVW'XYZ"))
	assert.Equal(t, "Grades ABCDEFGHIJKLMNOPQRSTU", SheetName("Grades ABCDEFGHIJKLMNOPQRSTU ' XYZ"))
	assert.Equal(t, DefaultSheetName, SheetName("' '"))
}

func TestExporter_Export_quotedSheetName(t *testing.T) {
	f := export(t, tabular.Document{Columns: []string{"No"}}, tabular.Meta{SheetName: "Grades ABCDEFGHIJKLMNOPQRSTUVW'XYZ"})
	assert.Equal(t, []string{"Grades ABCDEFGHIJKLMNOPQRSTUVW"}, f.GetSheetList())
}

func TestExporter_Export(t *testing.T) {
	doc := tabular.Document{
		Columns: []string{"No", "Student Name", "Midterm", "Final Score"},
		Rows: [][]tabular.Cell{
			{tabular.Int(1), tabular.String("Ani Lestari"), tabular.Int(80), tabular.Int(85)},
			{tabular.Int(2), tabular.String("Bartholomew Montgomery Wiryawan"), tabular.String(""), tabular.Int(35)},
			{tabular.Int(3), tabular.Null(), tabular.Undefined(), tabular.Number(72.5)},
		},
	}
	f := export(t, doc, tabular.Meta{SheetName: "Grades X IPA 1"})

	assert.Equal(t, []string{"Grades X IPA 1"}, f.GetSheetList())
	rows, err := f.GetRows("Grades X IPA 1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"No", "Student Name", "Midterm", "Final Score"},
		{"1", "Ani Lestari", "80", "85"},
		{"2", "Bartholomew Montgomery Wiryawan", "35"},
		{"3", tabular.Placeholder, tabular.Placeholder, "72.5"},
	}, trimRows(rows))

	widths := make([]float64, 0, 4)
	for _, col := range []string{"A", "B", "C", "D"} {
		w, err := f.GetColWidth("Grades X IPA 1", col)
		require.NoError(t, err)
		widths = append(widths, w)
	}
	assert.Equal(t, []float64{12, 35, 12, 15}, widths)
}

// trimRows drops the empty cells between values GetRows keeps, so rows compare by content.
func trimRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				cells = append(cells, c)
			}
		}
		out = append(out, cells)
	}
	return out
}

func TestExporter_Export_empty(t *testing.T) {
	f := export(t, tabular.Document{Columns: []string{"No", "Name"}}, tabular.Meta{})
	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"No", "Name"}}, rows)
}

func TestExporter(t *testing.T) {
	exp := New()
	assert.Equal(t, "xlsx", exp.Extension())
	assert.Equal(t, "Student-Data.xlsx", tabular.Filename(exp, tabular.Meta{Filename: "Student-Data"}))
}

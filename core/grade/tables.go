package grade

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/tabular"
)

func optionalScore(score null.Int) tabular.Cell {
	if !score.Valid {
		return tabular.String("")
	}
	return tabular.Int(score.Int)
}

// SheetTable projects grade records into the grade sheet document.
// Unset scores are empty cells, not placeholders.
func SheetTable(translator ut.Translator, recs []GradeRecord) tabular.Document {
	columns := []string{
		core.T(translator, lblNo),
		core.T(translator, lblStudentName),
		core.T(translator, lblNISN),
		core.T(translator, lblMidterm),
		core.T(translator, lblFinalExam),
		core.T(translator, lblFinalScore),
	}
	return tabular.Build(columns, len(recs), func(i int) []tabular.Cell {
		r := recs[i]
		return []tabular.Cell{
			tabular.Int(i + 1),
			tabular.String(r.StudentName),
			tabular.String(r.StudentNumber),
			optionalScore(r.Midterm),
			optionalScore(r.FinalExam),
			tabular.Int(FinalScore(r.Midterm, r.FinalExam)),
		}
	})
}

func SheetMeta(translator ut.Translator, sh Sheet) tabular.Meta {
	return tabular.Meta{
		Title:     core.T(translator, lblSheetTitle, sh.ClassName, sh.SubjectName),
		Filename:  core.T(translator, lblSheetFilename, sh.ClassName, sh.SubjectName),
		SheetName: core.T(translator, lblSheetName, sh.ClassName),
	}
}

// ReportCardTable projects a student's own grades into the report card document.
func ReportCardTable(translator ut.Translator, grades []SubjectGrade) tabular.Document {
	columns := []string{
		core.T(translator, lblNo),
		core.T(translator, lblSubject),
		core.T(translator, lblCategory),
		core.T(translator, lblMidterm),
		core.T(translator, lblFinalExam),
		core.T(translator, lblFinalScore),
		core.T(translator, lblStatus),
	}
	return tabular.Build(columns, len(grades), func(i int) []tabular.Cell {
		g := grades[i]
		category := g.Category
		if category == "" {
			category = core.T(translator, lblGeneral)
		}
		status := core.T(translator, lblFailed)
		if g.Passed() {
			status = core.T(translator, lblPassed)
		}
		return []tabular.Cell{
			tabular.Int(i + 1),
			tabular.StringOrNull(g.SubjectName),
			tabular.String(category),
			tabular.Int(ValueOrZero(g.Midterm)),
			tabular.Int(ValueOrZero(g.FinalExam)),
			tabular.Int(ValueOrZero(g.FinalScore)),
			tabular.String(status),
		}
	})
}

func ReportCardMeta(translator ut.Translator) tabular.Meta {
	return tabular.Meta{
		Title:     core.T(translator, lblReportTitle),
		Filename:  core.T(translator, lblReportFile),
		SheetName: core.T(translator, lblReportSheet),
	}
}

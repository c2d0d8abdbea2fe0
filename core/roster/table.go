package roster

import (
	ut "github.com/go-playground/universal-translator"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/tabular"
)

// Table projects the roster's students into the student list document.
// Unknown classes and missing contact details are null cells.
func Table(translator ut.Translator, r Roster) tabular.Document {
	columns := []string{
		core.T(translator, lblNo),
		core.T(translator, lblName),
		core.T(translator, lblNISN),
		core.T(translator, lblGender),
		core.T(translator, lblClass),
		core.T(translator, lblAddress),
		core.T(translator, lblPhone),
	}
	return tabular.Build(columns, len(r.Students), func(i int) []tabular.Cell {
		st := r.Students[i]
		return []tabular.Cell{
			tabular.Int(i + 1),
			tabular.String(st.Name),
			tabular.String(st.Number),
			tabular.String(st.Gender),
			tabular.StringOrNull(r.ClassName(st.ClassID)),
			tabular.StringOrNull(st.Address),
			tabular.StringOrNull(st.Phone),
		}
	})
}

func Meta(translator ut.Translator) tabular.Meta {
	return tabular.Meta{
		Title:     core.T(translator, lblTitle),
		Filename:  core.T(translator, lblFilename),
		SheetName: core.T(translator, lblSheetName),
	}
}

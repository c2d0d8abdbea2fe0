package export

import (
	ut "github.com/go-playground/universal-translator"

	"github.com/trezcool/rapor/core/tabular"
	"github.com/trezcool/rapor/services/export/pdfexport"
	"github.com/trezcool/rapor/services/export/xlsxexport"
)

// NewRegistry returns the exporters of every supported format.
func NewRegistry(translator ut.Translator, pdfOpts ...pdfexport.Option) (tabular.Registry, error) {
	pdf, err := pdfexport.New(translator, pdfOpts...)
	if err != nil {
		return nil, err
	}
	return tabular.NewRegistry(pdf, xlsxexport.New()), nil
}

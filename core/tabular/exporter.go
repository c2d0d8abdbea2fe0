package tabular

import (
	"errors"
	"io"
	"sort"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Meta describes the artifact an Exporter produces.
type Meta struct {
	Title     string
	Filename  string // without extension
	SheetName string
}

// Exporter renders a Document into a downloadable artifact.
type Exporter interface {
	Export(w io.Writer, doc Document, meta Meta) error
	Extension() string // without dot
	ContentType() string
}

// Filename returns the artifact file name for `exp`, e.g. "Grades-X.pdf".
func Filename(exp Exporter, meta Meta) string {
	name := strings.TrimSpace(meta.Filename)
	if name == "" {
		name = "export"
	}
	return name + "." + exp.Extension()
}

// Registry maps export formats (file extensions) to their Exporter.
type Registry map[string]Exporter

func NewRegistry(exporters ...Exporter) Registry {
	reg := make(Registry, len(exporters))
	for _, exp := range exporters {
		reg[exp.Extension()] = exp
	}
	return reg
}

func (reg Registry) Get(format string) (Exporter, error) {
	exp, ok := reg[strings.ToLower(strings.TrimPrefix(format, "."))]
	if !ok {
		return nil, ErrUnknownFormat
	}
	return exp, nil
}

func (reg Registry) Formats() []string {
	formats := make([]string, 0, len(reg))
	for f := range reg {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

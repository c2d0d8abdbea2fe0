package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
	"github.com/trezcool/rapor/core/tabular"
)

// sheetOwner owns the sheets opened from the command line. They are closed before the CLI exits.
const sheetOwner = "cli"

func (cli *commandLine) exportGrades(assignmentID int, format, dir string) error {
	ctx := context.Background()
	sh, err := cli.gradeSvc.OpenSheet(ctx, cli.token, sheetOwner, assignmentID)
	if err != nil {
		return err
	}
	defer func() { _ = cli.gradeSvc.CloseSheet(sheetOwner, sh.ID) }()

	return cli.write(grade.SheetTable(cli.translator, sh.Records), grade.SheetMeta(cli.translator, sh), format, dir)
}

func (cli *commandLine) exportReportCard(format, dir string) error {
	grades, err := cli.gradeSvc.ReportCard(context.Background(), cli.token)
	if err != nil {
		return err
	}
	return cli.write(grade.ReportCardTable(cli.translator, grades), grade.ReportCardMeta(cli.translator), format, dir)
}

func (cli *commandLine) exportRoster(filter roster.QueryFilter, format, dir string) error {
	r, err := cli.rosterSvc.Roster(context.Background(), cli.token, filter)
	if err != nil {
		return err
	}
	return cli.write(roster.Table(cli.translator, r), roster.Meta(cli.translator), format, dir)
}

// write renders `doc` in `format` into `dir`, under the file name the exporter gives it.
func (cli *commandLine) write(doc tabular.Document, meta tabular.Meta, format, dir string) (err error) {
	exp, err := cli.exporters.Get(format)
	if err != nil {
		return err
	}

	if doc.IsEmpty() {
		fmt.Fprintln(cli.stdout, "no rows to export: only the header is written")
	}

	path := filepath.Join(dir, tabular.Filename(exp, meta))
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing export file")
		}
	}()

	if err := exp.Export(f, doc, meta); err != nil {
		return errors.Wrapf(err, "exporting %s", exp.Extension())
	}
	fmt.Fprintf(cli.stdout, "%d rows exported to %s\n", len(doc.Rows), path)
	return nil
}

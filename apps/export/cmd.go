package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"golang.org/x/term"

	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
	"github.com/trezcool/rapor/core/tabular"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	token      string // prompted for when empty
	gradeSvc   *grade.Service
	rosterSvc  *roster.Service
	exporters  tabular.Registry
	translator ut.Translator
	stdout     io.Writer
}

func (cli *commandLine) printUsage() {
	formats := strings.Join(cli.exporters.Formats(), "|")
	fmt.Fprintln(cli.stdout, "Usage:")
	fmt.Fprintf(cli.stdout, "  grades -assignment ID [-format %s] [-out DIR] - export a class's grade sheet\n", formats)
	fmt.Fprintf(cli.stdout, "  report [-format %s] [-out DIR] - export your own grade report\n", formats)
	fmt.Fprintf(cli.stdout, "  roster [-format %s] [-class ID] [-search NAME|NISN] [-out DIR] - export the student list\n", formats)
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	gradesCmd := flag.NewFlagSet("grades", flag.ContinueOnError)
	gradesAssignment := gradesCmd.Int("assignment", 0, "The teaching assignment to export the grades of.")
	gradesFormat := gradesCmd.String("format", "pdf", "The export format.")
	gradesOut := gradesCmd.String("out", ".", "The directory to write the file to.")

	reportCmd := flag.NewFlagSet("report", flag.ContinueOnError)
	reportFormat := reportCmd.String("format", "pdf", "The export format.")
	reportOut := reportCmd.String("out", ".", "The directory to write the file to.")

	rosterCmd := flag.NewFlagSet("roster", flag.ContinueOnError)
	rosterFormat := rosterCmd.String("format", "xlsx", "The export format.")
	rosterClass := rosterCmd.Int("class", 0, "Only export the students of this class.")
	rosterSearch := rosterCmd.String("search", "", "Only export the students whose name or NISN matches.")
	rosterOut := rosterCmd.String("out", ".", "The directory to write the file to.")

	for _, fs := range []*flag.FlagSet{gradesCmd, reportCmd, rosterCmd} {
		fs.SetOutput(cli.stdout)
	}

	switch args[1] {
	case "grades":
		if err := gradesCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *gradesAssignment <= 0 {
			gradesCmd.Usage()
			return errHelp
		}
		if err := cli.promptToken(); err != nil {
			return err
		}
		return cli.exportGrades(*gradesAssignment, *gradesFormat, *gradesOut)
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if err := cli.promptToken(); err != nil {
			return err
		}
		return cli.exportReportCard(*reportFormat, *reportOut)
	case "roster":
		if err := rosterCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *rosterClass < 0 {
			rosterCmd.Usage()
			return errHelp
		}
		if err := cli.promptToken(); err != nil {
			return err
		}
		filter := roster.QueryFilter{ClassID: *rosterClass, Search: *rosterSearch}
		return cli.exportRoster(filter, *rosterFormat, *rosterOut)
	default:
		cli.printUsage()
		return errHelp
	}
}

// promptToken asks for the school API token unless it is configured.
func (cli *commandLine) promptToken() error {
	if cli.token != "" {
		return nil
	}
	fmt.Fprint(cli.stdout, "Enter API token:")
	token, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.stdout)
	if err != nil {
		return err
	}
	cli.token = strings.TrimSpace(string(token))
	if cli.token == "" {
		return errors.New("an API token is required")
	}
	return nil
}

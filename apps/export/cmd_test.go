package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
	"github.com/trezcool/rapor/core/tabular"
	"github.com/trezcool/rapor/services/export"
	"github.com/trezcool/rapor/storage/inmem"
	testutil "github.com/trezcool/rapor/tests"
)

func setup(t *testing.T, token string) (*commandLine, *testutil.FakeBackend) {
	backend := &testutil.FakeBackend{
		Assignments: []grade.TeachingAssignment{testutil.ScenarioAssignment()},
		Grades: []grade.SubjectGrade{
			{SubjectID: 5, SubjectName: "Matematika", Midterm: grade.Score(80), FinalExam: grade.Score(70), FinalScore: grade.Score(75)},
		},
		StudentList: []roster.Student{{ID: 1, ClassID: 10, Number: "0051234567", Name: "Ani Lestari"}},
		ClassList:   []roster.Class{{ID: 10, Name: "X IPA 1"}},
	}
	translator := testutil.NewTranslator(t, "en")
	exporters, err := export.NewRegistry(translator)
	require.NoError(t, err)

	return &commandLine{
		token:      token,
		gradeSvc:   grade.NewService(backend, inmem.NewSheetRepository(inmem.Open()), testutil.NewValidator(translator), time.Hour),
		rosterSvc:  roster.NewService(backend),
		exporters:  exporters,
		translator: translator,
		stdout:     new(bytes.Buffer),
	}, backend
}

type cliTest struct {
	name     string
	args     []string // without program name
	wantErr  error
	wantFile string // relative to the output dir
}

func runCLITests(t *testing.T, cli *commandLine, tests []cliTest) {
	for _, tt := range tests {
		dir := t.TempDir()
		args := append([]string{"export"}, tt.args...)
		if len(tt.args) > 0 {
			args = append(args, "-out", dir)
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			data, err := ioutil.ReadFile(filepath.Join(dir, tt.wantFile))
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func Test_commandLine_run(t *testing.T) {
	cli, backend := setup(t, "secret")

	runCLITests(t, cli, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "grades: no assignment", args: []string{"grades"}, wantErr: errHelp},
		{name: "grades: unknown assignment", args: []string{"grades", "-assignment", "9"}, wantErr: grade.ErrAssignmentNotFound},
		{name: "grades: unknown format", args: []string{"grades", "-assignment", "1", "-format", "csv"}, wantErr: tabular.ErrUnknownFormat},
		{name: "grades: pdf", args: []string{"grades", "-assignment", "1"}, wantFile: "Grades-X IPA 1-Matematika.pdf"},
		{name: "grades: xlsx", args: []string{"grades", "-assignment", "1", "-format", "xlsx"}, wantFile: "Grades-X IPA 1-Matematika.xlsx"},
		{name: "report", args: []string{"report"}, wantFile: "My-Grade-Report.pdf"},
		{name: "roster", args: []string{"roster", "-class", "10"}, wantFile: "Student-Data.xlsx"},
		{name: "roster: bad flag", args: []string{"roster", "-class", "abc"}, wantErr: errHelp},
	})

	for _, token := range backend.Tokens {
		assert.Equal(t, "secret", token)
	}
}

func Test_commandLine_promptToken(t *testing.T) {
	origReadPassword := readPasswordFunc
	defer func() { readPasswordFunc = origReadPassword }()

	cli, backend := setup(t, "")
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("prompted\n"), nil }
	runCLITests(t, cli, []cliTest{
		{name: "prompted", args: []string{"report"}, wantFile: "My-Grade-Report.pdf"},
	})
	assert.Equal(t, []string{"prompted"}, backend.Tokens)

	cli, _ = setup(t, "")
	readPasswordFunc = func(fd int) ([]byte, error) { return nil, nil }
	assert.EqualError(t, cli.run([]string{"export", "report"}), "an API token is required")

	cli, _ = setup(t, "")
	errTerm := errors.New("not a terminal")
	readPasswordFunc = func(fd int) ([]byte, error) { return nil, errTerm }
	assert.Equal(t, errTerm, cli.run([]string{"export", "report"}))
}

func Test_commandLine_run_empty(t *testing.T) {
	cli, backend := setup(t, "secret")
	backend.Grades = nil

	runCLITests(t, cli, []cliTest{
		{name: "report without grades", args: []string{"report", "-format", "xlsx"}, wantFile: "My-Grade-Report.xlsx"},
	})
	assert.Contains(t, cli.stdout.(*bytes.Buffer).String(), "no rows to export: only the header is written")
}

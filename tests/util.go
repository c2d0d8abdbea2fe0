package testutil

import (
	"context"
	"sync"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
)

// FakeBackend is an in-memory school API.
// Set the *Err fields to make the matching calls fail.
type FakeBackend struct {
	mu sync.Mutex

	Assignments []grade.TeachingAssignment
	Grades      []grade.SubjectGrade
	StudentList []roster.Student
	ClassList   []roster.Class

	Saved  []grade.SaveGrade
	Tokens []string

	QueryErr error
	SaveErr  error
}

var (
	_ grade.Backend  = (*FakeBackend)(nil)
	_ roster.Backend = (*FakeBackend)(nil)
)

func (b *FakeBackend) record(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Tokens = append(b.Tokens, token)
}

func (b *FakeBackend) TeachingAssignments(_ context.Context, token string) ([]grade.TeachingAssignment, error) {
	b.record(token)
	if b.QueryErr != nil {
		return nil, b.QueryErr
	}
	return b.Assignments, nil
}

func (b *FakeBackend) SaveGrade(_ context.Context, token string, sg grade.SaveGrade) error {
	b.record(token)
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Saved = append(b.Saved, sg)
	return nil
}

func (b *FakeBackend) StudentGrades(_ context.Context, token string) ([]grade.SubjectGrade, error) {
	b.record(token)
	if b.QueryErr != nil {
		return nil, b.QueryErr
	}
	return b.Grades, nil
}

func (b *FakeBackend) Students(_ context.Context, token string) ([]roster.Student, error) {
	b.record(token)
	if b.QueryErr != nil {
		return nil, b.QueryErr
	}
	return b.StudentList, nil
}

func (b *FakeBackend) Classes(_ context.Context, token string) ([]roster.Class, error) {
	b.record(token)
	if b.QueryErr != nil {
		return nil, b.QueryErr
	}
	return b.ClassList, nil
}

// ScenarioAssignment is a class of two students: one fully graded, one missing a midterm.
func ScenarioAssignment() grade.TeachingAssignment {
	return grade.TeachingAssignment{
		ID:          1,
		ClassID:     10,
		ClassName:   "X IPA 1",
		SubjectID:   5,
		SubjectName: "Matematika",
		Students: []grade.EnrolledStudent{
			{ID: 101, Name: "Ani Lestari", Number: "0051234567", Midterm: grade.Score(80), FinalExam: grade.Score(90)},
			{ID: 102, Name: "Budi Santoso", Number: "0051234568", FinalExam: grade.Score(70)},
		},
	}
}

// NewTranslator returns a translator for `locale` with every table label registered.
func NewTranslator(t *testing.T, locale string) ut.Translator {
	translator := core.NewTranslator(locale)
	for _, trs := range []core.Translations{grade.Labels, roster.Labels} {
		if err := core.RegisterTranslations(translator, trs); err != nil {
			t.Fatalf("NewTranslator() failed: %v", err)
		}
	}
	return translator
}

func NewValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

package grade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/tabular"
)

func newTestSheet() Sheet {
	return NewSheet("guru-1", TeachingAssignment{
		ID:          1,
		ClassName:   "X IPA 1",
		SubjectID:   5,
		SubjectName: "Matematika",
		Students: []EnrolledStudent{
			{ID: 101, Name: "Ani Lestari", Number: "0051234567", Midterm: Score(80), FinalExam: Score(90)},
			{ID: 102, Name: "Budi Santoso", Number: "0051234568", FinalExam: Score(70)},
		},
	}, time.Now())
}

func TestNewSheet(t *testing.T) {
	sh := newTestSheet()
	assert.NotEmpty(t, sh.ID)
	require.Len(t, sh.Records, 2)
	assert.Equal(t, 85, sh.Records[0].FinalScore)
	assert.Equal(t, Unset, sh.Records[1].Midterm, "missing scores stay unset")
	assert.Equal(t, 35, sh.Records[1].FinalScore)
	assert.Equal(t, 5, sh.Records[1].SubjectID)
	assert.False(t, sh.Records[0].Dirty)
}

func TestSheet_SetScore(t *testing.T) {
	tests := []struct {
		name         string
		field        Field
		raw          string
		wantAccepted bool
		wantMidterm  null.Int
		wantFinal    int
		wantDirty    bool
	}{
		{name: "valid", field: FieldMidterm, raw: "60", wantAccepted: true, wantMidterm: Score(60), wantFinal: 75, wantDirty: true},
		{name: "clear", field: FieldMidterm, raw: "", wantAccepted: true, wantMidterm: Unset, wantFinal: 45, wantDirty: true},
		{name: "same value", field: FieldMidterm, raw: "80", wantAccepted: true, wantMidterm: Score(80), wantFinal: 85},
		{name: "above max", field: FieldMidterm, raw: "105", wantMidterm: Score(80), wantFinal: 85},
		{name: "negative", field: FieldMidterm, raw: "-1", wantMidterm: Score(80), wantFinal: 85},
		{name: "not a number", field: FieldMidterm, raw: "8o", wantMidterm: Score(80), wantFinal: 85},
		{name: "unknown field", field: Field("attendance"), raw: "50", wantMidterm: Score(80), wantFinal: 85},
		{name: "other field", field: FieldFinalExam, raw: "100", wantAccepted: true, wantMidterm: Score(80), wantFinal: 90, wantDirty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newTestSheet()
			rec, accepted, err := sh.SetScore(101, tt.field, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccepted, accepted)
			assert.Equal(t, tt.wantMidterm, rec.Midterm)
			assert.Equal(t, tt.wantFinal, rec.FinalScore)
			assert.Equal(t, tt.wantDirty, rec.Dirty)

			stored, err := sh.Record(101)
			require.NoError(t, err)
			assert.Equal(t, rec, stored)

			other, err := sh.Record(102)
			require.NoError(t, err)
			assert.False(t, other.Dirty, "only the edited record changes")
		})
	}
}

func TestSheet_SetScore_unknownStudent(t *testing.T) {
	sh := newTestSheet()
	_, _, err := sh.SetScore(999, FieldMidterm, "50")
	assert.Equal(t, ErrStudentNotFound, err)
}

func TestSheet_MarkSaved(t *testing.T) {
	sh := newTestSheet()
	rec, _, err := sh.SetScore(102, FieldMidterm, "50")
	require.NoError(t, err)
	saved := rec.Payload()
	assert.Equal(t, SaveGrade{StudentID: 102, SubjectID: 5, Midterm: 50, FinalExam: 70, FinalScore: 60}, saved)

	// edited again while saving
	_, _, err = sh.SetScore(102, FieldMidterm, "55")
	require.NoError(t, err)
	sh.MarkSaved(saved)
	rec, _ = sh.Record(102)
	assert.True(t, rec.Dirty)

	sh.MarkSaved(rec.Payload())
	rec, _ = sh.Record(102)
	assert.False(t, rec.Dirty)
}

func TestGradeRecord_Payload_unset(t *testing.T) {
	sg := GradeRecord{StudentID: 1, SubjectID: 2}.Payload()
	assert.Equal(t, SaveGrade{StudentID: 1, SubjectID: 2}, sg)
}

func TestSheet_Filter(t *testing.T) {
	sh := newTestSheet()
	assert.Len(t, sh.Filter(""), 2)
	recs := sh.Filter("  BUDI ")
	require.Len(t, recs, 1)
	assert.Equal(t, 102, recs[0].StudentID)
	assert.Empty(t, sh.Filter("zaki"))
}

func TestSheetTable(t *testing.T) {
	translator := core.NewTranslator("en")
	require.NoError(t, core.RegisterTranslations(translator, Labels))
	sh := newTestSheet()

	doc := SheetTable(translator, sh.Records)
	assert.Equal(t, []string{"No", "Student Name", "NISN", "Midterm", "Final Exam", "Final Score"}, doc.Columns)
	require.Len(t, doc.Rows, 2)

	scores := make([][]string, 0, len(doc.Rows))
	for _, row := range doc.Rows {
		require.Len(t, row, len(doc.Columns))
		scores = append(scores, []string{row[3].Display(), row[4].Display(), row[5].Display()})
	}
	assert.Equal(t, [][]string{{"80", "90", "85"}, {"", "70", "35"}}, scores)
	assert.Equal(t, tabular.KindString, doc.Rows[1][3].Kind())
	assert.Equal(t, tabular.KindNumber, doc.Rows[0][5].Kind())

	meta := SheetMeta(translator, sh)
	assert.Equal(t, tabular.Meta{
		Title:     "Grades X IPA 1 - Matematika",
		Filename:  "Grades-X IPA 1-Matematika",
		SheetName: "Grades X IPA 1",
	}, meta)

	empty := SheetTable(translator, nil)
	assert.True(t, empty.IsEmpty())
	assert.Len(t, empty.Columns, 6)
}

func TestSheetTable_id(t *testing.T) {
	translator := core.NewTranslator("id")
	require.NoError(t, core.RegisterTranslations(translator, Labels))

	doc := SheetTable(translator, nil)
	assert.Equal(t, []string{"No", "Nama Siswa", "NISN", "UTS", "UAS", "Nilai Akhir"}, doc.Columns)
	assert.Equal(t, "Nilai X IPA 1 - Matematika", SheetMeta(translator, newTestSheet()).Title)
}

func TestReportCardTable(t *testing.T) {
	translator := core.NewTranslator("en")
	require.NoError(t, core.RegisterTranslations(translator, Labels))

	doc := ReportCardTable(translator, []SubjectGrade{
		{SubjectID: 1, SubjectName: "Matematika", Category: "Wajib", Midterm: Score(80), FinalExam: Score(70), FinalScore: Score(75)},
		{SubjectID: 2, SubjectName: "Seni Budaya", Midterm: Score(60), FinalScore: Score(30)},
		{SubjectID: 3},
	})
	display := make([][]string, 0, len(doc.Rows))
	for _, row := range doc.Rows {
		require.Len(t, row, 7)
		var texts []string
		for _, c := range row {
			texts = append(texts, c.Display())
		}
		display = append(display, texts)
	}
	assert.Equal(t, [][]string{
		{"1", "Matematika", "Wajib", "80", "70", "75", "Passed"},
		{"2", "Seni Budaya", "General", "60", "0", "30", "Failed"},
		{"3", "-", "General", "0", "0", "0", "Failed"},
	}, display)

	assert.Equal(t, tabular.Meta{Title: "Student Grade Report", Filename: "My-Grade-Report", SheetName: "My Grades"}, ReportCardMeta(translator))
}

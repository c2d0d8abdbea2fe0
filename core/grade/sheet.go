package grade

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sheet is the in-memory grade entry session of one teaching assignment.
// Records keep the order the school API listed the students in.
type Sheet struct {
	ID           string        `json:"id"`
	Owner        string        `json:"-"`
	AssignmentID int           `json:"assignment_id"`
	ClassName    string        `json:"class_name"`
	SubjectID    int           `json:"subject_id"`
	SubjectName  string        `json:"subject_name"`
	Records      []GradeRecord `json:"records"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewSheet builds the sheet of `ta`, one record per enrolled student.
// Scores missing from the school API stay Unset.
func NewSheet(owner string, ta TeachingAssignment, now time.Time) Sheet {
	sh := Sheet{
		ID:           uuid.New().String(),
		Owner:        owner,
		AssignmentID: ta.ID,
		ClassName:    ta.ClassName,
		SubjectID:    ta.SubjectID,
		SubjectName:  ta.SubjectName,
		Records:      make([]GradeRecord, 0, len(ta.Students)),
		UpdatedAt:    now,
	}
	for _, st := range ta.Students {
		sh.Records = append(sh.Records, GradeRecord{
			StudentID:     st.ID,
			StudentName:   st.Name,
			StudentNumber: st.Number,
			SubjectID:     ta.SubjectID,
			Midterm:       st.Midterm,
			FinalExam:     st.FinalExam,
			FinalScore:    FinalScore(st.Midterm, st.FinalExam),
		})
	}
	return sh
}

func (sh *Sheet) index(studentID int) int {
	for i := range sh.Records {
		if sh.Records[i].StudentID == studentID {
			return i
		}
	}
	return -1
}

// Record returns the record of `studentID`.
func (sh *Sheet) Record(studentID int) (GradeRecord, error) {
	i := sh.index(studentID)
	if i < 0 {
		return GradeRecord{}, ErrStudentNotFound
	}
	return sh.Records[i], nil
}

// SetScore runs `raw` through Normalize and stores it on the student's `field`.
// Rejected input leaves the record untouched and is not an error; `accepted` reports it.
func (sh *Sheet) SetScore(studentID int, field Field, raw string) (rec GradeRecord, accepted bool, err error) {
	i := sh.index(studentID)
	if i < 0 {
		return GradeRecord{}, false, ErrStudentNotFound
	}
	score, ok := Normalize(raw)
	if !ok || !field.IsValid() {
		return sh.Records[i], false, nil
	}
	r := &sh.Records[i]
	if r.score(field) != score {
		r.setScore(field, score)
		r.Dirty = true
	}
	return *r, true, nil
}

// MarkSaved clears the dirty flag if the record still holds the values of `saved`.
func (sh *Sheet) MarkSaved(saved SaveGrade) {
	i := sh.index(saved.StudentID)
	if i < 0 {
		return
	}
	if r := &sh.Records[i]; r.Payload() == saved {
		r.Dirty = false
	}
}

// Filter returns the records whose student name contains `search`, case-insensitively.
func (sh Sheet) Filter(search string) []GradeRecord {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return sh.Records
	}
	recs := make([]GradeRecord, 0, len(sh.Records))
	for _, r := range sh.Records {
		if strings.Contains(strings.ToLower(r.StudentName), search) {
			recs = append(recs, r)
		}
	}
	return recs
}

// Clone returns a deep copy of the sheet.
func (sh Sheet) Clone() Sheet {
	recs := make([]GradeRecord, len(sh.Records))
	copy(recs, sh.Records)
	sh.Records = recs
	return sh
}

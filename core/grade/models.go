package grade

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
)

const PassingScore = 75

// EnrolledStudent is a student of a class, with the grades already recorded for the assignment's subject.
type EnrolledStudent struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Number    string   `json:"number"` // NISN
	Midterm   null.Int `json:"midterm"`
	FinalExam null.Int `json:"final_exam"`
}

// TeachingAssignment is a subject taught by a teacher to a class.
type TeachingAssignment struct {
	ID          int               `json:"id"`
	ClassID     int               `json:"class_id"`
	ClassName   string            `json:"class_name"`
	SubjectID   int               `json:"subject_id"`
	SubjectName string            `json:"subject_name"`
	Students    []EnrolledStudent `json:"students"`
}

// GradeRecord holds both score components of a (student, subject) pair and their derived final score.
type GradeRecord struct {
	StudentID     int      `json:"student_id"`
	StudentName   string   `json:"student_name"`
	StudentNumber string   `json:"student_number"`
	SubjectID     int      `json:"subject_id"`
	Midterm       null.Int `json:"midterm"`
	FinalExam     null.Int `json:"final_exam"`
	FinalScore    int      `json:"final_score"`
	Dirty         bool     `json:"dirty"` // edited since loaded or last saved
}

func (r *GradeRecord) score(f Field) null.Int {
	if f == FieldFinalExam {
		return r.FinalExam
	}
	return r.Midterm
}

func (r *GradeRecord) setScore(f Field, score null.Int) {
	if f == FieldFinalExam {
		r.FinalExam = score
	} else {
		r.Midterm = score
	}
	r.FinalScore = FinalScore(r.Midterm, r.FinalExam)
}

// Payload builds the SaveGrade sent to the Backend. Unset components are sent as 0.
func (r GradeRecord) Payload() SaveGrade {
	return SaveGrade{
		StudentID:  r.StudentID,
		SubjectID:  r.SubjectID,
		Midterm:    ValueOrZero(r.Midterm),
		FinalExam:  ValueOrZero(r.FinalExam),
		FinalScore: FinalScore(r.Midterm, r.FinalExam),
	}
}

// SaveGrade contains the information needed to persist a GradeRecord.
type SaveGrade struct {
	StudentID  int `json:"student_id" validate:"required,min=1"`
	SubjectID  int `json:"subject_id" validate:"required,min=1"`
	Midterm    int `json:"midterm" validate:"score"`
	FinalExam  int `json:"final_exam" validate:"score"`
	FinalScore int `json:"final_score" validate:"score"`
}

func (sg SaveGrade) Validate(validate *validator.Validate) error { return validate.Struct(sg) }

// SubjectGrade is a student's own grade for a subject.
type SubjectGrade struct {
	SubjectID   int      `json:"subject_id"`
	SubjectName string   `json:"subject_name"`
	Category    string   `json:"category"`
	Midterm     null.Int `json:"midterm"`
	FinalExam   null.Int `json:"final_exam"`
	FinalScore  null.Int `json:"final_score"`
}

func (sg SubjectGrade) Passed() bool {
	return ValueOrZero(sg.FinalScore) >= PassingScore
}

// ScoreUpdate is one keystroke worth of input for a GradeRecord component.
type ScoreUpdate struct {
	Field Field  `json:"field" validate:"required,oneof=midterm final_exam"`
	Value string `json:"value"`
}

func (su ScoreUpdate) Validate(validate *validator.Validate) error { return validate.Struct(su) }

package grade

import (
	"strconv"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/rapor/core"
)

// Field names one of the two score components of a GradeRecord.
type Field string

const (
	FieldMidterm   Field = "midterm"
	FieldFinalExam Field = "final_exam"
)

func (f Field) IsValid() bool { return f == FieldMidterm || f == FieldFinalExam }

// Unset is the score of a component nothing was entered for yet. It is not 0.
var Unset = null.Int{}

func Score(v int) null.Int { return null.IntFrom(v) }

// Normalize validates raw user input for a score component.
// "" is accepted as Unset; anything else must be a base-10 integer within [0, 100].
// ok is false when the input must be rejected.
func Normalize(raw string) (score null.Int, ok bool) {
	if raw == "" {
		return Unset, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < core.MinScore || v > core.MaxScore {
		return Unset, false
	}
	return Score(v), true
}

// ValueOrZero returns the score, with Unset counting as 0.
func ValueOrZero(score null.Int) int {
	if !score.Valid {
		return 0
	}
	return score.Int
}

// FinalScore is the rounded (half up) mean of both components; an Unset component counts as 0.
func FinalScore(midterm, finalExam null.Int) int {
	return (ValueOrZero(midterm) + ValueOrZero(finalExam) + 1) / 2
}

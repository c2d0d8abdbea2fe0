package grade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/rapor/core"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   null.Int
		wantOk bool
	}{
		{name: "empty", raw: "", want: Unset, wantOk: true},
		{name: "zero", raw: "0", want: Score(0), wantOk: true},
		{name: "max", raw: "100", want: Score(100), wantOk: true},
		{name: "mid", raw: "85", want: Score(85), wantOk: true},
		{name: "leading zero", raw: "07", want: Score(7), wantOk: true},
		{name: "above max", raw: "105", want: Unset},
		{name: "negative", raw: "-1", want: Unset},
		{name: "letters", raw: "abc", want: Unset},
		{name: "decimal", raw: "85.5", want: Unset},
		{name: "blank", raw: " ", want: Unset},
		{name: "trailing garbage", raw: "9x", want: Unset},
		{name: "huge", raw: "99999999999999999999", want: Unset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinalScore(t *testing.T) {
	assert.Equal(t, 0, FinalScore(Unset, Unset))
	assert.Equal(t, 40, FinalScore(Score(80), Unset))
	assert.Equal(t, 45, FinalScore(Unset, Score(90)))
	assert.Equal(t, 85, FinalScore(Score(80), Score(90)))
	assert.Equal(t, 35, FinalScore(Unset, Score(70)))
	assert.Equal(t, 86, FinalScore(Score(81), Score(90)), "half rounds up")
	assert.Equal(t, 1, FinalScore(Score(1), Unset), "half rounds up")
}

func TestFinalScore_allPairs(t *testing.T) {
	for m := core.MinScore; m <= core.MaxScore; m++ {
		for f := core.MinScore; f <= core.MaxScore; f++ {
			want := int(math.Floor(float64(m+f)/2 + 0.5))
			got := FinalScore(Score(m), Score(f))
			if got != want {
				t.Fatalf("FinalScore(%d, %d) = %d, want %d", m, f, got, want)
			}
			if got < core.MinScore || got > core.MaxScore {
				t.Fatalf("FinalScore(%d, %d) = %d, out of range", m, f, got)
			}
		}
	}
}

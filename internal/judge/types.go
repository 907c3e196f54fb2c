package judge

// #region verdict

const (
	VerdictGood    = "good"
	VerdictPartial = "partial"
	VerdictBad     = "bad"
)

// Scores holds the 1–5 rubric dimensions.
type Scores struct {
	Relevance    int `json:"relevance"`
	Groundedness int `json:"groundedness"`
	Safety       int `json:"safety"`
	Completeness int `json:"completeness"`
}

// Verdict is the judge's assessment of one answered turn.
type Verdict struct {
	Scores              Scores  `json:"scores"`
	CorrectRefusal      int     `json:"correct_refusal"`
	QuestionTypeCorrect int     `json:"question_type_correct"`
	Verdict             string  `json:"verdict"`
	OverallScore        float64 `json:"overall_score"`
	Comment             string  `json:"comment,omitempty"`
}

// Overall is the mean of the four axes.
func (s Scores) Overall() float64 {
	return float64(s.Relevance+s.Groundedness+s.Safety+s.Completeness) / 4
}

// WorstCase is the verdict recorded when the judge call fails entirely.
func WorstCase(comment string) Verdict {
	return Verdict{
		Scores:              Scores{},
		CorrectRefusal:      0,
		QuestionTypeCorrect: 0,
		Verdict:             VerdictBad,
		Comment:             comment,
	}
}

// #endregion verdict

package models

type Question struct {
	ID                 int64    `json:"id"`
	Text               string   `json:"text"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex,omitempty"`
	Explanation        *string  `json:"explanation,omitempty"`
	Alternatives       []string `json:"alternatives"`
}

// HasValidAnswerIndex reports whether CorrectAnswerIndex, when set,
// references an existing alternative.
func (q *Question) HasValidAnswerIndex() bool {
	if q.CorrectAnswerIndex == nil {
		return true
	}
	return *q.CorrectAnswerIndex >= 0 && *q.CorrectAnswerIndex < len(q.Alternatives)
}

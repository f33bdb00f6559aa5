package models

import (
	"errors"
	"fmt"
	"strconv"
)

// OptionCount is fixed by the authoring form.
const OptionCount = 4

// ErrAnswerIndexOutOfRange marks a stored answer index that does not
// resolve to an option. Scoring fails fast on it rather than skipping
// the question.
var ErrAnswerIndexOutOfRange = errors.New("answer index out of range")

type Question struct {
	ID       string   `bson:"_id,omitempty" json:"id"`
	Standard string   `bson:"standard" json:"standard"`
	Subject  string   `bson:"subject" json:"subject"`
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	Answer   string   `bson:"answer" json:"answer"` // 1-based index into Options, stored as string
}

func (q *Question) Validate() error {
	if q.Question == "" || len(q.Options) != OptionCount {
		return fmt.Errorf("%w: question %q missing text or options", ErrMalformedRecord, q.ID)
	}
	return nil
}

// CorrectOption resolves the stored 1-based answer index to the option
// text it points at. Scoring compares the student's answer against this
// text, not against the index itself.
func (q *Question) CorrectOption() (string, error) {
	idx, err := strconv.Atoi(q.Answer)
	if err != nil {
		return "", fmt.Errorf("%w: question %q has non-numeric answer %q", ErrAnswerIndexOutOfRange, q.ID, q.Answer)
	}
	if idx < 1 || idx > len(q.Options) {
		return "", fmt.Errorf("%w: question %q has answer %d with %d options", ErrAnswerIndexOutOfRange, q.ID, idx, len(q.Options))
	}
	return q.Options[idx-1], nil
}

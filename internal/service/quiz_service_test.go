package service

import (
	"testing"

	"exam-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSingleQuestion(t *testing.T) {
	questions := []models.Question{
		{ID: "qid", Question: "Pick one", Options: []string{"A", "B", "C", "D"}, Answer: "2"},
	}

	score, total, err := Score(questions, map[string]string{"qid": "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, total)

	score, total, err = Score(questions, map[string]string{"qid": "A"})
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, 1, total)
}

func TestScoreZeroQuestions(t *testing.T) {
	score, total, err := Score(nil, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, total)
}

func TestScoreUnansweredQuestion(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Options: []string{"A", "B", "C", "D"}, Answer: "1"},
		{ID: "q2", Options: []string{"A", "B", "C", "D"}, Answer: "3"},
	}

	// Only q2 answered, and correctly.
	score, total, err := Score(questions, map[string]string{"q2": "C"})
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, 2, total)
}

func TestScoreOutOfRangeAnswerIndexAborts(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Options: []string{"A", "B", "C", "D"}, Answer: "1"},
		{ID: "q2", Options: []string{"A", "B", "C", "D"}, Answer: "5"},
	}

	_, _, err := Score(questions, map[string]string{"q1": "A", "q2": "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAnswerIndexOutOfRange)
}

// Duplicate option text can credit a selection made at a different
// position, because scoring compares option text rather than the
// selected index.
func TestScoreDuplicateOptionText(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Options: []string{"B", "B", "C", "D"}, Answer: "2"},
	}

	// The student picked position 1, but its text equals the text at
	// the stored answer position 2, so the question is credited.
	score, total, err := Score(questions, map[string]string{"q1": "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, total)
}

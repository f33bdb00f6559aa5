package service

import (
	"context"

	"exam-portal/internal/models"
)

// QuestionSource is the slice of the question repository quiz-taking needs.
type QuestionSource interface {
	FindByStandardSubject(ctx context.Context, standard, subject string) ([]models.Question, error)
}

type QuizService struct {
	Questions QuestionSource
}

func NewQuizService(questions QuestionSource) *QuizService {
	return &QuizService{Questions: questions}
}

// QuestionsFor fetches the paper for a student's standard and a chosen
// subject. No questions is a legitimate empty result.
func (s *QuizService) QuestionsFor(ctx context.Context, standard, subject string) ([]models.Question, error) {
	return s.Questions.FindByStandardSubject(ctx, standard, subject)
}

// Score counts the questions whose submitted answer text equals the
// option at the stored 1-based answer index. The comparison is by
// option text, not index, so duplicate option text across positions can
// credit a selection made at a different position. An unanswerable
// stored index aborts the whole submission.
func Score(questions []models.Question, answers map[string]string) (score, total int, err error) {
	for i := range questions {
		correct, err := questions[i].CorrectOption()
		if err != nil {
			return 0, 0, err
		}
		if answers[questions[i].ID] == correct {
			score++
		}
	}
	return score, len(questions), nil
}

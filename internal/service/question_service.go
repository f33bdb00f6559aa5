package service

import (
	"context"

	"exam-portal/internal/models"

	"github.com/google/uuid"
)

// QuestionWriter is the slice of the question repository authoring needs.
type QuestionWriter interface {
	Create(ctx context.Context, question *models.Question) error
}

type QuestionService struct {
	Repo QuestionWriter
}

func NewQuestionService(repo QuestionWriter) *QuestionService {
	return &QuestionService{Repo: repo}
}

// CreateQuestion files one question under its (standard, subject) pair
// with a fresh id. The answer index is stored as given; an out-of-range
// value surfaces at scoring time, not here.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	question.ID = uuid.NewString()
	return s.Repo.Create(ctx, question)
}

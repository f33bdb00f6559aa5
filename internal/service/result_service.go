package service

import (
	"exam-portal/internal/export"
	"exam-portal/internal/models"
)

type ResultService struct{}

func NewResultService() *ResultService {
	return &ResultService{}
}

// BuildResult renders the receipt for a scored submission and packages
// it with the score. A render failure aborts the submission even though
// the score is already known.
func (s *ResultService) BuildResult(name, standard, subject string, score, total int) (*models.QuizResult, error) {
	pdfBytes, err := export.RenderReceipt(name, standard, subject, score, total)
	if err != nil {
		return nil, err
	}
	return &models.QuizResult{
		Name:      name,
		Standard:  standard,
		Subject:   subject,
		Score:     score,
		Total:     total,
		ResultPDF: export.DownloadHref(pdfBytes),
	}, nil
}

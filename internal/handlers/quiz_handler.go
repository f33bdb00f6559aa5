package handlers

import (
	"context"
	"errors"
	"net/http"

	"exam-portal/internal/middleware"
	"exam-portal/internal/models"
	"exam-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Quiz    *service.QuizService
	Results *service.ResultService
}

func NewQuizHandler(quiz *service.QuizService, results *service.ResultService) *QuizHandler {
	return &QuizHandler{Quiz: quiz, Results: results}
}

// quizQuestion is the student-facing view of a question. The stored
// answer index never appears in it.
type quizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// GetQuiz returns the paper for the signed-in student's standard and
// the requested subject. An empty paper is returned as an empty list.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	subject := c.Query("subject")

	questions, err := h.Quiz.QuestionsFor(context.Background(), sess.Standard, subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	paper := make([]quizQuestion, 0, len(questions))
	for i := range questions {
		paper = append(paper, quizQuestion{
			ID:       questions[i].ID,
			Question: questions[i].Question,
			Options:  questions[i].Options,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"standard":  sess.Standard,
		"subject":   subject,
		"questions": paper,
	})
}

type submitRequest struct {
	Subject string            `json:"subject"`
	Answers map[string]string `json:"answers"` // question id -> chosen option text
}

// SubmitQuiz rescores the paper against the store and returns the
// result with its PDF receipt. Scoring faults and receipt faults both
// abort the submission.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions, err := h.Quiz.QuestionsFor(context.Background(), sess.Standard, req.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	score, total, err := service.Score(questions, req.Answers)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrAnswerIndexOutOfRange) {
			c.JSON(status, gin.H{"error": err.Error(), "code": "ANSWER_INDEX_OUT_OF_RANGE"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Results.BuildResult(sess.Name, sess.Standard, req.Subject, score, total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": "EXPORT_FAILED"})
		return
	}
	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"context"
	"net/http"

	"exam-portal/internal/models"
	"exam-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The authoring form offers fixed standard and subject choices;
	// anything else cannot be filed where a student would find it.
	if !models.ValidStandard(question.Standard) || !models.ValidSubject(question.Subject) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown standard or subject"})
		return
	}
	if err := h.Service.CreateQuestion(context.Background(), &question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Question added successfully",
		"question": question,
	})
}

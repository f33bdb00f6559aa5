package handlers

import (
	"context"
	"net/http"

	"exam-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// CreateUser provisions one student or teacher. The response echoes the
// issued username and password so the admin can hand them out; that is
// the only time the password leaves the server in the clear by intent.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var in service.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Service.CreateUser(context.Background(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  user.Role + " added successfully",
		"user":     user,
		"username": user.Username,
		"password": user.Password,
	})
}

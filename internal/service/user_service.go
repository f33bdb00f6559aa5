package service

import (
	"context"

	"exam-portal/internal/models"

	"github.com/google/uuid"
)

// UserWriter is the slice of the user repository provisioning needs.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
}

type CreateUserInput struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Role       string `json:"role"`
	ParentName string `json:"parent_name"`
	Standard   string `json:"standard"`
}

type UserService struct {
	Repo UserWriter
}

func NewUserService(repo UserWriter) *UserService {
	return &UserService{Repo: repo}
}

// CreateUser provisions one record. Students sign in under a username
// derived from their parent's name, teachers under their own; the
// initial password is the raw contact number. Success means the write
// returned, nothing more: no read-back, no collision check.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	source := in.Name
	if in.Role == models.RoleStudent {
		source = in.ParentName
	}
	user := &models.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Username: models.DeriveUsername(source),
		Password: in.Contact,
		Contact:  in.Contact,
		Role:     in.Role,
	}
	if in.Role == models.RoleStudent {
		user.ParentName = in.ParentName
		user.Standard = in.Standard
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

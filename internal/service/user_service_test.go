package service

import (
	"context"
	"testing"

	"exam-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserWriter struct {
	created []*models.User
	err     error
}

func (f *fakeUserWriter) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, user)
	return nil
}

func TestCreateStudent(t *testing.T) {
	writer := &fakeUserWriter{}
	svc := NewUserService(writer)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:       "Asha Patil",
		Contact:    "9876543210",
		Role:       models.RoleStudent,
		ParentName: "Ramesh Patil",
		Standard:   "3",
	})
	require.NoError(t, err)
	require.Len(t, writer.created, 1)

	assert.Equal(t, "rameshpatil", user.Username)
	assert.Equal(t, "9876543210", user.Password)
	assert.Equal(t, "9876543210", user.Contact)
	assert.Equal(t, "Ramesh Patil", user.ParentName)
	assert.Equal(t, "3", user.Standard)
	assert.NotEmpty(t, user.ID)
	assert.Same(t, user, writer.created[0])
}

func TestCreateTeacher(t *testing.T) {
	writer := &fakeUserWriter{}
	svc := NewUserService(writer)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:    "John Doe",
		Contact: "5551234",
		Role:    models.RoleTeacher,
	})
	require.NoError(t, err)

	// Teachers sign in under their own name, not a parent's.
	assert.Equal(t, "johndoe", user.Username)
	assert.Equal(t, "5551234", user.Password)
	assert.Empty(t, user.ParentName)
	assert.Empty(t, user.Standard)
}

func TestCreateUserGeneratesDistinctIDs(t *testing.T) {
	writer := &fakeUserWriter{}
	svc := NewUserService(writer)

	in := CreateUserInput{Name: "John Doe", Contact: "1", Role: models.RoleTeacher}
	first, err := svc.CreateUser(context.Background(), in)
	require.NoError(t, err)
	second, err := svc.CreateUser(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	// Same name means same derived username; duplicates are allowed.
	assert.Equal(t, first.Username, second.Username)
}

func TestCreateUserWriteFailure(t *testing.T) {
	writer := &fakeUserWriter{err: assert.AnError}
	svc := NewUserService(writer)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name: "John Doe", Contact: "1", Role: models.RoleTeacher,
	})
	assert.Error(t, err)
}

package service

import (
	"context"
	"testing"

	"exam-portal/internal/config"
	"exam-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserFinder struct {
	users map[string][]models.User
	err   error
}

func (f *fakeUserFinder) FindByUsername(_ context.Context, username string) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[username], nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		TokenExpiryHours: 1,
		AdminUsername:    "omkar",
		AdminPassword:    "omkar",
	}
}

func TestLoginAdminPair(t *testing.T) {
	// Admin never touches the store; an erroring finder proves it.
	finder := &fakeUserFinder{err: assert.AnError}
	svc := NewAuthService(finder, PlaintextVerifier{}, testConfig())

	user, token, err := svc.Login(context.Background(), "omkar", "omkar")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Empty(t, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginAdminPairWrongPassword(t *testing.T) {
	finder := &fakeUserFinder{users: map[string][]models.User{}}
	svc := NewAuthService(finder, PlaintextVerifier{}, testConfig())

	_, _, err := svc.Login(context.Background(), "omkar", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStoredUser(t *testing.T) {
	stored := models.User{
		ID:       "uid-1",
		Name:     "Asha Patil",
		Username: "rameshpatil",
		Password: "9876543210",
		Contact:  "9876543210",
		Role:     models.RoleStudent,
		Standard: "3",
	}
	finder := &fakeUserFinder{users: map[string][]models.User{"rameshpatil": {stored}}}
	svc := NewAuthService(finder, PlaintextVerifier{}, testConfig())

	user, token, err := svc.Login(context.Background(), "rameshpatil", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, stored, *user)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "Asha Patil", claims.Name)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "3", claims.Standard)
}

func TestLoginNoMatch(t *testing.T) {
	finder := &fakeUserFinder{users: map[string][]models.User{
		"rameshpatil": {{ID: "uid-1", Username: "rameshpatil", Password: "9876543210", Role: models.RoleStudent}},
	}}
	svc := NewAuthService(finder, PlaintextVerifier{}, testConfig())

	_, _, err := svc.Login(context.Background(), "rameshpatil", "badpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "9876543210")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDuplicateUsernamesFirstMatchWins(t *testing.T) {
	first := models.User{ID: "uid-1", Username: "johndoe", Password: "111", Role: models.RoleTeacher}
	second := models.User{ID: "uid-2", Username: "johndoe", Password: "111", Role: models.RoleStudent}
	finder := &fakeUserFinder{users: map[string][]models.User{"johndoe": {first, second}}}
	svc := NewAuthService(finder, PlaintextVerifier{}, testConfig())

	user, _, err := svc.Login(context.Background(), "johndoe", "111")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(&fakeUserFinder{}, PlaintextVerifier{}, testConfig())
	token, err := svc.IssueToken(&models.User{ID: "uid-1", Name: "X", Role: models.RoleStudent})
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "different-secret"
	other := NewAuthService(&fakeUserFinder{}, PlaintextVerifier{}, otherCfg)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}
	assert.True(t, v.Verify("9876543210", "9876543210"))
	assert.False(t, v.Verify("9876543210", "987654321"))
	assert.False(t, v.Verify("Secret", "secret"))
}

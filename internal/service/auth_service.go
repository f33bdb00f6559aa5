package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exam-portal/internal/config"
	"exam-portal/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials covers every no-match outcome. Wrong username
// and wrong password are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserFinder is the slice of the user repository login needs.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
}

// CredentialVerifier compares a stored credential against a presented
// password. The portal stores passwords in plaintext; keeping the
// comparison behind this interface means a hashed scheme can replace it
// without touching login call sites.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, presented string) bool {
	return stored == presented
}

type AuthService struct {
	Users    UserFinder
	Verifier CredentialVerifier
	cfg      *config.Config
}

func NewAuthService(users UserFinder, verifier CredentialVerifier, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Verifier: verifier, cfg: cfg}
}

// Login resolves the admin pair without touching the store, then falls
// back to the stored users under the given username in insertion order.
// The first record whose password matches wins; duplicate usernames
// stay an accepted ambiguity.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == s.cfg.AdminUsername && password == s.cfg.AdminPassword {
		admin := &models.User{Name: "Admin Omkar", Role: models.RoleAdmin}
		token, err := s.IssueToken(admin)
		if err != nil {
			return nil, "", err
		}
		return admin, token, nil
	}

	candidates, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	for i := range candidates {
		u := &candidates[i]
		if s.Verifier.Verify(u.Password, password) {
			token, err := s.IssueToken(u)
			if err != nil {
				return nil, "", err
			}
			return u, token, nil
		}
	}
	return nil, "", ErrInvalidCredentials
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "exam-portal",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.TokenExpiryHours) * time.Hour)),
		},
		UID:      user.ID,
		Name:     user.Name,
		Role:     user.Role,
		Standard: user.Standard,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("error generating token string: %w", err)
	}
	return signed, nil
}

func (s *AuthService) ParseToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

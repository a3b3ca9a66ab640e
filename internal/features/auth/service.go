package auth

import (
	"context"
	"crypto/subtle"

	"push-console/internal/common/apperr"
	"push-console/internal/config"
	"push-console/pkg/utils"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthServiceImpl struct {
	Config *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		Config: cfg,
	}
}

// Login verifies the configured console admin account and issues a JWT
// carrying the principal's email and display name
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperr.Validationf("email and password are required")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.Config.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Config.AdminPassword)) == 1
	if !emailOK || !passOK {
		return "", apperr.ErrUnauthorized
	}

	return utils.GenerateToken(s.Config.AdminEmail, s.Config.AdminName)
}

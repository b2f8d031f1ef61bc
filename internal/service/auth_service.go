package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"impilo/registry/internal/config"
	"impilo/registry/internal/ids"
	"impilo/registry/internal/models"
	"impilo/registry/internal/repository"
	"impilo/registry/internal/security"
)

type AuthService struct {
	admins AdminStore
	cfg    *config.AppConfig
	log    zerolog.Logger
}

func NewAuthService(admins AdminStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		admins: admins,
		cfg:    cfg,
		log:    log,
	}
}

type LoginResult struct {
	Token string
	Admin models.Admin
}

func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("load admin: %w", err)
	}

	ok, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil || !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := security.GenerateAdminToken(
		s.cfg.Security.JWTSecret,
		admin.ID,
		admin.Email,
		admin.Role,
		s.cfg.Security.JWTTTL,
	)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{Token: token, Admin: admin}, nil
}

// SeedAdmin creates the configured admin account on boot. A no-op when the
// account exists or no seed password is configured.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	email := s.cfg.Security.AdminEmail
	password := s.cfg.Security.AdminPassword
	if email == "" || password == "" {
		s.log.Debug().Msg("admin seed skipped: no credentials configured")
		return nil
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	if err := s.admins.Create(ctx, models.Admin{
		ID:           ids.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return nil
}

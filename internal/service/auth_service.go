package service

import (
	"context"
	"fmt"
	"strings"

	"sofa-shop/internal/auth"
	"sofa-shop/internal/model"
	"sofa-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	adminRepo repository.AdminRepository
	tokens    *auth.Tokens
	logger    zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(adminRepo repository.AdminRepository, tokens *auth.Tokens, logger zerolog.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// Login verifies credentials and issues a session token. Unknown emails
// and wrong passwords return the same error to avoid account probing.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, model.ErrMissingFields
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up admin")
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if admin == nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", email).Msg("admin login rejected")
		return nil, model.ErrBadCredentials
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("admin_id", admin.ID.String()).Msg("failed to issue session token")
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info().Str("admin_id", admin.ID.String()).Msg("admin logged in")
	return &model.LoginResponse{Token: token}, nil
}

// IsAdmin reports whether the identity is currently a member of the
// admins set. Checked on every admin request, so revoking membership
// invalidates outstanding sessions immediately.
func (s *authService) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}

	ok, err := s.adminRepo.Exists(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("admin_id", id.String()).Msg("failed to check admin membership")
		return false, fmt.Errorf("failed to check admin membership: %w", err)
	}
	return ok, nil
}

// internal/service/admin.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/clubmap/internal/auth"
	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/repository"
	"github.com/dangerclosesec/clubmap/internal/validation"
)

type AdminService struct {
	repo           repository.AdminUserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	now            func() time.Time
}

func NewAdminService(
	repo repository.AdminUserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *AdminService {
	return &AdminService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

type CreateAdminInput struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Create registers an active super_admin account.
func (s *AdminService) Create(ctx context.Context, input CreateAdminInput) (*model.AdminUser, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validation.ValidateStruct(input); err != nil {
		return nil, err
	}
	if err := s.passwordHasher.CheckStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	admin := &model.AdminUser{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Role:         model.RoleSuperAdmin,
		Active:       true,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "admin user created", "adminID", admin.ID, "username", admin.Username)
	return admin, nil
}

// Authenticate checks a username and password. Unknown users and wrong
// passwords both return domain.ErrInvalidCredentials; a disabled account is
// only reported once the password matched.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*model.AdminUser, error) {
	admin, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.passwordHasher.Verify(password, admin.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if !admin.Active {
		return nil, domain.ErrAccountDisabled
	}

	now := s.now()
	if err := s.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return nil, fmt.Errorf("recording login: %w", err)
	}
	admin.LastLogin = &now
	return admin, nil
}

type TokenOutput struct {
	Admin     *model.AdminUser `json:"admin"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

// IssueToken authenticates and signs a reviewer token for the account.
func (s *AdminService) IssueToken(ctx context.Context, username, password string) (*TokenOutput, error) {
	admin, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	claims, err := s.tokenManager.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &TokenOutput{Admin: admin, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

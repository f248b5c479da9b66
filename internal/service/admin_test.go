package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/clubmap/internal/auth"
	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/mocks"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hasher := auth.NewPasswordHasher()

	t.Run("stores an active super admin with a hashed password", func(t *testing.T) {
		repo := mocks.NewMockAdminUserRepositoryIface(ctrl)
		svc := service.NewAdminService(repo, hasher, auth.NewTokenManager("test_secret", time.Hour))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *model.AdminUser) error {
				admin.ID = 1
				return nil
			})

		admin, err := svc.Create(ctx, service.CreateAdminInput{
			Username: " root ",
			Email:    "Root@Example.com",
			Password: "correct horse battery",
		})
		require.NoError(t, err)
		assert.Equal(t, "root", admin.Username)
		assert.Equal(t, "root@example.com", admin.Email)
		assert.Equal(t, model.RoleSuperAdmin, admin.Role)
		assert.True(t, admin.Active)
		assert.NotContains(t, admin.PasswordHash, "correct horse")

		ok, err := hasher.Verify("correct horse battery", admin.PasswordHash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("weak password", func(t *testing.T) {
		repo := mocks.NewMockAdminUserRepositoryIface(ctrl)
		svc := service.NewAdminService(repo, hasher, auth.NewTokenManager("test_secret", time.Hour))

		_, err := svc.Create(ctx, service.CreateAdminInput{Username: "root", Email: "root@example.com", Password: "short"})
		assert.ErrorIs(t, err, domain.ErrPasswordTooWeak)
	})

	t.Run("invalid username", func(t *testing.T) {
		repo := mocks.NewMockAdminUserRepositoryIface(ctrl)
		svc := service.NewAdminService(repo, hasher, auth.NewTokenManager("test_secret", time.Hour))

		_, err := svc.Create(ctx, service.CreateAdminInput{Username: "a b", Email: "root@example.com", Password: "long enough password"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAdminIssueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	admin := func(active bool) *model.AdminUser {
		return &model.AdminUser{ID: 3, Username: "root", PasswordHash: hash, Role: model.RoleSuperAdmin, Active: active}
	}

	t.Run("successful login", func(t *testing.T) {
		repo := mocks.NewMockAdminUserRepositoryIface(ctrl)
		svc := service.NewAdminService(repo, hasher, tokens)

		gomock.InOrder(
			repo.EXPECT().FindByUsername(gomock.Any(), "root").Return(admin(true), nil),
			repo.EXPECT().UpdateLastLogin(gomock.Any(), int64(3), gomock.Any()).Return(nil),
		)

		out, err := svc.IssueToken(ctx, "root", "correct_password")
		require.NoError(t, err)
		assert.NotNil(t, out.Admin.LastLogin)
		assert.WithinDuration(t, time.Now().Add(time.Hour), out.ExpiresAt, time.Minute)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, "root", claims.Username)
		id, err := claims.AdminID()
		require.NoError(t, err)
		assert.EqualValues(t, 3, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockAdminUserRepositoryIface(ctrl)
		svc := service.NewAdminService(repo, hasher, tokens)
		repo.EXPECT().FindByUsername(gomock.Any(), "root").Return(admin(true), nil)

		_, err := svc.IssueToken(ctx, "root", "wrong_password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := mocks.NewMockAdminUserRepositoryIface(ctrl)
		svc := service.NewAdminService(repo, hasher, tokens)
		repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, domain.ErrAdminNotFound)

		_, err := svc.IssueToken(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		repo := mocks.NewMockAdminUserRepositoryIface(ctrl)
		svc := service.NewAdminService(repo, hasher, tokens)
		repo.EXPECT().FindByUsername(gomock.Any(), "root").Return(admin(false), nil)

		_, err := svc.IssueToken(ctx, "root", "correct_password")
		assert.ErrorIs(t, err, domain.ErrAccountDisabled)
	})
}

// internal/repository/admin_user.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/clubmap/internal/database"
	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
	"gorm.io/gorm"
)

type AdminUserRepositoryIface interface {
	Create(ctx context.Context, admin *model.AdminUser) error
	FindByID(ctx context.Context, id int64) (*model.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrAdminExists
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id int64) (*model.AdminUser, error) {
	var admin model.AdminUser
	result := r.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", result.Error)
	}
	return &admin, nil
}

func (r *AdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", result.Error)
	}
	return &admin, nil
}

func (r *AdminUserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.AdminUser{}).Where("id = ?", id).Update("last_login", at)
	if result.Error != nil {
		return fmt.Errorf("failed to update last login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

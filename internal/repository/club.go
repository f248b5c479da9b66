// internal/repository/club.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/clubmap/internal/database"
	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
	"gorm.io/gorm"
)

type ClubRepositoryIface interface {
	Create(ctx context.Context, club *model.Club) error
	FindByID(ctx context.Context, id int64) (*model.Club, error)
	FindByNameSchool(ctx context.Context, name, school string) (*model.Club, error)
	FindSimilar(ctx context.Context, name, school string, limit int) ([]*model.Club, error)
	Update(ctx context.Context, club *model.Club) error
	List(ctx context.Context, filter ClubFilter) ([]*model.Club, int64, error)
}

// ClubFilter narrows a club listing. Empty fields do not filter.
type ClubFilter struct {
	Province string
	School   string
	Page
}

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create inserts a club. A (name, school) collision returns
// domain.ErrDuplicateClub.
func (r *ClubRepository) Create(ctx context.Context, club *model.Club) error {
	if err := r.db.WithContext(ctx).Create(club).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("creating club %q at %q: %w", club.Name, club.School, domain.ErrDuplicateClub)
		}
		return fmt.Errorf("creating club: %w", err)
	}
	return nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id int64) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).First(&club, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("finding club: %w", err)
	}
	return &club, nil
}

func (r *ClubRepository) FindByNameSchool(ctx context.Context, name, school string) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).First(&club, "name = ? AND school = ?", name, school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("finding club: %w", err)
	}
	return &club, nil
}

// FindSimilar returns clubs sharing the name (case-insensitively) or the
// school, for the intake duplicate check.
func (r *ClubRepository) FindSimilar(ctx context.Context, name, school string, limit int) ([]*model.Club, error) {
	var clubs []*model.Club
	q := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Or("school = ?", school).
		Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&clubs).Error; err != nil {
		return nil, fmt.Errorf("finding similar clubs: %w", err)
	}
	return clubs, nil
}

// Update overwrites every column except id, created_at and
// source_submission_id. A missing row returns domain.ErrClubNotFound.
func (r *ClubRepository) Update(ctx context.Context, club *model.Club) error {
	result := r.db.WithContext(ctx).
		Model(club).
		Select("*").
		Omit("id", "created_at", "source_submission_id").
		Updates(club)
	if result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			return fmt.Errorf("updating club %d: %w", club.ID, domain.ErrDuplicateClub)
		}
		return fmt.Errorf("updating club: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrClubNotFound
	}
	return nil
}

// List returns clubs in display order (sort_index, then id) with the total
// matching count.
func (r *ClubRepository) List(ctx context.Context, filter ClubFilter) ([]*model.Club, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Province != "" {
			db = db.Where("province = ?", filter.Province)
		}
		if filter.School != "" {
			db = db.Where("school = ?", filter.School)
		}
		return db
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Club{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting clubs: %w", err)
	}

	var clubs []*model.Club
	q := r.db.WithContext(ctx).Scopes(scope, filter.Page.apply).Order("sort_index").Order("id")
	if err := q.Find(&clubs).Error; err != nil {
		return nil, 0, fmt.Errorf("listing clubs: %w", err)
	}
	return clubs, count, nil
}

// internal/repository/submission.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepositoryIface interface {
	Create(ctx context.Context, submission *model.Submission) error
	FindByID(ctx context.Context, id int64) (*model.Submission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]*model.Submission, int64, error)
	MarkReviewed(ctx context.Context, submission *model.Submission) error
}

// SubmissionFilter narrows a submission listing. An empty Status lists all.
type SubmissionFilter struct {
	Status    model.SubmissionStatus
	Ascending bool
	Page
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *model.Submission) error {
	if submission.Status != model.StatusPending {
		return fmt.Errorf("creating submission: status must be %q, got %q", model.StatusPending, submission.Status)
	}
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("creating submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("finding submission: %w", err)
	}
	return &submission, nil
}

// List returns submissions ordered by submission time (newest first unless
// Ascending) with the total matching count.
func (r *SubmissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]*model.Submission, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Submission{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting submissions: %w", err)
	}

	order := "submitted_at DESC, id DESC"
	if filter.Ascending {
		order = "submitted_at ASC, id ASC"
	}

	var submissions []*model.Submission
	q := r.db.WithContext(ctx).Scopes(scope, filter.Page.apply).Order(order)
	if err := q.Find(&submissions).Error; err != nil {
		return nil, 0, fmt.Errorf("listing submissions: %w", err)
	}
	return submissions, count, nil
}

// MarkReviewed persists the review decision carried by submission. The
// update only matches a row that is still pending, so of two concurrent
// reviews exactly one succeeds; the other gets
// domain.ErrSubmissionNotPending.
func (r *SubmissionRepository) MarkReviewed(ctx context.Context, submission *model.Submission) error {
	if !submission.Status.IsTerminal() {
		return fmt.Errorf("marking submission %d reviewed: status %q is not a decision", submission.ID, submission.Status)
	}

	result := r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ? AND status = ?", submission.ID, model.StatusPending).
		Updates(map[string]interface{}{
			"status":           submission.Status,
			"reviewed_at":      submission.ReviewedAt,
			"reviewed_by":      submission.ReviewedBy,
			"rejection_reason": submission.RejectionReason,
		})
	if result.Error != nil {
		return fmt.Errorf("marking submission reviewed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSubmissionNotPending
	}
	return nil
}

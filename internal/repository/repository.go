// internal/repository/repository.go
package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// UnitOfWork groups the repositories that must share a transaction. The
// UnitOfWork passed to fn is bound to the transaction; everything done
// through it commits together or not at all.
type UnitOfWork interface {
	Clubs() ClubRepositoryIface
	Submissions() SubmissionRepositoryIface
	AdminUsers() AdminUserRepositoryIface

	Transaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// Store is the gorm-backed UnitOfWork.
type Store struct {
	db          *gorm.DB
	clubs       *ClubRepository
	submissions *SubmissionRepository
	adminUsers  *AdminUserRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		clubs:       NewClubRepository(db),
		submissions: NewSubmissionRepository(db),
		adminUsers:  NewAdminUserRepository(db),
	}
}

func (s *Store) Clubs() ClubRepositoryIface { return s.clubs }

func (s *Store) Submissions() SubmissionRepositoryIface { return s.submissions }

func (s *Store) AdminUsers() AdminUserRepositoryIface { return s.adminUsers }

// Transaction runs fn inside a database transaction. A returned error or a
// cancelled context rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(uow UnitOfWork) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	if err != nil {
		slog.DebugContext(ctx, "transaction rolled back", "error", err)
	}
	return err
}

// DB returns the underlying database connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Page is an offset window. A zero Limit means no limit.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	return q
}

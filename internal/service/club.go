// internal/service/club.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/repository"
	"github.com/dangerclosesec/clubmap/internal/validation"
)

// ClubService covers reads of the directory and direct administrative
// writes that bypass the review workflow.
type ClubService struct {
	store repository.UnitOfWork
	now   func() time.Time
}

func NewClubService(store repository.UnitOfWork) *ClubService {
	return &ClubService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ClubInput is a direct create or edit by an administrator.
type ClubInput struct {
	ClubFields
	SortIndex int `json:"sortIndex" validate:"gte=0"`
}

func (in ClubInput) clubData() (model.ClubData, error) {
	data, err := in.ClubFields.clubData()
	if err != nil {
		return model.ClubData{}, err
	}
	data.SortIndex = in.SortIndex
	return data, nil
}

type ListClubsInput struct {
	Province string
	School   string
	Page     int
	Limit    int
}

type ClubList struct {
	Items []*model.Club `json:"items"`
	Total int64         `json:"total"`
}

// List returns clubs in display order. A zero Limit returns every match.
func (s *ClubService) List(ctx context.Context, input ListClubsInput) (*ClubList, error) {
	filter := repository.ClubFilter{Province: input.Province, School: input.School}
	if input.Limit > 0 {
		limit := min(input.Limit, maxPageLimit)
		filter.Page = repository.Page{Offset: (max(input.Page, 1) - 1) * limit, Limit: limit}
	}

	clubs, total, err := s.store.Clubs().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if clubs == nil {
		clubs = []*model.Club{}
	}
	return &ClubList{Items: clubs, Total: total}, nil
}

func (s *ClubService) Get(ctx context.Context, id int64) (*model.Club, error) {
	return s.store.Clubs().FindByID(ctx, id)
}

// Create stores a club directly, recording who entered it.
func (s *ClubService) Create(ctx context.Context, input ClubInput, reviewer string) (*model.Club, error) {
	if err := validation.ValidateStruct(input); err != nil {
		return nil, err
	}
	data, err := input.clubData()
	if err != nil {
		return nil, err
	}

	club := model.ClubFromData(data, s.now())
	club.VerifiedBy = &reviewer
	if err := s.store.Clubs().Create(ctx, club); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "club created", "clubID", club.ID, "reviewer", reviewer)
	return club, nil
}

// Update overwrites the editable fields of an existing club.
func (s *ClubService) Update(ctx context.Context, id int64, input ClubInput, reviewer string) (*model.Club, error) {
	if err := validation.ValidateStruct(input); err != nil {
		return nil, err
	}
	data, err := input.clubData()
	if err != nil {
		return nil, err
	}

	var updated *model.Club
	err = s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		club, err := uow.Clubs().FindByID(ctx, id)
		if err != nil {
			return err
		}
		club.Apply(data, s.now())
		club.VerifiedBy = &reviewer
		if err := uow.Clubs().Update(ctx, club); err != nil {
			return err
		}
		updated = club
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "club updated", "clubID", updated.ID, "reviewer", reviewer)
	return updated, nil
}

// ImportError reports why one entry of an import was not stored.
type ImportError struct {
	Index   int    `json:"index"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

type ImportResult struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  []ImportError `json:"errors"`
}

// Import seeds clubs in bulk. Invalid entries are reported and skipped,
// existing (name, school) pairs are skipped, and any other failure stops
// the import.
func (s *ClubService) Import(ctx context.Context, inputs []ClubInput, reviewer string) (*ImportResult, error) {
	result := &ImportResult{Errors: []ImportError{}}

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := validation.NormalizeName(input.Name)
		_, err := s.Create(ctx, input, reviewer)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, domain.ErrDuplicateClub):
			result.Skipped++
		case errors.Is(err, domain.ErrInvalidInput):
			result.Errors = append(result.Errors, ImportError{Index: i, Name: name, Message: err.Error()})
		default:
			return result, fmt.Errorf("importing entry %d: %w", i, err)
		}
	}
	return result, nil
}

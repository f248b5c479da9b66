// internal/service/submission.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/metrics"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/repository"
	"github.com/dangerclosesec/clubmap/internal/validation"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
	maxSimilarClubs  = 5
)

// DecisionNotifier is told about each committed review decision.
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, sub *model.Submission) error
}

// SubmissionService runs intake and the review workflow.
type SubmissionService struct {
	store    repository.UnitOfWork
	metrics  *metrics.Metrics
	notifier DecisionNotifier
	now      func() time.Time
}

func NewSubmissionService(store repository.UnitOfWork, m *metrics.Metrics) *SubmissionService {
	return &SubmissionService{
		store:   store,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithNotifier sets the notifier told about approvals and rejections.
func (s *SubmissionService) WithNotifier(n DecisionNotifier) *SubmissionService {
	s.notifier = n
	return s
}

// notify runs after commit. A failed notification never undoes a decision.
func (s *SubmissionService) notify(ctx context.Context, sub *model.Submission) {
	if s.notifier == nil || sub == nil {
		return
	}
	if err := s.notifier.NotifyDecision(ctx, sub); err != nil {
		slog.WarnContext(ctx, "decision notification failed", "submissionID", sub.ID, "error", err)
	}
}

type SubmissionInput struct {
	ClubFields
	SubmissionType model.SubmissionType `json:"submissionType" validate:"omitempty,oneof=new edit"`
	EditingClubID  ClubRef              `json:"editingClubId"`
	SubmitterEmail string               `json:"submitterEmail" validate:"required,email,max=254"`
}

// RequestMeta is the intake context stored with a submission.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Create validates the proposal and stores it as pending. Edits resolve the
// target club and keep a snapshot of it; new listings record which existing
// clubs look like duplicates.
func (s *SubmissionService) Create(ctx context.Context, input SubmissionInput, meta RequestMeta) (*model.Submission, error) {
	input.SubmitterEmail = strings.TrimSpace(input.SubmitterEmail)
	if err := validation.ValidateStruct(input); err != nil {
		return nil, err
	}

	typ := input.SubmissionType
	if typ == "" {
		typ = model.SubmissionNew
	}

	data, err := input.clubData()
	if err != nil {
		return nil, err
	}

	now := s.now()
	sub := model.NewSubmission(typ, input.SubmitterEmail, data, now)

	var excludeID int64
	if typ == model.SubmissionEdit {
		if input.EditingClubID == "" {
			return nil, domain.NewValidationError("editingClubId", "editingClubId is required for edit submissions")
		}
		club, err := s.resolveClub(ctx, input.EditingClubID)
		if err != nil {
			return nil, err
		}
		sub.EditingClubID = &club.ID
		sub.OriginalData = model.SnapshotOf(club.Data())
		excludeID = club.ID
	}

	sub.Metadata = model.Metadata{
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
		DuplicateCheck: s.duplicateCheck(ctx, data, excludeID),
	}

	if err := s.store.Submissions().Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("storing submission: %w", err)
	}

	s.metrics.SubmissionReceived(string(typ))
	slog.InfoContext(ctx, "submission received",
		"submissionID", sub.ID,
		"type", typ,
		"duplicateCheckPassed", sub.Metadata.DuplicateCheck == nil || sub.Metadata.DuplicateCheck.Passed,
	)
	return sub, nil
}

func (s *SubmissionService) resolveClub(ctx context.Context, ref ClubRef) (*model.Club, error) {
	if id, err := strconv.ParseInt(string(ref), 10, 64); err == nil {
		return s.store.Clubs().FindByID(ctx, id)
	}

	name, school, ok := strings.Cut(string(ref), "|")
	if !ok {
		return nil, domain.NewValidationError("editingClubId", `editingClubId must be a club id or a "name|school" key`)
	}
	return s.store.Clubs().FindByNameSchool(ctx, strings.TrimSpace(name), strings.TrimSpace(school))
}

// duplicateCheck lists clubs sharing the name or the school. It fails only
// when one has the same name and school. Lookup errors are logged and leave
// the check unrecorded rather than rejecting the submission.
func (s *SubmissionService) duplicateCheck(ctx context.Context, data model.ClubData, excludeID int64) *model.DuplicateCheck {
	similar, err := s.store.Clubs().FindSimilar(ctx, data.Name, data.School, maxSimilarClubs+1)
	if err != nil {
		slog.WarnContext(ctx, "duplicate check failed", "error", err)
		return nil
	}

	check := &model.DuplicateCheck{Passed: true, SimilarClubs: []model.SimilarClub{}}
	for _, club := range similar {
		if club.ID == excludeID {
			continue
		}
		if strings.EqualFold(club.Name, data.Name) && club.School == data.School {
			check.Passed = false
		}
		if len(check.SimilarClubs) < maxSimilarClubs {
			check.SimilarClubs = append(check.SimilarClubs, model.SimilarClub{ID: club.ID, Name: club.Name, School: club.School})
		}
	}
	return check
}

// ListSubmissionsInput carries the raw listing query. Zero values take
// defaults.
type ListSubmissionsInput struct {
	Status string
	Page   int
	Limit  int
	Sort   string
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type SubmissionList struct {
	Items      []*model.Submission `json:"items"`
	Pagination Pagination          `json:"pagination"`
}

// List pages through submissions. Page is at least 1, limit is clamped to
// [1, 50] (default 10), sort is "asc" or newest first, and status "all" or
// empty lists every status.
func (s *SubmissionService) List(ctx context.Context, input ListSubmissionsInput) (*SubmissionList, error) {
	page := max(input.Page, 1)
	limit := input.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	limit = min(max(limit, 1), maxPageLimit)

	filter := repository.SubmissionFilter{
		Ascending: strings.EqualFold(input.Sort, "asc"),
		Page:      repository.Page{Offset: (page - 1) * limit, Limit: limit},
	}

	switch status := model.SubmissionStatus(strings.ToLower(strings.TrimSpace(input.Status))); status {
	case "", "all":
	case model.StatusPending, model.StatusApproved, model.StatusRejected:
		filter.Status = status
	default:
		return nil, domain.NewValidationError("status", "status must be one of: all pending approved rejected")
	}

	items, total, err := s.store.Submissions().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.Submission{}
	}

	totalPages := 1
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return &SubmissionList{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *SubmissionService) Get(ctx context.Context, id int64) (*model.Submission, error) {
	return s.store.Submissions().FindByID(ctx, id)
}

type ApproveResult struct {
	SubmissionID int64 `json:"submissionId"`
	ClubID       int64 `json:"clubId"`
	IsUpdate     bool  `json:"isUpdate"`
}

// Approve applies a pending submission to the clubs table and marks it
// approved, all in one transaction. A new submission creates a club; an
// edit overwrites the target club. If the target club is gone the
// submission stays pending.
func (s *SubmissionService) Approve(ctx context.Context, id int64, reviewer string) (*ApproveResult, error) {
	var (
		result   *ApproveResult
		approved *model.Submission
	)

	err := s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		sub, err := uow.Submissions().FindByID(ctx, id)
		if err != nil {
			return err
		}

		now := s.now()
		if err := sub.Approve(reviewer, now); err != nil {
			return err
		}
		if err := validation.ValidateClubData(sub.Data); err != nil {
			return err
		}

		// Claim the submission first so a concurrent reviewer fails before
		// any club write.
		if err := uow.Submissions().MarkReviewed(ctx, sub); err != nil {
			return err
		}

		if sub.Type == model.SubmissionEdit {
			if sub.EditingClubID == nil {
				return domain.ErrClubNotFound
			}
			club, err := uow.Clubs().FindByID(ctx, *sub.EditingClubID)
			if err != nil {
				return err
			}
			club.Apply(sub.Data, now)
			club.VerifiedBy = &reviewer
			if err := uow.Clubs().Update(ctx, club); err != nil {
				return err
			}
			result = &ApproveResult{SubmissionID: sub.ID, ClubID: club.ID, IsUpdate: true}
			approved = sub
			return nil
		}

		club := model.ClubFromData(sub.Data, now)
		club.SourceSubmissionID = &sub.ID
		club.VerifiedBy = &reviewer
		if err := uow.Clubs().Create(ctx, club); err != nil {
			return err
		}
		result = &ApproveResult{SubmissionID: sub.ID, ClubID: club.ID}
		approved = sub
		return nil
	})

	s.metrics.ReviewDecided("approve", outcome(err))
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "submission approved",
		"submissionID", result.SubmissionID,
		"clubID", result.ClubID,
		"isUpdate", result.IsUpdate,
		"reviewer", reviewer,
	)
	s.notify(ctx, approved)
	return result, nil
}

// Reject marks a pending submission rejected with a reason. Clubs are not
// touched.
func (s *SubmissionService) Reject(ctx context.Context, id int64, reviewer, reason string) (*model.Submission, error) {
	if strings.TrimSpace(reason) == "" {
		s.metrics.ReviewDecided("reject", "invalid")
		return nil, domain.NewValidationError("rejectionReason", "a rejection reason is required")
	}

	var rejected *model.Submission
	err := s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		sub, err := uow.Submissions().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := sub.Reject(reviewer, reason, s.now()); err != nil {
			return err
		}
		if err := uow.Submissions().MarkReviewed(ctx, sub); err != nil {
			return err
		}
		rejected = sub
		return nil
	})

	s.metrics.ReviewDecided("reject", outcome(err))
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "submission rejected", "submissionID", rejected.ID, "reviewer", reviewer)
	s.notify(ctx, rejected)
	return rejected, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}

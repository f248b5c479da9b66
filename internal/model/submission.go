// internal/model/submission.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dangerclosesec/clubmap/internal/codec"
	"github.com/dangerclosesec/clubmap/internal/domain"
)

type SubmissionType string

const (
	SubmissionNew  SubmissionType = "new"
	SubmissionEdit SubmissionType = "edit"
)

// Valid reports whether t is a known submission type.
func (t SubmissionType) Valid() bool {
	return t == SubmissionNew || t == SubmissionEdit
}

// SubmissionStatus is the review state of a submission. Pending is the only
// non-terminal state.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// IsTerminal reports whether no further transition is possible.
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	return s == StatusPending && next.IsTerminal()
}

// MaxRejectionReasonLength caps the stored rejection reason, in characters.
const MaxRejectionReasonLength = 500

// Submission is a proposed creation or edit awaiting review.
//
// Status, ReviewedAt, ReviewedBy and RejectionReason are written only by
// Approve and Reject.
type Submission struct {
	ID              int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type            SubmissionType   `gorm:"column:submission_type;type:text;not null" json:"submissionType"`
	EditingClubID   *int64           `gorm:"column:editing_club_id" json:"editingClubId,omitempty"`
	OriginalData    NullClubData     `gorm:"column:original_data_json;type:text" json:"originalData"`
	Status          SubmissionStatus `gorm:"column:status;type:text;not null" json:"status"`
	SubmitterEmail  string           `gorm:"column:submitter_email;type:text;not null" json:"submitterEmail"`
	Data            ClubData         `gorm:"column:data_json;type:text;not null" json:"data"`
	Metadata        Metadata         `gorm:"column:metadata_json;type:text;not null" json:"metadata"`
	SubmittedAt     time.Time        `gorm:"column:submitted_at;not null" json:"submittedAt"`
	ReviewedAt      *time.Time       `gorm:"column:reviewed_at" json:"reviewedAt,omitempty"`
	ReviewedBy      *string          `gorm:"column:reviewed_by;type:text" json:"reviewedBy,omitempty"`
	RejectionReason *string          `gorm:"column:rejection_reason;type:text" json:"rejectionReason,omitempty"`
}

// TableName specifies the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}

// NewSubmission returns a pending submission.
func NewSubmission(typ SubmissionType, email string, data ClubData, at time.Time) *Submission {
	return &Submission{
		Type:           typ,
		Status:         StatusPending,
		SubmitterEmail: email,
		Data:           data,
		SubmittedAt:    at,
	}
}

// Approve moves a pending submission to approved.
func (s *Submission) Approve(reviewer string, at time.Time) error {
	if err := s.checkTransition(StatusApproved, reviewer); err != nil {
		return err
	}

	s.Status = StatusApproved
	s.ReviewedAt = &at
	s.ReviewedBy = &reviewer
	s.RejectionReason = nil
	return nil
}

// Reject moves a pending submission to rejected with a reason. The reason is
// trimmed and capped at MaxRejectionReasonLength characters.
func (s *Submission) Reject(reviewer, reason string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.NewValidationError("rejectionReason", "a rejection reason is required")
	}
	if err := s.checkTransition(StatusRejected, reviewer); err != nil {
		return err
	}

	if utf8.RuneCountInString(reason) > MaxRejectionReasonLength {
		reason = string([]rune(reason)[:MaxRejectionReasonLength])
	}

	s.Status = StatusRejected
	s.ReviewedAt = &at
	s.ReviewedBy = &reviewer
	s.RejectionReason = &reason
	return nil
}

func (s *Submission) checkTransition(next SubmissionStatus, reviewer string) error {
	if strings.TrimSpace(reviewer) == "" {
		return domain.NewValidationError("reviewer", "a reviewer identity is required")
	}
	if !s.Status.CanTransitionTo(next) {
		return domain.ErrSubmissionNotPending
	}
	return nil
}

// Metadata is intake context kept with a submission for reviewers.
type Metadata struct {
	IPAddress      string          `json:"ipAddress,omitempty"`
	UserAgent      string          `json:"userAgent,omitempty"`
	DuplicateCheck *DuplicateCheck `json:"duplicateCheck,omitempty"`
}

// DuplicateCheck records clubs that looked like the submitted one at intake.
type DuplicateCheck struct {
	Passed       bool          `json:"passed"`
	SimilarClubs []SimilarClub `json:"similarClubs"`
}

type SimilarClub struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	School string `json:"school"`
}

// Value implements the driver.Valuer interface
func (m Metadata) Value() (driver.Value, error) {
	return codec.Encode(m)
}

// Scan implements the sql.Scanner interface. Malformed text scans as the
// zero value.
func (m *Metadata) Scan(value interface{}) error {
	text, err := scanText(value)
	if err != nil {
		return err
	}
	*m = codec.Decode(text, Metadata{})
	return nil
}

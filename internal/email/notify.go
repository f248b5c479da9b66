package email

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/clubmap/internal/model"
)

// DecisionTemplateData fills the review decision templates.
type DecisionTemplateData struct {
	ClubName string
	School   string
	IsUpdate bool
	Reason   string
}

// NotifyDecision tells the submitter how their submission was decided.
// Pending submissions and a disabled service send nothing.
func (s *Service) NotifyDecision(ctx context.Context, sub *model.Submission) error {
	if !s.Enabled() {
		return nil
	}
	data := DecisionTemplateData{
		ClubName: sub.Data.Name,
		School:   sub.Data.School,
		IsUpdate: sub.Type == model.SubmissionEdit,
	}

	var subject, templateName string
	switch sub.Status {
	case model.StatusApproved:
		subject = fmt.Sprintf("%s is now in the club directory", sub.Data.Name)
		templateName = "submission_approved"
	case model.StatusRejected:
		subject = fmt.Sprintf("Your submission for %s was not accepted", sub.Data.Name)
		templateName = "submission_rejected"
		if sub.RejectionReason != nil {
			data.Reason = *sub.RejectionReason
		}
	default:
		return nil
	}

	return s.SendEmail(ctx, EmailData{
		To:           sub.SubmitterEmail,
		Subject:      subject,
		TemplateName: templateName,
		TemplateData: data,
	})
}

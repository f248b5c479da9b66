// internal/handler/submission.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/clubmap/internal/middleware"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/service"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

type CreateSubmissionResponse struct {
	SubmissionID int64                  `json:"submissionId"`
	Status       model.SubmissionStatus `json:"status"`
}

// Create takes a public proposal into the review queue.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.SubmissionInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.submissionService.Create(r.Context(), input, service.RequestMeta{
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondOK(w, http.StatusCreated, "Submission received and awaiting review", CreateSubmissionResponse{
		SubmissionID: sub.ID,
		Status:       sub.Status,
	})
}

func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	list, err := h.submissionService.List(r.Context(), service.ListSubmissionsInput{
		Status: query.Get("status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
		Sort:   query.Get("sort"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, "", list)
}

func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.submissionService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, "", sub)
}

func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	username, err := reviewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.submissionService.Approve(r.Context(), id, username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "Submission approved and club published"
	if result.IsUpdate {
		message = "Submission approved and club updated"
	}
	respondOK(w, http.StatusOK, message, result)
}

type RejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

func (h *SubmissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	username, err := reviewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input RejectRequest
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.submissionService.Reject(r.Context(), id, username, input.RejectionReason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, "Submission rejected", sub)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Guards are the middlewares Register places in front of route groups. A nil
// guard is skipped.
type Guards struct {
	// RequireReviewer guards the review and administrative routes.
	RequireReviewer func(http.Handler) http.Handler
	// LimitSubmissions throttles public intake.
	LimitSubmissions func(http.Handler) http.Handler
	// LimitAPI throttles the reviewer routes ahead of authentication.
	LimitAPI func(http.Handler) http.Handler
}

// Register mounts the JSON API on r.
func Register(r chi.Router, clubs *ClubHandler, submissions *SubmissionHandler, guards Guards) {
	r.Get("/health", Health)

	// Public routes
	r.Get("/clubs", clubs.List)
	r.Get("/clubs/{id}", clubs.Get)
	r.With(optional(guards.LimitSubmissions)).Post("/submissions", submissions.Create)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(optional(guards.LimitAPI), optional(guards.RequireReviewer))

		r.Get("/submissions", submissions.List)
		r.Get("/submissions/{id}", submissions.Get)
		r.Put("/submissions/{id}/approve", submissions.Approve)
		r.Put("/submissions/{id}/reject", submissions.Reject)
		r.Post("/clubs", clubs.Create)
		r.Put("/clubs/{id}", clubs.Update)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Route not found", "not_found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed", "method_not_allowed", nil)
	})
}

func optional(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}

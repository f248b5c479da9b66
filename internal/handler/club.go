// internal/handler/club.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/clubmap/internal/service"
)

type ClubHandler struct {
	clubService *service.ClubService
}

func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// List serves the public directory, optionally filtered by province or
// school and paged with page/limit.
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	list, err := h.clubService.List(r.Context(), service.ListClubsInput{
		Province: query.Get("province"),
		School:   query.Get("school"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, "", list)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	club, err := h.clubService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, "", club)
}

func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	username, err := reviewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input service.ClubInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	club, err := h.clubService.Create(r.Context(), input, username)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondOK(w, http.StatusCreated, "Club created", club)
}

func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var input service.ClubInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	club, err := h.clubService.Update(r.Context(), id, input, username)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, "Club updated", club)
}

package middleware

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Code string `json:"code"`
}

type errorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   errorBody `json:"error"`
}

// respondWithError sends a failure envelope
func respondWithError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Message: message, Error: errorBody{Code: code}})
}

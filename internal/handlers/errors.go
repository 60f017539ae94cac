package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Response status markers shared by every endpoint.
const (
	statusOK    = "ok"
	statusError = "error"
)

// ErrorResponse is the error envelope returned by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always "error"
	// default: error
	Status string `json:"status"`

	// Failure reason
	// default: no such id
	Reason string `json:"reason"`
}

// userIDFromRequest parses the userID path parameter.
func userIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/glob-dev/users-gateway/internal/logger"
	"github.com/glob-dev/users-gateway/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ListUsersResponse represents the full table listing
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	// Always "ok"
	// default: ok
	Status string `json:"status"`

	// All stored users
	Users []models.User `json:"users"`
}

// NewListUsersHandler returns an HTTP handler for listing all users.
// @Summary List all users
// @Description Returns every user in the table.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ListUsersResponse "All users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Status: statusError,
				Reason: "internal server error",
			})
			return
		}
		if users == nil {
			users = make([]models.User, 0)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListUsersResponse{
			Status: statusOK,
			Users:  users,
		})
	}
}

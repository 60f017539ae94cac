package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glob-dev/users-gateway/internal/logger"
	"github.com/glob-dev/users-gateway/internal/models"
	"github.com/glob-dev/users-gateway/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, userID int64, userName, creationDate string) (string, error)
}

// UpdateUserRequest represents the JSON body for updating a user
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New user name
	// required: true
	// default: george
	UserName string `json:"user_name"`

	// New creation timestamp, stored as text
	// required: true
	// default: 2021-01-01 00:00:00
	CreationDate string `json:"creation_date"`
}

// UpdateUserResponse represents a successful user update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Always "ok"
	// default: ok
	Status string `json:"status"`

	// Name the user now carries
	// default: george
	UserUpdated string `json:"user_updated"`
}

// NewUpdateUserHandler returns an HTTP handler for updating a user.
// @Summary Update an existing user
// @Description Replaces the name and creation date stored under the given id.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path int true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} handlers.UpdateUserResponse "User successfully updated"
// @Failure 400 {object} handlers.ErrorResponse "Non-integer id or malformed request body"
// @Failure 404 {object} handlers.ErrorResponse "No such id"
// @Failure 422 {object} handlers.ErrorResponse "Payload failed validation"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{userID} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := userIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Status: statusError,
				Reason: "user id must be an integer",
			})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: typeErr.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Status: statusError,
				Reason: "malformed request body",
			})
			return
		}

		name, err := svc.UpdateUser(r.Context(), userID, req.UserName, req.CreationDate)
		if err != nil {
			var validationErr *models.ValidationError
			switch {
			case errors.Is(err, services.ErrNoSuchID):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: services.ErrNoSuchID.Error(),
				})
			case errors.As(err, &validationErr):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: validationErr.Error(),
				})
			default:
				logger.Log.Errorw("failed to update user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: "internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateUserResponse{
			Status:      statusOK,
			UserUpdated: name,
		})
	}
}

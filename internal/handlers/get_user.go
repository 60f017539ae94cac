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

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// GetUserResponse represents a successful user fetch response
// swagger:model GetUserResponse
type GetUserResponse struct {
	// Always "ok"
	// default: ok
	Status string `json:"status"`

	// User id
	// default: 1
	UserID int64 `json:"user_id"`

	// User name
	// default: john
	UserName string `json:"user_name"`

	// Creation timestamp as stored
	// default: 2021-01-01 00:00:00
	CreationDate string `json:"creation_date"`
}

// NewGetUserHandler returns an HTTP handler for fetching a single user.
// @Summary Get a user by id
// @Description Returns the user stored under the given id.
// @Tags users
// @Produce json
// @Param userID path int true "User id"
// @Success 200 {object} handlers.GetUserResponse "User found"
// @Failure 400 {object} handlers.ErrorResponse "Non-integer id"
// @Failure 404 {object} handlers.ErrorResponse "No such id"
// @Failure 422 {object} handlers.ErrorResponse "Stored row failed validation"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{userID} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
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

		user, err := svc.GetUser(r.Context(), userID)
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
				logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: "internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetUserResponse{
			Status:       statusOK,
			UserID:       user.UserID,
			UserName:     user.UserName,
			CreationDate: user.CreationDate,
		})
	}
}

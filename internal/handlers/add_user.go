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

// UserAdder defines the interface that the service must implement.
type UserAdder interface {
	AddUser(ctx context.Context, userID int64, userName, creationDate string) (string, error)
}

// AddUserRequest represents the JSON body for creating a user
// swagger:model AddUserRequest
type AddUserRequest struct {
	// User name
	// required: true
	// default: john
	UserName string `json:"user_name"`

	// Creation timestamp, stored as text
	// required: true
	// default: 2021-01-01 00:00:00
	CreationDate string `json:"creation_date"`
}

// AddUserResponse represents a successful user creation response
// swagger:model AddUserResponse
type AddUserResponse struct {
	// Always "ok"
	// default: ok
	Status string `json:"status"`

	// Name of the created user
	// default: john
	UserAdded string `json:"user_added"`
}

// NewAddUserHandler returns an HTTP handler for creating a user.
// @Summary Add a new user
// @Description Creates a user under the given id. Fails if the id is already taken.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path int true "User id"
// @Param addUserRequest body handlers.AddUserRequest true "User creation request"
// @Success 200 {object} handlers.AddUserResponse "User successfully created"
// @Failure 400 {object} handlers.ErrorResponse "Non-integer id or malformed request body"
// @Failure 409 {object} handlers.ErrorResponse "Id already exists"
// @Failure 422 {object} handlers.ErrorResponse "Payload failed validation"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{userID} [post]
func NewAddUserHandler(svc UserAdder) http.HandlerFunc {
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

		var req AddUserRequest
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

		name, err := svc.AddUser(r.Context(), userID, req.UserName, req.CreationDate)
		if err != nil {
			var validationErr *models.ValidationError
			switch {
			case errors.Is(err, services.ErrIDAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: services.ErrIDAlreadyExists.Error(),
				})
			case errors.As(err, &validationErr):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: validationErr.Error(),
				})
			default:
				logger.Log.Errorw("failed to add user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: "internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddUserResponse{
			Status:    statusOK,
			UserAdded: name,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glob-dev/users-gateway/internal/logger"
	"github.com/glob-dev/users-gateway/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID int64) (int64, error)
}

// DeleteUserResponse represents a successful user deletion response
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Always "ok"
	// default: ok
	Status string `json:"status"`

	// Id of the deleted user
	// default: 1
	UserDeleted int64 `json:"user_deleted"`
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user.
// @Summary Delete a user by id
// @Description Removes the user stored under the given id.
// @Tags users
// @Produce json
// @Param userID path int true "User id"
// @Success 200 {object} handlers.DeleteUserResponse "User successfully deleted"
// @Failure 400 {object} handlers.ErrorResponse "Non-integer id"
// @Failure 404 {object} handlers.ErrorResponse "No such id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{userID} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
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

		deleted, err := svc.DeleteUser(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoSuchID):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: services.ErrNoSuchID.Error(),
				})
			default:
				logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Status: statusError,
					Reason: "internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{
			Status:      statusOK,
			UserDeleted: deleted,
		})
	}
}

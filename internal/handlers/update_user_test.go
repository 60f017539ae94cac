package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/glob-dev/users-gateway/internal/models"
	"github.com/glob-dev/users-gateway/internal/services"
)

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		body         string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			url:  "/users/1",
			body: `{"user_name": "george", "creation_date": "2021-01-01 00:00:00"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(1), "george", "2021-01-01 00:00:00").
					Return("george", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"status": "ok", "user_updated": "george"},
		},
		{
			name:         "non-integer id",
			url:          "/users/abc",
			body:         `{"user_name": "george", "creation_date": "2021-01-01 00:00:00"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"status": "error", "reason": "user id must be an integer"},
		},
		{
			name:         "invalid json",
			url:          "/users/1",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"status": "error", "reason": "malformed request body"},
		},
		{
			name: "no such id",
			url:  "/users/404",
			body: `{"user_name": "george", "creation_date": "2021-01-01 00:00:00"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(404), "george", "2021-01-01 00:00:00").
					Return("", services.ErrNoSuchID)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"status": "error", "reason": "no such id"},
		},
		{
			name: "payload failed validation",
			url:  "/users/1",
			body: `{"user_name": "george", "creation_date": ""}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(1), "george", "").
					Return("", &models.ValidationError{Field: "creation_date", Reason: "required"})
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"status": "error", "reason": "creation_date: required"},
		},
		{
			name: "internal server error",
			url:  "/users/1",
			body: `{"user_name": "george", "creation_date": "2021-01-01 00:00:00"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(1), "george", "2021-01-01 00:00:00").
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"status": "error", "reason": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Put("/users/{userID}", NewUpdateUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestUpdateUserHandler_TypeMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the facade must not be reached.
	mockSvc := NewMockUserUpdater(ctrl)

	router := chi.NewRouter()
	router.Put("/users/{userID}", NewUpdateUserHandler(mockSvc))

	body := `{"user_name": "george", "creation_date": 20210101}`
	req := httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["reason"], "creation_date")
}

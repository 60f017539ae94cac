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

func TestAddUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		body         string
		mockSetup    func(m *MockUserAdder)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			url:  "/users/1",
			body: `{"user_name": "john", "creation_date": "2021-01-01 00:00:00"}`,
			mockSetup: func(m *MockUserAdder) {
				m.EXPECT().
					AddUser(gomock.Any(), int64(1), "john", "2021-01-01 00:00:00").
					Return("john", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"status": "ok", "user_added": "john"},
		},
		{
			name:         "non-integer id",
			url:          "/users/abc",
			body:         `{"user_name": "john", "creation_date": "2021-01-01 00:00:00"}`,
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
			name: "id already exists",
			url:  "/users/1",
			body: `{"user_name": "john", "creation_date": "2021-01-01 00:00:00"}`,
			mockSetup: func(m *MockUserAdder) {
				m.EXPECT().
					AddUser(gomock.Any(), int64(1), "john", "2021-01-01 00:00:00").
					Return("", services.ErrIDAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]string{"status": "error", "reason": "id already exists"},
		},
		{
			name: "payload failed validation",
			url:  "/users/1",
			body: `{"user_name": "", "creation_date": "2021-01-01 00:00:00"}`,
			mockSetup: func(m *MockUserAdder) {
				m.EXPECT().
					AddUser(gomock.Any(), int64(1), "", "2021-01-01 00:00:00").
					Return("", &models.ValidationError{Field: "user_name", Reason: "required"})
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"status": "error", "reason": "user_name: required"},
		},
		{
			name: "internal server error",
			url:  "/users/1",
			body: `{"user_name": "john", "creation_date": "2021-01-01 00:00:00"}`,
			mockSetup: func(m *MockUserAdder) {
				m.EXPECT().
					AddUser(gomock.Any(), int64(1), "john", "2021-01-01 00:00:00").
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"status": "error", "reason": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Post("/users/{userID}", NewAddUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, tt.url, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestAddUserHandler_TypeMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the facade must not be reached.
	mockSvc := NewMockUserAdder(ctrl)

	router := chi.NewRouter()
	router.Post("/users/{userID}", NewAddUserHandler(mockSvc))

	body := `{"user_name": 123, "creation_date": "2021-01-01 00:00:00"}`
	req := httptest.NewRequest(http.MethodPost, "/users/1", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["reason"], "user_name")
}

package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/session-authority/internal/http/response"
	"github.com/magabrotheeeer/session-authority/internal/lib/sl"
	services "github.com/magabrotheeeer/session-authority/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockUID        string
		mockErr        error
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "valid registration",
			requestBody:    Request{Username: "alice", Password: "secret123"},
			mockUID:        "uid-1",
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
			wantError:      "invalid request body",
		},
		{
			name:           "validation error - missing password",
			requestBody:    Request{Username: "alice"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
			wantError:      "field Password is a required field",
		},
		{
			name:           "validation error - short username",
			requestBody:    Request{Username: "al", Password: "secret123"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
			wantError:      "field Username is too short",
		},
		{
			name:           "duplicate username",
			requestBody:    Request{Username: "alice", Password: "secret123"},
			mockErr:        services.ErrUserExists,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
			wantError:      "username already exists",
		},
		{
			name:           "internal error",
			requestBody:    Request{Username: "alice", Password: "secret123"},
			mockErr:        errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     response.StatusError,
			wantError:      "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockUID != "" || tt.mockErr != nil {
				req := tt.requestBody.(Request)
				authMock.On("Register", mock.Anything, req.Username, req.Password).
					Return(tt.mockUID, tt.mockErr).Once()
			}

			handler := New(sl.Discard(), authMock)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantError != "" {
				assert.Contains(t, resp.Error, tt.wantError)
			}
			if tt.wantStatus == response.StatusOK {
				data := resp.Data.(map[string]any)
				assert.Equal(t, "uid-1", data["uid"])
				assert.Equal(t, "alice", data["username"])
			}
			authMock.AssertExpectations(t)
		})
	}
}

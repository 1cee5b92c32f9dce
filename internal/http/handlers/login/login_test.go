package login

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

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockToken      string
		mockRole       string
		mockErr        error
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "valid login",
			requestBody:    Request{Username: "alice", Password: "secret123"},
			mockToken:      "issued-token",
			mockRole:       "user",
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
			name:           "bad credentials",
			requestBody:    Request{Username: "alice", Password: "wrongpass"},
			mockErr:        services.ErrInvalidCredentials,
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     response.StatusError,
			wantError:      "invalid credentials",
		},
		{
			name:           "internal error",
			requestBody:    Request{Username: "alice", Password: "secret123"},
			mockErr:        errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     response.StatusError,
			wantError:      "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockToken != "" || tt.mockErr != nil {
				req := tt.requestBody.(Request)
				authMock.On("Login", mock.Anything, req.Username, req.Password).
					Return(tt.mockToken, tt.mockRole, tt.mockErr).Once()
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

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
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
				assert.Equal(t, "issued-token", data["token"])
				assert.Equal(t, "bearer", data["token_type"])
				assert.Equal(t, "user", data["role"])
				assert.Equal(t, "alice", data["username"])
			}
			authMock.AssertExpectations(t)
		})
	}
}

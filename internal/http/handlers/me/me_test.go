package me

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/session-authority/internal/http/middlewarectx"
	"github.com/magabrotheeeer/session-authority/internal/http/response"
	"github.com/magabrotheeeer/session-authority/internal/lib/sl"
)

func TestMeHandler_ServeHTTP(t *testing.T) {
	handler := New(sl.Discard())

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	ctx := context.WithValue(req.Context(), middlewarectx.User, "alice")
	ctx = context.WithValue(ctx, middlewarectx.Role, "user")
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusOK, resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "user", data["role"])
}

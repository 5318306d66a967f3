package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (v stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return v.claims, v.err
}

func TestRequireAuthPropagatesClaims(t *testing.T) {
	validator := stubValidator{claims: &JWTClaims{
		UserID:    "user-1",
		SessionID: "session-9",
		ClientID:  "portal",
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var gotUser, gotSession, gotClient string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		gotUser = GetUserID(ctx)
		gotSession = GetSessionID(ctx)
		gotClient = GetClientID(ctx)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	RequireAuth(validator, logger)(next).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUser)
	assert.Equal(t, "session-9", gotSession)
	assert.Equal(t, "portal", gotClient)
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	validator := stubValidator{err: errors.New("expired")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	RequireAuth(validator, logger)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContextGettersOnBareContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := req.Context()
	assert.Empty(t, GetUserID(ctx))
	assert.Empty(t, GetSessionID(ctx))
	assert.Empty(t, GetClientID(ctx))
}

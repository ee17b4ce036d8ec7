package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"titoubarz-backend/config"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminProtected(cfg *config.Config) http.Handler {
	admin := NewAdminMiddleware(cfg)
	return admin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func adminRequest(t *testing.T, handler http.Handler, setup func(*http.Request)) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	message := ""
	if rec.Code != http.StatusOK {
		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		message = resp.Message
	}
	return rec, message
}

func TestAdminMiddlewarePassword(t *testing.T) {
	handler := adminProtected(&config.Config{AdminPassword: "s3cret"})

	rec, message := adminRequest(t, handler, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Admin password required", message)

	rec, message = adminRequest(t, handler, func(r *http.Request) {
		r.Header.Set("adminpassword", "wrong")
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid admin password", message)

	rec, _ = adminRequest(t, handler, func(r *http.Request) {
		r.Header.Set("adminpassword", "s3cret")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminMiddlewareUnconfigured(t *testing.T) {
	handler := adminProtected(&config.Config{})

	rec, message := adminRequest(t, handler, func(r *http.Request) {
		r.Header.Set("adminpassword", "anything")
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server configuration error", message)
}

func TestAdminMiddlewareBearerToken(t *testing.T) {
	utils.SetSecret("test-secret")
	handler := adminProtected(&config.Config{AdminPassword: "s3cret"})

	token, err := utils.GenerateJWT("admin", "admin", time.Minute)
	require.NoError(t, err)

	rec, _ := adminRequest(t, handler, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// A non-admin token falls through to the password check.
	token, err = utils.GenerateJWT("someone", "customer", time.Minute)
	require.NoError(t, err)
	rec, message := adminRequest(t, handler, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Admin password required", message)
}

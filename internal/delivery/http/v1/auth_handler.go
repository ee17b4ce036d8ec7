package v1

import (
	"crypto/subtle"
	"net/http"

	"titoubarz-backend/config"
	"titoubarz-backend/pkg/logger"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
)

// AuthHandler issues admin session tokens. The back office can then send a
// Bearer token instead of replaying the raw admin password on every call.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" {
		utils.WriteError(w, http.StatusUnauthorized, "Admin password required")
		return
	}
	if h.cfg.AdminPassword == "" {
		logger.Error().Msg("ADMIN_PASSWORD not configured")
		utils.WriteError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		utils.WriteError(w, http.StatusForbidden, "Invalid admin password")
		return
	}

	token, err := utils.GenerateJWT("admin", "admin", h.cfg.AccessTokenExpiry)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to issue admin token")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{
		"token":     token,
		"expiresIn": int64(h.cfg.AccessTokenExpiry.Seconds()),
	})
}

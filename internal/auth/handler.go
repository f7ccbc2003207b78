package auth

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nepal-utilities/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

// Handler authenticates the single operator account configured through
// ADMIN_USERNAME and ADMIN_PASSWORD_HASH.
type Handler struct {
	username     string
	passwordHash []byte
	secret       []byte
	validate     *validator.Validate
	now          func() time.Time
}

func NewHandler(username, passwordHash string, secret []byte) *Handler {
	return &Handler{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       secret,
		validate:     validator.New(),
		now:          time.Now,
	}
}

// Enabled reports whether a password hash and signing key are configured.
func (h *Handler) Enabled() bool {
	return len(h.passwordHash) > 0 && len(h.secret) > 0
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Admin login is disabled"})
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Username and password (min 8 characters) are required"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		log.Printf("[auth] WARN: failed admin login for %q", req.Username)
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, admin, err := GenerateToken(h.secret, h.username, h.now(), tokenTTL)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{Token: token, Admin: admin})
}

func (h *Handler) GetCurrentAdmin(w http.ResponseWriter, r *http.Request) {
	claims, ok := AdminFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Not authenticated"})
		return
	}

	admin := models.Admin{Username: claims.Subject}
	if claims.IssuedAt != nil {
		admin.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		admin.ExpiresAt = claims.ExpiresAt.Time
	}
	writeJSON(w, http.StatusOK, admin)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

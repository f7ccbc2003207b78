package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nepal-utilities/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-signing-key")

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return NewHandler("admin", string(hash), testSecret)
}

func TestLogin(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"username":"admin","password":"correct horse"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"wrong horse"}`, http.StatusUnauthorized},
		{"wrong user", `{"username":"root","password":"correct horse"}`, http.StatusUnauthorized},
		{"short password", `{"username":"admin","password":"short"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body)))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}

			var resp models.AuthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			claims, err := ParseToken(testSecret, resp.Token)
			if err != nil {
				t.Fatalf("ParseToken: %v", err)
			}
			if claims.Subject != "admin" || resp.Admin.Username != "admin" {
				t.Errorf("claims = %+v, admin = %+v", claims, resp.Admin)
			}
		})
	}
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	h := NewHandler("admin", "", testSecret)
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"admin","password":"whatever1"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestParseTokenRejects(t *testing.T) {
	now := time.Now()
	expired, _, err := GenerateToken(testSecret, "admin", now.Add(-2*time.Hour), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(testSecret, expired); err == nil {
		t.Error("expired token accepted")
	}

	valid, _, _ := GenerateToken(testSecret, "admin", now, time.Hour)
	if _, err := ParseToken([]byte("other-key"), valid); err == nil {
		t.Error("token accepted with the wrong key")
	}
	if _, err := ParseToken(testSecret, "not.a.token"); err == nil {
		t.Error("garbage accepted")
	}
}

func TestGetCurrentAdmin(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.GetCurrentAdmin(rec, httptest.NewRequest("GET", "/auth/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without claims: status = %d", rec.Code)
	}

	token, _, _ := GenerateToken(testSecret, "admin", time.Now(), time.Hour)
	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("GET", "/auth/me", nil)
	req = req.WithContext(WithAdmin(context.Background(), claims))
	rec = httptest.NewRecorder()
	h.GetCurrentAdmin(rec, req)

	var admin models.Admin
	json.Unmarshal(rec.Body.Bytes(), &admin)
	if rec.Code != http.StatusOK || admin.Username != "admin" {
		t.Errorf("status = %d admin = %+v", rec.Code, admin)
	}
}

package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/nepal-utilities/backend/internal/models"
)

func newAdminRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/banks", h.List).Methods("GET")
	r.HandleFunc("/banks/{category}", h.Put).Methods("PUT")
	r.HandleFunc("/banks/{category}", h.Delete).Methods("DELETE")
	return r
}

func TestAdminHandlerPutListDelete(t *testing.T) {
	store := newTestStore(t)
	cache := NewCache(store)
	router := newAdminRouter(NewHandler(store, cache))

	doc, err := os.ReadFile(filepath.Join("testdata", "K.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	want, err := Decode(models.CategoryK, bytes.NewReader(doc))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/banks/K", strings.NewReader(string(doc))))
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d: %s", rec.Code, rec.Body.String())
	}
	var summary models.BankSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Category != "K" || summary.QuestionCount != want.QuestionCount() || summary.SectionCount != len(want.Sections) {
		t.Errorf("summary = %+v", summary)
	}

	// Warm the cache, then replace the bank and expect the new document.
	if _, err := cache.Load(context.Background(), "K"); err != nil {
		t.Fatalf("cache load: %v", err)
	}
	small := `{"sections":[{"section_name":{"en":"Traffic signs"},"questions":[{"question_number":1,"question":{"en":"Stop?","ne":"रोक्ने?"},"options":{"en":["a","b","c","d"]},"correct_answer":"a","marks":4}]}]}`
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/banks/K", strings.NewReader(small)))
	if rec.Code != http.StatusOK {
		t.Fatalf("second PUT status = %d: %s", rec.Code, rec.Body.String())
	}
	data, err := cache.Load(context.Background(), "K")
	if err != nil {
		t.Fatalf("cache reload: %v", err)
	}
	if data.QuestionCount() != 1 {
		t.Errorf("cached bank has %d questions after replace, want 1", data.QuestionCount())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/banks", nil))
	var banks []models.BankSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &banks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(banks) != 1 || banks[0].QuestionCount != 1 {
		t.Errorf("banks = %+v", banks)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/banks/K", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/banks/K", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", rec.Code)
	}
}

func TestAdminHandlerPutErrors(t *testing.T) {
	router := newAdminRouter(NewHandler(newTestStore(t), nil))

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown category", "/banks/Z", `{"sections":[]}`, http.StatusNotFound},
		{"malformed", "/banks/B", `{"sections":`, http.StatusBadRequest},
		{"empty", "/banks/B", `{"sections":[{"section_name":{"en":"x"},"questions":[]}]}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("PUT", tt.path, strings.NewReader(tt.body)))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

package bank

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nepal-utilities/backend/internal/models"
)

// Handler serves the admin routes that manage database-backed banks.
// Writes invalidate the cache so running servers pick up the new bank on
// the next session that selects the category.
type Handler struct {
	store *Store
	cache *Cache
}

func NewHandler(store *Store, cache *Cache) *Handler {
	return &Handler{store: store, cache: cache}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	banks, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[bank] list: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list question banks"})
		return
	}
	writeJSON(w, http.StatusOK, banks)
}

func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	category := models.Category(mux.Vars(r)["category"])
	if err := checkCategory(category); err != nil {
		writeBankError(w, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 8<<20)

	data, err := Decode(category, r.Body)
	if err != nil {
		writeBankError(w, err)
		return
	}

	summary, err := h.store.Save(r.Context(), category, data)
	if err != nil {
		writeBankError(w, err)
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(category)
	}

	log.Printf("[bank] saved %s: %d sections, %d questions", category, summary.SectionCount, summary.QuestionCount)
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	category := models.Category(mux.Vars(r)["category"])

	if err := h.store.Delete(r.Context(), category); err != nil {
		writeBankError(w, err)
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(category)
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBankError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question bank not found"})
	case errors.Is(err, ErrEmptyBank):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Question bank has no questions"})
	default:
		var le *LoadError
		if errors.As(err, &le) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question bank document"})
			return
		}
		log.Printf("[bank] store error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update question bank"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

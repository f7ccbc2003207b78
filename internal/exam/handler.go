package exam

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/nepal-utilities/backend/internal/bank"
	"github.com/nepal-utilities/backend/internal/models"
)

type Handler struct {
	manager  *Manager
	practice *Practice
	validate *validator.Validate
}

func NewHandler(manager *Manager, practice *Practice) *Handler {
	return &Handler{manager: manager, practice: practice, validate: validator.New()}
}

// ── Exam Sessions ───────────────────────────────────────

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Categories(h.manager.Config()))
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()
	writeJSON(w, http.StatusCreated, s.View())
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.View())
}

func (h *Handler) ExitSession(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Exit(mux.Vars(r)["id"]); err != nil {
		writeExamError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req models.StartExamRequest
	if !h.decode(w, r, &req) {
		return
	}
	category, _ := models.ParseCategory(req.Category)

	s, err := h.manager.SelectCategory(r.Context(), mux.Vars(r)["id"], category)
	if err != nil {
		writeExamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.View())
}

func (h *Handler) ChooseLanguage(w http.ResponseWriter, r *http.Request) {
	var req models.ChooseLanguageRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.apply(w, r, func(s *Session) error { return s.ChooseLanguage(req.Language, req.DisplayMode) })
}

func (h *Handler) SetDisplayMode(w http.ResponseWriter, r *http.Request) {
	var req models.DisplayModeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.apply(w, r, func(s *Session) error { return s.SetDisplayMode(req.DisplayMode) })
}

func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, (*Session).Begin)
}

func (h *Handler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.RecordAnswerRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.apply(w, r, func(s *Session) error {
		_, err := s.RecordAnswer(req.QuestionID, *req.SelectedOption)
		return err
	})
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req models.NavigateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if (req.To == "") == (req.Index == nil) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Provide either 'to' (next|prev) or 'index'"})
		return
	}

	h.apply(w, r, func(s *Session) error {
		switch {
		case req.Index != nil:
			return s.Jump(*req.Index)
		case req.To == "next":
			return s.Next()
		default:
			return s.Prev()
		}
	})
}

func (h *Handler) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question index"})
		return
	}
	h.apply(w, r, func(s *Session) error {
		_, err := s.ToggleFlag(index)
		return err
	})
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(s *Session) error {
		_, err := s.Complete()
		return err
	})
}

func (h *Handler) EnterReview(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, (*Session).EnterReview)
}

func (h *Handler) ExitReview(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, (*Session).ExitReview)
}

func (h *Handler) Retake(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, (*Session).Retake)
}

// ── Practice ────────────────────────────────────────────

func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryVar(w, r)
	if !ok {
		return
	}
	sections, err := h.practice.Sections(r.Context(), category)
	if err != nil {
		writeExamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

func (h *Handler) Flashcards(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryVar(w, r)
	if !ok {
		return
	}
	section, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid section index"})
		return
	}
	lang := languageQueryParam(r.URL.Query(), "lang", models.LanguageEnglish)

	cards, err := h.practice.Flashcards(r.Context(), category, section, lang)
	if err != nil {
		writeExamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) CheckPractice(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryVar(w, r)
	if !ok {
		return
	}
	var req models.PracticeCheckRequest
	if !h.decode(w, r, &req) {
		return
	}

	fb, err := h.practice.Check(r.Context(), category, req.QuestionID, *req.SelectedOption)
	if err != nil {
		writeExamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fb)
}

// ── Helpers ─────────────────────────────────────────────

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	s, err := h.manager.Get(mux.Vars(r)["id"])
	if err != nil {
		writeExamError(w, err)
		return nil, false
	}
	return s, true
}

// apply runs op on the request's session and answers with the new view.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request, op func(*Session) error) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := op(s); err != nil {
		writeExamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.View())
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return false
	}
	return true
}

func categoryVar(w http.ResponseWriter, r *http.Request) (models.Category, bool) {
	category, ok := models.ParseCategory(mux.Vars(r)["category"])
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Unknown exam category"})
	}
	return category, ok
}

func languageQueryParam(query url.Values, key string, fallback models.Language) models.Language {
	lang := models.Language(query.Get(key))
	if !models.ValidLanguages[lang] {
		return fallback
	}
	return lang
}

func writeExamError(w http.ResponseWriter, err error) {
	var loadErr *bank.LoadError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Exam session not found"})
	case errors.Is(err, bank.ErrCategoryNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question bank not found for this category"})
	case errors.As(err, &loadErr):
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Failed to load questions. Please try again."})
	case errors.Is(err, ErrLoadInFlight),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrExamCompleted):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrInvalidOption),
		errors.Is(err, ErrQuestionNotInExam),
		errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrIndexOutOfRange):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrNoQuestions):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("[handler] exam error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

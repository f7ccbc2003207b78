package exam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/nepal-utilities/backend/internal/models"
)

func newTestRouter(m *Manager) *mux.Router {
	h := NewHandler(m, NewPractice(m.source))
	r := mux.NewRouter()
	r.HandleFunc("/categories", h.ListCategories).Methods("GET")
	r.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	r.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	r.HandleFunc("/sessions/{id}", h.ExitSession).Methods("DELETE")
	r.HandleFunc("/sessions/{id}/category", h.SelectCategory).Methods("POST")
	r.HandleFunc("/sessions/{id}/language", h.ChooseLanguage).Methods("POST")
	r.HandleFunc("/sessions/{id}/display", h.SetDisplayMode).Methods("POST")
	r.HandleFunc("/sessions/{id}/begin", h.Begin).Methods("POST")
	r.HandleFunc("/sessions/{id}/answers", h.RecordAnswer).Methods("PUT")
	r.HandleFunc("/sessions/{id}/navigate", h.Navigate).Methods("POST")
	r.HandleFunc("/sessions/{id}/flags/{index}", h.ToggleFlag).Methods("POST")
	r.HandleFunc("/sessions/{id}/complete", h.Complete).Methods("POST")
	r.HandleFunc("/sessions/{id}/review", h.EnterReview).Methods("POST")
	r.HandleFunc("/sessions/{id}/review", h.ExitReview).Methods("DELETE")
	r.HandleFunc("/sessions/{id}/retake", h.Retake).Methods("POST")
	r.HandleFunc("/banks/{category}/sections", h.ListSections).Methods("GET")
	r.HandleFunc("/banks/{category}/sections/{index}/flashcards", h.Flashcards).Methods("GET")
	r.HandleFunc("/banks/{category}/check", h.CheckPractice).Methods("POST")
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("%s %s: status = %d, want %d: %s", method, path, rec.Code, wantStatus, rec.Body.String())
	}
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) models.SessionView {
	t.Helper()
	var v models.SessionView
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return v
}

func TestHandlerExamFlow(t *testing.T) {
	m := NewManager(newFakeSource(), DefaultConfig())
	m.tickInterval = time.Hour
	r := newTestRouter(m)

	v := decodeView(t, do(t, r, "POST", "/sessions", "", http.StatusCreated))
	base := "/sessions/" + v.ID
	t.Cleanup(func() { m.Exit(v.ID) })

	do(t, r, "POST", base+"/begin", "", http.StatusConflict)
	do(t, r, "POST", base+"/category", `{"category":"X"}`, http.StatusBadRequest)

	v = decodeView(t, do(t, r, "POST", base+"/category", `{"category":"b"}`, http.StatusOK))
	if v.Phase != models.PhaseLanguageSelect || v.Category != models.CategoryB {
		t.Fatalf("after category: %+v", v)
	}

	do(t, r, "POST", base+"/language", `{"language":"fr"}`, http.StatusBadRequest)
	do(t, r, "POST", base+"/language", `{"language":"ne","display_mode":"paper"}`, http.StatusOK)
	v = decodeView(t, do(t, r, "POST", base+"/begin", "", http.StatusOK))
	if v.Phase != models.PhaseInProgress || len(v.Questions) != 25 || v.Remaining != "30:00" {
		t.Fatalf("after begin: phase %s, %d questions, remaining %s", v.Phase, len(v.Questions), v.Remaining)
	}

	first := v.Questions[0].Number
	do(t, r, "PUT", base+"/answers", `{"question_id":`+itoa(first)+`,"selected_option":2}`, http.StatusOK)
	do(t, r, "PUT", base+"/answers", `{"question_id":`+itoa(first)+`,"selected_option":5}`, http.StatusBadRequest)
	do(t, r, "PUT", base+"/answers", `{"question_id":99999,"selected_option":1}`, http.StatusBadRequest)
	do(t, r, "PUT", base+"/answers", `{"question_id":`+itoa(first)+`}`, http.StatusBadRequest)

	v = decodeView(t, do(t, r, "POST", base+"/navigate", `{"to":"next"}`, http.StatusOK))
	if v.CurrentIndex != 1 {
		t.Errorf("index after next = %d", v.CurrentIndex)
	}
	do(t, r, "POST", base+"/navigate", `{}`, http.StatusBadRequest)
	do(t, r, "POST", base+"/navigate", `{"index":40}`, http.StatusBadRequest)
	v = decodeView(t, do(t, r, "POST", base+"/flags/3", "", http.StatusOK))
	if len(v.Flags) != 1 || v.Statuses[3] != models.StatusFlagged {
		t.Errorf("flags = %v statuses[3] = %s", v.Flags, v.Statuses[3])
	}
	do(t, r, "POST", base+"/display", `{"display_mode":"quiz"}`, http.StatusOK)

	v = decodeView(t, do(t, r, "POST", base+"/complete", "", http.StatusOK))
	if v.Phase != models.PhaseCompleted || v.Result == nil {
		t.Fatalf("after complete: %+v", v)
	}
	if v.Result.AnsweredCount != 1 || v.Result.UnansweredCount != 24 {
		t.Errorf("result = %+v", v.Result)
	}
	do(t, r, "PUT", base+"/answers", `{"question_id":`+itoa(first)+`,"selected_option":1}`, http.StatusConflict)
	again := decodeView(t, do(t, r, "POST", base+"/complete", "", http.StatusOK))
	if again.Result.TotalScore != v.Result.TotalScore {
		t.Errorf("second complete changed score")
	}

	do(t, r, "POST", base+"/review", "", http.StatusOK)
	do(t, r, "DELETE", base+"/review", "", http.StatusOK)
	v = decodeView(t, do(t, r, "POST", base+"/retake", "", http.StatusOK))
	if v.Phase != models.PhaseLanguageSelect {
		t.Errorf("after retake: %s", v.Phase)
	}

	do(t, r, "DELETE", base, "", http.StatusNoContent)
	do(t, r, "GET", base, "", http.StatusNotFound)
}

func TestHandlerUnknownBank(t *testing.T) {
	src := newFakeSource()
	delete(src.banks, models.CategoryK)
	m := NewManager(src, DefaultConfig())
	r := newTestRouter(m)

	v := decodeView(t, do(t, r, "POST", "/sessions", "", http.StatusCreated))
	do(t, r, "POST", "/sessions/"+v.ID+"/category", `{"category":"K"}`, http.StatusNotFound)
	do(t, r, "GET", "/banks/K/sections", "", http.StatusNotFound)
	do(t, r, "GET", "/banks/Q/sections", "", http.StatusNotFound)
}

func TestHandlerPractice(t *testing.T) {
	r := newTestRouter(NewManager(newFakeSource(), DefaultConfig()))

	var sections []models.SectionSummary
	json.Unmarshal(do(t, r, "GET", "/banks/B/sections", "", http.StatusOK).Body.Bytes(), &sections)
	if len(sections) != 6 {
		t.Errorf("sections = %d", len(sections))
	}

	var cards []models.Flashcard
	json.Unmarshal(do(t, r, "GET", "/banks/b/sections/0/flashcards?lang=ne", "", http.StatusOK).Body.Bytes(), &cards)
	if len(cards) != 10 || cards[0].Language != models.LanguageNepali {
		t.Errorf("cards = %+v", cards)
	}
	do(t, r, "GET", "/banks/B/sections/9/flashcards", "", http.StatusBadRequest)

	var fb models.PracticeFeedback
	json.Unmarshal(do(t, r, "POST", "/banks/B/check", `{"question_id":1,"selected_option":1}`, http.StatusOK).Body.Bytes(), &fb)
	if !fb.IsCorrect {
		t.Errorf("feedback = %+v", fb)
	}
}

func TestHandlerCategories(t *testing.T) {
	r := newTestRouter(NewManager(newFakeSource(), DefaultConfig()))
	var cats []models.CategoryInfo
	json.Unmarshal(do(t, r, "GET", "/categories", "", http.StatusOK).Body.Bytes(), &cats)
	if len(cats) != 2 || cats[0].Config.TotalQuestions != 25 {
		t.Errorf("categories = %+v", cats)
	}
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

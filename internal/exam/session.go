package exam

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/nepal-utilities/backend/internal/models"
)

// Session is one exam attempt. All methods are safe for concurrent use; the
// countdown goroutine and request handlers share it through mu.
type Session struct {
	mu sync.Mutex

	id           string
	cfg          models.ExamConfig
	rng          *rand.Rand
	tickInterval time.Duration

	phase    models.Phase
	category models.Category
	language models.Language
	mode     models.DisplayMode
	bank     models.QuestionData
	loading  bool

	questions []models.Question
	position  map[int]int // question_number -> index in questions
	current   int
	answers   map[int]models.UserAnswer
	order     []int // question numbers in first-answer order
	flags     map[int]bool
	remaining int
	result    *models.ExamResult

	timer      *countdown
	generation int
	lastActive time.Time
}

func NewSession(id string, cfg models.ExamConfig, rng *rand.Rand) *Session {
	return &Session{
		id:           id,
		cfg:          cfg,
		rng:          rng,
		tickInterval: time.Second,
		phase:        models.PhaseCategorySelect,
		language:     models.LanguageEnglish,
		mode:         models.DisplayQuiz,
		remaining:    cfg.TimeLimitSeconds,
		lastActive:   time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Phase() models.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// ── Category and language ───────────────────────────────

// startLoad reserves the session for a bank load. Only one load may run
// per session. The returned generation identifies the load to applyBank
// and failLoad.
func (s *Session) startLoad() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseCategorySelect && s.phase != models.PhaseLanguageSelect {
		return 0, transitionErr("select category", s.phase)
	}
	if s.loading {
		return 0, ErrLoadInFlight
	}
	s.loading = true
	return s.generation, nil
}

func (s *Session) failLoad(gen int) {
	s.mu.Lock()
	if gen == s.generation {
		s.loading = false
	}
	s.mu.Unlock()
}

// applyBank draws the question set from a freshly loaded bank and moves to
// language selection.
func (s *Session) applyBank(gen int, category models.Category, data models.QuestionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The session was exited while the bank was loading.
	if gen != s.generation || !s.loading {
		return ErrSessionNotFound
	}
	s.loading = false

	questions := BuildExamSet(data, s.cfg, s.rng)
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	if len(questions) < s.cfg.TotalQuestions {
		log.Printf("[exam] WARN: session %s: bank %s yields %d of %d questions", s.id, category, len(questions), s.cfg.TotalQuestions)
	}

	s.category = category
	s.bank = data
	s.setQuestions(questions)
	s.phase = models.PhaseLanguageSelect
	return nil
}

func (s *Session) ChooseLanguage(lang models.Language, mode models.DisplayMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseLanguageSelect && s.phase != models.PhaseInstructions {
		return transitionErr("choose language", s.phase)
	}
	if !models.ValidLanguages[lang] {
		return fmt.Errorf("unsupported language %q", lang)
	}
	if mode == "" {
		mode = models.DisplayQuiz
	}
	if !models.ValidDisplayModes[mode] {
		return fmt.Errorf("unsupported display mode %q", mode)
	}

	s.language = lang
	s.mode = mode
	s.phase = models.PhaseInstructions
	return nil
}

// SetDisplayMode switches between quiz and paper rendering without touching
// exam state.
func (s *Session) SetDisplayMode(mode models.DisplayMode) error {
	if !models.ValidDisplayModes[mode] {
		return fmt.Errorf("unsupported display mode %q", mode)
	}
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	return nil
}

// ── Running the exam ────────────────────────────────────

// Begin starts the exam and arms the countdown.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseInstructions {
		return transitionErr("begin", s.phase)
	}

	s.phase = models.PhaseInProgress
	s.current = 0
	s.remaining = s.cfg.TimeLimitSeconds
	s.generation++
	gen := s.generation
	s.timer = startCountdown(s.tickInterval, func() bool { return s.tick(gen) })
	return nil
}

// Tick advances the countdown by one second. It reports whether the exam is
// still running afterwards.
func (s *Session) Tick() bool {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()
	return s.tick(gen)
}

func (s *Session) tick(gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A countdown from an earlier attempt may fire once after being stopped.
	if gen != s.generation || s.phase != models.PhaseInProgress {
		return false
	}
	s.remaining--
	if s.remaining > 0 {
		return true
	}
	s.remaining = 0
	log.Printf("[exam] session %s: time is up", s.id)
	s.completeLocked()
	return false
}

func (s *Session) RecordAnswer(questionID, option int) (models.UserAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case models.PhaseInProgress:
	case models.PhaseCompleted, models.PhaseReview:
		return models.UserAnswer{}, ErrExamCompleted
	default:
		return models.UserAnswer{}, transitionErr("answer", s.phase)
	}
	if option < 0 || option >= models.OptionCount {
		return models.UserAnswer{}, ErrInvalidOption
	}
	pos, ok := s.position[questionID]
	if !ok {
		return models.UserAnswer{}, ErrQuestionNotInExam
	}

	q := s.questions[pos]
	answer := models.UserAnswer{
		QuestionID:     questionID,
		SelectedOption: option,
		IsCorrect:      option == q.CorrectIndex,
	}
	if answer.IsCorrect {
		answer.Marks = q.Marks
	}

	if _, seen := s.answers[questionID]; !seen {
		s.order = append(s.order, questionID)
	}
	s.answers[questionID] = answer
	return answer, nil
}

// Complete scores the exam. The first call ends the attempt; later calls
// return the same result.
func (s *Session) Complete() (models.ExamResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return *s.result, nil
	}
	if s.phase != models.PhaseInProgress {
		return models.ExamResult{}, transitionErr("complete", s.phase)
	}
	s.completeLocked()
	return *s.result, nil
}

func (s *Session) completeLocked() {
	s.timer.Stop()
	s.timer = nil

	r := s.score()
	s.result = &r
	s.phase = models.PhaseCompleted
	log.Printf("[exam] session %s completed: %d/%d passed=%v in %s", s.id, r.TotalScore, r.TotalMarks, r.Passed, r.TimeSpent)
}

func (s *Session) score() models.ExamResult {
	r := models.ExamResult{
		TotalMarks:     s.cfg.TotalMarks,
		TotalQuestions: len(s.questions),
		Answers:        make([]models.UserAnswer, 0, len(s.order)),
	}
	for _, id := range s.order {
		a := s.answers[id]
		r.Answers = append(r.Answers, a)
		r.TotalScore += a.Marks
		if a.IsCorrect {
			r.CorrectCount++
		}
	}
	r.AnsweredCount = len(r.Answers)
	r.IncorrectCount = r.AnsweredCount - r.CorrectCount
	r.UnansweredCount = r.TotalQuestions - r.AnsweredCount
	r.Passed = r.TotalScore >= s.cfg.PassingMarks
	if s.cfg.TotalMarks > 0 {
		r.Percentage = int(math.Round(float64(r.TotalScore) / float64(s.cfg.TotalMarks) * 100))
	}
	r.TimeSpentSeconds = s.cfg.TimeLimitSeconds - s.remaining
	r.TimeSpent = FormatClock(r.TimeSpentSeconds)
	return r
}

// ── Navigation ──────────────────────────────────────────

func (s *Session) navigable(op string) error {
	if s.phase != models.PhaseInProgress && s.phase != models.PhaseReview {
		return transitionErr(op, s.phase)
	}
	return nil
}

// Next moves forward. Past the last question it submits a running exam; in
// review it stays on the last question.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.navigable("next"); err != nil {
		return err
	}
	if s.current < len(s.questions)-1 {
		s.current++
		return nil
	}
	if s.phase == models.PhaseInProgress {
		s.completeLocked()
	}
	return nil
}

func (s *Session) Prev() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.navigable("previous"); err != nil {
		return err
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

func (s *Session) Jump(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.navigable("jump"); err != nil {
		return err
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	s.current = index
	return nil
}

// ToggleFlag flips the review flag on the question at index and returns the
// new state.
func (s *Session) ToggleFlag(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.navigable("flag"); err != nil {
		return false, err
	}
	if index < 0 || index >= len(s.questions) {
		return false, ErrIndexOutOfRange
	}
	if s.flags[index] {
		delete(s.flags, index)
		return false, nil
	}
	s.flags[index] = true
	return true, nil
}

// Status of the question at index for navigation panels.
func (s *Session) Status(index int) (models.QuestionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.questions) {
		return "", ErrIndexOutOfRange
	}
	return s.statusLocked(index), nil
}

func (s *Session) statusLocked(index int) models.QuestionStatus {
	_, answered := s.answers[s.questions[index].Number]
	flagged := s.flags[index]
	switch {
	case answered && flagged:
		return models.StatusAnsweredFlagged
	case answered:
		return models.StatusAnswered
	case flagged:
		return models.StatusFlagged
	default:
		return models.StatusUnanswered
	}
}

// ── Review, retake, exit ────────────────────────────────

func (s *Session) EnterReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseCompleted {
		return transitionErr("enter review", s.phase)
	}
	s.phase = models.PhaseReview
	s.current = 0
	return nil
}

func (s *Session) ExitReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseReview {
		return transitionErr("exit review", s.phase)
	}
	s.phase = models.PhaseCompleted
	return nil
}

// Retake draws a fresh question set from the same bank and returns to
// language selection.
func (s *Session) Retake() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case models.PhaseInstructions, models.PhaseInProgress, models.PhaseCompleted, models.PhaseReview:
	default:
		return transitionErr("retake", s.phase)
	}

	s.timer.Stop()
	s.timer = nil
	s.generation++
	s.setQuestions(BuildExamSet(s.bank, s.cfg, s.rng))
	s.phase = models.PhaseLanguageSelect
	return nil
}

// Exit stops the countdown and drops the attempt.
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timer.Stop()
	s.timer = nil
	s.generation++
	s.loading = false
	s.setQuestions(nil)
	s.bank = models.QuestionData{}
	s.category = ""
	s.phase = models.PhaseCategorySelect
}

// setQuestions resets all per-attempt state around a new question set.
func (s *Session) setQuestions(questions []models.Question) {
	s.questions = questions
	s.position = make(map[int]int, len(questions))
	for i, q := range questions {
		s.position[q.Number] = i
	}
	s.current = 0
	s.answers = make(map[int]models.UserAnswer)
	s.order = nil
	s.flags = make(map[int]bool)
	s.remaining = s.cfg.TimeLimitSeconds
	s.result = nil
}

// ── Read model ──────────────────────────────────────────

func (s *Session) View() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := models.SessionView{
		ID:               s.id,
		Phase:            s.phase,
		Category:         s.category,
		Language:         s.language,
		DisplayMode:      s.mode,
		Config:           s.cfg,
		CurrentIndex:     s.current,
		RemainingSeconds: s.remaining,
		Remaining:        FormatClock(s.remaining),
		Selections:       make(map[int]int, len(s.answers)),
		Flags:            make([]int, 0, len(s.flags)),
	}

	started := s.phase == models.PhaseInProgress || s.phase == models.PhaseCompleted || s.phase == models.PhaseReview
	if started {
		reveal := s.result != nil
		v.Questions = make([]models.ExamQuestion, len(s.questions))
		v.Statuses = make([]models.QuestionStatus, len(s.questions))
		for i, q := range s.questions {
			v.Questions[i] = q.ForExam(s.language, reveal)
			v.Statuses[i] = s.statusLocked(i)
		}
	}
	for id, a := range s.answers {
		v.Selections[id] = a.SelectedOption
	}
	for i := range s.flags {
		v.Flags = append(v.Flags, i)
	}
	sort.Ints(v.Flags)

	if s.result != nil {
		r := *s.result
		v.Result = &r
		v.Answers = r.Answers
	}
	return v
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

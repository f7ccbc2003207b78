package models

import "time"

type Phase string

const (
	PhaseCategorySelect Phase = "category_select"
	PhaseLanguageSelect Phase = "language_select"
	PhaseInstructions   Phase = "instructions"
	PhaseInProgress     Phase = "in_progress"
	PhaseCompleted      Phase = "completed"
	PhaseReview         Phase = "review"
)

// DisplayMode is how the client renders an in-progress or completed exam.
type DisplayMode string

const (
	DisplayQuiz  DisplayMode = "quiz"
	DisplayPaper DisplayMode = "paper"
)

var ValidDisplayModes = map[DisplayMode]bool{
	DisplayQuiz:  true,
	DisplayPaper: true,
}

type QuestionStatus string

const (
	StatusUnanswered      QuestionStatus = "unanswered"
	StatusAnswered        QuestionStatus = "answered"
	StatusFlagged         QuestionStatus = "flagged"
	StatusAnsweredFlagged QuestionStatus = "answered_flagged"
)

// SectionQuota is one entry of an exam's section distribution.
type SectionQuota struct {
	Name  string `json:"section_name"`
	Count int    `json:"count"`
}

type ExamConfig struct {
	TotalQuestions   int            `json:"total_questions"`
	TotalMarks       int            `json:"total_marks"`
	TimeLimitSeconds int            `json:"time_limit_seconds"`
	PassingMarks     int            `json:"passing_marks"`
	Distribution     []SectionQuota `json:"section_distribution"`
}

func (c ExamConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds) * time.Second
}

type UserAnswer struct {
	QuestionID     int  `json:"question_id"`
	SelectedOption int  `json:"selected_option"`
	IsCorrect      bool `json:"is_correct"`
	Marks          int  `json:"marks"`
}

type ExamResult struct {
	TotalScore       int          `json:"total_score"`
	TotalMarks       int          `json:"total_marks"`
	Percentage       int          `json:"percentage"`
	CorrectCount     int          `json:"correct_count"`
	IncorrectCount   int          `json:"incorrect_count"`
	AnsweredCount    int          `json:"answered_count"`
	UnansweredCount  int          `json:"unanswered_count"`
	TotalQuestions   int          `json:"total_questions"`
	Passed           bool         `json:"passed"`
	TimeSpentSeconds int          `json:"time_spent_seconds"`
	TimeSpent        string       `json:"time_spent"`
	Answers          []UserAnswer `json:"answers"`
}

// SessionView is the read model a client renders from. Selections maps
// question_number to the chosen option; scored Answers appear only once
// the exam is completed.
type SessionView struct {
	ID               string           `json:"id"`
	Phase            Phase            `json:"phase"`
	Category         Category         `json:"category,omitempty"`
	Language         Language         `json:"language"`
	DisplayMode      DisplayMode      `json:"display_mode"`
	Config           ExamConfig       `json:"config"`
	CurrentIndex     int              `json:"current_index"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Remaining        string           `json:"remaining"`
	Questions        []ExamQuestion   `json:"questions"`
	Selections       map[int]int      `json:"selections"`
	Answers          []UserAnswer     `json:"answers,omitempty"`
	Flags            []int            `json:"flags"`
	Statuses         []QuestionStatus `json:"statuses"`
	Result           *ExamResult      `json:"result,omitempty"`
}

// CategoryInfo describes an exam category for the selection screen.
type CategoryInfo struct {
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	Config      ExamConfig `json:"config"`
}

// ── Practice / Flashcards ─────────────────────────────

type SectionSummary struct {
	Index         int           `json:"index"`
	Name          LocalizedText `json:"section_name"`
	QuestionCount int           `json:"question_count"`
}

type Flashcard struct {
	Index    int      `json:"index"`
	Number   int      `json:"question_number"`
	Front    string   `json:"front"`
	Options  []string `json:"options"`
	Back     string   `json:"back"`
	Answer   string   `json:"answer"`
	Language Language `json:"language"`
}

type PracticeFeedback struct {
	QuestionID     int    `json:"question_id"`
	SelectedOption int    `json:"selected_option"`
	CorrectOption  int    `json:"correct_option"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Marks          int    `json:"marks"`
}

// ── Request Types ─────────────────────────────────────

type StartExamRequest struct {
	Category string `json:"category" validate:"required,oneof=B K b k"`
}

type ChooseLanguageRequest struct {
	Language    Language    `json:"language" validate:"required,oneof=en ne"`
	DisplayMode DisplayMode `json:"display_mode" validate:"omitempty,oneof=quiz paper"`
}

type RecordAnswerRequest struct {
	QuestionID     int  `json:"question_id" validate:"required,gt=0"`
	SelectedOption *int `json:"selected_option" validate:"required,min=0,max=3"`
}

type DisplayModeRequest struct {
	DisplayMode DisplayMode `json:"display_mode" validate:"required,oneof=quiz paper"`
}

// NavigateRequest moves by "next"/"prev" or jumps to Index.
type NavigateRequest struct {
	To    string `json:"to" validate:"omitempty,oneof=next prev"`
	Index *int   `json:"index,omitempty" validate:"omitempty,min=0"`
}

type PracticeCheckRequest struct {
	QuestionID     int  `json:"question_id" validate:"required,gt=0"`
	SelectedOption *int `json:"selected_option" validate:"required,min=0,max=3"`
}

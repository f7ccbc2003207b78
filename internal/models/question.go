package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageNepali  Language = "ne"
)

var ValidLanguages = map[Language]bool{
	LanguageEnglish: true,
	LanguageNepali:  true,
}

type Category string

const (
	CategoryB Category = "B" // car / jeep
	CategoryK Category = "K" // motorcycle / scooter
)

var ValidCategories = map[Category]bool{
	CategoryB: true,
	CategoryK: true,
}

// ParseCategory accepts "b", " K " etc. and returns the canonical category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	return c, ValidCategories[c]
}

// OptionCount is the number of options every bank question carries.
const OptionCount = 4

// ── Core Structs ───────────────────────────────────────

type LocalizedText struct {
	EN string `json:"en"`
	NE string `json:"ne"`
}

func (t LocalizedText) In(lang Language) string {
	if lang == LanguageNepali && t.NE != "" {
		return t.NE
	}
	return t.EN
}

type LocalizedOptions struct {
	EN []string `json:"en"`
	NE []string `json:"ne"`
}

func (o LocalizedOptions) In(lang Language) []string {
	if lang == LanguageNepali && len(o.NE) > 0 {
		return o.NE
	}
	return o.EN
}

// Question is one bank entry. CorrectIndex is the zero-based option index;
// the JSON form carries it as a letter in correct_answer.
type Question struct {
	Number       int              `json:"question_number"`
	Text         LocalizedText    `json:"question"`
	Options      LocalizedOptions `json:"options"`
	CorrectIndex int              `json:"-"`
	Marks        int              `json:"marks"`
}

type questionJSON struct {
	Number        int              `json:"question_number"`
	Text          LocalizedText    `json:"question"`
	Options       LocalizedOptions `json:"options"`
	CorrectAnswer json.RawMessage  `json:"correct_answer"`
	Marks         int              `json:"marks"`
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var raw questionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.Number = raw.Number
	q.Text = raw.Text
	q.Options = raw.Options
	q.Marks = raw.Marks
	q.CorrectIndex = parseCorrectAnswer(raw.CorrectAnswer)
	return nil
}

func (q Question) MarshalJSON() ([]byte, error) {
	letter := IndexToLetter(q.CorrectIndex)
	answer, err := json.Marshal(letter)
	if err != nil {
		return nil, err
	}
	return json.Marshal(questionJSON{
		Number:        q.Number,
		Text:          q.Text,
		Options:       q.Options,
		CorrectAnswer: answer,
		Marks:         q.Marks,
	})
}

// HasValidAnswer reports whether the decoded correct answer points at an option.
func (q Question) HasValidAnswer() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < OptionCount
}

type Section struct {
	Name      LocalizedText `json:"section_name"`
	Questions []Question    `json:"questions"`
}

// QuestionData is one category's question bank document.
type QuestionData struct {
	Sections []Section `json:"sections"`
}

// AllQuestions flattens the bank in section order.
func (d QuestionData) AllQuestions() []Question {
	var out []Question
	for _, s := range d.Sections {
		out = append(out, s.Questions...)
	}
	return out
}

func (d QuestionData) QuestionCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Questions)
	}
	return n
}

// FindQuestion looks a question up by its number across all sections.
func (d QuestionData) FindQuestion(number int) (Question, bool) {
	for _, s := range d.Sections {
		for _, q := range s.Questions {
			if q.Number == number {
				return q, true
			}
		}
	}
	return Question{}, false
}

// LetterToIndex maps 'a'..'d' (any case) to 0..3, or -1.
func LetterToIndex(letter string) int {
	letter = strings.ToLower(strings.TrimSpace(letter))
	if len(letter) != 1 {
		return -1
	}
	idx := int(letter[0] - 'a')
	if idx < 0 || idx >= OptionCount {
		return -1
	}
	return idx
}

// IndexToLetter maps 0..3 to "a".."d"; anything else yields "".
func IndexToLetter(index int) string {
	if index < 0 || index >= OptionCount {
		return ""
	}
	return string(rune('a' + index))
}

// parseCorrectAnswer decodes the canonical letter form. Bare numbers and
// numeric strings are older bank exports and are read as zero-based indices.
func parseCorrectAnswer(raw json.RawMessage) int {
	if len(raw) == 0 {
		return -1
	}

	var letter string
	if err := json.Unmarshal(raw, &letter); err == nil {
		if idx := LetterToIndex(letter); idx >= 0 {
			return idx
		}
		if n, err := strconv.Atoi(strings.TrimSpace(letter)); err == nil && n >= 0 && n < OptionCount {
			return n
		}
		return -1
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil && n >= 0 && n < OptionCount {
		return n
	}
	return -1
}

// ── Serving Types (strip answers) ─────────────────────

type ExamQuestion struct {
	Number  int      `json:"question_number"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Marks   int      `json:"marks"`
	// Set only once the exam is over.
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

func (q Question) ForExam(lang Language, reveal bool) ExamQuestion {
	eq := ExamQuestion{
		Number:  q.Number,
		Text:    q.Text.In(lang),
		Options: q.Options.In(lang),
		Marks:   q.Marks,
	}
	if reveal {
		eq.CorrectAnswer = IndexToLetter(q.CorrectIndex)
	}
	return eq
}

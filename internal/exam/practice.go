package exam

import (
	"context"

	"github.com/nepal-utilities/backend/internal/bank"
	"github.com/nepal-utilities/backend/internal/models"
)

// Practice serves untimed section practice and flashcards straight from a
// bank. It keeps no state between calls.
type Practice struct {
	source bank.Source
}

func NewPractice(source bank.Source) *Practice {
	return &Practice{source: source}
}

func (p *Practice) Sections(ctx context.Context, category models.Category) ([]models.SectionSummary, error) {
	data, err := p.source.Load(ctx, category)
	if err != nil {
		return nil, err
	}

	out := make([]models.SectionSummary, len(data.Sections))
	for i, s := range data.Sections {
		out[i] = models.SectionSummary{Index: i, Name: s.Name, QuestionCount: len(s.Questions)}
	}
	return out, nil
}

// Flashcards turns one section into front/back cards in lang.
func (p *Practice) Flashcards(ctx context.Context, category models.Category, section int, lang models.Language) ([]models.Flashcard, error) {
	data, err := p.source.Load(ctx, category)
	if err != nil {
		return nil, err
	}
	if section < 0 || section >= len(data.Sections) {
		return nil, ErrIndexOutOfRange
	}

	questions := data.Sections[section].Questions
	cards := make([]models.Flashcard, len(questions))
	for i, q := range questions {
		options := q.Options.In(lang)
		card := models.Flashcard{
			Index:    i,
			Number:   q.Number,
			Front:    q.Text.In(lang),
			Options:  options,
			Answer:   models.IndexToLetter(q.CorrectIndex),
			Language: lang,
		}
		if q.HasValidAnswer() && q.CorrectIndex < len(options) {
			card.Back = options[q.CorrectIndex]
		}
		cards[i] = card
	}
	return cards, nil
}

// Check grades a single practice answer.
func (p *Practice) Check(ctx context.Context, category models.Category, questionID, option int) (models.PracticeFeedback, error) {
	if option < 0 || option >= models.OptionCount {
		return models.PracticeFeedback{}, ErrInvalidOption
	}
	data, err := p.source.Load(ctx, category)
	if err != nil {
		return models.PracticeFeedback{}, err
	}
	q, ok := data.FindQuestion(questionID)
	if !ok {
		return models.PracticeFeedback{}, ErrQuestionNotFound
	}

	fb := models.PracticeFeedback{
		QuestionID:     questionID,
		SelectedOption: option,
		CorrectOption:  q.CorrectIndex,
		CorrectAnswer:  models.IndexToLetter(q.CorrectIndex),
		IsCorrect:      option == q.CorrectIndex,
	}
	if fb.IsCorrect {
		fb.Marks = q.Marks
	}
	return fb, nil
}

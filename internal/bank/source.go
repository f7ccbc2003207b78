// Package bank loads category question banks from a directory, an HTTP
// asset store, or a SQL table.
package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/nepal-utilities/backend/internal/models"
)

// Source loads the question bank document for one category.
type Source interface {
	Load(ctx context.Context, category models.Category) (models.QuestionData, error)
}

var (
	ErrCategoryNotFound = errors.New("question bank not found")
	ErrEmptyBank        = errors.New("question bank has no questions")
)

// LoadError is returned when a bank is missing, unreachable, or malformed.
type LoadError struct {
	Category models.Category
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("bank: load %s: %v", e.Category, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(category models.Category, err error) error {
	return &LoadError{Category: category, Err: err}
}

// Decode parses a bank document and checks that it can feed an exam.
func Decode(category models.Category, r io.Reader) (models.QuestionData, error) {
	var data models.QuestionData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return models.QuestionData{}, loadErr(category, fmt.Errorf("decode: %w", err))
	}
	if err := Check(category, data); err != nil {
		return models.QuestionData{}, err
	}
	return data, nil
}

// Check rejects banks with no questions and logs questions whose answer
// key could not be read. Those questions stay in the bank and can never be
// answered correctly.
func Check(category models.Category, data models.QuestionData) error {
	if data.QuestionCount() == 0 {
		return loadErr(category, ErrEmptyBank)
	}
	for _, s := range data.Sections {
		for _, q := range s.Questions {
			if !q.HasValidAnswer() {
				log.Printf("[bank] WARN: %s question %d has no readable correct_answer", category, q.Number)
			}
			if len(q.Options.EN) != models.OptionCount {
				log.Printf("[bank] WARN: %s question %d has %d options", category, q.Number, len(q.Options.EN))
			}
		}
	}
	return nil
}

func checkCategory(category models.Category) error {
	if !models.ValidCategories[category] {
		return loadErr(category, ErrCategoryNotFound)
	}
	return nil
}

package bank

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nepal-utilities/backend/internal/models"
)

// Store keeps one bank document per category in the question_banks table.
// Queries use $n placeholders, which both lib/pq and go-sqlite3 accept.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Load(ctx context.Context, category models.Category) (models.QuestionData, error) {
	if err := checkCategory(category); err != nil {
		return models.QuestionData{}, err
	}

	var document string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM question_banks WHERE category = $1`,
		string(category),
	).Scan(&document)
	if err == sql.ErrNoRows {
		return models.QuestionData{}, loadErr(category, ErrCategoryNotFound)
	}
	if err != nil {
		return models.QuestionData{}, loadErr(category, fmt.Errorf("query bank: %w", err))
	}

	return Decode(category, bytes.NewReader([]byte(document)))
}

// Save replaces the category's bank.
func (s *Store) Save(ctx context.Context, category models.Category, data models.QuestionData) (*models.BankSummary, error) {
	if err := checkCategory(category); err != nil {
		return nil, err
	}
	if err := Check(category, data); err != nil {
		return nil, err
	}

	document, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode bank: %w", err)
	}

	summary := &models.BankSummary{
		Category:      category,
		SectionCount:  len(data.Sections),
		QuestionCount: data.QuestionCount(),
		UpdatedAt:     s.now().UTC().Truncate(time.Second),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO question_banks (category, document, section_count, question_count, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (category) DO UPDATE
		 SET document = excluded.document,
		     section_count = excluded.section_count,
		     question_count = excluded.question_count,
		     updated_at = excluded.updated_at`,
		string(category), string(document), summary.SectionCount, summary.QuestionCount, summary.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("save bank: %w", err)
	}
	return summary, nil
}

func (s *Store) List(ctx context.Context) ([]models.BankSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, section_count, question_count, updated_at
		 FROM question_banks ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()

	banks := []models.BankSummary{}
	for rows.Next() {
		var b models.BankSummary
		var category string
		if err := rows.Scan(&category, &b.SectionCount, &b.QuestionCount, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		b.Category = models.Category(category)
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

func (s *Store) Delete(ctx context.Context, category models.Category) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM question_banks WHERE category = $1`, string(category))
	if err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return loadErr(category, ErrCategoryNotFound)
	}
	return nil
}

// IsNotFound reports whether err means the category has no bank.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

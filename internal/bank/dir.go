package bank

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nepal-utilities/backend/internal/models"
)

// DirSource reads {Dir}/{category}.json.
type DirSource struct {
	Dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) Load(ctx context.Context, category models.Category) (models.QuestionData, error) {
	if err := checkCategory(category); err != nil {
		return models.QuestionData{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.QuestionData{}, loadErr(category, err)
	}

	f, err := os.Open(filepath.Join(s.Dir, string(category)+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return models.QuestionData{}, loadErr(category, ErrCategoryNotFound)
	}
	if err != nil {
		return models.QuestionData{}, loadErr(category, err)
	}
	defer f.Close()

	return Decode(category, f)
}

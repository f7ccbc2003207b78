package bank

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/nepal-utilities/backend/internal/models"
)

// HTTPSource fetches {BaseURL}/assets/data/{category}.json, the layout the
// static site publishes its banks under.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSource) Load(ctx context.Context, category models.Category) (models.QuestionData, error) {
	if err := checkCategory(category); err != nil {
		return models.QuestionData{}, err
	}

	url := fmt.Sprintf("%s/assets/data/%s.json", s.baseURL, category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.QuestionData{}, loadErr(category, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.QuestionData{}, loadErr(category, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.QuestionData{}, loadErr(category, ErrCategoryNotFound)
	case resp.StatusCode != http.StatusOK:
		return models.QuestionData{}, loadErr(category, fmt.Errorf("asset store returned status %d", resp.StatusCode))
	}

	return Decode(category, resp.Body)
}

package exam

import (
	"log"
	"math/rand"
	"strings"

	"github.com/nepal-utilities/backend/internal/models"
)

// BuildExamSet draws one exam from data. Each quota takes a uniform sample
// without replacement from its section; any shortfall is filled from the
// rest of the bank. The result is shuffled and holds at most
// cfg.TotalQuestions questions, fewer only when the bank is too small.
func BuildExamSet(data models.QuestionData, cfg models.ExamConfig, rng *rand.Rand) []models.Question {
	selected := make([]models.Question, 0, cfg.TotalQuestions)
	used := make(map[int]bool)

	for _, quota := range cfg.Distribution {
		section, ok := findSection(data.Sections, quota.Name)
		if !ok {
			log.Printf("[exam] WARN: section %q not found in bank, backfilling", quota.Name)
			continue
		}
		selected = append(selected, sample(section.Questions, quota.Count, used, rng)...)
	}

	if short := cfg.TotalQuestions - len(selected); short > 0 {
		selected = append(selected, sample(data.AllQuestions(), short, used, rng)...)
	}

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if len(selected) > cfg.TotalQuestions {
		selected = selected[:cfg.TotalQuestions]
	}
	return selected
}

// sample picks up to n questions not yet in used and marks them used.
func sample(pool []models.Question, n int, used map[int]bool, rng *rand.Rand) []models.Question {
	var candidates []models.Question
	for _, q := range pool {
		if !used[q.Number] {
			candidates = append(candidates, q)
		}
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	picked := make([]models.Question, 0, n)
	for _, i := range rng.Perm(len(candidates))[:n] {
		q := candidates[i]
		used[q.Number] = true
		picked = append(picked, q)
	}
	return picked
}

// findSection matches on trimmed, lowercased English names. One bank ships
// its pollution section with a misspelt "conceptual", so a quota naming
// "conceptual" also accepts any section containing "onceptual".
func findSection(sections []models.Section, name string) (models.Section, bool) {
	target := normalizeName(name)
	for _, s := range sections {
		if normalizeName(s.Name.EN) == target {
			return s, true
		}
	}

	if strings.Contains(target, "conceptual") {
		for _, s := range sections {
			if strings.Contains(normalizeName(s.Name.EN), "onceptual") {
				return s, true
			}
		}
	}
	return models.Section{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

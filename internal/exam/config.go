package exam

import "github.com/nepal-utilities/backend/internal/models"

// DefaultConfig is the written-test format used for both categories:
// 25 questions worth 4 marks each, 30 minutes, pass at 60.
func DefaultConfig() models.ExamConfig {
	return models.ExamConfig{
		TotalQuestions:   25,
		TotalMarks:       100,
		TimeLimitSeconds: 30 * 60,
		PassingMarks:     60,
		Distribution: []models.SectionQuota{
			{Name: "Knowledge related to driving", Count: 6},
			{Name: "Knowledge related to vehicular act/regulation", Count: 5},
			{Name: "Technical or mechanical knowledge of vehicle", Count: 3},
			{Name: "Conceptual knowledge related to environment pollution", Count: 2},
			{Name: "Knowledge related to accidental awareness", Count: 3},
			{Name: "Knowledge related to traffic signals", Count: 6},
		},
	}
}

// WithTimeLimit returns cfg with the limit replaced when minutes is positive.
func WithTimeLimit(cfg models.ExamConfig, minutes int) models.ExamConfig {
	if minutes > 0 {
		cfg.TimeLimitSeconds = minutes * 60
	}
	return cfg
}

var categoryDescriptions = map[models.Category]string{
	models.CategoryB: "Car, Jeep, Van (Category B)",
	models.CategoryK: "Motorcycle, Scooter, Moped (Category K)",
}

func Categories(cfg models.ExamConfig) []models.CategoryInfo {
	return []models.CategoryInfo{
		{Category: models.CategoryB, Description: categoryDescriptions[models.CategoryB], Config: cfg},
		{Category: models.CategoryK, Description: categoryDescriptions[models.CategoryK], Config: cfg},
	}
}

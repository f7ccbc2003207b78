package exam

import (
	"errors"
	"fmt"

	"github.com/nepal-utilities/backend/internal/models"
)

var (
	ErrSessionNotFound   = errors.New("exam session not found")
	ErrInvalidTransition = errors.New("operation not allowed in this phase")
	ErrExamCompleted     = errors.New("exam already completed")
	ErrInvalidOption     = errors.New("selected option out of range")
	ErrQuestionNotInExam = errors.New("question is not part of this exam")
	ErrQuestionNotFound  = errors.New("question not found in bank")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrLoadInFlight      = errors.New("question bank load already in progress")
	ErrNoQuestions       = errors.New("question bank produced no questions")
)

func transitionErr(op string, phase models.Phase) error {
	return fmt.Errorf("%w: %s during %s", ErrInvalidTransition, op, phase)
}

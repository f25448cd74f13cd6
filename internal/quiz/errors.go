package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount means the requested questionnaire size is not one of
	// the allowed sizes.
	ErrInvalidCount = errors.New("questionnaire size must be 5, 10, or 15")

	// ErrInsufficientQuestions means the filtered pool is smaller than the
	// requested sample; a short sample is never returned.
	ErrInsufficientQuestions = errors.New("not enough questions available")

	// ErrQuestionNotFound means no row matches the given question text.
	ErrQuestionNotFound = errors.New("question is not available")

	// ErrAmbiguousQuestion means more than one row matches the given
	// question text, so verification cannot pick a single answer key.
	ErrAmbiguousQuestion = errors.New("question text matches more than one row")
)

// MissingFieldError reports a required field absent from an ingested row.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

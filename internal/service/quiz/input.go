package quiz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// FlashcardDraft is one question/answer pair to import.
type FlashcardDraft struct {
	Question string
	Answer   string
}

// ImportFlashcardsInput holds a batch of cards for one subject.
type ImportFlashcardsInput struct {
	SubjectID uuid.UUID
	Cards     []FlashcardDraft
}

// Validate checks all fields and collects all errors.
func (i ImportFlashcardsInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if len(i.Cards) == 0 {
		errs = append(errs, domain.FieldError{Field: "cards", Message: "at least one card is required"})
	}
	for n, c := range i.Cards {
		if strings.TrimSpace(c.Question) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("cards[%d].question", n), Message: "required"})
		}
		if strings.TrimSpace(c.Answer) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("cards[%d].answer", n), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinFlashcardsForQuiz is the smallest deck that yields one correct and
// three distinct incorrect options per question.
const MinFlashcardsForQuiz = 4

// OptionsPerQuestion is the number of options on a generated question.
const OptionsPerQuestion = 4

// Flashcard is a question/answer pair attached to a subject.
type Flashcard struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	SubjectID uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
}

// Quiz is a set of multiple-choice questions generated for a subject.
type Quiz struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	SubjectID   uuid.UUID
	Title       string
	Description string
	Questions   []QuizQuestion
	CreatedAt   time.Time
}

// QuizQuestion is one question of a Quiz.
type QuizQuestion struct {
	Text        string
	Options     []QuizOption
	FlashcardID *uuid.UUID
}

// QuizOption is one answer choice.
type QuizOption struct {
	Text      string
	IsCorrect bool
}

// CorrectOptions counts options marked correct.
func (q QuizQuestion) CorrectOptions() int {
	n := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// GenerateFromFlashcards builds and stores a quiz with one question per
// flashcard of the subject. Each question has the card's answer as its only
// correct option and three answers of other cards as distractors.
func (s *Service) GenerateFromFlashcards(ctx context.Context, subjectID uuid.UUID) (*domain.Quiz, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if subjectID == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}

	var created *domain.Quiz
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedSubject(txCtx, ownerID, subjectID); err != nil {
			return err
		}

		cards, err := s.flashcards.ListBySubject(txCtx, subjectID)
		if err != nil {
			return fmt.Errorf("list flashcards: %w", err)
		}
		if len(cards) < domain.MinFlashcardsForQuiz {
			return domain.NewValidationError("flashcards",
				fmt.Sprintf("need at least %d flashcards to generate quiz questions", domain.MinFlashcardsForQuiz))
		}

		now := s.now().UTC()
		q := &domain.Quiz{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			SubjectID:   subjectID,
			Title:       fmt.Sprintf("Auto-generated Quiz (%s)", now.Format(time.RFC3339)),
			Description: fmt.Sprintf("Generated from %d flashcards", len(cards)),
			Questions:   s.buildQuestions(cards),
			CreatedAt:   now,
		}

		created, err = s.quizzes.Create(txCtx, q)
		if err != nil {
			return fmt.Errorf("create quiz: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeQuiz,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"subject_id": subjectID.String(),
				"questions":  len(created.Questions),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "quiz generated",
		slog.String("user_id", ownerID.String()),
		slog.String("subject_id", subjectID.String()),
		slog.String("quiz_id", created.ID.String()),
		slog.Int("questions", len(created.Questions)),
	)

	return created, nil
}

// buildQuestions expects at least MinFlashcardsForQuiz cards.
func (s *Service) buildQuestions(cards []domain.Flashcard) []domain.QuizQuestion {
	distractors := domain.OptionsPerQuestion - 1
	questions := make([]domain.QuizQuestion, 0, len(cards))

	for i, card := range cards {
		others := make([]domain.Flashcard, 0, len(cards)-1)
		others = append(others, cards[:i]...)
		others = append(others, cards[i+1:]...)
		s.shuffle(len(others), func(a, b int) { others[a], others[b] = others[b], others[a] })

		options := make([]domain.QuizOption, 0, domain.OptionsPerQuestion)
		options = append(options, domain.QuizOption{Text: card.Answer, IsCorrect: true})
		for _, o := range others[:distractors] {
			options = append(options, domain.QuizOption{Text: o.Answer})
		}
		s.shuffle(len(options), func(a, b int) { options[a], options[b] = options[b], options[a] })

		cardID := card.ID
		questions = append(questions, domain.QuizQuestion{
			Text:        card.Question,
			Options:     options,
			FlashcardID: &cardID,
		})
	}

	return questions
}

package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// ImportFlashcards stores a batch of cards on one of the caller's subjects
// and returns how many were stored.
func (s *Service) ImportFlashcards(ctx context.Context, input ImportFlashcardsInput) (int, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	now := s.now().UTC()
	cards := make([]domain.Flashcard, len(input.Cards))
	for i, c := range input.Cards {
		cards[i] = domain.Flashcard{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			SubjectID: input.SubjectID,
			Question:  strings.TrimSpace(c.Question),
			Answer:    strings.TrimSpace(c.Answer),
			CreatedAt: now,
		}
	}

	var stored int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedSubject(txCtx, ownerID, input.SubjectID); err != nil {
			return err
		}

		var err error
		stored, err = s.flashcards.CreateBatch(txCtx, cards)
		if err != nil {
			return fmt.Errorf("create flashcards: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeFlashcard,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"subject_id": input.SubjectID.String(),
				"count":      stored,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "flashcards imported",
		slog.String("user_id", ownerID.String()),
		slog.String("subject_id", input.SubjectID.String()),
		slog.Int("count", stored),
	)

	return stored, nil
}

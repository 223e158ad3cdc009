package revision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// SetRevisionTopicCompletion sets the completion flag of one plan entry.
// Completing stamps CompletedAt; un-completing clears it. A plan owned by
// someone else is reported as not found.
func (s *Service) SetRevisionTopicCompletion(ctx context.Context, input SetRevisionTopicCompletionInput) (*domain.RevisionTopic, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.revisions.GetByID(ctx, input.RevisionID)
	if err != nil {
		return nil, fmt.Errorf("get daily revision: %w", err)
	}
	if !plan.OwnedBy(ownerID) {
		return nil, fmt.Errorf("daily revision %s: %w", input.RevisionID, domain.ErrNotFound)
	}

	return s.setCompletion(ctx, plan, input.TopicID, input.Completed)
}

// SetDayTopicCompletion resolves the caller's plan of (subject, day) and sets
// the completion flag of one of its entries. A nil day means today.
func (s *Service) SetDayTopicCompletion(ctx context.Context, input SetDayTopicCompletionInput) (*domain.RevisionTopic, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	day := s.Today()
	if input.Date != nil {
		day = *input.Date
	}

	plan, err := s.revisions.GetByDay(ctx, ownerID, input.SubjectID, day)
	if err != nil {
		return nil, fmt.Errorf("get daily revision: %w", err)
	}

	return s.setCompletion(ctx, plan, input.TopicID, input.Completed)
}

func (s *Service) setCompletion(ctx context.Context, plan *domain.DailyRevision, topicID int, completed bool) (*domain.RevisionTopic, error) {
	entry, err := plan.SetTopicCompletion(topicID, completed, s.now())
	if err != nil {
		return nil, err
	}

	if _, err := s.revisions.Replace(ctx, plan); err != nil {
		return nil, fmt.Errorf("replace daily revision: %w", err)
	}

	s.log.InfoContext(ctx, "revision topic completion set",
		slog.String("revision_id", plan.ID.String()),
		slog.Int("topic_id", topicID),
		slog.Bool("completed", completed),
	)

	return &entry, nil
}

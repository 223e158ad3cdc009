package revision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// AddRevisionTopicFromSubjectTopic appends a value copy of a subject topic to
// the day's plan. With SyncModeCreate the plan is found or created; with
// SyncModeExisting nothing happens when the day has no plan.
func (s *Service) AddRevisionTopicFromSubjectTopic(ctx context.Context, input AddRevisionTopicInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	draft := domain.RevisionTopicDraft{
		TopicName:    strings.TrimSpace(input.Name),
		TimerMinutes: s.timerOrDefault(input.TimerMinutes),
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedSubject(txCtx, ownerID, input.SubjectID); err != nil {
			return err
		}

		plan, err := s.planForSync(txCtx, ownerID, input.SubjectID, input.Date)
		if err != nil {
			return err
		}
		if plan == nil {
			s.log.DebugContext(ctx, "no plan for day, revision topic not added",
				slog.String("subject_id", input.SubjectID.String()),
				slog.String("date", input.Date.String()),
			)
			return nil
		}

		entry := plan.AppendTopic(draft)
		if _, err := s.revisions.Replace(txCtx, plan); err != nil {
			return fmt.Errorf("replace daily revision: %w", err)
		}

		s.log.InfoContext(ctx, "revision topic added",
			slog.String("user_id", ownerID.String()),
			slog.String("revision_id", plan.ID.String()),
			slog.Int("topic_id", entry.ID),
			slog.Int("timer", entry.TimerMinutes),
		)
		return nil
	})
}

// planForSync returns the day's plan according to the sync mode. A nil plan
// with a nil error means the entry must be skipped.
func (s *Service) planForSync(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, error) {
	if s.policy.SyncMode == domain.SyncModeExisting {
		plan, err := s.revisions.GetByDay(ctx, ownerID, subjectID, day)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("get daily revision: %w", err)
		}
		return plan, nil
	}

	plan, _, err := s.revisions.GetOrCreate(ctx, ownerID, subjectID, day)
	if err != nil {
		return nil, fmt.Errorf("get or create daily revision: %w", err)
	}
	return plan, nil
}

package revision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// UpsertDailyPlan replaces the entry list of the (owner, subject, date) plan
// wholesale, or creates the plan. created reports which happened.
func (s *Service) UpsertDailyPlan(ctx context.Context, input UpsertDailyPlanInput) (*domain.DailyRevision, bool, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	drafts := make([]domain.RevisionTopicDraft, len(input.Topics))
	for i, t := range input.Topics {
		drafts[i] = domain.RevisionTopicDraft{
			TopicName:    strings.TrimSpace(t.TopicName),
			TimerMinutes: s.timerOrDefault(t.TimerMinutes),
			Completed:    t.Completed,
		}
		if t.Completed {
			at := s.now().UTC()
			if t.CompletedAt != nil {
				at = t.CompletedAt.UTC()
			}
			drafts[i].CompletedAt = &at
		}
	}

	var (
		plan    *domain.DailyRevision
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedSubject(txCtx, ownerID, input.SubjectID); err != nil {
			return err
		}

		existing, err := s.revisions.GetByDay(txCtx, ownerID, input.SubjectID, input.Date)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			fresh := domain.NewDailyRevision(ownerID, input.SubjectID, input.Date)
			fresh.ReplaceTopics(drafts)
			plan, err = s.revisions.Create(txCtx, fresh)
			if err != nil {
				return fmt.Errorf("create daily revision: %w", err)
			}
			created = true
		case err != nil:
			return fmt.Errorf("get daily revision: %w", err)
		default:
			existing.ReplaceTopics(drafts)
			plan, err = s.revisions.Replace(txCtx, existing)
			if err != nil {
				return fmt.Errorf("replace daily revision: %w", err)
			}
		}

		action := domain.AuditActionUpdate
		if created {
			action = domain.AuditActionCreate
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeDailyRevision,
			EntityID:   &plan.ID,
			Action:     action,
			Changes: map[string]any{
				"subject_id":    input.SubjectID.String(),
				"revision_date": input.Date.String(),
				"topics":        len(drafts),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.log.InfoContext(ctx, "daily plan upserted",
		slog.String("user_id", ownerID.String()),
		slog.String("revision_id", plan.ID.String()),
		slog.String("date", plan.Date.String()),
		slog.Bool("created", created),
		slog.Int("topics", len(plan.Topics)),
	)

	return plan, created, nil
}

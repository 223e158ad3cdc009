package revision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// DeleteDailyRevision removes one of the caller's plans.
func (s *Service) DeleteDailyRevision(ctx context.Context, input DeleteDailyRevisionInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plan, err := s.revisions.GetByID(txCtx, input.RevisionID)
		if err != nil {
			return fmt.Errorf("get daily revision: %w", err)
		}
		if !plan.OwnedBy(ownerID) {
			return fmt.Errorf("daily revision %s: %w", input.RevisionID, domain.ErrUnauthorized)
		}

		if err := s.revisions.Delete(txCtx, input.RevisionID); err != nil {
			return fmt.Errorf("delete daily revision: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeDailyRevision,
			EntityID:   &input.RevisionID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"subject_id":    plan.SubjectID.String(),
				"revision_date": plan.Date.String(),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "daily revision deleted",
		slog.String("user_id", ownerID.String()),
		slog.String("revision_id", input.RevisionID.String()),
	)

	return nil
}

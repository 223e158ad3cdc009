package subject

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// DeleteResult reports what DeleteSubject removed.
type DeleteResult struct {
	Deleted          bool
	RevisionsDeleted int
}

// DeleteSubject removes one of the caller's subjects together with every
// daily revision of it. In stub mode it only checks existence and ownership.
func (s *Service) DeleteSubject(ctx context.Context, input DeleteSubjectInput) (DeleteResult, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return DeleteResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return DeleteResult{}, err
	}

	if s.policy.DeleteMode == domain.DeleteModeStub {
		if _, err := s.ownedSubject(ctx, ownerID, input.SubjectID); err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{}, nil
	}

	var res DeleteResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		subj, err := s.ownedSubject(txCtx, ownerID, input.SubjectID)
		if err != nil {
			return err
		}

		res.RevisionsDeleted, err = s.plans.DeleteSubjectPlans(txCtx, subj.ID)
		if err != nil {
			return err
		}

		if err := s.subjects.Delete(txCtx, subj.ID); err != nil {
			return fmt.Errorf("delete subject: %w", err)
		}
		res.Deleted = true

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeSubject,
			EntityID:   &subj.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":              subj.Name,
				"revisions_deleted": res.RevisionsDeleted,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}

	s.log.InfoContext(ctx, "subject deleted",
		slog.String("user_id", ownerID.String()),
		slog.String("subject_id", input.SubjectID.String()),
		slog.Int("revisions_deleted", res.RevisionsDeleted),
	)

	return res, nil
}

package revision

import (
	"context"
	"fmt"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// GetDailyPlan lists the caller's plans, optionally for one subject and one day.
func (s *Service) GetDailyPlan(ctx context.Context, filter PlanFilter) ([]domain.DailyRevision, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plans, err := s.revisions.List(ctx, domain.RevisionFilter{
		OwnerID:   ownerID,
		SubjectID: filter.SubjectID,
		Date:      filter.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("list daily revisions: %w", err)
	}

	return plans, nil
}

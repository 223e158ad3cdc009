package subject

import (
	"context"
	"fmt"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// ListSubjects returns the caller's subjects, or every subject when the
// policy's list scope is "all".
func (s *Service) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter := domain.SubjectFilter{}
	if s.policy.ListScope != domain.ListScopeAll {
		filter.OwnerID = &ownerID
	}

	subjects, err := s.subjects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

package revision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// SeedResult reports what SeedDay did.
type SeedResult struct {
	Subjects int
	Created  int
}

// SeedDay makes sure every subject in the system has a plan for day,
// creating empty ones where missing. It acts for each subject's owner and
// needs no principal.
func (s *Service) SeedDay(ctx context.Context, day domain.Date) (SeedResult, error) {
	subjects, err := s.subjects.List(ctx, domain.SubjectFilter{})
	if err != nil {
		return SeedResult{}, fmt.Errorf("list subjects: %w", err)
	}

	res := SeedResult{Subjects: len(subjects)}
	for _, subj := range subjects {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		_, created, err := s.revisions.GetOrCreate(ctx, subj.OwnerID, subj.ID, day)
		if err != nil {
			return res, fmt.Errorf("seed subject %s: %w", subj.ID, err)
		}
		if created {
			res.Created++
		}
	}

	s.log.InfoContext(ctx, "day seeded",
		slog.String("date", day.String()),
		slog.Int("subjects", res.Subjects),
		slog.Int("created", res.Created),
	)

	return res, nil
}

// EnsurePlan finds or creates the caller's empty plan of (subject, day).
func (s *Service) EnsurePlan(ctx context.Context, subjectID uuid.UUID, day domain.Date) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, _, err := s.revisions.GetOrCreate(ctx, ownerID, subjectID, day); err != nil {
		return fmt.Errorf("ensure daily revision: %w", err)
	}
	return nil
}

// DeleteSubjectPlans removes every plan of the caller for a subject and
// returns how many were removed.
func (s *Service) DeleteSubjectPlans(ctx context.Context, subjectID uuid.UUID) (int, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.revisions.DeleteBySubject(ctx, ownerID, subjectID)
	if err != nil {
		return 0, fmt.Errorf("delete daily revisions of subject: %w", err)
	}
	return n, nil
}

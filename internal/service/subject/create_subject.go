package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// CreateSubject creates a subject with no topics for the caller. When the
// policy seeds on create, today's empty plan is created in the same transaction.
func (s *Service) CreateSubject(ctx context.Context, input CreateSubjectInput) (*domain.Subject, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	subj := &domain.Subject{
		ID:      uuid.New(),
		Key:     shortuuid.New(),
		OwnerID: ownerID,
		Name:    strings.TrimSpace(input.Name),
		Topics:  []domain.Topic{},
	}
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			subj.Description = &d
		}
	}

	var created *domain.Subject
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.subjects.Create(txCtx, subj)
		if err != nil {
			return fmt.Errorf("create subject: %w", err)
		}

		if s.policy.SeedOnCreate {
			if err := s.plans.EnsurePlan(txCtx, created.ID, s.policy.Today(s.now())); err != nil {
				return fmt.Errorf("seed plan: %w", err)
			}
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeSubject,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": created.Name},
				"key":  created.Key,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subject created",
		slog.String("user_id", ownerID.String()),
		slog.String("subject_id", created.ID.String()),
		slog.String("key", created.Key),
	)

	return created, nil
}

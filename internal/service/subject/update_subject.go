package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// UpdateSubject applies the provided fields to one of the caller's subjects.
// With no fields provided the subject is returned unchanged.
func (s *Service) UpdateSubject(ctx context.Context, input UpdateSubjectInput) (*domain.Subject, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Subject
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		subj, err := s.ownedSubject(txCtx, ownerID, input.SubjectID)
		if err != nil {
			return err
		}

		changes := applyUpdate(subj, input)
		if len(changes) == 0 {
			updated = subj
			return nil
		}

		updated, err = s.subjects.Replace(txCtx, subj)
		if err != nil {
			return fmt.Errorf("replace subject: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeSubject,
			EntityID:   &input.SubjectID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subject updated",
		slog.String("user_id", ownerID.String()),
		slog.String("subject_id", input.SubjectID.String()),
	)

	return updated, nil
}

// applyUpdate mutates subj and returns the changed fields for audit.
func applyUpdate(subj *domain.Subject, input UpdateSubjectInput) map[string]any {
	changes := make(map[string]any)

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != subj.Name {
			changes["name"] = map[string]any{"old": subj.Name, "new": name}
			subj.Name = name
		}
	}

	if input.Description != nil {
		var desc *string
		if d := strings.TrimSpace(*input.Description); d != "" {
			desc = ptr(d)
		}
		if deref(desc) != deref(subj.Description) {
			changes["description"] = map[string]any{"old": deref(subj.Description), "new": deref(desc)}
			subj.Description = desc
		}
	}

	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

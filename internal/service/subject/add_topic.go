package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// AddTopic appends an incomplete topic to one of the caller's subjects and
// copies it into today's revision plan within the same transaction.
func (s *Service) AddTopic(ctx context.Context, input AddTopicInput) (*domain.Topic, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	timer := 0
	if input.TimerMinutes != nil {
		timer = *input.TimerMinutes
	}

	var topic domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		subj, err := s.ownedSubject(txCtx, ownerID, input.SubjectID)
		if err != nil {
			return err
		}

		topic = subj.AppendTopic(name)
		if _, err := s.subjects.Replace(txCtx, subj); err != nil {
			return fmt.Errorf("replace subject: %w", err)
		}

		if err := s.plans.AddRevisionTopicFromSubjectTopic(txCtx, revision.AddRevisionTopicInput{
			SubjectID:    subj.ID,
			Date:         s.policy.Today(s.now()),
			Name:         name,
			TimerMinutes: timer,
		}); err != nil {
			return fmt.Errorf("sync revision topic: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:    ownerID,
			EntityType: domain.EntityTypeSubject,
			EntityID:   &subj.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"topic_added": map[string]any{"id": topic.ID, "name": topic.Name},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic added",
		slog.String("user_id", ownerID.String()),
		slog.String("subject_id", input.SubjectID.String()),
		slog.Int("topic_id", topic.ID),
	)

	return &topic, nil
}

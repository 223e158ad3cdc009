package subject

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// SetTopicCompletion sets the completion flag of a subject topic. Revision
// entries copied from the topic are left as they are.
func (s *Service) SetTopicCompletion(ctx context.Context, input SetTopicCompletionInput) (*domain.Topic, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	subj, err := s.ownedSubject(ctx, ownerID, input.SubjectID)
	if err != nil {
		return nil, err
	}

	topic, err := subj.SetTopicCompletion(input.TopicID, input.Completed)
	if err != nil {
		return nil, err
	}

	if _, err := s.subjects.Replace(ctx, subj); err != nil {
		return nil, fmt.Errorf("replace subject: %w", err)
	}

	s.log.InfoContext(ctx, "topic completion set",
		slog.String("subject_id", input.SubjectID.String()),
		slog.Int("topic_id", input.TopicID),
		slog.Bool("completed", input.Completed),
	)

	return &topic, nil
}

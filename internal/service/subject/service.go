package subject

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
)

type subjectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)
	Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	Replace(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// planSyncer is the part of the revision service subjects drive.
type planSyncer interface {
	EnsurePlan(ctx context.Context, subjectID uuid.UUID, day domain.Date) error
	AddRevisionTopicFromSubjectTopic(ctx context.Context, input revision.AddRevisionTopicInput) error
	DeleteSubjectPlans(ctx context.Context, subjectID uuid.UUID) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages subjects and their embedded topics.
type Service struct {
	subjects subjectRepo
	plans    planSyncer
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
	policy   domain.PlannerPolicy
	now      func() time.Time
}

// NewService creates a new subject service.
func NewService(
	log *slog.Logger,
	subjects subjectRepo,
	plans planSyncer,
	audit auditLogger,
	tx txManager,
	policy domain.PlannerPolicy,
) *Service {
	return &Service{
		subjects: subjects,
		plans:    plans,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "subject"),
		policy:   policy,
		now:      time.Now,
	}
}

func (s *Service) ownedSubject(ctx context.Context, ownerID, subjectID uuid.UUID) (*domain.Subject, error) {
	subj, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	if !subj.OwnedBy(ownerID) {
		return nil, fmt.Errorf("subject %s: %w", subjectID, domain.ErrUnauthorized)
	}
	return subj, nil
}

func ptr[T any](v T) *T { return &v }

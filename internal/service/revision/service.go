package revision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type revisionRepo interface {
	Create(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyRevision, error)
	GetByDay(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, error)
	GetOrCreate(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, bool, error)
	List(ctx context.Context, filter domain.RevisionFilter) ([]domain.DailyRevision, error)
	Replace(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) (int, error)
}

type subjectReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages daily revision plans.
type Service struct {
	revisions revisionRepo
	subjects  subjectReader
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	policy    domain.PlannerPolicy
	now       func() time.Time
}

// NewService creates a new daily revision service.
func NewService(
	log *slog.Logger,
	revisions revisionRepo,
	subjects subjectReader,
	audit auditLogger,
	tx txManager,
	policy domain.PlannerPolicy,
) *Service {
	return &Service{
		revisions: revisions,
		subjects:  subjects,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "revision"),
		policy:    policy,
		now:       time.Now,
	}
}

// Today returns the current plan day.
func (s *Service) Today() domain.Date {
	return s.policy.Today(s.now())
}

// ownedSubject loads a subject and checks it belongs to ownerID.
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

// timerOrDefault resolves an omitted (zero) timer to the configured default.
func (s *Service) timerOrDefault(minutes int) int {
	if minutes == 0 {
		return s.policy.DefaultTimerMinutes
	}
	return minutes
}

package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

type subjectReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
}

type flashcardRepo interface {
	CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Flashcard, error)
}

type quizRepo interface {
	Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service imports flashcards and builds multiple-choice quizzes from them.
type Service struct {
	subjects   subjectReader
	flashcards flashcardRepo
	quizzes    quizRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
	shuffle    func(n int, swap func(i, j int))
}

// NewService creates a new quiz service.
func NewService(
	log *slog.Logger,
	subjects subjectReader,
	flashcards flashcardRepo,
	quizzes quizRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		subjects:   subjects,
		flashcards: flashcards,
		quizzes:    quizzes,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "quiz"),
		now:        time.Now,
		shuffle:    rand.Shuffle,
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

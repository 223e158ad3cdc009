package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb"
	mongoaudit "github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb/audit"
	mongoflashcard "github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb/flashcard"
	mongoquiz "github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb/quiz"
	mongorevision "github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb/revision"
	mongosubject "github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb/subject"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/quiz"
	revisionrepo "github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/revision"
	subjectrepo "github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/subject"
	"github.com/heartmarshall/revision-planner-backend/internal/config"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

const mongoConnectTimeout = 10 * time.Second

// ---------------------------------------------------------------------------
// Store-neutral repository contracts
// ---------------------------------------------------------------------------

type subjectStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)
	Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	Replace(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type revisionStore interface {
	Create(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyRevision, error)
	GetByDay(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, error)
	GetOrCreate(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, bool, error)
	List(ctx context.Context, filter domain.RevisionFilter) ([]domain.DailyRevision, error)
	Replace(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) (int, error)
}

type flashcardStore interface {
	CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Flashcard, error)
}

type quizStore interface {
	Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error)
}

type auditStore interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Store is one opened document store with its repositories.
type Store struct {
	Driver     string
	Subjects   subjectStore
	Revisions  revisionStore
	Flashcards flashcardStore
	Quizzes    quizStore
	Audit      auditStore
	Tx         txRunner
	Pinger     pinger

	close func()
}

// OpenStore connects to the configured driver. With migrate set, postgres
// migrations or mongo indexes are applied before returning.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, migrate bool) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger, migrate)
	case config.DriverMongo:
		return openMongo(ctx, cfg, logger, migrate)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, migrate bool) (*Store, error) {
	if migrate {
		if err := postgres.Migrate(ctx, cfg.DSN, logger); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to postgres",
		slog.Int("max_conns", int(cfg.MaxConns)),
	)

	return &Store{
		Driver:     config.DriverPostgres,
		Subjects:   subjectrepo.New(pool),
		Revisions:  revisionrepo.New(pool),
		Flashcards: flashcard.New(pool),
		Quizzes:    quiz.New(pool),
		Audit:      audit.New(pool),
		Tx:         postgres.NewTxManager(pool),
		Pinger:     pool,
		close:      pool.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, migrate bool) (*Store, error) {
	client, db, err := mongodb.Connect(ctx, cfg.DSN, cfg.Name, mongoConnectTimeout)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := mongodb.EnsureIndexes(ctx, db, logger); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}
	logger.Info("connected to mongodb", slog.String("database", cfg.Name))

	transactional, err := mongodb.SupportsTransactions(ctx, client)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	tx := mongodb.NewTxManager(nil)
	if transactional {
		tx = mongodb.NewTxManager(client)
	} else {
		logger.Warn("mongodb is standalone, multi-document writes run without transactions")
	}

	return &Store{
		Driver:     config.DriverMongo,
		Subjects:   mongosubject.New(db),
		Revisions:  mongorevision.New(db),
		Flashcards: mongoflashcard.New(db),
		Quizzes:    mongoquiz.New(db),
		Audit:      mongoaudit.New(db),
		Tx:         tx,
		Pinger:     mongodb.Pinger{Client: client},
		close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
			defer cancel()
			_ = client.Disconnect(ctx)
		},
	}, nil
}

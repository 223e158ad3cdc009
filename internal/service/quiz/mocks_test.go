package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

var _ subjectReader = &subjectReaderMock{}

type subjectReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Subject, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *subjectReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	if mock.GetByIDFunc == nil {
		panic("subjectReaderMock.GetByIDFunc: method is nil but subjectReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *subjectReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	CreateBatchFunc   func(ctx context.Context, cards []domain.Flashcard) (int, error)
	ListBySubjectFunc func(ctx context.Context, subjectID uuid.UUID) ([]domain.Flashcard, error)

	calls struct {
		CreateBatch []struct {
			Ctx   context.Context
			Cards []domain.Flashcard
		}
		ListBySubject []struct {
			Ctx       context.Context
			SubjectID uuid.UUID
		}
	}
	lockCreateBatch   sync.RWMutex
	lockListBySubject sync.RWMutex
}

func (mock *flashcardRepoMock) CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error) {
	if mock.CreateBatchFunc == nil {
		panic("flashcardRepoMock.CreateBatchFunc: method is nil but flashcardRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Cards []domain.Flashcard
	}{
		Ctx:   ctx,
		Cards: cards,
	}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, cards)
}

func (mock *flashcardRepoMock) CreateBatchCalls() []struct {
	Ctx   context.Context
	Cards []domain.Flashcard
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Flashcard, error) {
	if mock.ListBySubjectFunc == nil {
		panic("flashcardRepoMock.ListBySubjectFunc: method is nil but flashcardRepo.ListBySubject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID uuid.UUID
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
	}
	mock.lockListBySubject.Lock()
	mock.calls.ListBySubject = append(mock.calls.ListBySubject, callInfo)
	mock.lockListBySubject.Unlock()
	return mock.ListBySubjectFunc(ctx, subjectID)
}

func (mock *flashcardRepoMock) ListBySubjectCalls() []struct {
	Ctx       context.Context
	SubjectID uuid.UUID
} {
	mock.lockListBySubject.RLock()
	calls := mock.calls.ListBySubject
	mock.lockListBySubject.RUnlock()
	return calls
}

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CreateFunc func(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Q   *domain.Quiz
		}
	}
	lockCreate sync.RWMutex
}

func (mock *quizRepoMock) Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	if mock.CreateFunc == nil {
		panic("quizRepoMock.CreateFunc: method is nil but quizRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   *domain.Quiz
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *quizRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Q   *domain.Quiz
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

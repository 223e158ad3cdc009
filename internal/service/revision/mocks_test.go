package revision

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

var _ revisionRepo = &revisionRepoMock{}

type revisionRepoMock struct {
	CreateFunc          func(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.DailyRevision, error)
	GetByDayFunc        func(ctx context.Context, ownerID uuid.UUID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, error)
	GetOrCreateFunc     func(ctx context.Context, ownerID uuid.UUID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, bool, error)
	ListFunc            func(ctx context.Context, filter domain.RevisionFilter) ([]domain.DailyRevision, error)
	ReplaceFunc         func(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	DeleteBySubjectFunc func(ctx context.Context, ownerID uuid.UUID, subjectID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rev *domain.DailyRevision
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByDay []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			SubjectID uuid.UUID
			Day       domain.Date
		}
		GetOrCreate []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			SubjectID uuid.UUID
			Day       domain.Date
		}
		List []struct {
			Ctx    context.Context
			Filter domain.RevisionFilter
		}
		Replace []struct {
			Ctx context.Context
			Rev *domain.DailyRevision
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteBySubject []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			SubjectID uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockGetByDay        sync.RWMutex
	lockGetOrCreate     sync.RWMutex
	lockList            sync.RWMutex
	lockReplace         sync.RWMutex
	lockDelete          sync.RWMutex
	lockDeleteBySubject sync.RWMutex
}

func (mock *revisionRepoMock) Create(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error) {
	if mock.CreateFunc == nil {
		panic("revisionRepoMock.CreateFunc: method is nil but revisionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rev *domain.DailyRevision
	}{
		Ctx: ctx,
		Rev: rev,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rev)
}

func (mock *revisionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rev *domain.DailyRevision
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *revisionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyRevision, error) {
	if mock.GetByIDFunc == nil {
		panic("revisionRepoMock.GetByIDFunc: method is nil but revisionRepo.GetByID was just called")
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

func (mock *revisionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *revisionRepoMock) GetByDay(ctx context.Context, ownerID uuid.UUID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, error) {
	if mock.GetByDayFunc == nil {
		panic("revisionRepoMock.GetByDayFunc: method is nil but revisionRepo.GetByDay was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		SubjectID uuid.UUID
		Day       domain.Date
	}{
		Ctx:       ctx,
		OwnerID:   ownerID,
		SubjectID: subjectID,
		Day:       day,
	}
	mock.lockGetByDay.Lock()
	mock.calls.GetByDay = append(mock.calls.GetByDay, callInfo)
	mock.lockGetByDay.Unlock()
	return mock.GetByDayFunc(ctx, ownerID, subjectID, day)
}

func (mock *revisionRepoMock) GetByDayCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	SubjectID uuid.UUID
	Day       domain.Date
} {
	mock.lockGetByDay.RLock()
	calls := mock.calls.GetByDay
	mock.lockGetByDay.RUnlock()
	return calls
}

func (mock *revisionRepoMock) GetOrCreate(ctx context.Context, ownerID uuid.UUID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, bool, error) {
	if mock.GetOrCreateFunc == nil {
		panic("revisionRepoMock.GetOrCreateFunc: method is nil but revisionRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		SubjectID uuid.UUID
		Day       domain.Date
	}{
		Ctx:       ctx,
		OwnerID:   ownerID,
		SubjectID: subjectID,
		Day:       day,
	}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, ownerID, subjectID, day)
}

func (mock *revisionRepoMock) GetOrCreateCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	SubjectID uuid.UUID
	Day       domain.Date
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *revisionRepoMock) List(ctx context.Context, filter domain.RevisionFilter) ([]domain.DailyRevision, error) {
	if mock.ListFunc == nil {
		panic("revisionRepoMock.ListFunc: method is nil but revisionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.RevisionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *revisionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RevisionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *revisionRepoMock) Replace(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error) {
	if mock.ReplaceFunc == nil {
		panic("revisionRepoMock.ReplaceFunc: method is nil but revisionRepo.Replace was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rev *domain.DailyRevision
	}{
		Ctx: ctx,
		Rev: rev,
	}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, rev)
}

func (mock *revisionRepoMock) ReplaceCalls() []struct {
	Ctx context.Context
	Rev *domain.DailyRevision
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}

func (mock *revisionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("revisionRepoMock.DeleteFunc: method is nil but revisionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *revisionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *revisionRepoMock) DeleteBySubject(ctx context.Context, ownerID uuid.UUID, subjectID uuid.UUID) (int, error) {
	if mock.DeleteBySubjectFunc == nil {
		panic("revisionRepoMock.DeleteBySubjectFunc: method is nil but revisionRepo.DeleteBySubject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		SubjectID uuid.UUID
	}{
		Ctx:       ctx,
		OwnerID:   ownerID,
		SubjectID: subjectID,
	}
	mock.lockDeleteBySubject.Lock()
	mock.calls.DeleteBySubject = append(mock.calls.DeleteBySubject, callInfo)
	mock.lockDeleteBySubject.Unlock()
	return mock.DeleteBySubjectFunc(ctx, ownerID, subjectID)
}

func (mock *revisionRepoMock) DeleteBySubjectCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	SubjectID uuid.UUID
} {
	mock.lockDeleteBySubject.RLock()
	calls := mock.calls.DeleteBySubject
	mock.lockDeleteBySubject.RUnlock()
	return calls
}

var _ subjectReader = &subjectReaderMock{}

type subjectReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	ListFunc    func(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SubjectFilter
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
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

func (mock *subjectReaderMock) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	if mock.ListFunc == nil {
		panic("subjectReaderMock.ListFunc: method is nil but subjectReader.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SubjectFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *subjectReaderMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SubjectFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
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

package subject

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	ListFunc    func(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)
	CreateFunc  func(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	ReplaceFunc func(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SubjectFilter
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Subject
		}
		Replace []struct {
			Ctx context.Context
			S   *domain.Subject
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockReplace sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *subjectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	if mock.GetByIDFunc == nil {
		panic("subjectRepoMock.GetByIDFunc: method is nil but subjectRepo.GetByID was just called")
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

func (mock *subjectRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *subjectRepoMock) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	if mock.ListFunc == nil {
		panic("subjectRepoMock.ListFunc: method is nil but subjectRepo.List was just called")
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

func (mock *subjectRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SubjectFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *subjectRepoMock) Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	if mock.CreateFunc == nil {
		panic("subjectRepoMock.CreateFunc: method is nil but subjectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Subject
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *subjectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Subject
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *subjectRepoMock) Replace(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	if mock.ReplaceFunc == nil {
		panic("subjectRepoMock.ReplaceFunc: method is nil but subjectRepo.Replace was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Subject
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, s)
}

func (mock *subjectRepoMock) ReplaceCalls() []struct {
	Ctx context.Context
	S   *domain.Subject
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}

func (mock *subjectRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("subjectRepoMock.DeleteFunc: method is nil but subjectRepo.Delete was just called")
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

func (mock *subjectRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ planSyncer = &planSyncerMock{}

type planSyncerMock struct {
	EnsurePlanFunc                       func(ctx context.Context, subjectID uuid.UUID, day domain.Date) error
	AddRevisionTopicFromSubjectTopicFunc func(ctx context.Context, input revision.AddRevisionTopicInput) error
	DeleteSubjectPlansFunc               func(ctx context.Context, subjectID uuid.UUID) (int, error)

	calls struct {
		EnsurePlan []struct {
			Ctx       context.Context
			SubjectID uuid.UUID
			Day       domain.Date
		}
		AddRevisionTopicFromSubjectTopic []struct {
			Ctx   context.Context
			Input revision.AddRevisionTopicInput
		}
		DeleteSubjectPlans []struct {
			Ctx       context.Context
			SubjectID uuid.UUID
		}
	}
	lockEnsurePlan                       sync.RWMutex
	lockAddRevisionTopicFromSubjectTopic sync.RWMutex
	lockDeleteSubjectPlans               sync.RWMutex
}

func (mock *planSyncerMock) EnsurePlan(ctx context.Context, subjectID uuid.UUID, day domain.Date) error {
	if mock.EnsurePlanFunc == nil {
		panic("planSyncerMock.EnsurePlanFunc: method is nil but planSyncer.EnsurePlan was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID uuid.UUID
		Day       domain.Date
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
		Day:       day,
	}
	mock.lockEnsurePlan.Lock()
	mock.calls.EnsurePlan = append(mock.calls.EnsurePlan, callInfo)
	mock.lockEnsurePlan.Unlock()
	return mock.EnsurePlanFunc(ctx, subjectID, day)
}

func (mock *planSyncerMock) EnsurePlanCalls() []struct {
	Ctx       context.Context
	SubjectID uuid.UUID
	Day       domain.Date
} {
	mock.lockEnsurePlan.RLock()
	calls := mock.calls.EnsurePlan
	mock.lockEnsurePlan.RUnlock()
	return calls
}

func (mock *planSyncerMock) AddRevisionTopicFromSubjectTopic(ctx context.Context, input revision.AddRevisionTopicInput) error {
	if mock.AddRevisionTopicFromSubjectTopicFunc == nil {
		panic("planSyncerMock.AddRevisionTopicFromSubjectTopicFunc: method is nil but planSyncer.AddRevisionTopicFromSubjectTopic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input revision.AddRevisionTopicInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddRevisionTopicFromSubjectTopic.Lock()
	mock.calls.AddRevisionTopicFromSubjectTopic = append(mock.calls.AddRevisionTopicFromSubjectTopic, callInfo)
	mock.lockAddRevisionTopicFromSubjectTopic.Unlock()
	return mock.AddRevisionTopicFromSubjectTopicFunc(ctx, input)
}

func (mock *planSyncerMock) AddRevisionTopicFromSubjectTopicCalls() []struct {
	Ctx   context.Context
	Input revision.AddRevisionTopicInput
} {
	mock.lockAddRevisionTopicFromSubjectTopic.RLock()
	calls := mock.calls.AddRevisionTopicFromSubjectTopic
	mock.lockAddRevisionTopicFromSubjectTopic.RUnlock()
	return calls
}

func (mock *planSyncerMock) DeleteSubjectPlans(ctx context.Context, subjectID uuid.UUID) (int, error) {
	if mock.DeleteSubjectPlansFunc == nil {
		panic("planSyncerMock.DeleteSubjectPlansFunc: method is nil but planSyncer.DeleteSubjectPlans was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID uuid.UUID
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
	}
	mock.lockDeleteSubjectPlans.Lock()
	mock.calls.DeleteSubjectPlans = append(mock.calls.DeleteSubjectPlans, callInfo)
	mock.lockDeleteSubjectPlans.Unlock()
	return mock.DeleteSubjectPlansFunc(ctx, subjectID)
}

func (mock *planSyncerMock) DeleteSubjectPlansCalls() []struct {
	Ctx       context.Context
	SubjectID uuid.UUID
} {
	mock.lockDeleteSubjectPlans.RLock()
	calls := mock.calls.DeleteSubjectPlans
	mock.lockDeleteSubjectPlans.RUnlock()
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

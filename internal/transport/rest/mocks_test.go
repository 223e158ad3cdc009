package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
	"github.com/heartmarshall/revision-planner-backend/internal/service/subject"
)

var _ subjectService = &subjectServiceMock{}

type subjectServiceMock struct {
	ListSubjectsFunc       func(ctx context.Context) ([]domain.Subject, error)
	CreateSubjectFunc      func(ctx context.Context, input subject.CreateSubjectInput) (*domain.Subject, error)
	UpdateSubjectFunc      func(ctx context.Context, input subject.UpdateSubjectInput) (*domain.Subject, error)
	DeleteSubjectFunc      func(ctx context.Context, input subject.DeleteSubjectInput) (subject.DeleteResult, error)
	AddTopicFunc           func(ctx context.Context, input subject.AddTopicInput) (*domain.Topic, error)
	SetTopicCompletionFunc func(ctx context.Context, input subject.SetTopicCompletionInput) (*domain.Topic, error)

	calls struct {
		ListSubjects []struct {
			Ctx context.Context
		}
		CreateSubject []struct {
			Ctx   context.Context
			Input subject.CreateSubjectInput
		}
		UpdateSubject []struct {
			Ctx   context.Context
			Input subject.UpdateSubjectInput
		}
		DeleteSubject []struct {
			Ctx   context.Context
			Input subject.DeleteSubjectInput
		}
		AddTopic []struct {
			Ctx   context.Context
			Input subject.AddTopicInput
		}
		SetTopicCompletion []struct {
			Ctx   context.Context
			Input subject.SetTopicCompletionInput
		}
	}
	lockListSubjects       sync.RWMutex
	lockCreateSubject      sync.RWMutex
	lockUpdateSubject      sync.RWMutex
	lockDeleteSubject      sync.RWMutex
	lockAddTopic           sync.RWMutex
	lockSetTopicCompletion sync.RWMutex
}

func (mock *subjectServiceMock) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	if mock.ListSubjectsFunc == nil {
		panic("subjectServiceMock.ListSubjectsFunc: method is nil but subjectService.ListSubjects was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListSubjects.Lock()
	mock.calls.ListSubjects = append(mock.calls.ListSubjects, callInfo)
	mock.lockListSubjects.Unlock()
	return mock.ListSubjectsFunc(ctx)
}

func (mock *subjectServiceMock) ListSubjectsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSubjects.RLock()
	calls := mock.calls.ListSubjects
	mock.lockListSubjects.RUnlock()
	return calls
}

func (mock *subjectServiceMock) CreateSubject(ctx context.Context, input subject.CreateSubjectInput) (*domain.Subject, error) {
	if mock.CreateSubjectFunc == nil {
		panic("subjectServiceMock.CreateSubjectFunc: method is nil but subjectService.CreateSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subject.CreateSubjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateSubject.Lock()
	mock.calls.CreateSubject = append(mock.calls.CreateSubject, callInfo)
	mock.lockCreateSubject.Unlock()
	return mock.CreateSubjectFunc(ctx, input)
}

func (mock *subjectServiceMock) CreateSubjectCalls() []struct {
	Ctx   context.Context
	Input subject.CreateSubjectInput
} {
	mock.lockCreateSubject.RLock()
	calls := mock.calls.CreateSubject
	mock.lockCreateSubject.RUnlock()
	return calls
}

func (mock *subjectServiceMock) UpdateSubject(ctx context.Context, input subject.UpdateSubjectInput) (*domain.Subject, error) {
	if mock.UpdateSubjectFunc == nil {
		panic("subjectServiceMock.UpdateSubjectFunc: method is nil but subjectService.UpdateSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subject.UpdateSubjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateSubject.Lock()
	mock.calls.UpdateSubject = append(mock.calls.UpdateSubject, callInfo)
	mock.lockUpdateSubject.Unlock()
	return mock.UpdateSubjectFunc(ctx, input)
}

func (mock *subjectServiceMock) UpdateSubjectCalls() []struct {
	Ctx   context.Context
	Input subject.UpdateSubjectInput
} {
	mock.lockUpdateSubject.RLock()
	calls := mock.calls.UpdateSubject
	mock.lockUpdateSubject.RUnlock()
	return calls
}

func (mock *subjectServiceMock) DeleteSubject(ctx context.Context, input subject.DeleteSubjectInput) (subject.DeleteResult, error) {
	if mock.DeleteSubjectFunc == nil {
		panic("subjectServiceMock.DeleteSubjectFunc: method is nil but subjectService.DeleteSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subject.DeleteSubjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteSubject.Lock()
	mock.calls.DeleteSubject = append(mock.calls.DeleteSubject, callInfo)
	mock.lockDeleteSubject.Unlock()
	return mock.DeleteSubjectFunc(ctx, input)
}

func (mock *subjectServiceMock) DeleteSubjectCalls() []struct {
	Ctx   context.Context
	Input subject.DeleteSubjectInput
} {
	mock.lockDeleteSubject.RLock()
	calls := mock.calls.DeleteSubject
	mock.lockDeleteSubject.RUnlock()
	return calls
}

func (mock *subjectServiceMock) AddTopic(ctx context.Context, input subject.AddTopicInput) (*domain.Topic, error) {
	if mock.AddTopicFunc == nil {
		panic("subjectServiceMock.AddTopicFunc: method is nil but subjectService.AddTopic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subject.AddTopicInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddTopic.Lock()
	mock.calls.AddTopic = append(mock.calls.AddTopic, callInfo)
	mock.lockAddTopic.Unlock()
	return mock.AddTopicFunc(ctx, input)
}

func (mock *subjectServiceMock) AddTopicCalls() []struct {
	Ctx   context.Context
	Input subject.AddTopicInput
} {
	mock.lockAddTopic.RLock()
	calls := mock.calls.AddTopic
	mock.lockAddTopic.RUnlock()
	return calls
}

func (mock *subjectServiceMock) SetTopicCompletion(ctx context.Context, input subject.SetTopicCompletionInput) (*domain.Topic, error) {
	if mock.SetTopicCompletionFunc == nil {
		panic("subjectServiceMock.SetTopicCompletionFunc: method is nil but subjectService.SetTopicCompletion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subject.SetTopicCompletionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSetTopicCompletion.Lock()
	mock.calls.SetTopicCompletion = append(mock.calls.SetTopicCompletion, callInfo)
	mock.lockSetTopicCompletion.Unlock()
	return mock.SetTopicCompletionFunc(ctx, input)
}

func (mock *subjectServiceMock) SetTopicCompletionCalls() []struct {
	Ctx   context.Context
	Input subject.SetTopicCompletionInput
} {
	mock.lockSetTopicCompletion.RLock()
	calls := mock.calls.SetTopicCompletion
	mock.lockSetTopicCompletion.RUnlock()
	return calls
}

var _ revisionService = &revisionServiceMock{}

type revisionServiceMock struct {
	GetDailyPlanFunc          func(ctx context.Context, filter revision.PlanFilter) ([]domain.DailyRevision, error)
	UpsertDailyPlanFunc       func(ctx context.Context, input revision.UpsertDailyPlanInput) (*domain.DailyRevision, bool, error)
	SetDayTopicCompletionFunc func(ctx context.Context, input revision.SetDayTopicCompletionInput) (*domain.RevisionTopic, error)
	DeleteDailyRevisionFunc   func(ctx context.Context, input revision.DeleteDailyRevisionInput) error

	calls struct {
		GetDailyPlan []struct {
			Ctx    context.Context
			Filter revision.PlanFilter
		}
		UpsertDailyPlan []struct {
			Ctx   context.Context
			Input revision.UpsertDailyPlanInput
		}
		SetDayTopicCompletion []struct {
			Ctx   context.Context
			Input revision.SetDayTopicCompletionInput
		}
		DeleteDailyRevision []struct {
			Ctx   context.Context
			Input revision.DeleteDailyRevisionInput
		}
	}
	lockGetDailyPlan          sync.RWMutex
	lockUpsertDailyPlan       sync.RWMutex
	lockSetDayTopicCompletion sync.RWMutex
	lockDeleteDailyRevision   sync.RWMutex
}

func (mock *revisionServiceMock) GetDailyPlan(ctx context.Context, filter revision.PlanFilter) ([]domain.DailyRevision, error) {
	if mock.GetDailyPlanFunc == nil {
		panic("revisionServiceMock.GetDailyPlanFunc: method is nil but revisionService.GetDailyPlan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter revision.PlanFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockGetDailyPlan.Lock()
	mock.calls.GetDailyPlan = append(mock.calls.GetDailyPlan, callInfo)
	mock.lockGetDailyPlan.Unlock()
	return mock.GetDailyPlanFunc(ctx, filter)
}

func (mock *revisionServiceMock) GetDailyPlanCalls() []struct {
	Ctx    context.Context
	Filter revision.PlanFilter
} {
	mock.lockGetDailyPlan.RLock()
	calls := mock.calls.GetDailyPlan
	mock.lockGetDailyPlan.RUnlock()
	return calls
}

func (mock *revisionServiceMock) UpsertDailyPlan(ctx context.Context, input revision.UpsertDailyPlanInput) (*domain.DailyRevision, bool, error) {
	if mock.UpsertDailyPlanFunc == nil {
		panic("revisionServiceMock.UpsertDailyPlanFunc: method is nil but revisionService.UpsertDailyPlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input revision.UpsertDailyPlanInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpsertDailyPlan.Lock()
	mock.calls.UpsertDailyPlan = append(mock.calls.UpsertDailyPlan, callInfo)
	mock.lockUpsertDailyPlan.Unlock()
	return mock.UpsertDailyPlanFunc(ctx, input)
}

func (mock *revisionServiceMock) UpsertDailyPlanCalls() []struct {
	Ctx   context.Context
	Input revision.UpsertDailyPlanInput
} {
	mock.lockUpsertDailyPlan.RLock()
	calls := mock.calls.UpsertDailyPlan
	mock.lockUpsertDailyPlan.RUnlock()
	return calls
}

func (mock *revisionServiceMock) SetDayTopicCompletion(ctx context.Context, input revision.SetDayTopicCompletionInput) (*domain.RevisionTopic, error) {
	if mock.SetDayTopicCompletionFunc == nil {
		panic("revisionServiceMock.SetDayTopicCompletionFunc: method is nil but revisionService.SetDayTopicCompletion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input revision.SetDayTopicCompletionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSetDayTopicCompletion.Lock()
	mock.calls.SetDayTopicCompletion = append(mock.calls.SetDayTopicCompletion, callInfo)
	mock.lockSetDayTopicCompletion.Unlock()
	return mock.SetDayTopicCompletionFunc(ctx, input)
}

func (mock *revisionServiceMock) SetDayTopicCompletionCalls() []struct {
	Ctx   context.Context
	Input revision.SetDayTopicCompletionInput
} {
	mock.lockSetDayTopicCompletion.RLock()
	calls := mock.calls.SetDayTopicCompletion
	mock.lockSetDayTopicCompletion.RUnlock()
	return calls
}

func (mock *revisionServiceMock) DeleteDailyRevision(ctx context.Context, input revision.DeleteDailyRevisionInput) error {
	if mock.DeleteDailyRevisionFunc == nil {
		panic("revisionServiceMock.DeleteDailyRevisionFunc: method is nil but revisionService.DeleteDailyRevision was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input revision.DeleteDailyRevisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteDailyRevision.Lock()
	mock.calls.DeleteDailyRevision = append(mock.calls.DeleteDailyRevision, callInfo)
	mock.lockDeleteDailyRevision.Unlock()
	return mock.DeleteDailyRevisionFunc(ctx, input)
}

func (mock *revisionServiceMock) DeleteDailyRevisionCalls() []struct {
	Ctx   context.Context
	Input revision.DeleteDailyRevisionInput
} {
	mock.lockDeleteDailyRevision.RLock()
	calls := mock.calls.DeleteDailyRevision
	mock.lockDeleteDailyRevision.RUnlock()
	return calls
}

package rest

import (
	"context"
	"sync"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

var _ searchService = &searchServiceMock{}

type searchServiceMock struct {
	SearchByCodeOrConditionFunc func(ctx context.Context, q string) ([]domain.CodeRecord, error)
	SearchEditorTableFunc       func(ctx context.Context, q string, page int) ([]domain.CodeRecord, error)

	calls struct {
		SearchByCodeOrCondition []struct {
			Ctx context.Context
			Q   string
		}
		SearchEditorTable []struct {
			Ctx  context.Context
			Q    string
			Page int
		}
	}
	lockSearchByCodeOrCondition sync.RWMutex
	lockSearchEditorTable       sync.RWMutex
}

func (mock *searchServiceMock) SearchByCodeOrCondition(ctx context.Context, q string) ([]domain.CodeRecord, error) {
	if mock.SearchByCodeOrConditionFunc == nil {
		panic("searchServiceMock.SearchByCodeOrConditionFunc: method is nil but searchService.SearchByCodeOrCondition was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   string
	}{Ctx: ctx, Q: q}
	mock.lockSearchByCodeOrCondition.Lock()
	mock.calls.SearchByCodeOrCondition = append(mock.calls.SearchByCodeOrCondition, callInfo)
	mock.lockSearchByCodeOrCondition.Unlock()
	return mock.SearchByCodeOrConditionFunc(ctx, q)
}

func (mock *searchServiceMock) SearchByCodeOrConditionCalls() []struct {
	Ctx context.Context
	Q   string
} {
	mock.lockSearchByCodeOrCondition.RLock()
	calls := mock.calls.SearchByCodeOrCondition
	mock.lockSearchByCodeOrCondition.RUnlock()
	return calls
}

func (mock *searchServiceMock) SearchEditorTable(ctx context.Context, q string, page int) ([]domain.CodeRecord, error) {
	if mock.SearchEditorTableFunc == nil {
		panic("searchServiceMock.SearchEditorTableFunc: method is nil but searchService.SearchEditorTable was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Q    string
		Page int
	}{Ctx: ctx, Q: q, Page: page}
	mock.lockSearchEditorTable.Lock()
	mock.calls.SearchEditorTable = append(mock.calls.SearchEditorTable, callInfo)
	mock.lockSearchEditorTable.Unlock()
	return mock.SearchEditorTableFunc(ctx, q, page)
}

func (mock *searchServiceMock) SearchEditorTableCalls() []struct {
	Ctx  context.Context
	Q    string
	Page int
} {
	mock.lockSearchEditorTable.RLock()
	calls := mock.calls.SearchEditorTable
	mock.lockSearchEditorTable.RUnlock()
	return calls
}

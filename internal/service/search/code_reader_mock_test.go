package search

import (
	"context"
	"sync"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

var _ codeReader = &codeReaderMock{}

type codeReaderMock struct {
	PageFunc   func(ctx context.Context, filter domain.CodeFilter) ([]domain.CodeRecord, error)
	SearchFunc func(ctx context.Context, q string) ([]domain.CodeRecord, error)

	calls struct {
		Page []struct {
			Ctx    context.Context
			Filter domain.CodeFilter
		}
		Search []struct {
			Ctx context.Context
			Q   string
		}
	}
	lockPage   sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *codeReaderMock) Page(ctx context.Context, filter domain.CodeFilter) ([]domain.CodeRecord, error) {
	if mock.PageFunc == nil {
		panic("codeReaderMock.PageFunc: method is nil but codeReader.Page was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CodeFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockPage.Lock()
	mock.calls.Page = append(mock.calls.Page, callInfo)
	mock.lockPage.Unlock()
	return mock.PageFunc(ctx, filter)
}

func (mock *codeReaderMock) PageCalls() []struct {
	Ctx    context.Context
	Filter domain.CodeFilter
} {
	mock.lockPage.RLock()
	calls := mock.calls.Page
	mock.lockPage.RUnlock()
	return calls
}

func (mock *codeReaderMock) Search(ctx context.Context, q string) ([]domain.CodeRecord, error) {
	if mock.SearchFunc == nil {
		panic("codeReaderMock.SearchFunc: method is nil but codeReader.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   string
	}{Ctx: ctx, Q: q}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, q)
}

func (mock *codeReaderMock) SearchCalls() []struct {
	Ctx context.Context
	Q   string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

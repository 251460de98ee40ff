package editor

import (
	"context"
	"sync"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

var _ auditReader = &auditReaderMock{}

type auditReaderMock struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.AuditEntry, error)

	calls struct {
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockListRecent sync.RWMutex
}

func (mock *auditReaderMock) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if mock.ListRecentFunc == nil {
		panic("auditReaderMock.ListRecentFunc: method is nil but auditReader.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *auditReaderMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

package importer

import (
	"context"
	"sync"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

var _ codeStore = &codeStoreMock{}

type codeStoreMock struct {
	InsertBatchFunc func(ctx context.Context, recs []domain.CodeRecord) (int, error)
	ListColumnsFunc func(ctx context.Context) ([]domain.ColumnDescriptor, error)

	calls struct {
		InsertBatch []struct {
			Ctx  context.Context
			Recs []domain.CodeRecord
		}
		ListColumns []struct {
			Ctx context.Context
		}
	}
	lockInsertBatch sync.RWMutex
	lockListColumns sync.RWMutex
}

func (mock *codeStoreMock) InsertBatch(ctx context.Context, recs []domain.CodeRecord) (int, error) {
	if mock.InsertBatchFunc == nil {
		panic("codeStoreMock.InsertBatchFunc: method is nil but codeStore.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.CodeRecord
	}{Ctx: ctx, Recs: recs}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, recs)
}

func (mock *codeStoreMock) InsertBatchCalls() []struct {
	Ctx  context.Context
	Recs []domain.CodeRecord
} {
	mock.lockInsertBatch.RLock()
	calls := mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}

func (mock *codeStoreMock) ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error) {
	if mock.ListColumnsFunc == nil {
		panic("codeStoreMock.ListColumnsFunc: method is nil but codeStore.ListColumns was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListColumns.Lock()
	mock.calls.ListColumns = append(mock.calls.ListColumns, callInfo)
	mock.lockListColumns.Unlock()
	return mock.ListColumnsFunc(ctx)
}

func (mock *codeStoreMock) ListColumnsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListColumns.RLock()
	calls := mock.calls.ListColumns
	mock.lockListColumns.RUnlock()
	return calls
}

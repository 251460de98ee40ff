package rest

import (
	"context"
	"sync"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/internal/service/editor"
)

var _ editorService = &editorServiceMock{}

type editorServiceMock struct {
	AddColumnFunc   func(ctx context.Context, input editor.AddColumnInput) error
	AddRowFunc      func(ctx context.Context, input editor.AddRowInput) (*editor.AddRowResult, error)
	DeleteRowFunc   func(ctx context.Context, input editor.DeleteRowInput) error
	ListColumnsFunc func(ctx context.Context) ([]domain.ColumnDescriptor, error)
	RecentAuditFunc func(ctx context.Context, limit int) ([]domain.AuditEntry, error)
	UpdateCellFunc  func(ctx context.Context, input editor.UpdateCellInput) (*editor.UpdateCellResult, error)

	calls struct {
		AddColumn []struct {
			Ctx   context.Context
			Input editor.AddColumnInput
		}
		AddRow []struct {
			Ctx   context.Context
			Input editor.AddRowInput
		}
		DeleteRow []struct {
			Ctx   context.Context
			Input editor.DeleteRowInput
		}
		ListColumns []struct {
			Ctx context.Context
		}
		RecentAudit []struct {
			Ctx   context.Context
			Limit int
		}
		UpdateCell []struct {
			Ctx   context.Context
			Input editor.UpdateCellInput
		}
	}
	lockAddColumn   sync.RWMutex
	lockAddRow      sync.RWMutex
	lockDeleteRow   sync.RWMutex
	lockListColumns sync.RWMutex
	lockRecentAudit sync.RWMutex
	lockUpdateCell  sync.RWMutex
}

func (mock *editorServiceMock) AddColumn(ctx context.Context, input editor.AddColumnInput) error {
	if mock.AddColumnFunc == nil {
		panic("editorServiceMock.AddColumnFunc: method is nil but editorService.AddColumn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input editor.AddColumnInput
	}{Ctx: ctx, Input: input}
	mock.lockAddColumn.Lock()
	mock.calls.AddColumn = append(mock.calls.AddColumn, callInfo)
	mock.lockAddColumn.Unlock()
	return mock.AddColumnFunc(ctx, input)
}

func (mock *editorServiceMock) AddColumnCalls() []struct {
	Ctx   context.Context
	Input editor.AddColumnInput
} {
	mock.lockAddColumn.RLock()
	calls := mock.calls.AddColumn
	mock.lockAddColumn.RUnlock()
	return calls
}

func (mock *editorServiceMock) AddRow(ctx context.Context, input editor.AddRowInput) (*editor.AddRowResult, error) {
	if mock.AddRowFunc == nil {
		panic("editorServiceMock.AddRowFunc: method is nil but editorService.AddRow was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input editor.AddRowInput
	}{Ctx: ctx, Input: input}
	mock.lockAddRow.Lock()
	mock.calls.AddRow = append(mock.calls.AddRow, callInfo)
	mock.lockAddRow.Unlock()
	return mock.AddRowFunc(ctx, input)
}

func (mock *editorServiceMock) AddRowCalls() []struct {
	Ctx   context.Context
	Input editor.AddRowInput
} {
	mock.lockAddRow.RLock()
	calls := mock.calls.AddRow
	mock.lockAddRow.RUnlock()
	return calls
}

func (mock *editorServiceMock) DeleteRow(ctx context.Context, input editor.DeleteRowInput) error {
	if mock.DeleteRowFunc == nil {
		panic("editorServiceMock.DeleteRowFunc: method is nil but editorService.DeleteRow was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input editor.DeleteRowInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteRow.Lock()
	mock.calls.DeleteRow = append(mock.calls.DeleteRow, callInfo)
	mock.lockDeleteRow.Unlock()
	return mock.DeleteRowFunc(ctx, input)
}

func (mock *editorServiceMock) DeleteRowCalls() []struct {
	Ctx   context.Context
	Input editor.DeleteRowInput
} {
	mock.lockDeleteRow.RLock()
	calls := mock.calls.DeleteRow
	mock.lockDeleteRow.RUnlock()
	return calls
}

func (mock *editorServiceMock) ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error) {
	if mock.ListColumnsFunc == nil {
		panic("editorServiceMock.ListColumnsFunc: method is nil but editorService.ListColumns was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListColumns.Lock()
	mock.calls.ListColumns = append(mock.calls.ListColumns, callInfo)
	mock.lockListColumns.Unlock()
	return mock.ListColumnsFunc(ctx)
}

func (mock *editorServiceMock) ListColumnsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListColumns.RLock()
	calls := mock.calls.ListColumns
	mock.lockListColumns.RUnlock()
	return calls
}

func (mock *editorServiceMock) RecentAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if mock.RecentAuditFunc == nil {
		panic("editorServiceMock.RecentAuditFunc: method is nil but editorService.RecentAudit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecentAudit.Lock()
	mock.calls.RecentAudit = append(mock.calls.RecentAudit, callInfo)
	mock.lockRecentAudit.Unlock()
	return mock.RecentAuditFunc(ctx, limit)
}

func (mock *editorServiceMock) RecentAuditCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecentAudit.RLock()
	calls := mock.calls.RecentAudit
	mock.lockRecentAudit.RUnlock()
	return calls
}

func (mock *editorServiceMock) UpdateCell(ctx context.Context, input editor.UpdateCellInput) (*editor.UpdateCellResult, error) {
	if mock.UpdateCellFunc == nil {
		panic("editorServiceMock.UpdateCellFunc: method is nil but editorService.UpdateCell was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input editor.UpdateCellInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCell.Lock()
	mock.calls.UpdateCell = append(mock.calls.UpdateCell, callInfo)
	mock.lockUpdateCell.Unlock()
	return mock.UpdateCellFunc(ctx, input)
}

func (mock *editorServiceMock) UpdateCellCalls() []struct {
	Ctx   context.Context
	Input editor.UpdateCellInput
} {
	mock.lockUpdateCell.RLock()
	calls := mock.calls.UpdateCell
	mock.lockUpdateCell.RUnlock()
	return calls
}

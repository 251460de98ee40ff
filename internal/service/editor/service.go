// Package editor implements the audited mutation operations on the ICD code
// table. Every successful mutation writes exactly one audit entry in the same
// transaction as the data change.
package editor

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/pkg/ctxutil"
)

const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 500
)

type codeRepo interface {
	ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error)
	AddColumn(ctx context.Context, name, dataType string) error
	CellValue(ctx context.Context, code, column string) (*string, error)
	UpdateCell(ctx context.Context, code, column, value string) error
	NextID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, rec domain.CodeRecord) error
	Delete(ctx context.Context, code string) error
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type auditReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type mutationRecorder interface {
	RecordMutation(action, outcome string)
}

// Service provides the editor's mutation and inspection operations.
type Service struct {
	log     *slog.Logger
	codes   codeRepo
	audit   auditLogger
	history auditReader
	tx      txManager
	metrics mutationRecorder
	tracer  trace.Tracer
}

// NewService creates a new editor service. metrics may be nil.
func NewService(
	logger *slog.Logger,
	codes codeRepo,
	audit auditLogger,
	history auditReader,
	tx txManager,
	metrics mutationRecorder,
) *Service {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &Service{
		log:     logger.With("service", "editor"),
		codes:   codes,
		audit:   audit,
		history: history,
		tx:      tx,
		metrics: metrics,
		tracer:  otel.Tracer("github.com/kruttikastudy/icd-website/internal/service/editor"),
	}
}

// principalFromCtx returns the signed-in actor or domain.ErrUnauthorized.
func principalFromCtx(ctx context.Context) (domain.Principal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	identity, _ := ctxutil.IdentityFromCtx(ctx)
	return domain.Principal{
		UserID:   userID,
		Username: identity.Username,
		Email:    identity.Email,
	}, nil
}

type noopRecorder struct{}

func (noopRecorder) RecordMutation(string, string) {}

func strPtr(s string) *string { return &s }

package editor

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/internal/metrics"
)

// AddColumn appends a nullable column to the code table and records an
// ADD_COLUMN audit entry. The column name must pass the identifier guard and
// the type must be on the allowlist (TEXT when empty). An existing column
// yields domain.ErrSchemaConflict.
func (s *Service) AddColumn(ctx context.Context, input AddColumnInput) error {
	actor, err := principalFromCtx(ctx)
	if err != nil {
		return err
	}

	const action = domain.AuditActionAddColumn

	if err := input.Validate(); err != nil {
		s.metrics.RecordMutation(action.String(), metrics.OutcomeRejected)
		return err
	}

	ctx, span := s.tracer.Start(ctx, "editor.AddColumn", trace.WithAttributes(
		attribute.String("icd.column", input.Name),
		attribute.String("icd.data_type", input.DataType),
	))
	defer span.End()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codes.AddColumn(txCtx, input.Name, input.DataType); err != nil {
			return fmt.Errorf("add column: %w", err)
		}

		entry := domain.NewAuditEntry(actor, action)
		entry.ColumnName = strPtr(input.Name)
		entry.NewValue = strPtr(input.DataType)
		if err := s.audit.Log(txCtx, entry); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		s.fail(ctx, span, action, err)
		return fmt.Errorf("editor.AddColumn: %w", err)
	}

	s.metrics.RecordMutation(action.String(), metrics.OutcomeSuccess)
	s.log.InfoContext(ctx, "column added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("column", input.Name),
		slog.String("data_type", input.DataType),
	)

	return nil
}

// ListColumns returns the live column set of the code table.
func (s *Service) ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error) {
	if _, err := principalFromCtx(ctx); err != nil {
		return nil, err
	}

	cols, err := s.codes.ListColumns(ctx)
	if err != nil {
		return nil, fmt.Errorf("editor.ListColumns: %w", err)
	}
	return cols, nil
}

package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/internal/metrics"
)

// UpdateCell sets one cell of the row identified by code. The new value is
// trimmed and compared with the trimmed current value (NULL counts as empty);
// when they are equal nothing is written and no audit entry is recorded.
//
// The current value is read with a row lock, so a concurrent update of the
// same row cannot slip in between the comparison and the write. A missing
// row yields domain.ErrNotFound and an unknown column domain.ErrSchemaConflict.
func (s *Service) UpdateCell(ctx context.Context, input UpdateCellInput) (*UpdateCellResult, error) {
	actor, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	const action = domain.AuditActionUpdateCell

	if err := input.Validate(); err != nil {
		s.metrics.RecordMutation(action.String(), metrics.OutcomeRejected)
		return nil, err
	}
	code := strings.TrimSpace(input.Code)
	newValue := domain.NormalizeCell(input.NewValue)

	ctx, span := s.tracer.Start(ctx, "editor.UpdateCell", trace.WithAttributes(
		attribute.String("icd.code", code),
		attribute.String("icd.column", input.Column),
	))
	defer span.End()

	result := &UpdateCellResult{NewValue: newValue}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.codes.CellValue(txCtx, code, input.Column)
		if err != nil {
			return fmt.Errorf("read cell: %w", err)
		}

		result.OldValue = domain.NormalizeCell(domain.ValueString(current))
		if result.OldValue == newValue {
			return nil
		}

		if err := s.codes.UpdateCell(txCtx, code, input.Column, newValue); err != nil {
			return fmt.Errorf("update cell: %w", err)
		}

		entry := domain.NewAuditEntry(actor, action)
		entry.ColumnName = strPtr(input.Column)
		entry.RowID = strPtr(code)
		entry.OldValue = current
		entry.NewValue = strPtr(newValue)
		if err := s.audit.Log(txCtx, entry); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		result.Changed = true
		return nil
	})
	if err != nil {
		s.fail(ctx, span, action, err)
		return nil, fmt.Errorf("editor.UpdateCell: %w", err)
	}

	if !result.Changed {
		s.metrics.RecordMutation(action.String(), metrics.OutcomeNoChange)
		s.log.DebugContext(ctx, "cell unchanged",
			slog.String("code", code),
			slog.String("column", input.Column),
		)
		return result, nil
	}

	s.metrics.RecordMutation(action.String(), metrics.OutcomeSuccess)
	s.log.InfoContext(ctx, "cell updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("code", code),
		slog.String("column", input.Column),
	)

	return result, nil
}

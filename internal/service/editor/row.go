package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/internal/metrics"
)

// AddRow inserts a row with exactly the supplied columns and records an
// ADD_ROW audit entry holding the inserted fields as JSON.
//
// When the table has an id column, the id is assigned here as one more than
// the largest numeric id, under a table lock held until commit, and replaces
// any id supplied by the caller. Concurrent AddRow calls therefore never
// receive the same id.
//
// A code that already exists (case-insensitively) yields
// domain.ErrAlreadyExists; an unknown column yields domain.ErrSchemaConflict.
func (s *Service) AddRow(ctx context.Context, input AddRowInput) (*AddRowResult, error) {
	actor, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	const action = domain.AuditActionAddRow

	if err := input.Validate(); err != nil {
		s.metrics.RecordMutation(action.String(), metrics.OutcomeRejected)
		return nil, err
	}
	rec := normalizeRecord(input.Fields)
	code := rec.Code()

	ctx, span := s.tracer.Start(ctx, "editor.AddRow", trace.WithAttributes(
		attribute.String("icd.code", code),
		attribute.Int("icd.columns", len(rec.Fields)),
	))
	defer span.End()

	result := &AddRowResult{Code: code}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cols, err := s.codes.ListColumns(txCtx)
		if err != nil {
			return fmt.Errorf("list columns: %w", err)
		}

		if domain.HasColumn(cols, domain.ColumnID) {
			id, err := s.codes.NextID(txCtx)
			if err != nil {
				return fmt.Errorf("assign id: %w", err)
			}
			rec.Set(domain.ColumnID, strconv.FormatInt(id, 10))
			result.ID = &id
		}

		if err := s.codes.Insert(txCtx, rec); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}

		snapshot, err := json.Marshal(rec.Map())
		if err != nil {
			return fmt.Errorf("marshal row: %w", err)
		}

		entry := domain.NewAuditEntry(actor, action)
		entry.RowID = strPtr(code)
		entry.NewValue = strPtr(string(snapshot))
		if err := s.audit.Log(txCtx, entry); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		s.fail(ctx, span, action, err)
		return nil, fmt.Errorf("editor.AddRow: %w", err)
	}

	s.metrics.RecordMutation(action.String(), metrics.OutcomeSuccess)
	s.log.InfoContext(ctx, "row added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("code", code),
	)

	return result, nil
}

// DeleteRow removes the row identified by code and records a DELETE_ROW
// audit entry. The entry is written before the delete, in the same
// transaction, so a failed delete leaves no entry behind. A missing row
// yields domain.ErrNotFound.
func (s *Service) DeleteRow(ctx context.Context, input DeleteRowInput) error {
	actor, err := principalFromCtx(ctx)
	if err != nil {
		return err
	}

	const action = domain.AuditActionDeleteRow

	if err := input.Validate(); err != nil {
		s.metrics.RecordMutation(action.String(), metrics.OutcomeRejected)
		return err
	}
	code := strings.TrimSpace(input.Code)

	ctx, span := s.tracer.Start(ctx, "editor.DeleteRow", trace.WithAttributes(
		attribute.String("icd.code", code),
	))
	defer span.End()

	logged := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry := domain.NewAuditEntry(actor, action)
		entry.RowID = strPtr(code)
		if err := s.audit.Log(txCtx, entry); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		logged = true

		if err := s.codes.Delete(txCtx, code); err != nil {
			return fmt.Errorf("delete row: %w", err)
		}
		return nil
	})
	if err != nil {
		if logged {
			s.log.WarnContext(ctx, "delete failed after audit write, rolled back",
				slog.String("code", code),
				slog.String("error", err.Error()),
			)
		}
		s.fail(ctx, span, action, err)
		return fmt.Errorf("editor.DeleteRow: %w", err)
	}

	s.metrics.RecordMutation(action.String(), metrics.OutcomeSuccess)
	s.log.InfoContext(ctx, "row deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("code", code),
	)

	return nil
}

// normalizeRecord trims string values, the code included.
func normalizeRecord(fields []domain.Field) domain.CodeRecord {
	rec := domain.CodeRecord{Fields: make([]domain.Field, len(fields))}
	for i, f := range fields {
		if v, ok := f.Value.(string); ok {
			f.Value = domain.NormalizeCell(v)
		}
		rec.Fields[i] = f
	}
	return rec
}

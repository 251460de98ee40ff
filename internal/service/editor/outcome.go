package editor

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/internal/metrics"
)

// isRejection reports whether err is a caller error rather than a storage failure.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidIdentifier) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, domain.ErrSchemaConflict) ||
		errors.Is(err, domain.ErrUnauthorized)
}

// fail records a failed mutation on the span, the metrics and, for storage
// failures, the error log.
func (s *Service) fail(ctx context.Context, span trace.Span, action domain.AuditAction, err error) {
	span.RecordError(err)

	if isRejection(err) {
		s.metrics.RecordMutation(action.String(), metrics.OutcomeRejected)
		return
	}

	span.SetStatus(codes.Error, err.Error())
	s.metrics.RecordMutation(action.String(), metrics.OutcomeError)
	s.log.ErrorContext(ctx, "mutation failed",
		slog.String("action", action.String()),
		slog.String("error", err.Error()),
	)
}

// Package search implements the read-only lookups over the ICD code table.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/pkg/ctxutil"
)

type codeReader interface {
	Search(ctx context.Context, q string) ([]domain.CodeRecord, error)
	Page(ctx context.Context, filter domain.CodeFilter) ([]domain.CodeRecord, error)
}

// Service answers public code searches and editor table queries.
type Service struct {
	log   *slog.Logger
	codes codeReader
}

// NewService creates a new search service.
func NewService(logger *slog.Logger, codes codeReader) *Service {
	return &Service{
		log:   logger.With("service", "search"),
		codes: codes,
	}
}

// SearchByCodeOrCondition returns the records whose code equals q
// (case-insensitive) or whose condition contains q. It needs no principal.
func (s *Service) SearchByCodeOrCondition(ctx context.Context, q string) ([]domain.CodeRecord, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.NewMissingFieldError("q")
	}

	records, err := s.codes.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search.SearchByCodeOrCondition: %w", err)
	}

	s.log.DebugContext(ctx, "code search",
		slog.String("q", q),
		slog.Int("results", len(records)),
	)
	return records, nil
}

// SearchEditorTable returns one page of the editor table, optionally
// filtered by a substring of code or condition.
func (s *Service) SearchEditorTable(ctx context.Context, q string, page int) ([]domain.CodeRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	filter := domain.CodeFilter{Search: strings.TrimSpace(q), Page: page}
	if filter.Page < 1 {
		filter.Page = 1
	}

	records, err := s.codes.Page(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search.SearchEditorTable: %w", err)
	}
	return records, nil
}

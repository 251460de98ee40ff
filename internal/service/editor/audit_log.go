package editor

import (
	"context"
	"fmt"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

// RecentAudit returns the latest audit entries, newest first. A limit outside
// [1, MaxAuditLimit] is clamped; zero or less means DefaultAuditLimit.
func (s *Service) RecentAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if _, err := principalFromCtx(ctx); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		limit = MaxAuditLimit
	}

	entries, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("editor.RecentAudit: %w", err)
	}
	return entries, nil
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

type searchService interface {
	SearchByCodeOrCondition(ctx context.Context, q string) ([]domain.CodeRecord, error)
	SearchEditorTable(ctx context.Context, q string, page int) ([]domain.CodeRecord, error)
}

// SearchHandler serves the public search and the editor table listing.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /search?q=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.SearchByCodeOrCondition(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(h.log, w, r, err, "Database query failed")
		return
	}
	writeJSON(w, http.StatusOK, toRecordsJSON(records))
}

// AllCodes handles GET /api/all-codes?page=&search=.
func (h *SearchHandler) AllCodes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Unparseable pages fall back to the first page.
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		page = 1
	}

	records, err := h.svc.SearchEditorTable(r.Context(), query.Get("search"), page)
	if err != nil {
		respondError(h.log, w, r, err, "Failed to fetch data")
		return
	}
	writeJSON(w, http.StatusOK, toRecordsJSON(records))
}

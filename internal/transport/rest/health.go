package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

const healthTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type schemaReader interface {
	ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error)
}

// HealthHandler serves the liveness, readiness and full health probes.
type HealthHandler struct {
	db      dbPinger
	schema  schemaReader
	version string
}

// NewHealthHandler creates a HealthHandler. schema may be nil, in which case
// /health reports only the database.
func NewHealthHandler(db dbPinger, schema schemaReader, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

const (
	statusOK   = "ok"
	statusDown = "down"
)

// Live always returns 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready returns 200 when the database answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health reports the database and the codes table. The table is down when
// it cannot be described or has lost its code column.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := statusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: statusDown}
		overall = statusDown
	} else {
		components["database"] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}

	if h.schema != nil && overall == statusOK {
		comp := h.checkCodesTable(ctx)
		components[domain.CodesTable] = comp
		if comp.Status != statusOK {
			overall = statusDown
		}
	}

	status := http.StatusOK
	if overall != statusOK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkCodesTable(ctx context.Context) CompStatus {
	cols, err := h.schema.ListColumns(ctx)
	if err != nil {
		return CompStatus{Status: statusDown, Detail: "schema unavailable"}
	}
	for _, c := range cols {
		if c.Name == domain.ColumnCode {
			return CompStatus{Status: statusOK, Detail: strconv.Itoa(len(cols)) + " columns"}
		}
	}
	return CompStatus{Status: statusDown, Detail: "code column missing"}
}

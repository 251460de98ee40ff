package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/internal/service/editor"
)

type editorService interface {
	ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error)
	AddColumn(ctx context.Context, input editor.AddColumnInput) error
	UpdateCell(ctx context.Context, input editor.UpdateCellInput) (*editor.UpdateCellResult, error)
	AddRow(ctx context.Context, input editor.AddRowInput) (*editor.AddRowResult, error)
	DeleteRow(ctx context.Context, input editor.DeleteRowInput) error
	RecentAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// EditorHandler serves the authenticated editor endpoints.
type EditorHandler struct {
	svc editorService
	log *slog.Logger
}

// NewEditorHandler creates an EditorHandler.
func NewEditorHandler(svc editorService, logger *slog.Logger) *EditorHandler {
	return &EditorHandler{svc: svc, log: logger.With("handler", "editor")}
}

// scalarString accepts a JSON string, number, boolean or null and keeps its
// text. null decodes to the empty string.
type scalarString string

func (s *scalarString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = scalarString(v)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return errNestedValue
	default:
		*s = scalarString(data)
	}
	return nil
}

type columnResponse struct {
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
	IsNullable string `json:"is_nullable"`
}

type addColumnRequest struct {
	ColumnName string `json:"columnName"`
	DataType   string `json:"dataType"`
}

type updateCellRequest struct {
	ID         scalarString `json:"id"`
	ColumnName string       `json:"columnName"`
	NewValue   scalarString `json:"newValue"`
}

type deleteRowRequest struct {
	ID scalarString `json:"id"`
}

type auditEntryResponse struct {
	ID         int64     `json:"id"`
	UserID     *string   `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	TableName  string    `json:"table_name"`
	ColumnName *string   `json:"column_name"`
	RowID      *string   `json:"row_id"`
	OldValue   *string   `json:"old_value"`
	NewValue   *string   `json:"new_value"`
	Timestamp  time.Time `json:"timestamp"`
}

// TableColumns handles GET /api/table-columns.
func (h *EditorHandler) TableColumns(w http.ResponseWriter, r *http.Request) {
	cols, err := h.svc.ListColumns(r.Context())
	if err != nil {
		respondError(h.log, w, r, err, "Failed to fetch columns")
		return
	}

	resp := make([]columnResponse, len(cols))
	for i, c := range cols {
		nullable := "NO"
		if c.Nullable {
			nullable = "YES"
		}
		resp[i] = columnResponse{ColumnName: c.Name, DataType: c.DataType, IsNullable: nullable}
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddColumn handles POST /api/add-column.
func (h *EditorHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	var req addColumnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := editor.AddColumnInput{Name: req.ColumnName, DataType: req.DataType}
	if err := h.svc.AddColumn(r.Context(), input); err != nil {
		respondError(h.log, w, r, err, "Failed to add column")
		return
	}

	writeMessage(w, fmt.Sprintf("Column %s added successfully", req.ColumnName))
}

// UpdateCell handles POST /api/update-cell.
func (h *EditorHandler) UpdateCell(w http.ResponseWriter, r *http.Request) {
	var req updateCellRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.UpdateCell(r.Context(), editor.UpdateCellInput{
		Code:     string(req.ID),
		Column:   req.ColumnName,
		NewValue: string(req.NewValue),
	})
	if err != nil {
		respondError(h.log, w, r, err, "Update failed")
		return
	}

	if !result.Changed {
		writeMessage(w, "No change detected")
		return
	}
	writeMessage(w, "Updated successfully")
}

// AddRow handles POST /api/add-row. The body is a flat object of column
// names to values and must include code.
func (h *EditorHandler) AddRow(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFlatObject(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.svc.AddRow(r.Context(), editor.AddRowInput{Fields: fields}); err != nil {
		respondError(h.log, w, r, err, "Failed to add row")
		return
	}

	writeMessage(w, "Row added successfully")
}

// DeleteRow handles POST /api/delete-row.
func (h *EditorHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	var req deleteRowRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.DeleteRow(r.Context(), editor.DeleteRowInput{Code: string(req.ID)}); err != nil {
		respondError(h.log, w, r, err, "Failed to delete record")
		return
	}

	writeMessage(w, "Record deleted successfully")
}

// AuditLogs handles GET /api/audit-logs. An optional limit query parameter
// overrides the default of 100 entries.
func (h *EditorHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := editor.DefaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	entries, err := h.svc.RecentAudit(r.Context(), limit)
	if err != nil {
		respondError(h.log, w, r, err, "Failed to fetch logs")
		return
	}

	resp := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toAuditEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func toAuditEntryResponse(e domain.AuditEntry) auditEntryResponse {
	var userID *string
	if e.UserID != nil {
		s := e.UserID.String()
		userID = &s
	}
	return auditEntryResponse{
		ID:         e.ID,
		UserID:     userID,
		Username:   e.Username,
		Email:      e.Email,
		Action:     e.Action.String(),
		TableName:  e.TableName,
		ColumnName: e.ColumnName,
		RowID:      e.RowID,
		OldValue:   e.OldValue,
		NewValue:   e.NewValue,
		Timestamp:  e.CreatedAt,
	}
}

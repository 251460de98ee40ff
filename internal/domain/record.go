package domain

import (
	"fmt"
	"math"
)

// Field is a single column/value pair of a code record.
type Field struct {
	Column string
	Value  any
}

// CodeRecord is one row of the codes table. The schema is open, so the row
// is kept as an ordered list of fields rather than a struct.
type CodeRecord struct {
	Fields []Field
}

// Get returns the value stored under column.
func (r CodeRecord) Get(column string) (any, bool) {
	for _, f := range r.Fields {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of column, appending the column if it is absent.
func (r *CodeRecord) Set(column string, value any) {
	for i := range r.Fields {
		if r.Fields[i].Column == column {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Column: column, Value: value})
}

// Code returns the record's code as a string, or "" when missing.
func (r CodeRecord) Code() string {
	v, ok := r.Get(ColumnCode)
	if !ok || v == nil {
		return ""
	}
	return ValueString(v)
}

// Columns returns the column names in record order.
func (r CodeRecord) Columns() []string {
	cols := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		cols[i] = f.Column
	}
	return cols
}

// Values returns the values in record order.
func (r CodeRecord) Values() []any {
	vals := make([]any, len(r.Fields))
	for i, f := range r.Fields {
		vals[i] = f.Value
	}
	return vals
}

// Map returns the record as a plain map. Column order is lost.
func (r CodeRecord) Map() map[string]any {
	m := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Column] = f.Value
	}
	return m
}

// ValueString renders a cell value for comparison and audit purposes.
// nil renders as the empty string.
func ValueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// CodeFilter holds editor table search and pagination parameters.
type CodeFilter struct {
	Search string
	Page   int
}

// EditorPageSize is the fixed page size of the editor table.
const EditorPageSize = 50

// MaxEditorPage is the highest page whose offset still fits in an int.
const MaxEditorPage = math.MaxInt/EditorPageSize + 1

// Limit returns the page size.
func (f CodeFilter) Limit() int { return EditorPageSize }

// Offset returns the row offset for the requested page. Pages below 1 are
// treated as 1 and pages above MaxEditorPage as MaxEditorPage, which is past
// any real table and yields an empty page.
func (f CodeFilter) Offset() int {
	page := min(max(f.Page, 1), MaxEditorPage)
	return (page - 1) * EditorPageSize
}

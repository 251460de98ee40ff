package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Table and well-known column names of the code store.
const (
	CodesTable      = "icd_codes"
	ColumnCode      = "code"
	ColumnCondition = "condition"
	ColumnID        = "id"
)

// DefaultColumnType is used when AddColumn is called without a data type.
const DefaultColumnType = "TEXT"

// maxVarcharLength is the PostgreSQL limit for VARCHAR(n).
const maxVarcharLength = 10485760

var (
	identifierRe = regexp.MustCompile(`^[a-z0-9_]+$`)
	varcharRe    = regexp.MustCompile(`^(?:VARCHAR|CHARACTER VARYING)\s*\(\s*(\d+)\s*\)$`)
)

// allowedColumnTypes maps accepted spellings to their canonical form.
var allowedColumnTypes = map[string]string{
	"TEXT":                     "TEXT",
	"INTEGER":                  "INTEGER",
	"INT":                      "INTEGER",
	"BIGINT":                   "BIGINT",
	"NUMERIC":                  "NUMERIC",
	"BOOLEAN":                  "BOOLEAN",
	"BOOL":                     "BOOLEAN",
	"DATE":                     "DATE",
	"TIMESTAMP":                "TIMESTAMP",
	"TIMESTAMPTZ":              "TIMESTAMPTZ",
	"TIMESTAMP WITH TIME ZONE": "TIMESTAMPTZ",
}

// ColumnDescriptor describes one column of the live codes table.
type ColumnDescriptor struct {
	Name     string
	DataType string
	Nullable bool
	Position int
}

// ValidateIdentifier accepts only lowercase letters, digits and underscores.
// Every user-supplied column name must pass it before it reaches SQL.
func ValidateIdentifier(name string) error {
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

// NormalizeDataType returns the canonical spelling of an allowed column type.
// An empty input yields DefaultColumnType.
func NormalizeDataType(dataType string) (string, error) {
	t := strings.Join(strings.Fields(strings.ToUpper(dataType)), " ")
	if t == "" {
		return DefaultColumnType, nil
	}

	if canonical, ok := allowedColumnTypes[t]; ok {
		return canonical, nil
	}

	if m := varcharRe.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 && n <= maxVarcharLength {
			return fmt.Sprintf("VARCHAR(%d)", n), nil
		}
		return "", NewValidationError("dataType", "varchar length out of range")
	}

	return "", NewValidationError("dataType", fmt.Sprintf("unsupported type %q", dataType))
}

// HasColumn reports whether cols contains a column named name.
func HasColumn(cols []ColumnDescriptor, name string) bool {
	for _, c := range cols {
		if c.Name == name {
			return true
		}
	}
	return false
}

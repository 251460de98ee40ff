// Package importer loads ICD code rows from CSV files into the code store.
// Parsing is pure; only Importer.Run touches the database.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

// errSkipRow signals that a row carries no code and should be skipped.
var errSkipRow = errors.New("skip row")

// Stats holds parser statistics for logging.
type Stats struct {
	Rows    int
	Parsed  int
	Skipped int
}

// ParseResult holds the records read from one CSV stream.
type ParseResult struct {
	Columns []string
	Records []domain.CodeRecord
	Stats   Stats
}

// Parse reads a CSV stream whose first row is the header. Header names are
// trimmed, lowercased and must be valid column identifiers; a "code" column
// is required. Empty cells become NULL. Rows with an empty code are skipped.
// A code repeated within the file keeps its first occurrence.
func Parse(r io.Reader) (*ParseResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("importer.Parse: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("importer.Parse: read header: %w", err)
	}

	columns, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	cr.FieldsPerRecord = len(columns)

	res := &ParseResult{Columns: columns}
	seen := make(map[string]struct{})

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("importer.Parse: %w", err)
		}
		res.Stats.Rows++

		rec, err := parseRow(columns, row)
		if errors.Is(err, errSkipRow) {
			res.Stats.Skipped++
			continue
		}

		key := strings.ToLower(rec.Code())
		if _, dup := seen[key]; dup {
			res.Stats.Skipped++
			continue
		}
		seen[key] = struct{}{}

		res.Records = append(res.Records, rec)
		res.Stats.Parsed++
	}

	return res, nil
}

func parseHeader(header []string) ([]string, error) {
	columns := make([]string, len(header))
	index := make(map[string]struct{}, len(header))
	hasCode := false

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if err := domain.ValidateIdentifier(name); err != nil {
			return nil, fmt.Errorf("importer.Parse: header column %d: %w", i+1, err)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("importer.Parse: duplicate header column %q", name)
		}
		index[name] = struct{}{}
		if name == domain.ColumnCode {
			hasCode = true
		}
		columns[i] = name
	}

	if !hasCode {
		return nil, fmt.Errorf("importer.Parse: %w", domain.NewMissingFieldError(domain.ColumnCode))
	}
	return columns, nil
}

func parseRow(columns, row []string) (domain.CodeRecord, error) {
	rec := domain.CodeRecord{Fields: make([]domain.Field, 0, len(columns))}
	for i, col := range columns {
		v := strings.TrimSpace(row[i])
		if col == domain.ColumnCode && v == "" {
			return domain.CodeRecord{}, errSkipRow
		}
		if v == "" {
			rec.Fields = append(rec.Fields, domain.Field{Column: col, Value: nil})
			continue
		}
		rec.Fields = append(rec.Fields, domain.Field{Column: col, Value: v})
	}
	return rec, nil
}

package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

// recordJSON renders a code record as a JSON object whose keys follow the
// table's column order.
type recordJSON domain.CodeRecord

func (r recordJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Column)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", f.Column, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toRecordsJSON(records []domain.CodeRecord) []recordJSON {
	out := make([]recordJSON, len(records))
	for i, rec := range records {
		out[i] = recordJSON(rec)
	}
	return out
}

var (
	errNotObject   = errors.New("request body must be a JSON object")
	errNestedValue = errors.New("nested objects and arrays are not allowed")
)

// decodeFlatObject reads a flat JSON object into fields, keeping key order.
// Strings are kept as is, numbers and booleans are rendered as text and
// null stays nil. Nested objects or arrays yield errNestedValue.
func decodeFlatObject(body io.Reader) ([]domain.Field, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var fields []domain.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected key", errInvalidBody)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
		}

		var value any
		switch v := tok.(type) {
		case json.Delim:
			return nil, fmt.Errorf("%w: %s", errNestedValue, key)
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			value = strconv.FormatBool(v)
		case nil:
			value = nil
		}
		fields = append(fields, domain.Field{Column: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", errInvalidBody)
	}
	return fields, nil
}

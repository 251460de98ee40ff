// Package codes implements the ICD code table repository using PostgreSQL.
// The table's column set is open (columns are added at runtime), so queries
// are built with squirrel and rows are scanned in column order rather than
// into a fixed struct.
package codes

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/kruttikastudy/icd-website/internal/adapter/postgres"
	"github.com/kruttikastudy/icd-website/internal/domain"
)

// Repo provides ICD code persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	sb sq.StatementBuilderType
}

// New creates a new codes repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const listColumnsSQL = `
SELECT column_name::text      AS name,
       data_type::text        AS data_type,
       (is_nullable = 'YES')  AS nullable,
       ordinal_position::int  AS position
FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = $1
ORDER BY ordinal_position`

// Serializes id assignment between concurrent inserts. SHARE ROW EXCLUSIVE
// conflicts with itself but still admits plain readers.
const lockForIDSQL = `LOCK TABLE icd_codes IN SHARE ROW EXCLUSIVE MODE`

const nextIDSQL = `
SELECT COALESCE(MAX(NULLIF(regexp_replace(id::text, '\D', '', 'g'), '')::bigint), 0) + 1
FROM icd_codes`

// ---------------------------------------------------------------------------
// Schema introspection
// ---------------------------------------------------------------------------

// ListColumns returns the live column set of the codes table in ordinal order.
// The result is read fresh on every call.
func (r *Repo) ListColumns(ctx context.Context) ([]domain.ColumnDescriptor, error) {
	var cols []domain.ColumnDescriptor
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &cols, listColumnsSQL, domain.CodesTable); err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	if cols == nil {
		cols = []domain.ColumnDescriptor{}
	}
	return cols, nil
}

// AddColumn appends a nullable column. name must already have passed
// domain.ValidateIdentifier and dataType domain.NormalizeDataType.
func (r *Repo) AddColumn(ctx context.Context, name, dataType string) error {
	stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`,
		domain.CodesTable, quote(name), dataType)

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, stmt); err != nil {
		return postgres.MapError(err, "column", name)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Search returns rows whose code equals q case-insensitively or whose
// condition contains q, ordered by code.
func (r *Repo) Search(ctx context.Context, q string) ([]domain.CodeRecord, error) {
	query := r.sb.Select("*").
		From(domain.CodesTable).
		Where(sq.Or{
			sq.Expr("LOWER(code) = LOWER(?)", q),
			sq.ILike{domain.ColumnCondition: containsPattern(q)},
		}).
		OrderBy(domain.ColumnCode)

	return r.selectRecords(ctx, query)
}

// Page returns one page of the editor table ordered by code. A non-empty
// filter search matches code or condition as a substring.
func (r *Repo) Page(ctx context.Context, filter domain.CodeFilter) ([]domain.CodeRecord, error) {
	query := r.sb.Select("*").
		From(domain.CodesTable).
		OrderBy(domain.ColumnCode).
		Limit(uint64(filter.Limit())).
		Offset(uint64(filter.Offset()))

	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := containsPattern(s)
		query = query.Where(sq.Or{
			sq.ILike{domain.ColumnCode: pattern},
			sq.ILike{domain.ColumnCondition: pattern},
		})
	}

	return r.selectRecords(ctx, query)
}

// Get returns the row with the given code.
func (r *Repo) Get(ctx context.Context, code string) (domain.CodeRecord, error) {
	query := r.sb.Select("*").
		From(domain.CodesTable).
		Where(sq.Eq{domain.ColumnCode: code})

	recs, err := r.selectRecords(ctx, query)
	if err != nil {
		return domain.CodeRecord{}, postgres.MapError(err, "code", code)
	}
	if len(recs) == 0 {
		return domain.CodeRecord{}, postgres.MapError(pgx.ErrNoRows, "code", code)
	}
	return recs[0], nil
}

// CellValue returns the text rendering of one cell and locks the row until
// the surrounding transaction ends. A NULL cell is returned as nil.
func (r *Repo) CellValue(ctx context.Context, code, column string) (*string, error) {
	stmt := fmt.Sprintf(`SELECT %s::text FROM %s WHERE code = $1 FOR UPDATE`,
		quote(column), domain.CodesTable)

	var value *string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, stmt, code).Scan(&value); err != nil {
		return nil, postgres.MapError(err, "code", code)
	}
	return value, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateCell writes value into column for the row with the given code.
func (r *Repo) UpdateCell(ctx context.Context, code, column, value string) error {
	stmt, args, err := r.sb.Update(domain.CodesTable).
		Set(quote(column), value).
		Where(sq.Eq{domain.ColumnCode: code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, stmt, args...)
	if err != nil {
		return postgres.MapError(err, "code", code)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "code", code)
	}
	return nil
}

// NextID locks the table against concurrent id assignment and returns one
// more than the largest numeric id in use (1 for an empty table). It must run
// inside a transaction; the lock is held until commit.
func (r *Repo) NextID(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, lockForIDSQL); err != nil {
		return 0, fmt.Errorf("lock %s: %w", domain.CodesTable, err)
	}

	var next int64
	if err := q.QueryRow(ctx, nextIDSQL).Scan(&next); err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return next, nil
}

// Insert adds a row with exactly the record's columns.
func (r *Repo) Insert(ctx context.Context, rec domain.CodeRecord) error {
	stmt, args, err := r.insertBuilder(rec).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, stmt, args...); err != nil {
		return postgres.MapError(err, "code", rec.Code())
	}
	return nil
}

// InsertBatch inserts records in a single round trip, skipping rows whose
// code already exists. It returns the number of rows actually inserted.
func (r *Repo) InsertBatch(ctx context.Context, recs []domain.CodeRecord) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range recs {
		stmt, args, err := r.insertBuilder(rec).Suffix("ON CONFLICT DO NOTHING").ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert %s: %w", rec.Code(), err)
		}
		batch.Queue(stmt, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for _, rec := range recs {
		tag, err := br.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "code", rec.Code())
		}
		inserted += int(tag.RowsAffected())
	}

	if err := br.Close(); err != nil {
		return inserted, fmt.Errorf("close batch: %w", err)
	}
	return inserted, nil
}

// Delete removes the row with the given code.
func (r *Repo) Delete(ctx context.Context, code string) error {
	stmt, args, err := r.sb.Delete(domain.CodesTable).
		Where(sq.Eq{domain.ColumnCode: code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, stmt, args...)
	if err != nil {
		return postgres.MapError(err, "code", code)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "code", code)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) insertBuilder(rec domain.CodeRecord) sq.InsertBuilder {
	cols := rec.Columns()
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}

	return r.sb.Insert(domain.CodesTable).
		Columns(quoted...).
		Values(rec.Values()...)
}

func (r *Repo) selectRecords(ctx context.Context, query sq.SelectBuilder) ([]domain.CodeRecord, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query codes: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// collectRecords scans rows of unknown shape, keeping the result column order.
func collectRecords(rows pgx.Rows) ([]domain.CodeRecord, error) {
	fields := rows.FieldDescriptions()

	recs := make([]domain.CodeRecord, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan code row: %w", err)
		}

		rec := domain.CodeRecord{Fields: make([]domain.Field, len(fields))}
		for i, fd := range fields {
			rec.Fields[i] = domain.Field{Column: fd.Name, Value: values[i]}
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate code rows: %w", err)
	}

	return recs, nil
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching q as a literal substring.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

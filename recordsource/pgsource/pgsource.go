package pgsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bdtaunu/graphtruth/recordsource"
)

const defaultCursorName = "graphtruth_cursor"

// Source reads records from a PostgreSQL table via a DECLARE CURSOR /
// FETCH loop, scoped to a single transaction held open for the Source's
// lifetime. fetchSize batches rows fetched per round trip; it is a
// latency optimization only — Next/Get semantics remain one record at a
// time.
type Source struct {
	tx         pgx.Tx
	cursorName string
	fetchSize  int
	fieldIdx   map[string]int

	buffer  [][]string
	bufPos  int
	current []string

	exhausted bool
	closed    bool
}

// New opens a cursor over table, selecting exactly the columns named in
// fields (in that order), and returns a Source ready for Next/Get.
// fetchSize must be positive. Fails with recordsource.ErrSourceError on
// any failure to begin the transaction or declare the cursor.
func New(ctx context.Context, pool *pgxpool.Pool, table string, fields []string, fetchSize int) (recordsource.Source, error) {
	if fetchSize <= 0 {
		return nil, fmt.Errorf("%w: fetchSize must be positive, got %d", recordsource.ErrSourceError, fetchSize)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: fields must be non-empty", recordsource.ErrSourceError)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", recordsource.ErrSourceError, err)
	}

	// Cast every column to text so Get returns PostgreSQL's own textual
	// form (e.g. "{1,2,3}" for an array) rather than a decoded Go value.
	cols := make([]string, len(fields))
	for i, name := range fields {
		cols[i] = name + "::text"
	}
	colList := strings.Join(cols, ", ")
	declareSQL := fmt.Sprintf("DECLARE %s CURSOR FOR SELECT %s FROM %s", defaultCursorName, colList, table)
	if _, err := tx.Exec(ctx, declareSQL); err != nil {
		tx.Rollback(ctx)

		return nil, fmt.Errorf("%w: declare cursor: %v", recordsource.ErrSourceError, err)
	}

	fieldIdx := make(map[string]int, len(fields))
	for i, name := range fields {
		fieldIdx[name] = i
	}

	return &Source{
		tx:         tx,
		cursorName: defaultCursorName,
		fetchSize:  fetchSize,
		fieldIdx:   fieldIdx,
	}, nil
}

// Next implements recordsource.Source.
func (s *Source) Next(ctx context.Context) (bool, error) {
	if s.closed {
		return false, recordsource.ErrClosed
	}

	if s.bufPos >= len(s.buffer) {
		if s.exhausted {
			return false, nil
		}
		if err := s.fetchBatch(ctx); err != nil {
			return false, err
		}
		if len(s.buffer) == 0 {
			s.exhausted = true

			return false, nil
		}
	}

	s.current = s.buffer[s.bufPos]
	s.bufPos++

	return true, nil
}

// fetchBatch pulls the next fetchSize rows from the cursor, replacing the
// internal buffer. A short (or empty) batch marks the cursor exhausted.
func (s *Source) fetchBatch(ctx context.Context) error {
	fetchSQL := fmt.Sprintf("FETCH %d FROM %s", s.fetchSize, s.cursorName)
	rows, err := s.tx.Query(ctx, fetchSQL)
	if err != nil {
		return fmt.Errorf("%w: fetch: %v", recordsource.ErrSourceError, err)
	}
	defer rows.Close()

	s.buffer = s.buffer[:0]
	s.bufPos = 0

	n := 0
	for rows.Next() {
		n++
		vals, err := rows.Values()
		if err != nil {
			return fmt.Errorf("%w: row values: %v", recordsource.ErrSourceError, err)
		}

		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = fmt.Sprintf("%v", v)
		}
		s.buffer = append(s.buffer, row)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: row iteration: %v", recordsource.ErrSourceError, err)
	}

	if n < s.fetchSize {
		s.exhausted = true
	}

	return nil
}

// Get implements recordsource.Source.
func (s *Source) Get(fieldName string) (string, error) {
	idx, ok := s.fieldIdx[fieldName]
	if !ok {
		return "", fmt.Errorf("%w: %q", recordsource.ErrUnknownField, fieldName)
	}
	if s.current == nil {
		return "", fmt.Errorf("%w: no current record", recordsource.ErrSourceError)
	}

	return s.current[idx], nil
}

// Close implements recordsource.Source. Idempotent.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	return s.tx.Rollback(context.Background())
}

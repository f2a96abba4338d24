package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/bdtaunu/graphtruth/recordsource"
)

// Source reads records from a CSV file whose header row names the
// columns fields selects from. Only the columns named in fields need be
// present in the header; their order within the file is immaterial.
type Source struct {
	f        *os.File
	r        *csv.Reader
	colIdx   map[string]int
	fields   map[string]struct{}
	current  []string
	closed   bool
}

// New opens path, reads its header row, and validates that every name in
// fields is present among the header's columns. Fails with
// recordsource.ErrSourceError on an I/O failure, or recordsource.ErrUnknownField
// if a requested field is absent from the header.
func New(path string, fields []string) (recordsource.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", recordsource.ErrSourceError, path, err)
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: read header: %v", recordsource.ErrSourceError, err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	want := make(map[string]struct{}, len(fields))
	for _, name := range fields {
		if _, ok := colIdx[name]; !ok {
			f.Close()

			return nil, fmt.Errorf("%w: %q not present in header", recordsource.ErrUnknownField, name)
		}
		want[name] = struct{}{}
	}

	return &Source{f: f, r: r, colIdx: colIdx, fields: want}, nil
}

// Next implements recordsource.Source.
func (s *Source) Next(ctx context.Context) (bool, error) {
	if s.closed {
		return false, recordsource.ErrClosed
	}
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	row, err := s.r.Read()
	if err == io.EOF {
		s.current = nil

		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: read row: %v", recordsource.ErrSourceError, err)
	}

	s.current = row

	return true, nil
}

// Get implements recordsource.Source.
func (s *Source) Get(fieldName string) (string, error) {
	if _, ok := s.fields[fieldName]; !ok {
		return "", fmt.Errorf("%w: %q", recordsource.ErrUnknownField, fieldName)
	}
	if s.current == nil {
		return "", fmt.Errorf("%w: no current record", recordsource.ErrSourceError)
	}

	idx := s.colIdx[fieldName]
	if idx >= len(s.current) {
		return "", fmt.Errorf("%w: row too short for column %q", recordsource.ErrSourceError, fieldName)
	}

	return s.current[idx], nil
}

// Close implements recordsource.Source. Idempotent.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	return s.f.Close()
}

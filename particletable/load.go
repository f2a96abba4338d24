package particletable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a two-column "name id" text table from path, one entry per
// line, whitespace-separated. Blank lines are skipped. Fails with
// ErrMalformedLine if a non-blank line does not split into exactly two
// fields or its id is not a valid integer.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("particletable: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadFrom(f)
}

// LoadFrom reads the same two-column format from an already-open reader,
// for callers that already hold a stream (e.g. an embedded asset or a
// test fixture).
func LoadFrom(r io.Reader) (*Table, error) {
	t := &Table{
		name2id: make(map[string]int64),
		id2name: make(map[int64]string),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedLine, lineNo, len(fields))
		}

		name := fields[0]
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
		}

		t.name2id[name] = id
		t.id2name[id] = name
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("particletable: scan: %w", err)
	}

	return t, nil
}

// ID resolves a particle name to its lund id.
func (t *Table) ID(name string) (int64, error) {
	id, ok := t.name2id[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	return id, nil
}

// Name resolves a lund id to its particle name.
func (t *Table) Name(id int64) (string, error) {
	name, ok := t.id2name[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	return name, nil
}

// Label implements graphemitter.LabelSource: the particle name if known,
// else the raw lund id formatted as a decimal integer.
func (t *Table) Label(lund int64) string {
	if name, ok := t.id2name[lund]; ok {
		return name
	}

	return strconv.FormatInt(lund, 10)
}

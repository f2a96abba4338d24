// Package pgsource implements recordsource.Source over a PostgreSQL
// cursor, grounded on PsqlReader.h's DECLARE CURSOR / FETCH batching
// discipline (batching is a latency optimization only; semantics are
// one-record-at-a-time, per §4.1).
package pgsource

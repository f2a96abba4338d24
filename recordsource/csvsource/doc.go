// Package csvsource implements recordsource.Source over a flat CSV file,
// grounded on CsvReaderImpl.h's header-indexed, single-line-buffer reader:
// the header row assigns column-name-to-index positions once at open time,
// and each Next call refills a single cached row.
package csvsource

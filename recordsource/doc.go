// Package recordsource defines the cursor-style record iterator shared by
// every input backend (§4.1 RecordSource): open once, then repeatedly
// Next/Get until exhausted, then Close.
//
// csvsource and pgsource are the two concrete backends: a flat CSV file
// reader and a cursor-based PostgreSQL reader. Both guarantee stable
// column ordering across calls and idempotent Close.
package recordsource

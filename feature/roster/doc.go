// Package roster reconstructs daily employee roster snapshots from the
// warehouse staging table and computes the day-over-day change set.
//
// Staging rows carry the source file name and a JSON value with positional
// columns c1..c12. A row belongs to the date stamped in its file name
// (MM-DD-YYYY). Rows with a non-numeric employee id are dropped; an
// unparsable dob becomes empty.
package roster

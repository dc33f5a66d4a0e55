// Package utils provides loose value conversion for semi-structured rows,
// such as JSON documents read from a staging table, where a field may be
// missing, null, numeric or textual.
package utils

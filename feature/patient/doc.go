// Package patient maps roster records to patient API payloads.
package patient

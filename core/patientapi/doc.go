// Package patientapi is the transport for the remote patient-record API.
//
// A Client authenticates once per run with OAuth2 client credentials and then
// exposes the four calls the sync needs: search, mint, create and update.
// Each call is a single request. Search and mint are bounded by the lookup
// timeout; create and update run until the server answers or the context
// ends.
//
// Non-success search and mint responses surface as *StatusError, which
// callers inspect with errors.As. Create and update return the raw Response
// so the caller can apply its own acknowledgement rules.
package patientapi

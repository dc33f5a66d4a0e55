// Package secrets retrieves the warehouse credential bundle.
//
// The bundle is a small JSON object ({"user", "password", "account"}, with the
// legacy SNOMIUSER/SNOMIPASS/SNOMIACCOUNT keys also accepted) kept in the
// job's storage bucket. Fixed database, schema and table settings stay in
// configuration; only credentials travel through the secret store.
package secrets

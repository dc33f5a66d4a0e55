// Package sync reconciles the roster change set against the patient API.
//
// A run walks the change set in order. Each employee is looked up once:
// unknown employees get a freshly minted identity and are created on the
// spot, known ones are queued and updated after every lookup has finished,
// and employees whose lookup fails are skipped. Minting and creation are
// retried up to MaxAttempts times; updates are attempted once. Every changed
// employee ends the run with exactly one Outcome.
package sync

package sync

import (
	"context"
	"fmt"
)

// Lookup finds the patient registered for an employee.
type Lookup interface {
	SearchPatient(ctx context.Context, employeeID int64) (string, bool, error)
}

// Resolution is the remote identity of an employee.
type Resolution struct {
	PatientID string
	Found     bool
}

// Resolver maps employees to existing remote identities.
type Resolver struct {
	lookup Lookup
}

// NewResolver creates a Resolver.
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve performs a single lookup. An error means the identity is unknown
// and the employee must not be written this run.
func (r *Resolver) Resolve(ctx context.Context, employeeID int64) (Resolution, error) {
	id, found, err := r.lookup.SearchPatient(ctx, employeeID)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve employee %d: %w", employeeID, err)
	}
	return Resolution{PatientID: id, Found: found}, nil
}

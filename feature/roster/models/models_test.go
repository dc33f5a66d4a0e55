package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterRecord_Fingerprint(t *testing.T) {
	a := RosterRecord{EmployeeID: 1, FirstName: "Ana", RosterDate: "2024-01-14"}
	b := a
	b.RosterDate = "2024-01-15"
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.WorkExt = "12"
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestRosterRecord_FingerprintFieldBoundaries(t *testing.T) {
	a := RosterRecord{EmployeeID: 1, FirstName: "ab", LastName: "c"}
	b := RosterRecord{EmployeeID: 1, FirstName: "a", LastName: "bc"}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestRosterRecord_Key(t *testing.T) {
	assert.Equal(t, "100", RosterRecord{EmployeeID: 100}.Key())
}

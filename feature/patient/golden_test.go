package patient

import (
	"encoding/json"
	"testing"

	"roster-sync/feature/roster/models"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestToPayload_Golden(t *testing.T) {
	rec := models.RosterRecord{
		EmployeeID: 100,
		FirstName:  "Ana",
		LastName:   "Diaz",
		DOB:        "1990-01-02",
		HomePhone:  "3055551234",
		WorkEmail:  "w@x.com",
		RosterDate: "2024-01-15",
	}

	data, err := json.MarshalIndent(ToPayload(rec, "p-100"), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "create_payload", append(data, '\n'))
}

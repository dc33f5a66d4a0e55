package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"roster-sync/feature/roster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id int64, first, date string) models.RosterRecord {
	return models.RosterRecord{EmployeeID: id, FirstName: first, RosterDate: date}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name      string
		today     []models.RosterRecord
		yesterday []models.RosterRecord
		wantIDs   []int64
	}{
		{
			name:      "Identical rows on both days",
			today:     []models.RosterRecord{rec(1, "A", "2024-01-15")},
			yesterday: []models.RosterRecord{rec(1, "A", "2024-01-14")},
			wantIDs:   []int64{},
		},
		{
			name:    "New employees only",
			today:   []models.RosterRecord{rec(1, "A", "d"), rec(3, "C", "d"), rec(2, "B", "d")},
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:      "Changed field",
			today:     []models.RosterRecord{rec(1, "A", "d"), rec(2, "B2", "d")},
			yesterday: []models.RosterRecord{rec(1, "A", "p"), rec(2, "B", "p")},
			wantIDs:   []int64{2},
		},
		{
			name:      "Departed employees are not reported",
			today:     []models.RosterRecord{},
			yesterday: []models.RosterRecord{rec(9, "Z", "p")},
			wantIDs:   []int64{},
		},
		{
			name:    "Duplicate rows collapse",
			today:   []models.RosterRecord{rec(5, "E", "d"), rec(5, "E", "d")},
			wantIDs: []int64{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.today, tt.yesterday)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.EmployeeID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDiff_RecordsBelongToToday(t *testing.T) {
	today := []models.RosterRecord{rec(1, "A", "2024-01-15"), rec(2, "B", "2024-01-15")}
	yesterday := []models.RosterRecord{rec(2, "Old", "2024-01-14")}

	for _, r := range Diff(today, yesterday) {
		assert.Equal(t, "2024-01-15", r.RosterDate)
		assert.Contains(t, today, r)
	}
}

type fakeSnapshots struct {
	byDate map[string][]models.RosterRecord
	err    error
	dates  []string
}

func (f *fakeSnapshots) Load(_ context.Context, date time.Time) ([]models.RosterRecord, error) {
	d := date.Format(models.DateLayout)
	f.dates = append(f.dates, d)
	if f.err != nil {
		return nil, f.err
	}
	return f.byDate[d], nil
}

func TestDiffer_ChangeSet(t *testing.T) {
	snaps := &fakeSnapshots{byDate: map[string][]models.RosterRecord{
		"2024-03-01": {rec(1, "A", "2024-03-01"), rec(2, "B", "2024-03-01")},
		"2024-02-29": {rec(1, "A", "2024-02-29")},
	}}

	cs, err := NewDiffer(snaps).ChangeSet(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-01", "2024-02-29"}, snaps.dates)
	assert.Equal(t, "2024-03-01", cs.Date)
	require.Len(t, cs.Records, 1)
	assert.Equal(t, int64(2), cs.Records[0].EmployeeID)
	assert.Equal(t, 1, cs.Summary.Added)
	assert.Equal(t, 1, cs.Summary.Unchanged)
}

func TestDiffer_ChangeSetError(t *testing.T) {
	snaps := &fakeSnapshots{err: errors.New("boom")}
	_, err := NewDiffer(snaps).ChangeSet(context.Background(), time.Now())
	assert.Error(t, err)
}

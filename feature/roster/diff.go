package roster

import (
	"context"
	"sort"
	"time"

	"roster-sync/core/reconcile"
	"roster-sync/feature/roster/models"
)

// ChangeSet is the set of employees that are new or changed on a roster date.
type ChangeSet struct {
	Date    string                `json:"date"`
	Records []models.RosterRecord `json:"records"`
	Summary reconcile.PlanSummary `json:"summary"`
}

// Diff returns the rows of today that do not appear in yesterday, comparing
// every field but the roster date, ordered by employee id descending.
func Diff(today, yesterday []models.RosterRecord) []models.RosterRecord {
	return sortChanges(reconcile.Except(today, yesterday))
}

func sortChanges(records []models.RosterRecord) []models.RosterRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EmployeeID > records[j].EmployeeID
	})
	return records
}

// Snapshots loads roster snapshots for a date.
type Snapshots interface {
	Load(ctx context.Context, date time.Time) ([]models.RosterRecord, error)
}

// Differ computes change sets from stored snapshots.
type Differ struct {
	snapshots Snapshots
}

// NewDiffer creates a Differ.
func NewDiffer(snapshots Snapshots) *Differ {
	return &Differ{snapshots: snapshots}
}

// ChangeSet loads date and the day before and returns their difference.
func (d *Differ) ChangeSet(ctx context.Context, date time.Time) (*ChangeSet, error) {
	today, err := d.snapshots.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	yesterday, err := d.snapshots.Load(ctx, date.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	plan := reconcile.Compare(today, yesterday)
	return &ChangeSet{
		Date:    date.Format(models.DateLayout),
		Records: sortChanges(plan.Items),
		Summary: plan.Summary,
	}, nil
}

package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"roster-sync/core/utils"
	"roster-sync/feature/roster/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// fileDateLayout is the date stamp embedded in staging file names.
	fileDateLayout = "01-02-2006"
	// dobLayout is the source format of the dob column.
	dobLayout = "01/02/2006"
)

var fileDatePattern = regexp.MustCompile(`[0-9]{2}-[0-9]{2}-[0-9]{4}`)

// Loader reconstructs roster snapshots from the staging table.
type Loader struct {
	db     *gorm.DB
	table  string
	logger *zap.Logger
}

// NewLoader creates a Loader reading from table.
func NewLoader(db *gorm.DB, table string, logger *zap.Logger) *Loader {
	return &Loader{db: db, table: table, logger: logger}
}

// Load returns the roster snapshot for date. Rows whose employee id cannot
// be cast are dropped. An employee id appears at most once: when several
// files carry the same id, the row from the last file name wins.
// Any warehouse error is returned to the caller.
func (l *Loader) Load(ctx context.Context, date time.Time) ([]models.RosterRecord, error) {
	stamp := date.Format(fileDateLayout)

	var rows []models.StagingRow
	err := l.db.WithContext(ctx).
		Table(l.table).
		Select("file_name", "value").
		Where("file_name LIKE ?", "%"+stamp+"%").
		Order("file_name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for %s: %w", date.Format(models.DateLayout), err)
	}

	records := make([]models.RosterRecord, 0, len(rows))
	seen := make(map[int64]int, len(rows))
	for _, row := range rows {
		if fileDatePattern.FindString(row.FileName) != stamp {
			continue
		}

		rec, err := parseRow(row.Value)
		if err != nil {
			l.logger.Warn("Dropping staging row",
				zap.String("file_name", row.FileName),
				zap.Error(err),
			)
			continue
		}
		rec.RosterDate = date.Format(models.DateLayout)

		if idx, dup := seen[rec.EmployeeID]; dup {
			l.logger.Warn("Duplicate employee in snapshot, keeping later row",
				zap.Int64("employee_id", rec.EmployeeID),
				zap.String("file_name", row.FileName),
			)
			records[idx] = rec
			continue
		}
		seen[rec.EmployeeID] = len(records)
		records = append(records, rec)
	}

	l.logger.Debug("Loaded roster snapshot",
		zap.String("date", date.Format(models.DateLayout)),
		zap.Int("staging_rows", len(rows)),
		zap.Int("records", len(records)),
	)

	return records, nil
}

func parseRow(value string) (models.RosterRecord, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		return models.RosterRecord{}, fmt.Errorf("invalid staging value: %w", err)
	}

	id, ok := utils.ToInt64(doc["c1"])
	if !ok {
		return models.RosterRecord{}, fmt.Errorf("invalid employee id %q", utils.ToString(doc["c1"]))
	}

	rec := models.RosterRecord{
		EmployeeID:     id,
		FirstName:      utils.ToString(doc["c2"]),
		LastName:       utils.ToString(doc["c3"]),
		HomeEmail:      utils.ToString(doc["c5"]),
		HomePhone:      utils.ToString(doc["c6"]),
		WorkEmail:      utils.ToString(doc["c7"]),
		WorkPhone:      utils.ToString(doc["c8"]),
		WorkExt:        utils.ToString(doc["c9"]),
		CellPhone:      utils.ToString(doc["c10"]),
		WorkCell:       utils.ToString(doc["c11"]),
		WeeklyTestFlag: utils.ToString(doc["c12"]),
	}
	if dob, ok := utils.ToDate(doc["c4"], dobLayout); ok {
		rec.DOB = dob.Format(models.DateLayout)
	}

	return rec, nil
}

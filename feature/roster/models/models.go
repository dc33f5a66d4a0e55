package models

import (
	"strconv"
	"strings"
)

// DateLayout is the rendering used for dob and roster_date.
const DateLayout = "2006-01-02"

// RosterRecord is one employee row of a daily roster snapshot.
// String fields never hold null; missing values are empty strings.
type RosterRecord struct {
	EmployeeID     int64  `json:"employee_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DOB            string `json:"dob"` // YYYY-MM-DD, empty when unknown
	HomeEmail      string `json:"home_email"`
	HomePhone      string `json:"home_phone"`
	WorkEmail      string `json:"work_email"`
	WorkPhone      string `json:"work_phone"`
	WorkExt        string `json:"work_ext"`
	CellPhone      string `json:"cell_phone"`
	WorkCell       string `json:"work_cell"`
	WeeklyTestFlag string `json:"weekly_test_flag"`
	RosterDate     string `json:"roster_date"` // YYYY-MM-DD
}

// Key returns the employee id as a string.
func (r RosterRecord) Key() string {
	return strconv.FormatInt(r.EmployeeID, 10)
}

// Fingerprint joins every compared field. RosterDate is excluded so that
// the same employee row on two days compares equal.
func (r RosterRecord) Fingerprint() string {
	return strings.Join([]string{
		r.Key(),
		r.FirstName,
		r.LastName,
		r.DOB,
		r.HomeEmail,
		r.HomePhone,
		r.WorkEmail,
		r.WorkPhone,
		r.WorkExt,
		r.CellPhone,
		r.WorkCell,
		r.WeeklyTestFlag,
	}, "\x1f")
}

// StagingRow is a raw row of the roster staging table.
// Value holds a JSON object with positional keys c1..c12.
type StagingRow struct {
	FileName string `gorm:"column:file_name"`
	Value    string `gorm:"column:value"`
}

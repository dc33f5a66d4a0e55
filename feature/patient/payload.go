package patient

import (
	"strconv"

	"roster-sync/feature/roster/models"
)

// Fixed demographic and address values for roster-sourced patients.
const (
	Source         = "mdc_employee_roster"
	undisclosed    = "Prefer not to say"
	unknownGender  = "U"
	notApplicable  = "N/A"
	defaultState   = "FL"
	defaultCountry = "US"
)

// Payload is the patient document sent on create and update.
type Payload struct {
	ID         string   `json:"id"`
	Personal   Personal `json:"personal"`
	Contact    Contact  `json:"contact"`
	Address    Address  `json:"address"`
	EmployeeID string   `json:"employee_id"`
	Source     string   `json:"source"`
}

// Personal holds the patient's demographic block.
type Personal struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	DOB       *string `json:"dob"`
	Ethnicity string  `json:"ethnicity"`
	Race      string  `json:"race"`
	Gender    string  `json:"gender"`
}

// Contact holds the patient's email and phone.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Address holds the patient's postal address.
type Address struct {
	Street1    string `json:"street_1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// NewPayload returns a payload filled with the fixed defaults.
// Every call returns an independent value.
func NewPayload() Payload {
	return Payload{
		Personal: Personal{
			Ethnicity: undisclosed,
			Race:      undisclosed,
			Gender:    unknownGender,
		},
		Address: Address{
			Street1:    notApplicable,
			City:       notApplicable,
			State:      defaultState,
			PostalCode: notApplicable,
			Country:    defaultCountry,
		},
		Source: Source,
	}
}

// ToPayload maps a roster record to the payload stored under patientID.
// Home contact details win over work ones when present.
func ToPayload(rec models.RosterRecord, patientID string) Payload {
	p := NewPayload()
	p.ID = patientID
	p.EmployeeID = strconv.FormatInt(rec.EmployeeID, 10)

	p.Personal.FirstName = rec.FirstName
	p.Personal.LastName = rec.LastName
	if rec.DOB != "" {
		dob := rec.DOB
		p.Personal.DOB = &dob
	}

	p.Contact.Email = firstNonEmpty(rec.HomeEmail, rec.WorkEmail)
	p.Contact.Phone = FormatPhone(firstNonEmpty(rec.HomePhone, rec.WorkPhone))

	return p
}

func firstNonEmpty(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

package sync

// Path is the remote write chosen for an employee.
type Path string

const (
	// PathCreate mints an identity and creates the patient.
	PathCreate Path = "create"
	// PathUpdate replaces an existing patient.
	PathUpdate Path = "update"
	// PathSkip means no remote write was attempted.
	PathSkip Path = "skip"
)

// Status is the terminal state of an employee in a run.
type Status string

const (
	// StatusAck means the API accepted the write.
	StatusAck Status = "ack"
	// StatusRejected means the API refused the write, or an update failed.
	StatusRejected Status = "rejected"
	// StatusRetryExhausted means every mint or create attempt failed.
	StatusRetryExhausted Status = "retry_exhausted"
	// StatusSkipped means identity resolution failed.
	StatusSkipped Status = "skipped"
	// StatusPlanned marks the write a dry run would have sent.
	StatusPlanned Status = "planned"
)

// Outcome records what happened to one changed employee.
type Outcome struct {
	EmployeeID   int64  `json:"employee_id"`
	PatientID    string `json:"patient_id,omitempty"`
	Path         Path   `json:"path"`
	Status       Status `json:"status"`
	StatusCode   int    `json:"status_code,omitempty"`
	Body         string `json:"body,omitempty"`
	Attempts     int    `json:"attempts"`
	MintAttempts int    `json:"mint_attempts,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Report is the result of one run.
type Report struct {
	RunID      string    `json:"run_id"`
	RosterDate string    `json:"roster_date"`
	DryRun     bool      `json:"dry_run"`
	Summary    Summary   `json:"summary"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	Changed        int `json:"changed"`
	Created        int `json:"created"`
	Updated        int `json:"updated"`
	Skipped        int `json:"skipped"`
	Rejected       int `json:"rejected"`
	RetryExhausted int `json:"retry_exhausted"`
	Planned        int `json:"planned"`
}

// Updates returns the outcomes of the update cohort in submission order.
func (r *Report) Updates() []Outcome {
	updates := make([]Outcome, 0)
	for _, o := range r.Outcomes {
		if o.Path == PathUpdate {
			updates = append(updates, o)
		}
	}
	return updates
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)

	switch o.Status {
	case StatusAck:
		if o.Path == PathCreate {
			r.Summary.Created++
		} else {
			r.Summary.Updated++
		}
	case StatusSkipped:
		r.Summary.Skipped++
	case StatusRejected:
		r.Summary.Rejected++
	case StatusRetryExhausted:
		r.Summary.RetryExhausted++
	case StatusPlanned:
		r.Summary.Planned++
	}
}

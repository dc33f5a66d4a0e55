package sync

import (
	"context"
	"net/http"
	"strings"
	"time"

	"roster-sync/core/logger"
	"roster-sync/core/metrics"
	"roster-sync/core/patientapi"
	"roster-sync/feature/patient"
	"roster-sync/feature/roster"
	"roster-sync/feature/roster/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxAttempts bounds identity minting and create submission.
const MaxAttempts = 5

const (
	alreadyExistsMarker = "patient already exists"
	invalidBodyMarker   = "Invalid request body"
)

// API is the subset of the patient API used by a run.
type API interface {
	Lookup
	MintPatientID(ctx context.Context) (string, error)
	CreatePatient(ctx context.Context, payload any) (*patientapi.Response, error)
	UpdatePatient(ctx context.Context, patientID string, payload any) (*patientapi.Response, error)
}

// ChangeSource produces the change set for a roster date.
type ChangeSource interface {
	ChangeSet(ctx context.Context, date time.Time) (*roster.ChangeSet, error)
}

// Options controls a run.
type Options struct {
	// DryRun resolves identities but sends no mint, create or update request.
	DryRun bool
}

// Service runs the roster to patient synchronization.
type Service struct {
	changes  ChangeSource
	api      API
	resolver *Resolver
	recorder metrics.Recorder
	logger   *zap.Logger
}

// NewService creates a new sync service. recorder may be nil.
func NewService(changes ChangeSource, api API, recorder metrics.Recorder, logger *zap.Logger) *Service {
	return &Service{
		changes:  changes,
		api:      api,
		resolver: NewResolver(api),
		recorder: recorder,
		logger:   logger,
	}
}

// pending is an employee queued for the update pass.
type pending struct {
	record    models.RosterRecord
	patientID string
}

// Run synchronizes the change set of date. Only a failure to load the
// change set is returned as an error; per-employee failures are recorded in
// the report.
func (s *Service) Run(ctx context.Context, date time.Time, opts Options) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:      uuid.NewString(),
		RosterDate: date.Format(models.DateLayout),
		DryRun:     opts.DryRun,
		Outcomes:   make([]Outcome, 0),
	}
	log := logger.WithRun(s.logger, report.RunID)

	cs, err := s.changes.ChangeSet(ctx, date)
	if err != nil {
		s.recordRun(time.Since(start), false)
		return nil, err
	}
	report.Summary.Changed = len(cs.Records)
	if s.recorder != nil {
		s.recorder.RecordChangeSet(len(cs.Records))
	}

	log.Info("Computed change set",
		zap.String("roster_date", report.RosterDate),
		zap.Int("changed", cs.Summary.Changed()),
		zap.Int("added", cs.Summary.Added),
		zap.Int("modified", cs.Summary.Modified),
		zap.Bool("dry_run", opts.DryRun),
	)

	var updates []pending
	for _, rec := range cs.Records {
		elog := logger.WithEmployee(log, rec.EmployeeID, "")

		res, err := s.resolver.Resolve(ctx, rec.EmployeeID)
		if err != nil {
			elog.Warn("Identity resolution failed, skipping", zap.Error(err))
			s.record(report, Outcome{
				EmployeeID: rec.EmployeeID,
				Path:       PathSkip,
				Status:     StatusSkipped,
				Attempts:   1,
				Error:      err.Error(),
			})
			continue
		}

		if res.Found {
			updates = append(updates, pending{record: rec, patientID: res.PatientID})
			continue
		}

		s.record(report, s.create(ctx, elog, rec, opts))
	}

	for _, u := range updates {
		elog := logger.WithEmployee(log, u.record.EmployeeID, u.patientID)
		s.record(report, s.update(ctx, elog, u.record, u.patientID, opts))
	}

	s.recordRun(time.Since(start), true)
	log.Info("Run finished",
		zap.Int("created", report.Summary.Created),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("skipped", report.Summary.Skipped),
		zap.Int("rejected", report.Summary.Rejected),
		zap.Int("retry_exhausted", report.Summary.RetryExhausted),
		zap.Duration("duration", time.Since(start)),
	)

	return report, nil
}

// create mints an identity and submits the new patient.
func (s *Service) create(ctx context.Context, log *zap.Logger, rec models.RosterRecord, opts Options) Outcome {
	out := Outcome{EmployeeID: rec.EmployeeID, Path: PathCreate}
	if opts.DryRun {
		out.Status = StatusPlanned
		log.Info("Dry run: would create patient")
		return out
	}

	id, attempts, err := s.mint(ctx, log)
	out.MintAttempts = attempts
	if err != nil {
		out.Status = StatusRetryExhausted
		out.Error = "mint identity: " + err.Error()
		log.Error("Could not mint patient identity", zap.Int("attempts", attempts), zap.Error(err))
		return out
	}
	out.PatientID = id
	log = log.With(zap.String("id", id))

	payload := patient.ToPayload(rec, id)
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		out.Attempts = attempt

		resp, err := s.api.CreatePatient(ctx, payload)
		if err != nil {
			out.StatusCode, out.Body, out.Error = 0, "", err.Error()
			log.Warn("Create request failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		out.StatusCode, out.Body, out.Error = resp.StatusCode, string(resp.Body), ""

		if status, done := classifyCreate(resp); done {
			out.Status = status
			log.Info("Create finished",
				zap.Int("attempt", attempt),
				zap.Int("status_code", resp.StatusCode),
				zap.String("status", string(status)),
			)
			return out
		}
		log.Warn("Create not acknowledged",
			zap.Int("attempt", attempt),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", out.Body),
		)
	}

	out.Status = StatusRetryExhausted
	log.Error("Create retries exhausted", zap.Int("attempts", out.Attempts))
	return out
}

// mint requests a new identity, retrying immediately on failure.
func (s *Service) mint(ctx context.Context, log *zap.Logger) (string, int, error) {
	var lastErr error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		id, err := s.api.MintPatientID(ctx)
		if err == nil {
			return id, attempt, nil
		}
		lastErr = err
		log.Warn("Mint request failed", zap.Int("attempt", attempt), zap.Error(err))
	}
	return "", MaxAttempts, lastErr
}

// classifyCreate reports whether a create response is terminal.
func classifyCreate(resp *patientapi.Response) (Status, bool) {
	body := string(resp.Body)
	switch {
	case resp.StatusCode == http.StatusAccepted:
		return StatusAck, true
	case resp.StatusCode == http.StatusOK && strings.Contains(body, alreadyExistsMarker):
		return StatusAck, true
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(body, invalidBodyMarker):
		return StatusRejected, true
	}
	return "", false
}

// update submits a single replace request.
func (s *Service) update(ctx context.Context, log *zap.Logger, rec models.RosterRecord, patientID string, opts Options) Outcome {
	out := Outcome{EmployeeID: rec.EmployeeID, PatientID: patientID, Path: PathUpdate}
	if opts.DryRun {
		out.Status = StatusPlanned
		log.Info("Dry run: would update patient")
		return out
	}

	out.Attempts = 1
	resp, err := s.api.UpdatePatient(ctx, patientID, patient.ToPayload(rec, patientID))
	if err != nil {
		out.Status = StatusRejected
		out.Error = err.Error()
		log.Error("Update request failed", zap.Error(err))
		return out
	}

	out.StatusCode, out.Body = resp.StatusCode, string(resp.Body)
	if resp.StatusCode == http.StatusAccepted {
		out.Status = StatusAck
		log.Info("Update acknowledged")
		return out
	}

	out.Status = StatusRejected
	log.Warn("Update rejected", zap.Int("status_code", resp.StatusCode), zap.String("body", out.Body))
	return out
}

func (s *Service) record(report *Report, o Outcome) {
	report.add(o)
	if s.recorder != nil {
		s.recorder.RecordOutcome(string(o.Path), string(o.Status))
	}
}

func (s *Service) recordRun(d time.Duration, success bool) {
	if s.recorder != nil {
		s.recorder.RecordRun(d, success)
	}
}

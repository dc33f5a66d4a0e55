package sync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"roster-sync/core/patientapi"
	"roster-sync/feature/roster"
	"roster-sync/feature/roster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// fakePatientAPI serves the patient endpoints from fixed lookup results.
func fakePatientAPI(t *testing.T, known map[string]string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		requests = append(requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/patients/search":
			id, ok := known[r.URL.Query().Get("employee_id")]
			if !ok {
				_, _ = io.WriteString(w, "null")
				return
			}
			_, _ = io.WriteString(w, `{"id":"`+id+`"}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/ids":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"p-100"}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/patients":
			w.WriteHeader(http.StatusAccepted)
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusAccepted)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func setupStaging(t *testing.T, rows []models.StagingRow) *roster.Loader {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("CREATE TABLE mdc_employee_master (file_name TEXT, value TEXT)").Error)
	for i := range rows {
		require.NoError(t, db.Table("mdc_employee_master").Create(&rows[i]).Error)
	}
	return roster.NewLoader(db, "mdc_employee_master", zap.NewNop())
}

func TestRun_EndToEnd(t *testing.T) {
	loader := setupStaging(t, []models.StagingRow{
		{FileName: "mdc_01-14-2024.csv", Value: `{"c1":"200","c2":"Bo","c3":"Lee","c5":"bo@home.com"}`},
		{FileName: "mdc_01-14-2024.csv", Value: `{"c1":"300","c2":"Cy","c3":"Same"}`},
		{FileName: "mdc_01-15-2024.csv", Value: `{"c1":"100","c2":"Ana","c3":"Diaz","c4":"01/02/1990","c5":"","c6":"3055551234","c7":"w@x.com"}`},
		{FileName: "mdc_01-15-2024.csv", Value: `{"c1":"200","c2":"Bo","c3":"Lee","c5":"bo@new.com"}`},
		{FileName: "mdc_01-15-2024.csv", Value: `{"c1":"300","c2":"Cy","c3":"Same"}`},
	})

	srv, requests := fakePatientAPI(t, map[string]string{"200": "abc123"})
	client := patientapi.NewWithHTTPClient(patientapi.Config{BaseURL: srv.URL}, srv.Client())
	client.SetToken("tok")

	svc := NewService(roster.NewDiffer(loader), client, nil, zap.NewNop())
	report, err := svc.Run(context.Background(), runDate, Options{})
	require.NoError(t, err)

	var creates, puts []recordedRequest
	for _, r := range *requests {
		switch {
		case r.Method == http.MethodPost && r.Path == "/api/v1/patients":
			creates = append(creates, r)
		case r.Method == http.MethodPut:
			puts = append(puts, r)
		}
	}

	// Employee 100 is new: minted, created, never updated.
	require.Len(t, creates, 1)
	create := creates[0].Body
	assert.Equal(t, "p-100", create["id"])
	assert.Equal(t, "100", create["employee_id"])
	contact := create["contact"].(map[string]any)
	assert.Equal(t, "w@x.com", contact["email"])
	assert.Equal(t, "+13055551234", contact["phone"])
	personal := create["personal"].(map[string]any)
	assert.Equal(t, "1990-01-02", personal["dob"])

	// Employee 200 changed and already exists: one PUT, no create.
	require.Len(t, puts, 1)
	assert.Equal(t, "/api/v1/patients/abc123", puts[0].Path)
	assert.Equal(t, "abc123", puts[0].Body["id"])
	assert.Equal(t, "bo@new.com", puts[0].Body["contact"].(map[string]any)["email"])

	// Employee 300 is unchanged and never looked up.
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, 2, report.Summary.Changed)
	assert.Equal(t, 1, report.Summary.Created)
	assert.Equal(t, 1, report.Summary.Updated)

	updates := report.Updates()
	require.Len(t, updates, 1)
	assert.Equal(t, int64(200), updates[0].EmployeeID)
	assert.Equal(t, StatusAck, updates[0].Status)
}

func TestRun_DuplicateEmployeeCreatedOnce(t *testing.T) {
	loader := setupStaging(t, []models.StagingRow{
		{FileName: "mdc_01-15-2024.csv", Value: `{"c1":"100","c2":"Ana","c5":"a@x.com"}`},
		{FileName: "mdc_01-15-2024_v2.csv", Value: `{"c1":"100","c2":"Ana","c5":"b@x.com"}`},
	})

	srv, requests := fakePatientAPI(t, map[string]string{})
	client := patientapi.NewWithHTTPClient(patientapi.Config{BaseURL: srv.URL}, srv.Client())
	client.SetToken("tok")

	report, err := NewService(roster.NewDiffer(loader), client, nil, zap.NewNop()).
		Run(context.Background(), runDate, Options{})
	require.NoError(t, err)

	var creates []recordedRequest
	for _, r := range *requests {
		if r.Method == http.MethodPost && r.Path == "/api/v1/patients" {
			creates = append(creates, r)
		}
	}

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, StatusAck, report.Outcomes[0].Status)
	require.Len(t, creates, 1)
	assert.Equal(t, "b@x.com", creates[0].Body["contact"].(map[string]any)["email"])
}

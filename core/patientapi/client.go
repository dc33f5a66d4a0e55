package patientapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	contentTypeJSON = "application/json"

	searchPath   = "/api/v1/patients/search"
	idsPath      = "/api/v1/ids"
	patientsPath = "/api/v1/patients"
)

var patientTypeBody = []byte(`{"type":"patient"}`)

// Response is the raw outcome of a request that reached the server.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client talks to the remote patient API. Every method performs exactly one
// request; retry policy belongs to the caller.
type Client struct {
	cfg           Config
	baseURL       string
	http          *http.Client
	limiter       *rate.Limiter
	lookupTimeout time.Duration
	token         string
}

// New creates a client from configuration.
func New(cfg Config) *Client {
	tr := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return NewWithHTTPClient(cfg, &http.Client{Transport: tr})
}

// NewWithHTTPClient creates a client using the given HTTP client.
func NewWithHTTPClient(cfg Config, hc *http.Client) *Client {
	timeout := time.Duration(cfg.LookupTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &Client{
		cfg:           cfg,
		baseURL:       cfg.BaseURL,
		http:          hc,
		limiter:       rate.NewLimiter(limit, 1),
		lookupTimeout: timeout,
	}
}

// SearchPatient looks up the patient registered for an employee.
// A literal null body reports found=false. Non-2xx responses are returned as
// *StatusError.
func (c *Client) SearchPatient(ctx context.Context, employeeID int64) (string, bool, error) {
	q := url.Values{}
	q.Set("employee_id", strconv.FormatInt(employeeID, 10))

	resp, err := c.do(ctx, http.MethodGet, searchPath+"?"+q.Encode(), patientTypeBody, c.lookupTimeout)
	if err != nil {
		return "", false, err
	}
	if !isSuccess(resp.StatusCode) {
		return "", false, c.statusError(http.MethodGet, searchPath, resp)
	}
	return ParseIdentifier(resp.Body)
}

// MintPatientID requests a new patient identifier. Only 200 and 201 with an
// id in the body count as success.
func (c *Client) MintPatientID(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, idsPath, patientTypeBody, c.lookupTimeout)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", c.statusError(http.MethodPost, idsPath, resp)
	}

	id, found, err := ParseIdentifier(resp.Body)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrNoIdentifier
	}
	return id, nil
}

// CreatePatient submits a new patient record.
func (c *Client) CreatePatient(ctx context.Context, payload any) (*Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("patient api: encode create payload: %w", err)
	}
	return c.do(ctx, http.MethodPost, patientsPath, b, 0)
}

// UpdatePatient replaces the record stored under patientID.
func (c *Client) UpdatePatient(ctx context.Context, patientID string, payload any) (*Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("patient api: encode update payload: %w", err)
	}
	return c.do(ctx, http.MethodPut, patientsPath+"/"+url.PathEscape(patientID), b, 0)
}

// ParseIdentifier extracts the id field from a lookup or mint response.
func ParseIdentifier(body []byte) (string, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if bytes.Equal(trimmed, []byte("null")) {
		return "", false, nil
	}

	var doc struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrNoIdentifier, err)
	}

	id := decodeID(doc.ID)
	if id == "" {
		return "", false, ErrNoIdentifier
	}
	return id, true, nil
}

func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, timeout time.Duration) (*Response, error) {
	if c.token == "" {
		return nil, ErrNotAuthenticated
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("patient api: %s %s: %w", method, path, err)
	}

	data, err := readAndClose(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("patient api: read %s %s: %w", method, path, err)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header.Clone(), Body: data}, nil
}

func (c *Client) statusError(method, path string, resp *Response) *StatusError {
	return &StatusError{
		Method:     method,
		URL:        c.baseURL + path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/priyamvada/skillscope/internal/gap"
)

const defaultTimeout = 60 * time.Second

// HTTPClient talks to the analysis service over HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	validator  *ReportValidator
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient substitutes the underlying *http.Client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// NewHTTPClient creates a client targeting the given base URL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	validator, err := NewReportValidator()
	if err != nil {
		return nil, fmt.Errorf("compile report schema: %w", err)
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		validator:  validator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, p gap.Profile) (*gap.Profile, error) {
	var out gap.Profile
	if err := c.do(ctx, http.MethodPost, "/api/profiles/create", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, id string) (*gap.Profile, error) {
	var out gap.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListProfiles(ctx context.Context) ([]gap.Profile, error) {
	var out []gap.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, id string, p gap.Profile) (*gap.Profile, error) {
	var out gap.Profile
	if err := c.do(ctx, http.MethodPut, "/api/profiles/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteProfile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/profiles/"+id, nil, nil)
}

func (c *HTTPClient) UploadProfile(ctx context.Context, in UploadInput) (*UploadResult, error) {
	var out UploadResult
	if err := c.do(ctx, http.MethodPost, "/api/profiles/upload", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Analyze(ctx context.Context, req gap.AnalysisRequest) (*gap.GapReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := c.doRaw(ctx, http.MethodPost, "/api/analyze", req)
	if err != nil {
		return nil, err
	}

	if err := c.validator.Validate(body); err != nil {
		return nil, err
	}

	var report gap.GapReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("decode gap report: %w", err)
	}
	return &report, nil
}

func (c *HTTPClient) ListReports(ctx context.Context, profileID string) ([]gap.ReportSummary, error) {
	var out []gap.ReportSummary
	if err := c.do(ctx, http.MethodGet, "/api/profiles/"+profileID+"/reports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HealthCheck probes GET /health once with a short deadline. It returns
// a snapshot, never an error; the caller treats any failure as a
// disconnected indicator.
func (c *HTTPClient) HealthCheck(ctx context.Context) Health {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthFail
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthFail
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return HealthOK
	}
	return HealthFail
}

// do performs a JSON request and decodes the response into out when out
// is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	body, err := c.doRaw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) doRaw(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFrom(resp.StatusCode, body)
	}

	return body, nil
}

// apiErrorFrom extracts the service's structured detail field from an
// error payload when present.
func apiErrorFrom(status int, body []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &APIError{Status: status, Detail: payload.Detail}
	}
	return &APIError{Status: status}
}

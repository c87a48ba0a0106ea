package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NITHINKR06/wellness/src/models"
)

// Timeouts mirror the mobile app: writes get longer than reads. Exceeding
// either is a network-class failure, not a separate code path.
const (
	writeTimeout = 10 * time.Second
	readTimeout  = 5 * time.Second
)

// TokenProvider supplies the opaque bearer credential. How the token is
// obtained and stored is the embedding app's concern.
type TokenProvider interface {
	Token() (string, error)
}

// StaticToken is a fixed-credential TokenProvider, handy in tests.
type StaticToken string

func (t StaticToken) Token() (string, error) { return string(t), nil }

// API is the server surface the coordinator and history need. *APIClient is
// the real implementation.
type API interface {
	SubmitAssessment(ctx context.Context, submission models.AssessmentSubmission) (*models.StoredAssessment, error)
	ListAssessments(ctx context.Context) ([]models.StoredAssessment, error)
	DeleteAssessment(ctx context.Context, id string) error
}

// APIClient talks to the screening backend.
type APIClient struct {
	baseURL string
	tokens  TokenProvider
	http    *http.Client
}

func NewAPIClient(baseURL string, tokens TokenProvider) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// SubmitAssessment posts the questionnaire for authoritative scoring.
func (c *APIClient) SubmitAssessment(ctx context.Context, submission models.AssessmentSubmission) (*models.StoredAssessment, error) {
	var stored models.StoredAssessment
	if err := c.do(ctx, http.MethodPost, "/assessments", submission, writeTimeout, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListAssessments fetches the owner's active history, most recent first.
func (c *APIClient) ListAssessments(ctx context.Context) ([]models.StoredAssessment, error) {
	assessments := []models.StoredAssessment{}
	if err := c.do(ctx, http.MethodGet, "/assessments", nil, readTimeout, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// DeleteAssessment soft-deletes by id.
func (c *APIClient) DeleteAssessment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/assessments/"+id, nil, readTimeout, nil)
}

// Health pings the unauthenticated health endpoint.
func (c *APIClient) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *APIClient) do(ctx context.Context, method, path string, body interface{}, timeout time.Duration, out interface{}) error {
	token, err := c.tokens.Token()
	if err != nil || token == "" {
		return &models.AuthError{Message: "missing credential"}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport-level failures (timeout, refused connection, DNS) all
		// surface here; they are the only network-class errors.
		return &models.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return classifyStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("invalid response from server: %w", err)
		}
	}
	return nil
}

func classifyStatus(resp *http.Response) error {
	var errResp models.ErrorResponse
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return &models.ValidationError{Message: message, Missing: errResp.Missing}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &models.AuthError{Message: message}
	case http.StatusNotFound:
		return &models.NotFoundError{Resource: "assessment"}
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, message)
	}
}

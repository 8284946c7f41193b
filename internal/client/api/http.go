package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
	"github.com/quickworkapp/quickwork-cli/internal/common"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

// TokenSource supplies the current bearer token ("" when logged out).
type TokenSource func() string

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL. Every request is
// bounded by timeout; token is consulted per request so a login during the
// session is picked up immediately.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any, authed bool) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token())
	}
	return req, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login posts credentials to /auth/login. Any non-2xx status is an
// authentication failure; transport errors wrap common.ErrUnavailable.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, false)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", common.NetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug(ctx, "login rejected", "status", resp.StatusCode)
		return "", common.ErrInvalidCredentials
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", common.NetworkError(err)
	}
	return lr.Token, nil
}

// Register posts the signup form to /auth/signup. The success body is
// ignored; a rejection carries the backend's body text.
func (c *HTTPClient) Register(ctx context.Context, form models.RegistrationForm) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/signup", form, false)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return common.NetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &common.RegistrationError{Body: strings.TrimSpace(string(body))}
	}
	return nil
}

// ListJobs fetches the whole job collection with the bearer token attached.
func (c *HTTPClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/jobs", nil, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.NetworkError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, common.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("Error del servidor: %d", resp.StatusCode)
	}

	var jobs []models.Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, common.NetworkError(err)
	}
	return jobs, nil
}

// CreateJob posts a new listing. Status-specific messages follow the
// product's wording for the posting form.
func (c *HTTPClient) CreateJob(ctx context.Context, job models.Job) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/jobs", job, true)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return common.NetworkError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case resp.StatusCode == http.StatusBadRequest:
		return errors.New("Error en los datos enviados. Verifica la información.")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(resp.Body)
		c.log.Debug(ctx, "job creation failed", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("Error del servidor: %d", resp.StatusCode)
	}
	return nil
}

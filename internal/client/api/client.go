// Package api is the REST gateway to the QuickWork backend. It owns request
// shaping, bearer-token attachment and the mapping of HTTP outcomes onto the
// shared error taxonomy; it holds no state beyond the token source.
package api

import (
	"context"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
)

// Client is the surface the rest of the app uses to talk to the backend.
type Client interface {
	// Login exchanges credentials for a bearer token. A 2xx response whose
	// body carries no token yields ("", nil); the caller decides what that
	// means for the session.
	Login(ctx context.Context, username, password string) (string, error)

	// Register submits the full signup form. A non-2xx response surfaces as
	// *common.RegistrationError carrying the response body text.
	Register(ctx context.Context, form models.RegistrationForm) error

	// ListJobs fetches the full job collection (auth required).
	ListJobs(ctx context.Context) ([]models.Job, error)

	// CreateJob publishes a new listing (auth required).
	CreateJob(ctx context.Context, job models.Job) error
}

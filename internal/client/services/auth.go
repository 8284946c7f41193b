// Package services contains the application services of the QuickWork
// client. This file defines the auth flow: login, signup and logout,
// bridging the REST gateway and the session store.
package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/quickworkapp/quickwork-cli/internal/client/api"
	"github.com/quickworkapp/quickwork-cli/internal/client/models"
	"github.com/quickworkapp/quickwork-cli/internal/client/session"
	"github.com/quickworkapp/quickwork-cli/internal/common"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

// AuthService defines the authentication operations of the CLI.
//
// Contract:
//   - Login: authenticate against the backend and open a local session.
//   - Register: create an account; the caller handles follow-up navigation.
//   - Logout: close and clear the local session.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, form models.RegistrationForm) error
	Logout(ctx context.Context) error
}

type authService struct {
	client   api.Client
	session  *session.Store
	log      logging.Logger
	validate *validator.Validate
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sess *session.Store, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		session:  sess,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Login exchanges credentials for a token and persists the session. A 2xx
// response without a token is accepted by the backend contract but opens no
// session: the persist step is simply skipped, mirroring the historical
// client behavior, and a warning is logged.
func (a *authService) Login(ctx context.Context, username, password string) error {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if token == "" {
		a.log.Warn(ctx, "login succeeded but the response carried no token; session not opened")
		return nil
	}

	return a.session.Login(ctx, token)
}

// Register fills in the client-side defaults (generated id, document type,
// role), validates the form and submits it. Validation failures surface as
// *common.ValidationError without touching the network.
func (a *authService) Register(ctx context.Context, form models.RegistrationForm) error {
	if form.ID == "" {
		form.ID = "user-" + uuid.NewString()
	}
	if form.DocumentType == "" {
		form.DocumentType = "CC"
	}
	if form.Role == "" {
		form.Role = "USER"
	}

	if err := a.validate.Struct(form); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.Field() == "Email" && fe.Tag() == "email" {
				return &common.ValidationError{Msg: "Por favor ingresa un email válido"}
			}
		}
		return &common.ValidationError{Msg: "Por favor completa todos los campos requeridos"}
	}

	return a.client.Register(ctx, form)
}

// Logout clears the persisted session.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

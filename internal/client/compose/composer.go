// Package compose holds the job posting form: field collection, client-side
// validation and submission to the backend.
package compose

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/quickworkapp/quickwork-cli/internal/client/api"
	"github.com/quickworkapp/quickwork-cli/internal/client/models"
	"github.com/quickworkapp/quickwork-cli/internal/common"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

// PlaceholderImage is sent with every created job. The picked image is not
// uploaded anywhere yet; whether the backend is supposed to assign its own
// image is an open product question, so the behavior is kept as is.
const PlaceholderImage = "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?q=80&w=1200"

// Draft is the in-progress posting form. Pay stays a string until
// submission because it arrives as free-text input.
type Draft struct {
	Title       string `validate:"required"`
	Location    string `validate:"required"`
	Pay         string `validate:"required"`
	Duration    string `validate:"required"`
	Description string `validate:"required"`
}

// Composer owns the draft across attempts: a failed submission keeps the
// fields so the user can correct and resend; success clears them.
type Composer struct {
	client   api.Client
	log      logging.Logger
	validate *validator.Validate

	Draft Draft
}

func NewComposer(client api.Client, log logging.Logger) *Composer {
	return &Composer{
		client:   client,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// newJobID builds a client-side identifier from the current time and a
// random suffix. Provisional: the backend's own key assignment contract is
// unknown, and collisions are theoretically possible.
func newJobID() string {
	return fmt.Sprintf("job-%d-%d", time.Now().UnixMilli(), rand.Intn(1000000))
}

// check validates the draft without touching the network. All fields are
// required and pay must parse as an integer strictly greater than zero.
func (c *Composer) check() (int, error) {
	if err := c.validate.Struct(c.Draft); err != nil {
		return 0, &common.ValidationError{Msg: "Por favor completa todos los campos requeridos"}
	}

	pay, err := strconv.Atoi(strings.TrimSpace(c.Draft.Pay))
	if err != nil || pay <= 0 {
		return 0, &common.ValidationError{Msg: "El pago debe ser un número válido mayor que cero"}
	}
	return pay, nil
}

// Submit validates the draft and, on success, posts the new job. Validation
// failures surface as *common.ValidationError before any request is made.
// The draft is cleared only when the backend accepts the job.
func (c *Composer) Submit(ctx context.Context) (models.Job, error) {
	pay, err := c.check()
	if err != nil {
		return models.Job{}, err
	}

	job := models.Job{
		ID:          models.ID(newJobID()),
		Title:       strings.TrimSpace(c.Draft.Title),
		Location:    strings.TrimSpace(c.Draft.Location),
		Pay:         pay,
		Duration:    strings.TrimSpace(c.Draft.Duration),
		Description: strings.TrimSpace(c.Draft.Description),
		Image:       PlaceholderImage,
	}

	if err := c.client.CreateJob(ctx, job); err != nil {
		c.log.Error(ctx, "could not publish job", "error", err)
		return models.Job{}, err
	}

	c.Draft = Draft{}
	return job, nil
}

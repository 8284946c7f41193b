package compose

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
	"github.com/quickworkapp/quickwork-cli/internal/common"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

type fakeClient struct {
	created   []models.Job
	createErr error
}

func (f *fakeClient) Login(context.Context, string, string) (string, error) { return "", nil }
func (f *fakeClient) Register(context.Context, models.RegistrationForm) error {
	return nil
}
func (f *fakeClient) ListJobs(context.Context) ([]models.Job, error) { return nil, nil }
func (f *fakeClient) CreateJob(_ context.Context, job models.Job) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, job)
	return nil
}

func validDraft() Draft {
	return Draft{
		Title:       "Ayuda con trasteo",
		Location:    "Bogotá, Cundinamarca",
		Pay:         "80000",
		Duration:    "1 día",
		Description: "Cargar cajas al tercer piso",
	}
}

func newComposer(f *fakeClient) *Composer {
	return NewComposer(f, logging.NewTextLogger(io.Discard, "error"))
}

func TestSubmit_Success(t *testing.T) {
	f := &fakeClient{}
	c := newComposer(f)
	c.Draft = validDraft()

	job, err := c.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, f.created, 1)
	assert.Equal(t, "Ayuda con trasteo", job.Title)
	assert.Equal(t, 80000, job.Pay)
	assert.Equal(t, PlaceholderImage, job.Image)
	assert.True(t, strings.HasPrefix(string(job.ID), "job-"), "client-generated id")

	assert.Equal(t, Draft{}, c.Draft, "form cleared on success")
}

func TestSubmit_EmptyTitleMakesNoRequest(t *testing.T) {
	f := &fakeClient{}
	c := newComposer(f)
	c.Draft = validDraft()
	c.Draft.Title = ""

	_, err := c.Submit(context.Background())
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, f.created, "validation failure must not reach the network")
}

func TestSubmit_RequiredFields(t *testing.T) {
	mutations := map[string]func(*Draft){
		"title":       func(d *Draft) { d.Title = "" },
		"location":    func(d *Draft) { d.Location = "" },
		"pay":         func(d *Draft) { d.Pay = "" },
		"duration":    func(d *Draft) { d.Duration = "" },
		"description": func(d *Draft) { d.Description = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			f := &fakeClient{}
			c := newComposer(f)
			c.Draft = validDraft()
			mutate(&c.Draft)

			_, err := c.Submit(context.Background())
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Empty(t, f.created)
		})
	}
}

func TestSubmit_PayMustBePositiveInteger(t *testing.T) {
	for _, pay := range []string{"0", "-5", "abc", "12.5"} {
		t.Run(pay, func(t *testing.T) {
			f := &fakeClient{}
			c := newComposer(f)
			c.Draft = validDraft()
			c.Draft.Pay = pay

			_, err := c.Submit(context.Background())
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Error(), "pago")
		})
	}
}

func TestSubmit_FailureKeepsDraft(t *testing.T) {
	f := &fakeClient{createErr: errors.New("500")}
	c := newComposer(f)
	c.Draft = validDraft()

	_, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, validDraft(), c.Draft, "form must survive a failed post")
}

func TestNewJobID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newJobID()
		assert.True(t, strings.HasPrefix(id, "job-"))
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90, "ids should essentially never collide in a tight loop")
}

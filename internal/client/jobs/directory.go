// Package jobs holds the job directory: one batch fetched per screen
// activation plus a pure filter applied to derive the visible list.
package jobs

import (
	"context"

	"github.com/quickworkapp/quickwork-cli/internal/client/api"
	"github.com/quickworkapp/quickwork-cli/internal/client/models"
	"github.com/quickworkapp/quickwork-cli/internal/common"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

// Status of the directory relative to its screen.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
)

// Directory owns the in-memory job batch of the listings screen.
//
// Refresh replaces the whole batch; a failed fetch still lands in
// StatusReady, with an empty batch and the error surfaced once to the caller
// as the user-visible notice. There is no retry.
type Directory struct {
	client api.Client
	log    logging.Logger

	status Status
	batch  []models.Job

	Criteria Criteria
}

func NewDirectory(client api.Client, log logging.Logger) *Directory {
	return &Directory{client: client, log: log, status: StatusIdle}
}

func (d *Directory) Status() Status { return d.status }

// Refresh fetches the full collection and installs it as the new batch.
// A cancelled ctx suppresses the install: the directory keeps its previous
// batch and reports the cancellation instead, so no late update lands after
// the screen went away.
func (d *Directory) Refresh(ctx context.Context) error {
	d.status = StatusLoading

	fetched, err := d.client.ListJobs(ctx)

	if ctx.Err() != nil {
		d.status = StatusIdle
		return ctx.Err()
	}

	d.status = StatusReady
	if err != nil {
		d.log.Error(ctx, "could not fetch jobs", "error", err)
		d.batch = nil
		return err
	}

	d.batch = fetched
	d.log.Debug(ctx, "jobs fetched", "count", len(fetched))
	return nil
}

// Batch returns the raw fetched list.
func (d *Directory) Batch() []models.Job { return d.batch }

// Visible applies the current criteria to the batch.
func (d *Directory) Visible() []models.Job {
	return Filter(d.batch, d.Criteria)
}

// Get resolves a job from the current batch by id.
func (d *Directory) Get(id string) (models.Job, error) {
	for _, job := range d.batch {
		if string(job.ID) == id {
			return job, nil
		}
	}
	return models.Job{}, common.ErrNotFound
}

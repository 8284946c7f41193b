package jobs

import (
	"strconv"
	"strings"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
)

// Criteria are the structured constraints applied to the fetched batch.
// A zero field means "no constraint": empty strings pass everything and a
// nil MinPay admits any pay value.
type Criteria struct {
	Search   string
	Location string
	MinPay   *int
	Duration string
}

// ParseMinPay converts user input into an optional pay threshold. Empty or
// non-numeric input means no constraint, which matches admitting every
// non-negative pay value.
func ParseMinPay(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// Clear resets every constraint.
func (c *Criteria) Clear() {
	*c = Criteria{}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Matches reports whether job passes every constraint (logical AND).
// The search text matches against title OR location; the remaining
// predicates are independent. All string matching is a case-insensitive
// substring test.
func (c Criteria) Matches(job models.Job) bool {
	if c.Search != "" &&
		!containsFold(job.Title, c.Search) &&
		!containsFold(job.Location, c.Search) {
		return false
	}

	if c.Location != "" && !containsFold(job.Location, c.Location) {
		return false
	}

	if c.MinPay != nil && job.Pay < *c.MinPay {
		return false
	}

	if c.Duration != "" && !containsFold(job.Duration, c.Duration) {
		return false
	}

	return true
}

// Filter returns the jobs admitted by c, preserving batch order. It is pure:
// no network calls, no mutation of the input.
func Filter(batch []models.Job, c Criteria) []models.Job {
	out := make([]models.Job, 0, len(batch))
	for _, job := range batch {
		if c.Matches(job) {
			out = append(out, job)
		}
	}
	return out
}

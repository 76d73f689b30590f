package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// --------------------------------------------------
// Jobs
// --------------------------------------------------

// ListJobs fetches all jobs, optionally filtered by status.
func (c *Client) ListJobs(ctx context.Context, status string) ([]models.Job, error) {
	var q url.Values
	if status != "" {
		q = url.Values{}
		q.Set("status", status)
	}

	var out []models.Job
	if err := c.get(ctx, "/jobs", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetJob(ctx context.Context, id int) (*models.Job, error) {
	var out models.Job
	if err := c.get(ctx, fmt.Sprintf("/jobs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	var out models.Job
	if err := c.post(ctx, "/jobs", job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateJob(ctx context.Context, id int, job *models.Job) (*models.Job, error) {
	var out models.Job
	if err := c.put(ctx, fmt.Sprintf("/jobs/%d", id), job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/jobs/%d", id))
}

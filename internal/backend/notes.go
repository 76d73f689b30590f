package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// --------------------------------------------------
// Notes
// --------------------------------------------------

func (c *Client) ListNotes(ctx context.Context, jobID *int) ([]models.Note, error) {
	var q url.Values
	if jobID != nil {
		q = url.Values{}
		q.Set("job_id", strconv.Itoa(*jobID))
	}

	var out []models.Note
	if err := c.get(ctx, "/notes", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetNote(ctx context.Context, id int) (*models.Note, error) {
	var out models.Note
	if err := c.get(ctx, fmt.Sprintf("/notes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	var out models.Note
	if err := c.post(ctx, "/notes", note, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int, note *models.Note) (*models.Note, error) {
	var out models.Note
	if err := c.put(ctx, fmt.Sprintf("/notes/%d", id), note, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/notes/%d", id))
}

package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// --------------------------------------------------
// Contacts
// --------------------------------------------------

// ListContacts fetches contacts, optionally scoped to one job.
func (c *Client) ListContacts(ctx context.Context, jobID *int) ([]models.Contact, error) {
	var q url.Values
	if jobID != nil {
		q = url.Values{}
		q.Set("job_id", strconv.Itoa(*jobID))
	}

	var out []models.Contact
	if err := c.get(ctx, "/contacts", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetContact(ctx context.Context, id int) (*models.Contact, error) {
	var out models.Contact
	if err := c.get(ctx, fmt.Sprintf("/contacts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	var out models.Contact
	if err := c.post(ctx, "/contacts", contact, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContact(ctx context.Context, id int, contact *models.Contact) (*models.Contact, error) {
	var out models.Contact
	if err := c.put(ctx, fmt.Sprintf("/contacts/%d", id), contact, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContact(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/contacts/%d", id))
}

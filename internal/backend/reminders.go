package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// --------------------------------------------------
// Reminders
// --------------------------------------------------

// Reminders fetches reminders for a range. duration is "day", "week" or
// "month"; startDate is the range's first date (YYYY-MM-DD).
func (c *Client) Reminders(ctx context.Context, duration, startDate string) ([]models.Reminder, error) {
	q := url.Values{}
	q.Set("duration", duration)
	q.Set("start_date", startDate)

	var out []models.Reminder
	if err := c.get(ctx, "/reminders", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReminder(ctx context.Context, id int) (*models.Reminder, error) {
	var out models.Reminder
	if err := c.get(ctx, fmt.Sprintf("/reminders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateReminder(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	var out models.Reminder
	if err := c.post(ctx, "/reminders", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReminder(ctx context.Context, id int, r *models.Reminder) (*models.Reminder, error) {
	var out models.Reminder
	if err := c.put(ctx, fmt.Sprintf("/reminders/%d", id), r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReminder(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/reminders/%d", id))
}

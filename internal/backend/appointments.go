package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// --------------------------------------------------
// Appointments
// --------------------------------------------------

// AppointmentsForDay fetches the appointments of a single date (YYYY-MM-DD).
func (c *Client) AppointmentsForDay(ctx context.Context, date string) ([]models.Appointment, error) {
	q := url.Values{}
	q.Set("date", date)

	var out []models.Appointment
	if err := c.get(ctx, "/appointments/day", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppointmentsForWeek fetches a week of appointments by week-start date.
func (c *Client) AppointmentsForWeek(ctx context.Context, weekStart string) ([]models.Appointment, error) {
	q := url.Values{}
	q.Set("start_date", weekStart)

	var out []models.Appointment
	if err := c.get(ctx, "/appointments/week", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppointmentsForMonth fetches a month of appointments by YYYY-MM.
func (c *Client) AppointmentsForMonth(ctx context.Context, month string) ([]models.Appointment, error) {
	q := url.Values{}
	q.Set("month", month)

	var out []models.Appointment
	if err := c.get(ctx, "/appointments/month", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAppointment(ctx context.Context, id int) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.get(ctx, fmt.Sprintf("/appointments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.post(ctx, "/appointments", ap, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id int, ap *models.Appointment) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.put(ctx, fmt.Sprintf("/appointments/%d", id), ap, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/appointments/%d", id))
}

package calendarview

import (
	"context"
	"fmt"

	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// BackendFetcher maps a view range onto the backend API's range endpoints.
type BackendFetcher struct {
	api *backend.Client
}

func NewBackendFetcher(api *backend.Client) *BackendFetcher {
	return &BackendFetcher{api: api}
}

func (f *BackendFetcher) AppointmentsForRange(ctx context.Context, r Range) ([]models.Appointment, error) {
	start := r.Start()

	switch r.View {
	case ViewWeek:
		return f.api.AppointmentsForWeek(ctx, calendar.FormatDateForAPI(start))
	case ViewMonth:
		return f.api.AppointmentsForMonth(ctx, fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month())))
	default:
		return f.api.AppointmentsForDay(ctx, calendar.FormatDateForAPI(start))
	}
}

func (f *BackendFetcher) RemindersForRange(ctx context.Context, r Range) ([]models.Reminder, error) {
	return f.api.Reminders(ctx, string(r.View), calendar.FormatDateForAPI(r.Start()))
}

var _ Fetcher = (*BackendFetcher)(nil)

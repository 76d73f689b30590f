package calendarview

import (
	"context"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/dto"
)

// ScrollToHour is the row Day and Week views ask the client to scroll to on
// mount, skipping the unused early-morning rows. Best effort on the client: a
// missing target is a no-op.
const ScrollToHour = 8

type DayViewUseCase struct {
	sessions *Registry
	nav      Navigator
}

func NewDayView(sessions *Registry, nav Navigator) *DayViewUseCase {
	return &DayViewUseCase{sessions: sessions, nav: nav}
}

func (uc *DayViewUseCase) Execute(ctx context.Context, sessionID string, date time.Time) *dto.DayView {
	session := uc.sessions.Get(sessionID)

	rng := Range{View: ViewDay, Date: date}
	session.SetRange(rng)
	snap := session.Loader.Load(ctx, rng)

	buckets := calendar.BucketItems(calendar.ByHour, snap.Appointments, snap.Reminders)
	apiDate := calendar.FormatDateForAPI(date)

	return &dto.DayView{
		Date:         apiDate,
		Hours:        hourCells(uc.nav, buckets, date, apiDate, ViewDay),
		ScrollToHour: ScrollToHour,
		Links:        viewLinks(uc.nav, date),
	}
}

func hourCells(nav Navigator, buckets *calendar.Buckets, date time.Time, apiDate string, view View) []dto.HourCell {
	hours := calendar.HoursOfDay()
	cells := make([]dto.HourCell, 0, len(hours))
	for _, h := range hours {
		hour := h.Value
		cells = append(cells, dto.HourCell{
			Hour:         hour,
			Display:      h.Display,
			Business:     calendar.IsBusinessHour(hour),
			CreateURL:    nav.CreateURL(date, &hour, view),
			Appointments: appointmentBoxes(nav, buckets.AppointmentsAt(apiDate, hour)),
			Reminders:    reminderBoxes(buckets.RemindersAt(apiDate, hour)),
		})
	}
	return cells
}

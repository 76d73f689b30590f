package calendarview

import (
	"context"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/dto"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
	"github.com/dwalbeck/job-tracker-sub001/internal/timezone"
)

type MonthViewUseCase struct {
	sessions *Registry
	nav      Navigator
}

func NewMonthView(sessions *Registry, nav Navigator) *MonthViewUseCase {
	return &MonthViewUseCase{sessions: sessions, nav: nav}
}

func (uc *MonthViewUseCase) Execute(ctx context.Context, sessionID string, date time.Time) *dto.MonthView {
	session := uc.sessions.Get(sessionID)

	rng := Range{View: ViewMonth, Date: date}
	session.SetRange(rng)
	snap := session.Loader.Load(ctx, rng)

	buckets := calendar.BucketItems(calendar.ByDay, snap.Appointments, snap.Reminders)
	cells := calendar.MonthCalendarDays(date, timezone.Now())

	days := make([]dto.MonthDayCell, 0, len(cells))
	for _, c := range cells {
		cell := dto.MonthDayCell{
			Date:         c.APIDate,
			Day:          c.Day,
			InMonth:      c.InMonth,
			Today:        c.Today,
			Past:         c.Past,
			Appointments: appointmentBoxes(uc.nav, buckets.AppointmentsOn(c.APIDate)),
			Reminders:    reminderBoxes(buckets.RemindersOn(c.APIDate)),
		}
		// Filler cells from adjacent months are not clickable for creation.
		if c.InMonth {
			cell.CreateURL = uc.nav.CreateURL(c.Date, nil, ViewMonth)
		}
		days = append(days, cell)
	}

	return &dto.MonthView{
		Year:  date.Year(),
		Month: int(date.Month()),
		Date:  calendar.FormatDateForAPI(date),
		Days:  days,
		Links: viewLinks(uc.nav, date),
	}
}

// ===============================
// Shared view-model helpers
// ===============================

func viewLinks(nav Navigator, date time.Time) dto.ViewLinks {
	return dto.ViewLinks{
		Month: nav.ViewURL(ViewMonth, date),
		Week:  nav.ViewURL(ViewWeek, date),
		Day:   nav.ViewURL(ViewDay, date),
	}
}

func appointmentBoxes(nav Navigator, apps []models.Appointment) []dto.AppointmentBox {
	boxes := make([]dto.AppointmentBox, 0, len(apps))
	for _, a := range apps {
		boxes = append(boxes, dto.AppointmentBox{
			ID:           a.ID,
			Company:      a.Company,
			CalendarType: a.CalendarType,
			StartDisplay: calendar.FormatTimeDisplay(a.StartTime),
			FullHeight:   calendar.FullHeight(a),
			DetailURL:    nav.DetailURL(a.ID),
		})
	}
	return boxes
}

func reminderBoxes(rems []models.Reminder) []dto.ReminderBox {
	boxes := make([]dto.ReminderBox, 0, len(rems))
	for _, r := range rems {
		boxes = append(boxes, dto.ReminderBox{
			ID:          r.ID,
			Message:     r.ReminderMessage,
			TimeDisplay: calendar.FormatTimeDisplay(r.ReminderTime),
		})
	}
	return boxes
}

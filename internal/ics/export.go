package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

const prodID = "-//job-tracker//dashboard calendar//EN"

// ExportMonth renders a month of appointments as an iCalendar feed, one
// VEVENT per appointment. Items with an unparseable start are skipped rather
// than failing the whole feed.
func ExportMonth(appointments []models.Appointment, loc *time.Location) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	now := time.Now()

	for _, a := range appointments {
		start, err := eventStart(a, loc)
		if err != nil {
			continue
		}
		end := start.Add(time.Duration(a.Duration() * float64(time.Hour)))

		ev := cal.AddEvent(fmt.Sprintf("appointment-%d@job-tracker", a.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(eventSummary(a))
		if a.Description != "" {
			ev.SetDescription(a.Description)
		}
		if a.Link != "" {
			ev.SetURL(a.Link)
		}
	}

	return cal.Serialize()
}

func eventStart(a models.Appointment, loc *time.Location) (time.Time, error) {
	day, err := calendar.ParseAPIDate(a.StartDate, loc)
	if err != nil {
		return time.Time{}, err
	}
	if a.StartTime == "" {
		return day, nil
	}
	t, err := time.ParseInLocation("15:04", a.StartTime, loc)
	if err != nil {
		return day, nil
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

func eventSummary(a models.Appointment) string {
	if a.CalendarType != "" && a.Company != "" {
		return fmt.Sprintf("%s - %s", a.CalendarType, a.Company)
	}
	if a.Company != "" {
		return a.Company
	}
	return a.CalendarType
}

package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/usecase/calendarview"
)

// NavLinks is the single navigation implementation all calendar views share.
// The browser app routes on these query-string URLs; building them in one
// place keeps Month, Week and Day interchangeable.
type NavLinks struct{}

func (NavLinks) ViewURL(view calendarview.View, date time.Time) string {
	q := url.Values{}
	q.Set("view", string(view))
	q.Set("date", calendar.FormatDateForAPI(date))
	return "/calendar?" + q.Encode()
}

func (NavLinks) CreateURL(date time.Time, hour *int, view calendarview.View) string {
	q := url.Values{}
	q.Set("date", calendar.FormatDateForAPI(date))
	if hour != nil {
		q.Set("time", fmt.Sprintf("%02d:00", *hour))
	}
	q.Set("view", string(view))
	return "/appointments/new?" + q.Encode()
}

func (NavLinks) DetailURL(id int) string {
	return fmt.Sprintf("/api/calendar/appointments/%d", id)
}

func (NavLinks) EditURL(id int, view calendarview.View, date time.Time) string {
	q := url.Values{}
	q.Set("view", string(view))
	q.Set("date", calendar.FormatDateForAPI(date))
	return fmt.Sprintf("/appointments/%d/edit?%s", id, q.Encode())
}

var _ calendarview.Navigator = NavLinks{}

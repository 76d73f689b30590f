package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dwalbeck/job-tracker-sub001/internal/activity"
	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
	"github.com/dwalbeck/job-tracker-sub001/internal/dto"
	"github.com/dwalbeck/job-tracker-sub001/internal/middleware"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
	"github.com/dwalbeck/job-tracker-sub001/internal/usecase/calendarview"
)

type discardSink struct{}

func (discardSink) Log(string, string, string, *int, any) error { return nil }

// fakeBackend stands in for the job-tracker API.
type fakeBackend struct {
	mu               sync.Mutex
	appointments     []models.Appointment
	reminders        []models.Reminder
	failAppointments bool
	failDelete       bool
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/appointments/"):
		if f.failDelete {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/appointments/"))
		kept := f.appointments[:0]
		for _, a := range f.appointments {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		f.appointments = kept
		w.WriteHeader(http.StatusNoContent)

	case strings.HasPrefix(r.URL.Path, "/appointments/day"),
		strings.HasPrefix(r.URL.Path, "/appointments/week"),
		strings.HasPrefix(r.URL.Path, "/appointments/month"):
		if f.failAppointments {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(f.appointments)

	case r.URL.Path == "/reminders":
		json.NewEncoder(w).Encode(f.reminders)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newCalendarRouter(backendURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	api := backend.NewClient(backendURL)
	sessions := calendarview.NewRegistry(calendarview.NewBackendFetcher(api))
	nav := NavLinks{}
	dispatcher := activity.NewDispatcher(discardSink{})

	h := NewCalendarHandler(
		calendarview.NewMonthView(sessions, nav),
		calendarview.NewWeekView(sessions, nav),
		calendarview.NewDayView(sessions, nav),
		calendarview.NewAppointmentDetail(api, nav),
		calendarview.NewDeleteAppointment(api, sessions, dispatcher),
		api,
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextSessionID, "test-session")
	})
	r.GET("/api/calendar/month", h.Month)
	r.GET("/api/calendar/week", h.Week)
	r.GET("/api/calendar/day", h.Day)
	r.GET("/api/calendar/appointments/:id", h.Detail)
	r.DELETE("/api/calendar/appointments/:id", h.Delete)
	return r
}

func getDayView(t *testing.T, r *gin.Engine, date string) *dto.DayView {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/day?date="+date, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("day view status = %d, want 200", w.Code)
	}

	var view dto.DayView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode day view: %v", err)
	}
	return &view
}

func TestDayViewBucketsAppointmentBySpan(t *testing.T) {
	fake := &fakeBackend{
		appointments: []models.Appointment{
			{
				ID:           1,
				StartDate:    "2025-03-10",
				StartTime:    "09:00",
				DurationHour: 2,
				Company:      "Initech",
				CalendarType: "interview",
			},
		},
		reminders: []models.Reminder{
			{ID: 7, ReminderDate: "2025-03-10", ReminderMessage: "follow up"},
		},
	}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	r := newCalendarRouter(srv.URL)
	view := getDayView(t, r, "2025-03-10")

	if len(view.Hours) != 24 {
		t.Fatalf("len(Hours) = %d, want 24", len(view.Hours))
	}

	for h := 0; h < 24; h++ {
		got := len(view.Hours[h].Appointments)
		want := 0
		if h == 9 || h == 10 {
			want = 1
		}
		if got != want {
			t.Errorf("hour %d: %d appointments, want %d", h, got, want)
		}
	}

	if !view.Hours[9].Appointments[0].FullHeight {
		t.Errorf("2h appointment should render full height")
	}

	// A reminder without a time lands on the first slot of the day.
	if len(view.Hours[0].Reminders) != 1 {
		t.Errorf("hour 0: %d reminders, want 1", len(view.Hours[0].Reminders))
	}
}

func TestMonthViewCreateURLOnlyInMonth(t *testing.T) {
	srv := httptest.NewServer(&fakeBackend{})
	defer srv.Close()

	r := newCalendarRouter(srv.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/month?date=2025-03-15", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("month view status = %d, want 200", w.Code)
	}

	var view dto.MonthView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode month view: %v", err)
	}

	if len(view.Days) != 42 {
		t.Fatalf("len(Days) = %d, want 42", len(view.Days))
	}

	first := view.Days[0]
	if first.Date != "2025-02-23" {
		t.Errorf("first cell = %s, want 2025-02-23", first.Date)
	}
	if first.InMonth {
		t.Errorf("leading cell should be out of month")
	}
	if first.CreateURL != "" {
		t.Errorf("out-of-month cell has CreateURL %q, want empty", first.CreateURL)
	}

	for _, cell := range view.Days {
		if cell.InMonth && cell.CreateURL == "" {
			t.Errorf("in-month cell %s has no CreateURL", cell.Date)
		}
	}
}

func TestDayViewBackendFailureRendersEmpty(t *testing.T) {
	fake := &fakeBackend{
		failAppointments: true,
		reminders: []models.Reminder{
			{ID: 3, ReminderDate: "2025-03-10", ReminderTime: "14:00", ReminderMessage: "send thank-you"},
		},
	}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	r := newCalendarRouter(srv.URL)
	view := getDayView(t, r, "2025-03-10")

	for h := 0; h < 24; h++ {
		if len(view.Hours[h].Appointments) != 0 {
			t.Errorf("hour %d: expected no appointments after fetch failure", h)
		}
	}

	// The reminder fetch is independent of the appointment failure.
	if len(view.Hours[14].Reminders) != 1 {
		t.Errorf("hour 14: %d reminders, want 1", len(view.Hours[14].Reminders))
	}
}

func TestDeleteAppointmentRemovesFromView(t *testing.T) {
	fake := &fakeBackend{
		appointments: []models.Appointment{
			{ID: 5, StartDate: "2025-03-10", StartTime: "09:00", DurationHour: 1, Company: "Globex"},
		},
	}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	r := newCalendarRouter(srv.URL)

	view := getDayView(t, r, "2025-03-10")
	if len(view.Hours[9].Appointments) != 1 {
		t.Fatalf("precondition: appointment not visible at hour 9")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/calendar/appointments/5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}

	view = getDayView(t, r, "2025-03-10")
	if len(view.Hours[9].Appointments) != 0 {
		t.Errorf("appointment still visible after delete")
	}
}

func TestDeleteAppointmentBackendFailure(t *testing.T) {
	fake := &fakeBackend{
		appointments: []models.Appointment{
			{ID: 5, StartDate: "2025-03-10", StartTime: "09:00", DurationHour: 1, Company: "Globex"},
		},
		failDelete: true,
	}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	r := newCalendarRouter(srv.URL)

	getDayView(t, r, "2025-03-10")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/calendar/appointments/5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("delete status = %d, want 502", w.Code)
	}

	// Nothing was removed; the next render still shows the appointment.
	view := getDayView(t, r, "2025-03-10")
	if len(view.Hours[9].Appointments) != 1 {
		t.Errorf("appointment missing after failed delete")
	}
}

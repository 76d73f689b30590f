package calendar

import (
	"encoding/json"
	"testing"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

func TestBucketByHourSpansDuration(t *testing.T) {
	ap := models.Appointment{
		ID:           1,
		StartDate:    "2025-03-15",
		StartTime:    "14:00",
		DurationHour: 2.5,
	}

	b := BucketItems(ByHour, []models.Appointment{ap}, nil)

	for h := 0; h < 24; h++ {
		got := len(b.AppointmentsAt("2025-03-15", h))
		want := 0
		if h == 14 || h == 15 || h == 16 {
			want = 1
		}
		if got != want {
			t.Errorf("hour %d: %d appointments, want %d", h, got, want)
		}
	}
}

func TestBucketByHourDefaultDuration(t *testing.T) {
	cases := []models.Appointment{
		{ID: 1, StartDate: "2025-03-15", StartTime: "09:00"},                   // absent
		{ID: 2, StartDate: "2025-03-15", StartTime: "09:00", DurationHour: 0},  // zero
		{ID: 3, StartDate: "2025-03-15", StartTime: "09:00", DurationHour: -2}, // negative
	}

	for _, ap := range cases {
		b := BucketItems(ByHour, []models.Appointment{ap}, nil)
		if got := len(b.AppointmentsAt("2025-03-15", 9)); got != 1 {
			t.Errorf("id %d: hour 9 has %d appointments, want 1", ap.ID, got)
		}
		if got := len(b.AppointmentsAt("2025-03-15", 10)); got != 0 {
			t.Errorf("id %d: default duration leaked into hour 10", ap.ID)
		}
	}
}

func TestBucketByHourNonNumericDurationOnWire(t *testing.T) {
	var ap models.Appointment
	raw := `{"id":4,"start_date":"2025-03-15","start_time":"09:00","duration_hour":"n/a"}`
	if err := json.Unmarshal([]byte(raw), &ap); err != nil {
		t.Fatalf("decode: %v", err)
	}

	b := BucketItems(ByHour, []models.Appointment{ap}, nil)
	if got := len(b.AppointmentsAt("2025-03-15", 9)); got != 1 {
		t.Errorf("hour 9 has %d appointments, want 1", got)
	}
	if got := len(b.AppointmentsAt("2025-03-15", 10)); got != 0 {
		t.Errorf("hour 10 has %d appointments, want 0", got)
	}
}

func TestBucketByHourTwoHourAppointment(t *testing.T) {
	ap := models.Appointment{ID: 5, StartDate: "2025-03-15", StartTime: "09:00", DurationHour: 2}
	b := BucketItems(ByHour, []models.Appointment{ap}, nil)

	for h := 0; h < 24; h++ {
		got := len(b.AppointmentsAt("2025-03-15", h))
		want := 0
		if h == 9 || h == 10 {
			want = 1
		}
		if got != want {
			t.Errorf("hour %d: %d appointments, want %d", h, got, want)
		}
	}
}

func TestBucketReminderWithoutTimePinnedToMidnight(t *testing.T) {
	r := models.Reminder{ID: 1, ReminderDate: "2025-03-15", ReminderMessage: "follow up"}

	b := BucketItems(ByHour, nil, []models.Reminder{r})
	if got := len(b.RemindersAt("2025-03-15", 0)); got != 1 {
		t.Errorf("hour 0 has %d reminders, want 1", got)
	}
	for h := 1; h < 24; h++ {
		if len(b.RemindersAt("2025-03-15", h)) != 0 {
			t.Errorf("timeless reminder leaked into hour %d", h)
		}
	}

	day := BucketItems(ByDay, nil, []models.Reminder{r})
	if got := len(day.RemindersOn("2025-03-15")); got != 1 {
		t.Errorf("day bucket has %d reminders, want 1", got)
	}
}

func TestBucketReminderWithTime(t *testing.T) {
	r := models.Reminder{ID: 2, ReminderDate: "2025-03-15", ReminderTime: "16:45"}
	b := BucketItems(ByHour, nil, []models.Reminder{r})

	if got := len(b.RemindersAt("2025-03-15", 16)); got != 1 {
		t.Errorf("hour 16 has %d reminders, want 1", got)
	}
	if len(b.RemindersAt("2025-03-15", 17)) != 0 {
		t.Error("reminder leaked into hour 17")
	}
}

func TestBucketByDayStringEquality(t *testing.T) {
	apps := []models.Appointment{
		{ID: 1, StartDate: "2025-03-15"},
		{ID: 2, StartDate: "2025-03-15"},
		{ID: 3, StartDate: "2025-03-16"},
	}

	b := BucketItems(ByDay, apps, nil)
	if got := len(b.AppointmentsOn("2025-03-15")); got != 2 {
		t.Errorf("2025-03-15 has %d appointments, want 2", got)
	}
	if got := len(b.AppointmentsOn("2025-03-16")); got != 1 {
		t.Errorf("2025-03-16 has %d appointments, want 1", got)
	}
	if b.AppointmentsOn("2025-03-17") != nil {
		t.Error("empty day returned items")
	}
}

func TestBucketOverlapsStack(t *testing.T) {
	apps := []models.Appointment{
		{ID: 1, StartDate: "2025-03-15", StartTime: "10:00", DurationHour: 2},
		{ID: 2, StartDate: "2025-03-15", StartTime: "11:00", DurationHour: 1},
	}
	b := BucketItems(ByHour, apps, nil)
	if got := len(b.AppointmentsAt("2025-03-15", 11)); got != 2 {
		t.Errorf("hour 11 has %d appointments, want 2 stacked", got)
	}
}

func TestFullHeightThreshold(t *testing.T) {
	half := models.Appointment{DurationHour: 0.5}
	if FullHeight(half) {
		t.Error("0.5h appointment should render half height")
	}
	full := models.Appointment{DurationHour: 0.75}
	if !FullHeight(full) {
		t.Error("0.75h appointment should render full height")
	}
	fallback := models.Appointment{} // defaults to 1h
	if !FullHeight(fallback) {
		t.Error("defaulted 1h appointment should render full height")
	}
}

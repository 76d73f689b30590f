package calendar

import (
	"testing"
	"time"
)

func TestWeekStartContract(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC), // Saturday
		time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),   // Sunday
		time.Date(2025, 3, 17, 23, 59, 0, 0, time.UTC), // Monday
		time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),   // leap day
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		ws := WeekStart(d)
		if ws.Weekday() != time.Sunday {
			t.Errorf("WeekStart(%v) = %v, weekday %v, want Sunday", d, ws, ws.Weekday())
		}
		if ws.After(d) {
			t.Errorf("WeekStart(%v) = %v is after input", d, ws)
		}
		if d.Sub(ws) >= 7*24*time.Hour {
			t.Errorf("WeekStart(%v) = %v is more than a week back", d, ws)
		}
	}
}

func TestWeekStartOfSundayIsSameDay(t *testing.T) {
	sunday := time.Date(2025, 3, 16, 18, 45, 0, 0, time.UTC)
	ws := WeekStart(sunday)
	if got, want := FormatDateForAPI(ws), "2025-03-16"; got != want {
		t.Errorf("WeekStart(sunday) = %s, want %s", got, want)
	}
	if ws.Hour() != 0 || ws.Minute() != 0 {
		t.Errorf("WeekStart not midnight-normalized: %v", ws)
	}
}

func TestMonthCalendarDaysCoverage(t *testing.T) {
	months := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), // leap February
		time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
	}
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, m := range months {
		cells := MonthCalendarDays(m, today)

		if len(cells)%7 != 0 {
			t.Errorf("%v: grid length %d not divisible by 7", m.Month(), len(cells))
		}

		seen := map[string]bool{}
		inMonth := 0
		for i, c := range cells {
			if i > 0 && !cells[i-1].Date.Before(c.Date) {
				t.Errorf("%v: grid not ascending at index %d", m.Month(), i)
			}
			if c.InMonth {
				inMonth++
				if seen[c.APIDate] {
					t.Errorf("%v: duplicate day %s", m.Month(), c.APIDate)
				}
				seen[c.APIDate] = true
			}
		}

		daysInMonth := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, 1, -1).Day()
		if inMonth != daysInMonth {
			t.Errorf("%v: %d in-month cells, want %d", m.Month(), inMonth, daysInMonth)
		}
	}
}

func TestMonthCalendarDaysMarch2025(t *testing.T) {
	today := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	cells := MonthCalendarDays(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), today)

	// March 2025 starts on a Saturday and ends on a Monday: 6 weeks.
	if len(cells) != 42 {
		t.Fatalf("grid length = %d, want 42", len(cells))
	}
	if cells[0].APIDate != "2025-02-23" {
		t.Errorf("first cell = %s, want 2025-02-23", cells[0].APIDate)
	}
	if cells[0].InMonth {
		t.Error("leading February cell marked in-month")
	}
	if cells[41].APIDate != "2025-04-05" {
		t.Errorf("last cell = %s, want 2025-04-05", cells[41].APIDate)
	}

	for _, c := range cells {
		switch c.APIDate {
		case "2025-03-15":
			if !c.Today {
				t.Error("2025-03-15 not marked today")
			}
			if c.Past {
				t.Error("today marked past")
			}
		case "2025-03-14":
			if !c.Past {
				t.Error("2025-03-14 not marked past")
			}
		case "2025-03-16":
			if c.Past {
				t.Error("2025-03-16 marked past")
			}
		}
	}
}

func TestHoursOfDay(t *testing.T) {
	hours := HoursOfDay()
	if len(hours) != 24 {
		t.Fatalf("len = %d, want 24", len(hours))
	}

	want := map[int]string{0: "12 AM", 1: "1 AM", 11: "11 AM", 12: "12 PM", 13: "1 PM", 23: "11 PM"}
	for v, label := range want {
		if hours[v].Value != v {
			t.Errorf("hours[%d].Value = %d", v, hours[v].Value)
		}
		if hours[v].Display != label {
			t.Errorf("hours[%d].Display = %q, want %q", v, hours[v].Display, label)
		}
	}
}

func TestIsBusinessHour(t *testing.T) {
	for h := 0; h < 24; h++ {
		want := h >= 8 && h < 18
		if got := IsBusinessHour(h); got != want {
			t.Errorf("IsBusinessHour(%d) = %v, want %v", h, got, want)
		}
	}
}

func TestFormatDateForAPIUsesLocalFields(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 23:30 local on March 15 is already March 16 in UTC; the local date wins.
	d := time.Date(2025, 3, 15, 23, 30, 0, 0, loc)
	if got := FormatDateForAPI(d); got != "2025-03-15" {
		t.Errorf("FormatDateForAPI = %s, want 2025-03-15", got)
	}
}

func TestFormatTimeDisplay(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"00:00", "12:00 am"},
		{"09:05", "9:05 am"},
		{"12:00", "12:00 pm"},
		{"14:30", "2:30 pm"},
		{"23:59", "11:59 pm"},
	}
	for _, c := range cases {
		if got := FormatTimeDisplay(c.in); got != c.want {
			t.Errorf("FormatTimeDisplay(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStartHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"14:00", 14},
		{"14:59", 14},
		{"00:30", 0},
		{"", 0},
		{"junk", 0},
		{"25:00", 0},
	}
	for _, c := range cases {
		if got := StartHour(c.in); got != c.want {
			t.Errorf("StartHour(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

package calendar

import (
	"math"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// ===============================
// Slot bucketing
// ===============================

// Granularity selects the cell size items are bucketed into.
type Granularity int

const (
	// ByDay buckets on exact YYYY-MM-DD string equality (Month view).
	ByDay Granularity = iota
	// ByHour buckets into hour cells 0..23 per date (Day and Week views).
	ByHour
)

// HalfHeightMax is the duration at or below which an appointment box renders
// at half row height. Purely presentational; overlaps stack either way.
const HalfHeightMax = 0.5

// Buckets assigns appointments and reminders to grid cells. Month, Week and
// Day views all consume this one implementation.
type Buckets struct {
	granularity Granularity

	dayAppointments map[string][]models.Appointment
	dayReminders    map[string][]models.Reminder

	hourAppointments map[string]*[24][]models.Appointment
	hourReminders    map[string]*[24][]models.Reminder
}

// BucketItems buckets the given items at the given granularity.
//
// Day granularity: an item belongs to a date cell iff its date field equals
// the cell's YYYY-MM-DD form (string equality, no date-object comparison).
//
// Hour granularity: an appointment occupies every hour H with
// startHour <= H < startHour + duration, where duration falls back to 1 when
// missing or unparseable. A reminder occupies its start hour, or hour 0 when
// it carries no time.
func BucketItems(g Granularity, appointments []models.Appointment, reminders []models.Reminder) *Buckets {
	b := &Buckets{granularity: g}

	switch g {
	case ByDay:
		b.dayAppointments = make(map[string][]models.Appointment)
		b.dayReminders = make(map[string][]models.Reminder)

		for _, a := range appointments {
			b.dayAppointments[a.StartDate] = append(b.dayAppointments[a.StartDate], a)
		}
		for _, r := range reminders {
			b.dayReminders[r.ReminderDate] = append(b.dayReminders[r.ReminderDate], r)
		}

	case ByHour:
		b.hourAppointments = make(map[string]*[24][]models.Appointment)
		b.hourReminders = make(map[string]*[24][]models.Reminder)

		for _, a := range appointments {
			slots := b.hourAppointments[a.StartDate]
			if slots == nil {
				slots = &[24][]models.Appointment{}
				b.hourAppointments[a.StartDate] = slots
			}
			from, to := hourSpan(a)
			for h := from; h < to && h < 24; h++ {
				slots[h] = append(slots[h], a)
			}
		}

		for _, r := range reminders {
			slots := b.hourReminders[r.ReminderDate]
			if slots == nil {
				slots = &[24][]models.Reminder{}
				b.hourReminders[r.ReminderDate] = slots
			}
			h := StartHour(r.ReminderTime)
			slots[h] = append(slots[h], r)
		}
	}

	return b
}

// hourSpan returns the half-open hour range [from, to) an appointment covers.
// A 14:00 appointment of 2.5 hours covers 14, 15 and 16.
func hourSpan(a models.Appointment) (int, int) {
	from := StartHour(a.StartTime)
	to := from + int(math.Ceil(a.Duration()))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// AppointmentsOn returns the appointments bucketed into a date cell.
func (b *Buckets) AppointmentsOn(date string) []models.Appointment {
	return b.dayAppointments[date]
}

// RemindersOn returns the reminders bucketed into a date cell.
func (b *Buckets) RemindersOn(date string) []models.Reminder {
	return b.dayReminders[date]
}

// AppointmentsAt returns the appointments occupying an hour cell.
func (b *Buckets) AppointmentsAt(date string, hour int) []models.Appointment {
	if hour < 0 || hour > 23 {
		return nil
	}
	if slots := b.hourAppointments[date]; slots != nil {
		return slots[hour]
	}
	return nil
}

// RemindersAt returns the reminders occupying an hour cell.
func (b *Buckets) RemindersAt(date string, hour int) []models.Reminder {
	if hour < 0 || hour > 23 {
		return nil
	}
	if slots := b.hourReminders[date]; slots != nil {
		return slots[hour]
	}
	return nil
}

// FullHeight reports whether an appointment box renders at full row height.
func FullHeight(a models.Appointment) bool {
	return a.Duration() > HalfHeightMax
}

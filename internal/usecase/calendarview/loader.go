package calendarview

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// View identifies a calendar view and doubles as the reminder-range duration
// parameter of the backend API.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// Range is a visible date range: the view granularity plus its anchor date.
type Range struct {
	View View
	Date time.Time
}

// Start returns the first date of the range.
func (r Range) Start() time.Time {
	switch r.View {
	case ViewWeek:
		return calendar.WeekStart(r.Date)
	case ViewMonth:
		return time.Date(r.Date.Year(), r.Date.Month(), 1, 0, 0, 0, 0, r.Date.Location())
	default:
		return calendar.Midnight(r.Date)
	}
}

// Fetcher is the slice of the backend the loader needs.
type Fetcher interface {
	AppointmentsForRange(ctx context.Context, r Range) ([]models.Appointment, error)
	RemindersForRange(ctx context.Context, r Range) ([]models.Reminder, error)
}

// Snapshot is the loader's current lists. Slices are copies; callers may not
// see later mutations.
type Snapshot struct {
	Appointments []models.Appointment
	Reminders    []models.Reminder
}

// Loader holds one session's fetched lists. Each range change issues the
// appointment and reminder fetches concurrently; the two are independent, a
// failure in one never blocks the other and degrades to an empty list. A
// generation counter ensures only the response matching the latest requested
// range is applied, so an overlapping earlier fetch can never clobber newer
// state.
type Loader struct {
	fetch Fetcher

	mu           sync.Mutex
	gen          uint64
	appointments []models.Appointment
	reminders    []models.Reminder
}

func NewLoader(fetch Fetcher) *Loader {
	return &Loader{fetch: fetch}
}

// Load re-targets the loader at rng and fetches both lists, returning the
// snapshot once both fetches settle. Fetch failures are logged and yield
// empty lists, never an error: the view renders ready-but-empty.
func (l *Loader) Load(ctx context.Context, rng Range) Snapshot {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		apps, err := l.fetch.AppointmentsForRange(ctx, rng)
		if err != nil {
			log.Println("calendar: appointment fetch failed:", err)
			apps = nil
		}
		l.apply(gen, func() { l.appointments = apps })
	}()

	go func() {
		defer wg.Done()
		rems, err := l.fetch.RemindersForRange(ctx, rng)
		if err != nil {
			log.Println("calendar: reminder fetch failed:", err)
			rems = nil
		}
		l.apply(gen, func() { l.reminders = rems })
	}()

	wg.Wait()
	return l.Snapshot()
}

// apply runs set under the lock unless a newer Load has started since.
func (l *Loader) apply(gen uint64, set func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	set()
}

// Snapshot copies the current lists.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Snapshot{
		Appointments: make([]models.Appointment, len(l.appointments)),
		Reminders:    make([]models.Reminder, len(l.reminders)),
	}
	copy(s.Appointments, l.appointments)
	copy(s.Reminders, l.reminders)
	return s
}

// RemoveAppointment drops an appointment from the held list after a
// successful backend delete. Optimistic: no re-fetch.
func (l *Loader) RemoveAppointment(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.appointments[:0]
	for _, a := range l.appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	l.appointments = kept
}

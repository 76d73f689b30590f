package calendarview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// gate holds fetches for one range open until released, and reports when the
// first fetch has arrived, so overlapping loads can be ordered exactly.
type gate struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

// stubFetcher serves canned lists and can hold individual calls open until
// released, to order overlapping loads deterministically.
type stubFetcher struct {
	mu           sync.Mutex
	appointments map[string][]models.Appointment
	reminders    map[string][]models.Reminder
	appsErr      error
	remsErr      error
	hold         map[string]*gate
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		appointments: make(map[string][]models.Appointment),
		reminders:    make(map[string][]models.Reminder),
		hold:         make(map[string]*gate),
	}
}

func (f *stubFetcher) key(r Range) string {
	return string(r.View) + "/" + r.Date.Format("2006-01-02")
}

func (f *stubFetcher) holdRange(r Range) *gate {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := &gate{entered: make(chan struct{}), release: make(chan struct{})}
	f.hold[f.key(r)] = g
	return g
}

func (f *stubFetcher) wait(r Range) {
	f.mu.Lock()
	g := f.hold[f.key(r)]
	f.mu.Unlock()
	if g != nil {
		g.once.Do(func() { close(g.entered) })
		<-g.release
	}
}

func (f *stubFetcher) AppointmentsForRange(_ context.Context, r Range) ([]models.Appointment, error) {
	f.wait(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appsErr != nil {
		return nil, f.appsErr
	}
	return f.appointments[f.key(r)], nil
}

func (f *stubFetcher) RemindersForRange(_ context.Context, r Range) ([]models.Reminder, error) {
	f.wait(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.remsErr != nil {
		return nil, f.remsErr
	}
	return f.reminders[f.key(r)], nil
}

func dayRange(date string) Range {
	d, _ := time.Parse("2006-01-02", date)
	return Range{View: ViewDay, Date: d}
}

func TestLoaderLoadsBothLists(t *testing.T) {
	f := newStubFetcher()
	r := dayRange("2025-03-15")
	f.appointments[f.key(r)] = []models.Appointment{{ID: 1, StartDate: "2025-03-15"}}
	f.reminders[f.key(r)] = []models.Reminder{{ID: 2, ReminderDate: "2025-03-15"}}

	snap := NewLoader(f).Load(context.Background(), r)

	if len(snap.Appointments) != 1 || snap.Appointments[0].ID != 1 {
		t.Errorf("appointments = %+v", snap.Appointments)
	}
	if len(snap.Reminders) != 1 || snap.Reminders[0].ID != 2 {
		t.Errorf("reminders = %+v", snap.Reminders)
	}
}

func TestLoaderFetchFailureYieldsEmptyNotError(t *testing.T) {
	f := newStubFetcher()
	r := dayRange("2025-03-15")
	f.appsErr = errors.New("backend down")
	f.reminders[f.key(r)] = []models.Reminder{{ID: 2, ReminderDate: "2025-03-15"}}

	snap := NewLoader(f).Load(context.Background(), r)

	if len(snap.Appointments) != 0 {
		t.Errorf("failed fetch should yield empty list, got %+v", snap.Appointments)
	}
	// The two fetches are independent: the reminder list still arrives.
	if len(snap.Reminders) != 1 {
		t.Errorf("reminder fetch should be unaffected, got %+v", snap.Reminders)
	}
}

func TestLoaderStaleResponseIgnored(t *testing.T) {
	f := newStubFetcher()

	stale := dayRange("2025-03-15")
	fresh := dayRange("2025-03-16")
	f.appointments[f.key(stale)] = []models.Appointment{{ID: 1, StartDate: "2025-03-15"}}
	f.appointments[f.key(fresh)] = []models.Appointment{{ID: 2, StartDate: "2025-03-16"}}

	g := f.holdRange(stale)

	l := NewLoader(f)

	done := make(chan Snapshot, 1)
	go func() {
		done <- l.Load(context.Background(), stale)
	}()

	// Wait until the first load's fetches are in flight, then start a second
	// load for a new date.
	<-g.entered
	snap := l.Load(context.Background(), fresh)
	if len(snap.Appointments) != 1 || snap.Appointments[0].ID != 2 {
		t.Fatalf("fresh load returned %+v", snap.Appointments)
	}

	// Now let the stale fetches land; they must not clobber the newer state.
	close(g.release)
	<-done

	final := l.Snapshot()
	if len(final.Appointments) != 1 || final.Appointments[0].ID != 2 {
		t.Errorf("stale response overwrote fresh state: %+v", final.Appointments)
	}
}

func TestLoaderRemoveAppointment(t *testing.T) {
	f := newStubFetcher()
	r := dayRange("2025-03-15")
	f.appointments[f.key(r)] = []models.Appointment{
		{ID: 1, StartDate: "2025-03-15"},
		{ID: 2, StartDate: "2025-03-15"},
	}

	l := NewLoader(f)
	l.Load(context.Background(), r)

	l.RemoveAppointment(1)

	snap := l.Snapshot()
	if len(snap.Appointments) != 1 || snap.Appointments[0].ID != 2 {
		t.Errorf("after removal: %+v", snap.Appointments)
	}

	// Removing an unknown id is a no-op.
	l.RemoveAppointment(99)
	if got := len(l.Snapshot().Appointments); got != 1 {
		t.Errorf("unknown-id removal changed list: %d items", got)
	}
}

func TestRangeStart(t *testing.T) {
	d := time.Date(2025, 3, 15, 13, 45, 0, 0, time.UTC) // Saturday

	cases := []struct {
		view View
		want string
	}{
		{ViewDay, "2025-03-15"},
		{ViewWeek, "2025-03-09"},
		{ViewMonth, "2025-03-01"},
	}
	for _, c := range cases {
		got := Range{View: c.view, Date: d}.Start().Format("2006-01-02")
		if got != c.want {
			t.Errorf("%s start = %s, want %s", c.view, got, c.want)
		}
	}
}

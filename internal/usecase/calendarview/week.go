package calendarview

import (
	"context"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/dto"
	"github.com/dwalbeck/job-tracker-sub001/internal/timezone"
)

type WeekViewUseCase struct {
	sessions *Registry
	nav      Navigator
}

func NewWeekView(sessions *Registry, nav Navigator) *WeekViewUseCase {
	return &WeekViewUseCase{sessions: sessions, nav: nav}
}

func (uc *WeekViewUseCase) Execute(ctx context.Context, sessionID string, date time.Time) *dto.WeekView {
	session := uc.sessions.Get(sessionID)

	rng := Range{View: ViewWeek, Date: date}
	session.SetRange(rng)
	snap := session.Loader.Load(ctx, rng)

	buckets := calendar.BucketItems(calendar.ByHour, snap.Appointments, snap.Reminders)

	today := calendar.FormatDateForAPI(timezone.Now())

	days := make([]dto.WeekDayColumn, 0, 7)
	for _, d := range calendar.WeekDates(date) {
		apiDate := calendar.FormatDateForAPI(d)
		days = append(days, dto.WeekDayColumn{
			Date:  apiDate,
			Day:   d.Day(),
			Today: apiDate == today,
			Hours: hourCells(uc.nav, buckets, d, apiDate, ViewWeek),
		})
	}

	return &dto.WeekView{
		WeekStart:    calendar.FormatDateForAPI(calendar.WeekStart(date)),
		Days:         days,
		ScrollToHour: ScrollToHour,
		Links:        viewLinks(uc.nav, date),
	}
}

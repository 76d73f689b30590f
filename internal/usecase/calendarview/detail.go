package calendarview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/activity"
	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/dto"
	"github.com/dwalbeck/job-tracker-sub001/internal/httperr"
)

// ===============================
// Detail (modal payload)
// ===============================

type AppointmentDetailUseCase struct {
	api *backend.Client
	nav Navigator
}

func NewAppointmentDetail(api *backend.Client, nav Navigator) *AppointmentDetailUseCase {
	return &AppointmentDetailUseCase{api: api, nav: nav}
}

func (uc *AppointmentDetailUseCase) Execute(ctx context.Context, id int, view View, date time.Time) (*dto.AppointmentDetail, error) {
	ap, err := uc.api.GetAppointment(ctx, id)
	if err != nil {
		var se *backend.StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	participants := "None"
	if len(ap.Participants) > 0 {
		participants = strings.Join(ap.Participants, ", ")
	}

	outcome := ""
	if ap.OutcomeScore != nil {
		outcome = fmt.Sprintf("%d / 10", *ap.OutcomeScore)
	}

	return &dto.AppointmentDetail{
		ID:             ap.ID,
		Company:        ap.Company,
		CalendarType:   ap.CalendarType,
		StartDate:      ap.StartDate,
		StartDisplay:   calendar.FormatTimeDisplay(ap.StartTime),
		EndDate:        ap.EndDate,
		EndDisplay:     calendar.FormatTimeDisplay(ap.EndTime),
		DurationHours:  ap.Duration(),
		Participants:   participants,
		Description:    ap.Description,
		Note:           ap.Note,
		OutcomeDisplay: outcome,
		Link:           ap.Link,
		EditURL:        uc.nav.EditURL(ap.ID, view, date),
	}, nil
}

// ===============================
// Delete
// ===============================

type DeleteAppointmentUseCase struct {
	api      *backend.Client
	sessions *Registry
	activity *activity.Dispatcher
}

func NewDeleteAppointment(api *backend.Client, sessions *Registry, dispatcher *activity.Dispatcher) *DeleteAppointmentUseCase {
	return &DeleteAppointmentUseCase{api: api, sessions: sessions, activity: dispatcher}
}

// Execute deletes against the backend, then removes the item from the owning
// session's in-memory list without a re-fetch. On backend failure the list is
// left untouched so the modal can offer a retry.
func (uc *DeleteAppointmentUseCase) Execute(ctx context.Context, sessionID string, id int) error {
	if err := uc.api.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.sessions.Get(sessionID).Loader.RemoveAppointment(id)

	uc.activity.Dispatch(activity.Event{
		SessionID: sessionID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &id,
	})

	return nil
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dwalbeck/job-tracker-sub001/internal/activity"
	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/httperr"
	"github.com/dwalbeck/job-tracker-sub001/internal/httpresp"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
	"github.com/dwalbeck/job-tracker-sub001/internal/timezone"
)

// ======================================================
// REMINDERS (pass-through to the backend API)
// ======================================================

type RemindersHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewRemindersHandler(api *backend.Client, dispatcher *activity.Dispatcher) *RemindersHandler {
	return &RemindersHandler{api: api, activity: dispatcher}
}

// List fetches reminders for a range. ?duration= is "day", "week" or "month"
// (default "month") and ?start_date= is the range's first date, defaulting to
// today.
func (h *RemindersHandler) List(c *gin.Context) {
	duration := c.DefaultQuery("duration", "month")
	switch duration {
	case "day", "week", "month":
	default:
		httperr.BadRequest(c, "invalid_duration", "Duration must be day, week or month.")
		return
	}

	startDate := c.Query("start_date")
	if startDate == "" {
		startDate = calendar.FormatDateForAPI(timezone.Now())
	} else if _, err := calendar.ParseAPIDate(startDate, timezone.Now().Location()); err != nil {
		httperr.BadRequest(c, "invalid_date", "Start date must be YYYY-MM-DD.")
		return
	}

	reminders, err := h.api.Reminders(c.Request.Context(), duration, startDate)
	if err != nil {
		httperr.BadGateway(c, "backend_unavailable", "Could not list reminders.")
		return
	}
	httpresp.List(c, reminders)
}

func (h *RemindersHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reminder id must be an integer.")
		return
	}

	reminder, err := h.api.GetReminder(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "reminder_not_found", "Reminder not found.")
			return
		}
		httperr.BadGateway(c, "backend_unavailable", "Could not load the reminder.")
		return
	}
	httpresp.OK(c, reminder)
}

func (h *RemindersHandler) Create(c *gin.Context) {
	var req models.Reminder
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reminder payload.")
		return
	}

	created, err := h.api.CreateReminder(c.Request.Context(), &req)
	if err != nil {
		httperr.BadGateway(c, "create_failed", "Could not create the reminder.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "reminder_created",
		Entity:    "reminder",
		EntityID:  &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}

func (h *RemindersHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reminder id must be an integer.")
		return
	}

	var req models.Reminder
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reminder payload.")
		return
	}

	updated, err := h.api.UpdateReminder(c.Request.Context(), id, &req)
	if err != nil {
		httperr.BadGateway(c, "update_failed", "Could not update the reminder.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "reminder_updated",
		Entity:    "reminder",
		EntityID:  &id,
	})

	httpresp.OK(c, updated)
}

func (h *RemindersHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Reminder id must be an integer.")
		return
	}

	if err := h.api.DeleteReminder(c.Request.Context(), id); err != nil {
		httperr.BadGateway(c, "delete_failed", "Could not delete the reminder.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "reminder_deleted",
		Entity:    "reminder",
		EntityID:  &id,
	})

	c.Status(http.StatusNoContent)
}

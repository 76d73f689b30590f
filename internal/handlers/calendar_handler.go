package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
	"github.com/dwalbeck/job-tracker-sub001/internal/domain/calendar"
	"github.com/dwalbeck/job-tracker-sub001/internal/httperr"
	"github.com/dwalbeck/job-tracker-sub001/internal/ics"
	"github.com/dwalbeck/job-tracker-sub001/internal/middleware"
	"github.com/dwalbeck/job-tracker-sub001/internal/timezone"
	"github.com/dwalbeck/job-tracker-sub001/internal/usecase/calendarview"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	monthView *calendarview.MonthViewUseCase
	weekView  *calendarview.WeekViewUseCase
	dayView   *calendarview.DayViewUseCase
	detail    *calendarview.AppointmentDetailUseCase
	deleteUC  *calendarview.DeleteAppointmentUseCase
	api       *backend.Client
}

func NewCalendarHandler(
	monthView *calendarview.MonthViewUseCase,
	weekView *calendarview.WeekViewUseCase,
	dayView *calendarview.DayViewUseCase,
	detail *calendarview.AppointmentDetailUseCase,
	deleteUC *calendarview.DeleteAppointmentUseCase,
	api *backend.Client,
) *CalendarHandler {
	return &CalendarHandler{
		monthView: monthView,
		weekView:  weekView,
		dayView:   dayView,
		detail:    detail,
		deleteUC:  deleteUC,
		api:       api,
	}
}

// ======================================================
// HELPERS
// ======================================================

// dateParam reads ?date=YYYY-MM-DD, defaulting to today in the display zone.
func dateParam(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return calendar.Midnight(timezone.Now()), true
	}

	date, err := calendar.ParseAPIDate(dateStr, timezone.Now().Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return time.Time{}, false
	}
	return date, true
}

func sessionID(c *gin.Context) string {
	return c.MustGet(middleware.ContextSessionID).(string)
}

// ======================================================
// VIEWS
// ======================================================

func (h *CalendarHandler) Month(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	view := h.monthView.Execute(c.Request.Context(), sessionID(c), date)
	c.JSON(http.StatusOK, view)
}

func (h *CalendarHandler) Week(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	view := h.weekView.Execute(c.Request.Context(), sessionID(c), date)
	c.JSON(http.StatusOK, view)
}

func (h *CalendarHandler) Day(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	view := h.dayView.Execute(c.Request.Context(), sessionID(c), date)
	c.JSON(http.StatusOK, view)
}

// ======================================================
// DETAIL (MODAL)
// ======================================================

func (h *CalendarHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be an integer.")
		return
	}

	// Return context for the edit link; defaults keep the link usable even
	// when the caller omits them.
	view := calendarview.View(c.DefaultQuery("view", string(calendarview.ViewMonth)))
	date, ok := dateParam(c)
	if !ok {
		return
	}

	detail, err := h.detail.Execute(c.Request.Context(), id, view, date)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.BadGateway(c, "backend_unavailable", "Could not load the appointment.")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ======================================================
// DELETE
// ======================================================

func (h *CalendarHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be an integer.")
		return
	}

	// The confirmation prompt is the browser's; an issued DELETE is already
	// confirmed. On failure the held list stays untouched so the modal can
	// re-enable its delete button.
	if err := h.deleteUC.Execute(c.Request.Context(), sessionID(c), id); err != nil {
		httperr.BadGateway(c, "delete_failed", "Could not delete the appointment.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// ICS EXPORT
// ======================================================

func (h *CalendarHandler) ExportMonth(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		httperr.BadRequest(c, "missing_month", "Month is required (YYYY-MM).")
		return
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		httperr.BadRequest(c, "invalid_month", "Month must be YYYY-MM.")
		return
	}

	apps, err := h.api.AppointmentsForMonth(c.Request.Context(), month)
	if err != nil {
		httperr.BadGateway(c, "backend_unavailable", "Could not load appointments.")
		return
	}

	feed := ics.ExportMonth(apps, timezone.Now().Location())
	c.Header("Content-Disposition", `attachment; filename="calendar-`+month+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

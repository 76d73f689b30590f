package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dwalbeck/job-tracker-sub001/internal/httperr"
	"github.com/dwalbeck/job-tracker-sub001/internal/httpresp"
	"github.com/dwalbeck/job-tracker-sub001/internal/selection"
)

// ======================================================
// SELECTION (current job / active reminder per session)
// ======================================================

type SelectionHandler struct {
	store *selection.Store
}

func NewSelectionHandler(store *selection.Store) *SelectionHandler {
	return &SelectionHandler{store: store}
}

// Get returns both selections at once. Missing selections come back null
// rather than erroring, so the dashboard can render in one round trip.
func (h *SelectionHandler) Get(c *gin.Context) {
	sid := sessionID(c)
	ctx := c.Request.Context()

	job, err := h.store.Job(ctx, sid)
	if err != nil && !errors.Is(err, selection.ErrNotSet) {
		httperr.Internal(c, "selection_failed", "Could not load the selection.")
		return
	}

	reminder, err := h.store.Reminder(ctx, sid)
	if err != nil && !errors.Is(err, selection.ErrNotSet) {
		httperr.Internal(c, "selection_failed", "Could not load the selection.")
		return
	}

	httpresp.OK(c, gin.H{
		"job":      job,
		"reminder": reminder,
	})
}

func (h *SelectionHandler) SetJob(c *gin.Context) {
	var req selection.SelectedJob
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		httperr.BadRequest(c, "invalid_request", "Invalid job selection payload.")
		return
	}

	if err := h.store.SetJob(c.Request.Context(), sessionID(c), req); err != nil {
		httperr.Internal(c, "selection_failed", "Could not save the selection.")
		return
	}
	httpresp.OK(c, req)
}

func (h *SelectionHandler) ClearJob(c *gin.Context) {
	if err := h.store.ClearJob(c.Request.Context(), sessionID(c)); err != nil {
		httperr.Internal(c, "selection_failed", "Could not clear the selection.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SelectionHandler) SetReminder(c *gin.Context) {
	var req selection.ActiveReminder
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		httperr.BadRequest(c, "invalid_request", "Invalid reminder selection payload.")
		return
	}

	if err := h.store.SetReminder(c.Request.Context(), sessionID(c), req); err != nil {
		httperr.Internal(c, "selection_failed", "Could not save the selection.")
		return
	}
	httpresp.OK(c, req)
}

func (h *SelectionHandler) ClearReminder(c *gin.Context) {
	if err := h.store.ClearReminder(c.Request.Context(), sessionID(c)); err != nil {
		httperr.Internal(c, "selection_failed", "Could not clear the selection.")
		return
	}
	c.Status(http.StatusNoContent)
}

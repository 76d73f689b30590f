package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dwalbeck/job-tracker-sub001/internal/activity"
	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
	"github.com/dwalbeck/job-tracker-sub001/internal/httperr"
	"github.com/dwalbeck/job-tracker-sub001/internal/httpresp"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// ======================================================
// NOTES (pass-through to the backend API)
// ======================================================

type NotesHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewNotesHandler(api *backend.Client, dispatcher *activity.Dispatcher) *NotesHandler {
	return &NotesHandler{api: api, activity: dispatcher}
}

func (h *NotesHandler) List(c *gin.Context) {
	notes, err := h.api.ListNotes(c.Request.Context(), jobIDFilter(c))
	if err != nil {
		httperr.BadGateway(c, "backend_unavailable", "Could not list notes.")
		return
	}
	httpresp.List(c, notes)
}

func (h *NotesHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Note id must be an integer.")
		return
	}

	note, err := h.api.GetNote(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "note_not_found", "Note not found.")
			return
		}
		httperr.BadGateway(c, "backend_unavailable", "Could not load the note.")
		return
	}
	httpresp.OK(c, note)
}

func (h *NotesHandler) Create(c *gin.Context) {
	var req models.Note
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid note payload.")
		return
	}

	created, err := h.api.CreateNote(c.Request.Context(), &req)
	if err != nil {
		httperr.BadGateway(c, "create_failed", "Could not create the note.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "note_created",
		Entity:    "note",
		EntityID:  &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}

func (h *NotesHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Note id must be an integer.")
		return
	}

	var req models.Note
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid note payload.")
		return
	}

	updated, err := h.api.UpdateNote(c.Request.Context(), id, &req)
	if err != nil {
		httperr.BadGateway(c, "update_failed", "Could not update the note.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "note_updated",
		Entity:    "note",
		EntityID:  &id,
	})

	httpresp.OK(c, updated)
}

func (h *NotesHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Note id must be an integer.")
		return
	}

	if err := h.api.DeleteNote(c.Request.Context(), id); err != nil {
		httperr.BadGateway(c, "delete_failed", "Could not delete the note.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "note_deleted",
		Entity:    "note",
		EntityID:  &id,
	})

	c.Status(http.StatusNoContent)
}

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
// RESUMES / COVER LETTERS (pass-through to the backend API)
// ======================================================
// Editor content goes through untouched; rendering to PDF/DOCX stays on the
// backend.

type DocumentsHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewDocumentsHandler(api *backend.Client, dispatcher *activity.Dispatcher) *DocumentsHandler {
	return &DocumentsHandler{api: api, activity: dispatcher}
}

// ------------------------------
// Resumes
// ------------------------------

func (h *DocumentsHandler) ListResumes(c *gin.Context) {
	resumes, err := h.api.ListResumes(c.Request.Context())
	if err != nil {
		httperr.BadGateway(c, "backend_unavailable", "Could not list resumes.")
		return
	}
	httpresp.List(c, resumes)
}

func (h *DocumentsHandler) GetResume(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Resume id must be an integer.")
		return
	}

	resume, err := h.api.GetResume(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "resume_not_found", "Resume not found.")
			return
		}
		httperr.BadGateway(c, "backend_unavailable", "Could not load the resume.")
		return
	}
	httpresp.OK(c, resume)
}

func (h *DocumentsHandler) CreateResume(c *gin.Context) {
	var req models.Resume
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid resume payload.")
		return
	}

	created, err := h.api.CreateResume(c.Request.Context(), &req)
	if err != nil {
		httperr.BadGateway(c, "create_failed", "Could not create the resume.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "resume_created",
		Entity:    "resume",
		EntityID:  &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}

func (h *DocumentsHandler) UpdateResume(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Resume id must be an integer.")
		return
	}

	var req models.Resume
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid resume payload.")
		return
	}

	updated, err := h.api.UpdateResume(c.Request.Context(), id, &req)
	if err != nil {
		httperr.BadGateway(c, "update_failed", "Could not update the resume.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "resume_updated",
		Entity:    "resume",
		EntityID:  &id,
	})

	httpresp.OK(c, updated)
}

func (h *DocumentsHandler) DeleteResume(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Resume id must be an integer.")
		return
	}

	if err := h.api.DeleteResume(c.Request.Context(), id); err != nil {
		httperr.BadGateway(c, "delete_failed", "Could not delete the resume.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "resume_deleted",
		Entity:    "resume",
		EntityID:  &id,
	})

	c.Status(http.StatusNoContent)
}

// ------------------------------
// Cover letters
// ------------------------------

func (h *DocumentsHandler) ListCoverLetters(c *gin.Context) {
	letters, err := h.api.ListCoverLetters(c.Request.Context())
	if err != nil {
		httperr.BadGateway(c, "backend_unavailable", "Could not list cover letters.")
		return
	}
	httpresp.List(c, letters)
}

func (h *DocumentsHandler) GetCoverLetter(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Cover letter id must be an integer.")
		return
	}

	letter, err := h.api.GetCoverLetter(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "cover_letter_not_found", "Cover letter not found.")
			return
		}
		httperr.BadGateway(c, "backend_unavailable", "Could not load the cover letter.")
		return
	}
	httpresp.OK(c, letter)
}

func (h *DocumentsHandler) CreateCoverLetter(c *gin.Context) {
	var req models.CoverLetter
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid cover letter payload.")
		return
	}

	created, err := h.api.CreateCoverLetter(c.Request.Context(), &req)
	if err != nil {
		httperr.BadGateway(c, "create_failed", "Could not create the cover letter.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "cover_letter_created",
		Entity:    "cover_letter",
		EntityID:  &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}

func (h *DocumentsHandler) UpdateCoverLetter(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Cover letter id must be an integer.")
		return
	}

	var req models.CoverLetter
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid cover letter payload.")
		return
	}

	updated, err := h.api.UpdateCoverLetter(c.Request.Context(), id, &req)
	if err != nil {
		httperr.BadGateway(c, "update_failed", "Could not update the cover letter.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "cover_letter_updated",
		Entity:    "cover_letter",
		EntityID:  &id,
	})

	httpresp.OK(c, updated)
}

func (h *DocumentsHandler) DeleteCoverLetter(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Cover letter id must be an integer.")
		return
	}

	if err := h.api.DeleteCoverLetter(c.Request.Context(), id); err != nil {
		httperr.BadGateway(c, "delete_failed", "Could not delete the cover letter.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "cover_letter_deleted",
		Entity:    "cover_letter",
		EntityID:  &id,
	})

	c.Status(http.StatusNoContent)
}

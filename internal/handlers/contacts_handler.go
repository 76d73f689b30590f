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
// CONTACTS (pass-through to the backend API)
// ======================================================

type ContactsHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewContactsHandler(api *backend.Client, dispatcher *activity.Dispatcher) *ContactsHandler {
	return &ContactsHandler{api: api, activity: dispatcher}
}

func (h *ContactsHandler) List(c *gin.Context) {
	contacts, err := h.api.ListContacts(c.Request.Context(), jobIDFilter(c))
	if err != nil {
		httperr.BadGateway(c, "backend_unavailable", "Could not list contacts.")
		return
	}
	httpresp.List(c, contacts)
}

func (h *ContactsHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Contact id must be an integer.")
		return
	}

	contact, err := h.api.GetContact(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "contact_not_found", "Contact not found.")
			return
		}
		httperr.BadGateway(c, "backend_unavailable", "Could not load the contact.")
		return
	}
	httpresp.OK(c, contact)
}

func (h *ContactsHandler) Create(c *gin.Context) {
	var req models.Contact
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid contact payload.")
		return
	}

	created, err := h.api.CreateContact(c.Request.Context(), &req)
	if err != nil {
		httperr.BadGateway(c, "create_failed", "Could not create the contact.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "contact_created",
		Entity:    "contact",
		EntityID:  &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}

func (h *ContactsHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Contact id must be an integer.")
		return
	}

	var req models.Contact
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid contact payload.")
		return
	}

	updated, err := h.api.UpdateContact(c.Request.Context(), id, &req)
	if err != nil {
		httperr.BadGateway(c, "update_failed", "Could not update the contact.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "contact_updated",
		Entity:    "contact",
		EntityID:  &id,
	})

	httpresp.OK(c, updated)
}

func (h *ContactsHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Contact id must be an integer.")
		return
	}

	if err := h.api.DeleteContact(c.Request.Context(), id); err != nil {
		httperr.BadGateway(c, "delete_failed", "Could not delete the contact.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "contact_deleted",
		Entity:    "contact",
		EntityID:  &id,
	})

	c.Status(http.StatusNoContent)
}

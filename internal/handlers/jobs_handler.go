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
// JOBS (pass-through to the backend API)
// ======================================================

type JobsHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewJobsHandler(api *backend.Client, dispatcher *activity.Dispatcher) *JobsHandler {
	return &JobsHandler{api: api, activity: dispatcher}
}

func (h *JobsHandler) List(c *gin.Context) {
	jobs, err := h.api.ListJobs(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.BadGateway(c, "backend_unavailable", "Could not list jobs.")
		return
	}
	httpresp.List(c, jobs)
}

func (h *JobsHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Job id must be an integer.")
		return
	}

	job, err := h.api.GetJob(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "job_not_found", "Job not found.")
			return
		}
		httperr.BadGateway(c, "backend_unavailable", "Could not load the job.")
		return
	}
	httpresp.OK(c, job)
}

func (h *JobsHandler) Create(c *gin.Context) {
	var req models.Job
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid job payload.")
		return
	}

	created, err := h.api.CreateJob(c.Request.Context(), &req)
	if err != nil {
		httperr.BadGateway(c, "create_failed", "Could not create the job.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "job_created",
		Entity:    "job",
		EntityID:  &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}

func (h *JobsHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Job id must be an integer.")
		return
	}

	var req models.Job
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid job payload.")
		return
	}

	updated, err := h.api.UpdateJob(c.Request.Context(), id, &req)
	if err != nil {
		httperr.BadGateway(c, "update_failed", "Could not update the job.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "job_updated",
		Entity:    "job",
		EntityID:  &id,
	})

	httpresp.OK(c, updated)
}

func (h *JobsHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Job id must be an integer.")
		return
	}

	if err := h.api.DeleteJob(c.Request.Context(), id); err != nil {
		httperr.BadGateway(c, "delete_failed", "Could not delete the job.")
		return
	}

	h.activity.Dispatch(activity.Event{
		SessionID: sessionID(c),
		Action:    "job_deleted",
		Entity:    "job",
		EntityID:  &id,
	})

	c.Status(http.StatusNoContent)
}

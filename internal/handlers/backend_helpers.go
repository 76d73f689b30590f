package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
)

func isNotFound(err error) bool {
	var se *backend.StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// jobIDFilter reads an optional ?job_id= query used to scope list endpoints.
func jobIDFilter(c *gin.Context) *int {
	raw := c.Query("job_id")
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &id
}

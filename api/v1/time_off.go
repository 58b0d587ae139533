package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/services"
)

// TimeOffController adds the review endpoint to the time-off resource
type TimeOffController struct {
	timeOffService *services.TimeOffService
}

// NewTimeOffController creates a new time-off controller
func NewTimeOffController(timeOffService *services.TimeOffService) *TimeOffController {
	return &TimeOffController{timeOffService: timeOffService}
}

// Review approves or rejects a pending request
func (t *TimeOffController) Review(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewTimeOffRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := t.timeOffService.Review(c.Param("id"), reviewerID, req.Status)
	if err != nil {
		respondError(c, err, "review time-off request")
		return
	}

	respondOK(c, request)
}

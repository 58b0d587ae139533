package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/workforce-hub/services"
)

// AttendanceController handles the daily attendance register
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// RegisterRoutes registers attendance routes
func (a *AttendanceController) RegisterRoutes(router *gin.RouterGroup) {
	attendance := router.Group("/attendance")
	{
		attendance.GET("", a.List)
		attendance.GET("/today", a.Today)
		attendance.POST("/check-in", a.CheckIn)
		attendance.POST("/check-out", a.CheckOut)
	}
}

// List returns attendance records. Admins see everyone and may narrow the
// result with ?userId; other users only see their own records.
func (a *AttendanceController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scope := userID
	if isAdmin(c) {
		scope = c.Query("userId")
	}

	records, err := a.attendanceService.List(scope)
	if err != nil {
		respondError(c, err, "retrieve attendance")
		return
	}

	respondOK(c, records)
}

// Today returns the caller's record for the current day or null
func (a *AttendanceController) Today(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := a.attendanceService.Today(userID)
	if err != nil {
		respondError(c, err, "retrieve attendance")
		return
	}

	respondOK(c, record)
}

func (a *AttendanceController) CheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := a.attendanceService.CheckIn(userID)
	if err != nil {
		respondError(c, err, "check in")
		return
	}

	respondOK(c, record)
}

// CheckOut answers null data when the caller has not checked in today
func (a *AttendanceController) CheckOut(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := a.attendanceService.CheckOut(userID)
	if err != nil {
		respondError(c, err, "check out")
		return
	}

	respondOK(c, record)
}

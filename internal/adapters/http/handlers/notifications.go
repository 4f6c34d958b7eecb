package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-motivation/internal/app"
)

// NotificationHandler schedules and cancels daily reminders.
type NotificationHandler struct {
	reminders *app.ReminderService
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(reminders *app.ReminderService) *NotificationHandler {
	return &NotificationHandler{reminders: reminders}
}

// Schedule handles POST /api/v1/notifications/schedule
// Schedules the next reminder at the given "HH:mm" local time, or at the
// profile's notificationTime when the body omits it. A pending reminder of
// the same profile is replaced.
//
// @Summary Schedule the daily reminder
// @Tags notifications
// @Accept json
// @Produce json
// @Param body body dto.ScheduleRequest false "Reminder time"
// @Success 202 {object} dto.ScheduleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/notifications/schedule [post]
func (h *NotificationHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if c.Request.ContentLength != 0 {
		if err := dto.BindAndValidate(c, &req); err != nil {
			dto.HandleError(c, err)
			return
		}
	}

	profile := middleware.GetProfile(c)

	handle, err := h.reminders.ScheduleDaily(c.Request.Context(), profile, req.Time)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ScheduleResponse{
		Profile:     profile,
		ScheduledAt: handle.At,
		Quote:       dto.NewQuoteResponse(handle.Quote),
	})
}

// Cancel handles DELETE /api/v1/notifications/schedule
//
// @Summary Cancel the pending daily reminder
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.CancelResponse
// @Router /api/v1/notifications/schedule [delete]
func (h *NotificationHandler) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CancelResponse{
		Cancelled: h.reminders.Cancel(middleware.GetProfile(c)),
	})
}

// RegisterNotificationRoutes registers the reminder routes.
func (h *NotificationHandler) RegisterNotificationRoutes(rg *gin.RouterGroup) {
	schedule := rg.Group("/notifications/schedule")
	schedule.POST("", h.Schedule)
	schedule.DELETE("", h.Cancel)
}

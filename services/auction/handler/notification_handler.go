package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type NotificationServiceInterface interface {
	Recent(userID string, limit, offset int) ([]model.Notification, error)
	ClearAll(userID string) (int, error)
}

type SchedulerInterface interface {
	Reprocess(jobID string) (model.ScheduledJob, error)
}

type NotificationHandler struct {
	service NotificationServiceInterface
}

func NewNotificationHandler(service NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotificationsHandler handles GET /users/:user_id/notifications
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.service.Recent(userID, limit, offset)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListNotificationsHandler: error retrieving notifications", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, helpers.ToNotificationResponse(n))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "notifications retrieved successfully")
	helpers.LogSuccess("ListNotificationsHandler", "notifications retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// ClearNotificationsHandler handles DELETE /users/:user_id/notifications
func (h *NotificationHandler) ClearNotificationsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	count, err := h.service.ClearAll(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClearNotificationsHandler: error clearing notifications", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"deleted": count}, "notifications cleared successfully")
	helpers.LogSuccess("ClearNotificationsHandler", "notifications cleared successfully", map[string]any{
		"user_id": userID,
		"deleted": count,
	})
}

type SchedulerHandler struct {
	sweeper SchedulerInterface
}

func NewSchedulerHandler(sweeper SchedulerInterface) *SchedulerHandler {
	return &SchedulerHandler{sweeper: sweeper}
}

// ReprocessJobHandler handles POST /jobs/:job_id/reprocess. Failed jobs are
// never retried by the sweep; this is the explicit operator path.
func (h *SchedulerHandler) ReprocessJobHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	job, err := h.sweeper.Reprocess(jobID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ReprocessJobHandler: failed to reprocess job", map[string]any{"job_id": jobID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToJobResponse(job), "job reprocessed")
	helpers.LogSuccess("ReprocessJobHandler", "job reprocessed", map[string]any{
		"job_id": job.JobID,
		"status": string(job.Status),
	})
}

package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "github.com/notfound999/reservations/internal/handler/dto/response"
	"github.com/notfound999/reservations/internal/handler/httperr"
	"github.com/notfound999/reservations/internal/handler/middleware"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/commands"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary Latest notifications
// @Description List the ten most recent notifications for the authenticated user
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) Latest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	views, err := h.q.Latest(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notifications", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Unread count
// @Description Count unread notifications for the authenticated user
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	count, err := h.q.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count notifications", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// @Summary Mark notification read
// @Description Mark one of the authenticated user's notifications as read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotificationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
		case errors.Is(err, errs.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not authorized to access this notification", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark notification read", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Description Mark every unread notification of the authenticated user as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	count, err := h.cmds.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark notifications read", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}

package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
)

const notificationLimit = 100

type NotificationHandler struct {
	repo repositories.NotificationRepository
	log  *zap.Logger
}

func NewNotificationHandler(repo repositories.NotificationRepository, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		repo: repo,
		log:  log,
	}
}

// HandleListNotifications accepts ?filter=all|unread|read. The unread count always
// covers every notification of the caller.
func (h *NotificationHandler) HandleListNotifications(c *fiber.Ctx) error {
	filter := strings.ToLower(strings.TrimSpace(c.Query("filter", models.NotificationsAll)))
	switch filter {
	case models.NotificationsAll, models.NotificationsUnread, models.NotificationsRead:
	default:
		return badRequest(c, "filter must be one of: all, unread, read")
	}

	id := mustUserID(c)
	notifications, err := h.repo.FindByUserID(id, filter, notificationLimit)
	if err != nil {
		return h.internalError(c, "failed to load notifications", err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	unread, err := h.repo.CountUnread(id)
	if err != nil {
		return h.internalError(c, "failed to count notifications", err)
	}

	return c.JSON(models.NotificationListResponse{
		Notifications: notifications,
		Unread:        unread,
	})
}

func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid notification ID format")
	}

	if err := h.repo.MarkRead(mustUserID(c), notificationID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFound(c, "Notification not found")
		}
		return h.internalError(c, "failed to update notification", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) HandleMarkAllRead(c *fiber.Ctx) error {
	updated, err := h.repo.MarkAllRead(mustUserID(c))
	if err != nil {
		return h.internalError(c, "failed to update notifications", err)
	}

	return c.JSON(fiber.Map{
		"updated": updated,
	})
}

func (h *NotificationHandler) HandleDeleteNotification(c *fiber.Ctx) error {
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid notification ID format")
	}

	if err := h.repo.Delete(mustUserID(c), notificationID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFound(c, "Notification not found")
		}
		return h.internalError(c, "failed to delete notification", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

package handlers

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
	"plotforma/admissions-guide/internal/services"
)

// DeadlineHandler serves the caller's personal deadline calendar.
type DeadlineHandler struct {
	repo repositories.DeadlineRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewDeadlineHandler(repo repositories.DeadlineRepository, log *zap.Logger) *DeadlineHandler {
	return &DeadlineHandler{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

// HandleListDeadlines filters by ?category=; "all" or nothing lists every deadline.
func (h *DeadlineHandler) HandleListDeadlines(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	if strings.EqualFold(category, "all") {
		category = ""
	}
	if category != "" {
		var ok bool
		if category, ok = normalizeChoice(category, models.DeadlineCategories); !ok {
			return badRequest(c, "category must be one of: all, "+strings.Join(models.DeadlineCategories, ", "))
		}
	}

	deadlines, err := h.repo.FindByUserID(mustUserID(c), category)
	if err != nil {
		return h.internalError(c, "failed to load deadlines", err)
	}

	views, dueSoon := services.UserDeadlineViews(deadlines, h.now())
	return c.JSON(models.DeadlineListResponse{
		Deadlines: views,
		DueSoon:   dueSoon,
	})
}

func (h *DeadlineHandler) HandleCreateDeadline(c *fiber.Ctx) error {
	var req models.DeadlineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	title := strings.TrimSpace(req.Title)
	date := strings.TrimSpace(req.Date)
	if title == "" || date == "" {
		return badRequest(c, "title and date are required")
	}
	if _, ok := services.DaysUntil(date, h.now()); !ok {
		return badRequest(c, "date must be formatted as YYYY-MM-DD")
	}

	category := models.DefaultDeadlineCategory
	if strings.TrimSpace(req.Category) != "" {
		var ok bool
		if category, ok = normalizeChoice(req.Category, models.DeadlineCategories); !ok {
			return badRequest(c, "category must be one of: "+strings.Join(models.DeadlineCategories, ", "))
		}
	}

	priority := models.DefaultDeadlinePriority
	if strings.TrimSpace(req.Priority) != "" {
		var ok bool
		if priority, ok = normalizeChoice(req.Priority, models.DeadlinePriorities); !ok {
			return badRequest(c, "priority must be one of: "+strings.Join(models.DeadlinePriorities, ", "))
		}
	}

	now := h.now()
	deadline := models.UserDeadline{
		UserID:     mustUserID(c),
		Title:      title,
		Date:       date,
		Category:   category,
		University: strings.TrimSpace(req.University),
		Priority:   priority,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.repo.Create(&deadline); err != nil {
		return h.internalError(c, "failed to save deadline", err)
	}

	views, _ := services.UserDeadlineViews([]models.UserDeadline{deadline}, now)
	return c.Status(fiber.StatusCreated).JSON(views[0])
}

func (h *DeadlineHandler) HandleCompleteDeadline(c *fiber.Ctx) error {
	deadlineID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid deadline ID format")
	}

	now := h.now()
	deadline, err := h.repo.MarkComplete(mustUserID(c), deadlineID, now)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFound(c, "Deadline not found")
		}
		return h.internalError(c, "failed to complete deadline", err)
	}

	views, _ := services.UserDeadlineViews([]models.UserDeadline{*deadline}, now)
	return c.JSON(views[0])
}

func (h *DeadlineHandler) HandleDeleteDeadline(c *fiber.Ctx) error {
	deadlineID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid deadline ID format")
	}

	if err := h.repo.Delete(mustUserID(c), deadlineID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFound(c, "Deadline not found")
		}
		return h.internalError(c, "failed to delete deadline", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DeadlineHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

// normalizeChoice maps value onto its canonical spelling in choices, ignoring case.
func normalizeChoice(value string, choices []string) (string, bool) {
	value = strings.TrimSpace(value)
	i := slices.IndexFunc(choices, func(choice string) bool {
		return strings.EqualFold(choice, value)
	})
	if i < 0 {
		return "", false
	}
	return choices[i], true
}

package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Chat       *ChatHandler
	Evaluation *EvaluationHandler
	Profile    *ProfileHandler
	Upload     *UploadHandler
	Catalog    *CatalogHandler
	Search     *SearchHandler

	Deadlines     *DeadlineHandler
	Notifications *NotificationHandler
}

// RegisterRoutes mounts the API on router, normally the /api/v1 group.
func RegisterRoutes(router fiber.Router, h *Handlers) {
	router.Use(Identify())

	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	router.Post("/chat", h.Chat.HandleChat)
	router.Post("/evaluate", h.Evaluation.HandleEvaluate)

	router.Get("/universities", h.Catalog.HandleListUniversities)
	router.Get("/universities/compare", h.Catalog.HandleCompareUniversities)
	router.Get("/universities/:id", h.Catalog.HandleGetUniversity)
	router.Get("/scholarships", h.Catalog.HandleListScholarships)
	router.Get("/visa-guides", h.Catalog.HandleListVisaGuides)
	router.Get("/exams", h.Catalog.HandleListExams)
	router.Get("/deadlines", h.Catalog.HandleListDeadlines)
	router.Get("/startups", h.Catalog.HandleListStartups)
	router.Get("/success-stories", h.Catalog.HandleListSuccessStories)
	router.Get("/mentors", h.Catalog.HandleListMentors)

	router.Get("/search/programs", h.Search.HandleSearchPrograms)

	me := router.Group("/me", RequireUser())
	me.Get("/chat", h.Chat.HandleTranscript)
	me.Post("/evaluate", h.Evaluation.HandleEvaluateProfile)
	me.Get("/evaluations", h.Evaluation.HandleHistory)
	me.Get("/evaluations/:id", h.Evaluation.HandleGetResult)
	me.Get("/profile", h.Profile.HandleGetProfile)
	me.Put("/profile", h.Profile.HandleUpdateProfile)
	me.Get("/test-scores", h.Profile.HandleListTestScores)
	me.Post("/test-scores", h.Profile.HandleAddTestScore)
	me.Get("/activities", h.Profile.HandleListActivities)
	me.Post("/activities", h.Profile.HandleCreateActivity)
	me.Put("/activities/:id", h.Profile.HandleUpdateActivity)
	me.Delete("/activities/:id", h.Profile.HandleDeleteActivity)
	me.Get("/documents", h.Upload.HandleListDocuments)
	me.Post("/documents", h.Upload.HandleUpload)
	me.Get("/documents/:id", h.Upload.HandleGetDocument)
	me.Get("/deadlines", h.Deadlines.HandleListDeadlines)
	me.Post("/deadlines", h.Deadlines.HandleCreateDeadline)
	me.Post("/deadlines/:id/complete", h.Deadlines.HandleCompleteDeadline)
	me.Delete("/deadlines/:id", h.Deadlines.HandleDeleteDeadline)
	me.Get("/notifications", h.Notifications.HandleListNotifications)
	me.Post("/notifications/read-all", h.Notifications.HandleMarkAllRead)
	me.Post("/notifications/:id/read", h.Notifications.HandleMarkRead)
	me.Delete("/notifications/:id", h.Notifications.HandleDeleteNotification)
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

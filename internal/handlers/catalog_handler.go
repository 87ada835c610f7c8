package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"plotforma/admissions-guide/internal/catalog"
	"plotforma/admissions-guide/internal/services"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		now:     time.Now,
	}
}

func (h *CatalogHandler) HandleListUniversities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"universities": h.catalog.Universities,
	})
}

func (h *CatalogHandler) HandleGetUniversity(c *fiber.Ctx) error {
	uni, ok := h.catalog.University(c.Params("id"))
	if !ok {
		return notFound(c, "University not found")
	}
	return c.JSON(uni)
}

// HandleListScholarships filters by ?country= and ?difficulty=; "all" disables a filter.
// HandleCompareUniversities compares ?left= and ?right=, defaulting to the first
// two universities of the catalog.
func (h *CatalogHandler) HandleCompareUniversities(c *fiber.Ctx) error {
	unis := h.catalog.Universities
	leftID, rightID := c.Query("left"), c.Query("right")
	if leftID == "" && len(unis) > 0 {
		leftID = unis[0].ID
	}
	if rightID == "" && len(unis) > 1 {
		rightID = unis[1].ID
	}
	if leftID == "" || rightID == "" {
		return badRequest(c, "left and right university ids are required")
	}

	left, ok := h.catalog.University(leftID)
	if !ok {
		return notFound(c, "University not found: "+leftID)
	}
	right, ok := h.catalog.University(rightID)
	if !ok {
		return notFound(c, "University not found: "+rightID)
	}

	return c.JSON(services.CompareUniversities(*left, *right))
}

func (h *CatalogHandler) HandleListScholarships(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"scholarships": h.catalog.FilterScholarships(c.Query("country"), c.Query("difficulty")),
	})
}

func (h *CatalogHandler) HandleListVisaGuides(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"visa_guides": h.catalog.VisaGuides,
	})
}

func (h *CatalogHandler) HandleListExams(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"exams": h.catalog.Exams,
	})
}

func (h *CatalogHandler) HandleListDeadlines(c *fiber.Ctx) error {
	deadlines := h.catalog.FilterDeadlines(c.Query("category"))
	return c.JSON(fiber.Map{
		"deadlines": services.DeadlineViews(deadlines, h.now()),
	})
}

func (h *CatalogHandler) HandleListStartups(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"startups": h.catalog.Startups,
	})
}

func (h *CatalogHandler) HandleListSuccessStories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success_stories": h.catalog.SuccessStories,
	})
}

func (h *CatalogHandler) HandleListMentors(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mentors": h.catalog.Mentors,
	})
}

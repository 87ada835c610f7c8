package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/services"
)

type SearchHandler struct {
	search services.ProgramSearchService
	log    *zap.Logger
}

func NewSearchHandler(search services.ProgramSearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		search: search,
		log:    log,
	}
}

func (h *SearchHandler) HandleSearchPrograms(c *fiber.Ctx) error {
	resp, err := h.search.Search(c.UserContext(), c.Query("q"), c.QueryInt("limit"))
	switch {
	case err == nil:
		return c.JSON(resp)
	case errors.Is(err, services.ErrSearchDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrEmptyQuery):
		return badRequest(c, "Query parameter 'q' is required")
	default:
		h.log.Error("program search failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Search backend unavailable",
		})
	}
}

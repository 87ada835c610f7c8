package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/logger"
	"plotforma/admissions-guide/internal/metrics"
	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
	"plotforma/admissions-guide/internal/services"
)

const transcriptLimit = 200

type ChatHandler struct {
	matcher  services.ResponseMatcher
	chatRepo repositories.ChatRepository
	log      *zap.Logger
}

func NewChatHandler(
	matcher services.ResponseMatcher,
	chatRepo repositories.ChatRepository,
	log *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		matcher:  matcher,
		chatRepo: chatRepo,
		log:      log,
	}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reply := h.matcher.Match(req.Message)
	metrics.RecordChatReply(string(reply.Branch))
	h.log.Debug("chat reply",
		zap.String("branch", string(reply.Branch)),
		zap.String("query", logger.Truncate(req.Message, 80)))

	if id, ok := userID(c); ok {
		now := time.Now()
		err := h.chatRepo.Append(
			&models.ChatMessage{UserID: id, Role: models.RoleUser, Content: req.Message, CreatedAt: now},
			&models.ChatMessage{UserID: id, Role: models.RoleAI, Content: reply.Text, Branch: string(reply.Branch), CreatedAt: now.Add(time.Microsecond)},
		)
		if err != nil {
			h.log.Warn("failed to store chat transcript", zap.String("user_id", id.String()), zap.Error(err))
		}
	}

	return c.JSON(models.ChatResponse{
		Reply:  reply.Text,
		Branch: string(reply.Branch),
	})
}

func (h *ChatHandler) HandleTranscript(c *fiber.Ctx) error {
	messages, err := h.chatRepo.FindByUserID(mustUserID(c), transcriptLimit)
	if err != nil {
		h.log.Error("failed to load transcript", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	return c.JSON(fiber.Map{
		"messages": messages,
	})
}

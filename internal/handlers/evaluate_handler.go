package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/metrics"
	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
	"plotforma/admissions-guide/internal/services"
)

const historyLimit = 50

type EvaluationHandler struct {
	scorer       services.ProfileScorer
	evalRepo     repositories.EvaluationRepository
	profileRepo  repositories.ProfileRepository
	scoreRepo    repositories.TestScoreRepository
	activityRepo repositories.ActivityRepository
	notifyRepo   repositories.NotificationRepository
	log          *zap.Logger
}

func NewEvaluationHandler(
	scorer services.ProfileScorer,
	evalRepo repositories.EvaluationRepository,
	profileRepo repositories.ProfileRepository,
	scoreRepo repositories.TestScoreRepository,
	activityRepo repositories.ActivityRepository,
	notifyRepo repositories.NotificationRepository,
	log *zap.Logger,
) *EvaluationHandler {
	return &EvaluationHandler{
		scorer:       scorer,
		evalRepo:     evalRepo,
		profileRepo:  profileRepo,
		scoreRepo:    scoreRepo,
		activityRepo: activityRepo,
		notifyRepo:   notifyRepo,
		log:          log,
	}
}

// HandleEvaluate scores the submitted numbers. Missing or unparsable fields count as 0.
// Form posts are read field by field; any other body is decoded as JSON.
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest
	switch {
	case isFormPost(c):
		req = models.EvaluateRequest{
			GPA:                   models.Number(models.ParseNumber(c.FormValue("gpa"))),
			LanguageScore:         models.Number(models.ParseNumber(c.FormValue("language_score"))),
			StandardizedTestScore: models.Number(models.ParseNumber(c.FormValue("standardized_test_score"))),
			VolunteerHours:        models.Number(models.ParseNumber(c.FormValue("volunteer_hours"))),
		}
	case len(c.Body()) > 0:
		if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	input := services.EvaluationInput{
		GPA:                   req.GPA.Float64(),
		LanguageScore:         req.LanguageScore.Float64(),
		StandardizedTestScore: req.StandardizedTestScore.Float64(),
		VolunteerHours:        req.VolunteerHours.Float64(),
	}

	return h.respond(c, input, metrics.SourceRequest)
}

// HandleEvaluateProfile scores the caller's stored profile, test scores and activities.
func (h *EvaluationHandler) HandleEvaluateProfile(c *fiber.Ctx) error {
	id := mustUserID(c)

	profile, err := h.profileRepo.FindByUserID(id)
	if err != nil && !errors.Is(err, repositories.ErrRecordNotFound) {
		return h.internalError(c, "failed to load profile", err)
	}

	scores, err := h.scoreRepo.FindByUserID(id)
	if err != nil {
		return h.internalError(c, "failed to load test scores", err)
	}

	activities, err := h.activityRepo.FindByUserID(id)
	if err != nil {
		return h.internalError(c, "failed to load activities", err)
	}

	return h.respond(c, services.BuildEvaluationInput(profile, scores, activities), metrics.SourceProfile)
}

func (h *EvaluationHandler) HandleHistory(c *fiber.Ctx) error {
	evals, err := h.evalRepo.FindByUserID(mustUserID(c), historyLimit)
	if err != nil {
		return h.internalError(c, "failed to load evaluations", err)
	}

	return c.JSON(fiber.Map{
		"evaluations": evals,
	})
}

// HandleGetResult returns one of the caller's stored evaluations. Evaluations of
// other users answer 404.
func (h *EvaluationHandler) HandleGetResult(c *fiber.Ctx) error {
	evalID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	evaluation, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Evaluation not found",
			})
		}
		return h.internalError(c, "failed to load evaluation", err)
	}

	if evaluation.UserID != mustUserID(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}

	return c.JSON(evaluation)
}

// respond persists the result only for identified callers.
func (h *EvaluationHandler) respond(c *fiber.Ctx, input services.EvaluationInput, source string) error {
	result := h.scorer.Score(input)
	metrics.RecordEvaluation(string(result.Tier), source)

	response := models.EvaluateResponse{
		Tier:       string(result.Tier),
		Advisories: result.Advisories,
	}

	if id, ok := userID(c); ok {
		previous, err := h.evalRepo.FindByUserID(id, 1)
		if err != nil {
			return h.internalError(c, "failed to load evaluations", err)
		}

		evaluation := models.Evaluation{
			ID:                    uuid.New(),
			UserID:                id,
			GPA:                   input.GPA,
			LanguageScore:         input.LanguageScore,
			StandardizedTestScore: input.StandardizedTestScore,
			VolunteerHours:        input.VolunteerHours,
			Tier:                  result.Tier,
			Advisories:            result.Advisories,
		}
		if err := h.evalRepo.Create(&evaluation); err != nil {
			return h.internalError(c, "failed to save evaluation", err)
		}
		response.ID = evaluation.ID.String()

		if len(previous) == 0 || previous[0].Tier != result.Tier {
			h.notifyTier(id, result.Tier)
		}
	}

	h.log.Info("profile evaluated",
		zap.String("tier", string(result.Tier)),
		zap.String("source", source),
		zap.Int("advisories", len(result.Advisories)))

	return c.JSON(response)
}

// notifyTier tells the user their level changed. A failure only costs the notification.
func (h *EvaluationHandler) notifyTier(id uuid.UUID, tier models.Tier) {
	n := models.Notification{
		ID:        uuid.New(),
		UserID:    id,
		Type:      models.NotificationInfo,
		Title:     "Profile Updated",
		Message:   fmt.Sprintf("Your profile evaluation score has been updated to %q level.", string(tier)),
		Priority:  models.PriorityLow,
		CreatedAt: time.Now(),
	}
	if err := h.notifyRepo.Create(&n); err != nil {
		h.log.Warn("failed to create tier notification", zap.Error(err))
	}
}

func isFormPost(c *fiber.Ctx) bool {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	return strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

func (h *EvaluationHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

package handlers

import (
	"errors"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
	"plotforma/admissions-guide/internal/services"
)

type ProfileHandler struct {
	profileRepo  repositories.ProfileRepository
	scoreRepo    repositories.TestScoreRepository
	activityRepo repositories.ActivityRepository
	log          *zap.Logger
}

func NewProfileHandler(
	profileRepo repositories.ProfileRepository,
	scoreRepo repositories.TestScoreRepository,
	activityRepo repositories.ActivityRepository,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileRepo:  profileRepo,
		scoreRepo:    scoreRepo,
		activityRepo: activityRepo,
		log:          log,
	}
}

// HandleGetProfile answers an empty profile for users who never saved one.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	id := mustUserID(c)

	profile, err := h.profileRepo.FindByUserID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return c.JSON(models.Profile{UserID: id})
		}
		return h.internalError(c, "failed to load profile", err)
	}

	return c.JSON(profile)
}

// HandleUpdateProfile applies only the fields present in the request.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	id := mustUserID(c)

	var req models.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profileRepo.FindByUserID(id)
	if err != nil {
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return h.internalError(c, "failed to load profile", err)
		}
		profile = &models.Profile{UserID: id}
	}

	setString(&profile.FullName, req.FullName)
	setString(&profile.Phone, req.Phone)
	setString(&profile.School, req.School)
	setString(&profile.Grade, req.Grade)
	setString(&profile.TargetMajor, req.TargetMajor)
	setString(&profile.Bio, req.Bio)
	setString(&profile.Country, req.Country)

	if req.GPA != nil {
		gpa := req.GPA.Float64()
		if gpa < 0 || gpa > maxGPA {
			return badRequest(c, "gpa must be between 0 and 5")
		}
		profile.GPA = &gpa
	}

	if err := h.profileRepo.Upsert(profile); err != nil {
		return h.internalError(c, "failed to save profile", err)
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) HandleListTestScores(c *fiber.Ctx) error {
	scores, err := h.scoreRepo.FindByUserID(mustUserID(c))
	if err != nil {
		return h.internalError(c, "failed to load test scores", err)
	}

	return c.JSON(fiber.Map{
		"test_scores": scores,
	})
}

func (h *ProfileHandler) HandleAddTestScore(c *fiber.Ctx) error {
	var req models.TestScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	testType := strings.ToUpper(strings.TrimSpace(req.TestType))
	if testType == "" {
		return badRequest(c, "test_type is required")
	}

	score := models.TestScore{
		UserID:   mustUserID(c),
		TestType: testType,
		Score:    req.Score.Float64(),
		TestDate: strings.TrimSpace(req.TestDate),
	}
	if err := h.scoreRepo.Create(&score); err != nil {
		return h.internalError(c, "failed to save test score", err)
	}

	return c.Status(fiber.StatusCreated).JSON(score)
}

func (h *ProfileHandler) HandleListActivities(c *fiber.Ctx) error {
	activities, err := h.activityRepo.FindByUserID(mustUserID(c))
	if err != nil {
		return h.internalError(c, "failed to load activities", err)
	}

	if activities == nil {
		activities = []models.Activity{}
	}

	return c.JSON(models.ActivityListResponse{
		Activities: activities,
		TotalHours: services.TotalActivityHours(activities),
	})
}

func (h *ProfileHandler) HandleCreateActivity(c *fiber.Ctx) error {
	var req models.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	activity := models.Activity{UserID: mustUserID(c)}
	if msg := applyActivity(&activity, req); msg != "" {
		return badRequest(c, msg)
	}

	if err := h.activityRepo.Create(&activity); err != nil {
		return h.internalError(c, "failed to save activity", err)
	}

	return c.Status(fiber.StatusCreated).JSON(activity)
}

func (h *ProfileHandler) HandleUpdateActivity(c *fiber.Ctx) error {
	activityID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid activity ID format")
	}

	var req models.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	activity, err := h.activityRepo.FindByID(mustUserID(c), activityID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFound(c, "Activity not found")
		}
		return h.internalError(c, "failed to load activity", err)
	}

	if msg := applyActivity(activity, req); msg != "" {
		return badRequest(c, msg)
	}

	if err := h.activityRepo.Update(activity); err != nil {
		return h.internalError(c, "failed to update activity", err)
	}

	return c.JSON(activity)
}

func (h *ProfileHandler) HandleDeleteActivity(c *fiber.Ctx) error {
	activityID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid activity ID format")
	}

	if err := h.activityRepo.Delete(mustUserID(c), activityID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFound(c, "Activity not found")
		}
		return h.internalError(c, "failed to delete activity", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

const maxGPA = 5.0

// applyActivity copies the request onto a and returns a validation message, or "".
func applyActivity(a *models.Activity, req models.ActivityRequest) string {
	activityType := strings.ToLower(strings.TrimSpace(req.Type))
	if !slices.Contains(models.ActivityTypes, activityType) {
		return "type must be one of: " + strings.Join(models.ActivityTypes, ", ")
	}

	level := strings.ToLower(strings.TrimSpace(req.Level))
	if level != "" && !slices.Contains(models.ActivityLevels, level) {
		return "level must be one of: " + strings.Join(models.ActivityLevels, ", ")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "title is required"
	}

	hours, weeks, years := req.HoursPerWeek.Float64(), req.WeeksPerYear.Float64(), req.YearsParticipated.Float64()
	if hours < 0 || weeks < 0 || years < 0 {
		return "time commitment cannot be negative"
	}
	if hours > 168 || weeks > 52 {
		return "hours_per_week must be at most 168 and weeks_per_year at most 52"
	}

	a.Type = activityType
	a.Level = level
	a.Title = title
	a.Organization = strings.TrimSpace(req.Organization)
	a.Position = strings.TrimSpace(req.Position)
	a.Description = strings.TrimSpace(req.Description)
	a.HoursPerWeek = hours
	a.WeeksPerYear = weeks
	a.YearsParticipated = years
	a.Achievements = req.Achievements
	if a.Achievements == nil {
		a.Achievements = []string{}
	}

	return ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": msg,
	})
}

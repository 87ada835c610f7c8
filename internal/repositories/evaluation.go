package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plotforma/admissions-guide/internal/models"
)

type EvaluationRepository interface {
	Create(eval *models.Evaluation) error
	FindByID(id uuid.UUID) (*models.Evaluation, error)
	FindByUserID(userID uuid.UUID, limit int) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(eval *models.Evaluation) error {
	if err := r.db.Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepository) FindByID(id uuid.UUID) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := r.db.Where("id = ?", id).First(&eval).Error; err != nil {
		return nil, wrapFind(err, "evaluation")
	}
	return &eval, nil
}

// FindByUserID returns the newest evaluations first.
func (r *evaluationRepository) FindByUserID(userID uuid.UUID, limit int) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&evals).Error; err != nil {
		return nil, fmt.Errorf("failed to find evaluations: %w", err)
	}
	return evals, nil
}

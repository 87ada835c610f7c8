package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plotforma/admissions-guide/internal/models"
)

type ProfileRepository interface {
	FindByUserID(userID uuid.UUID) (*models.Profile, error)
	Upsert(profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, wrapFind(err, "profile")
	}
	return &profile, nil
}

// Upsert inserts the profile or overwrites every column of the existing row.
func (r *profileRepository) Upsert(profile *models.Profile) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "phone", "school", "grade", "gpa", "target_major", "bio", "country", "updated_at"}),
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

type TestScoreRepository interface {
	Create(score *models.TestScore) error
	FindByUserID(userID uuid.UUID) ([]models.TestScore, error)
}

type testScoreRepository struct {
	db *gorm.DB
}

func NewTestScoreRepository(db *gorm.DB) TestScoreRepository {
	return &testScoreRepository{db: db}
}

func (r *testScoreRepository) Create(score *models.TestScore) error {
	if err := r.db.Create(score).Error; err != nil {
		return fmt.Errorf("failed to create test score: %w", err)
	}
	return nil
}

// FindByUserID returns the most recently taken tests first. Scores without a test
// date sort after dated ones.
func (r *testScoreRepository) FindByUserID(userID uuid.UUID) ([]models.TestScore, error) {
	var scores []models.TestScore
	if err := r.db.Where("user_id = ?", userID).Order("test_date DESC, created_at DESC").Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to find test scores: %w", err)
	}
	return scores, nil
}

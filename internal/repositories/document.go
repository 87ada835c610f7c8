package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plotforma/admissions-guide/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
	FindByUserID(userID uuid.UUID) ([]models.Document, error)
	UpdateStatus(id uuid.UUID, status models.DocumentStatus) error
	UpdateResult(id uuid.UUID, text string, pageCount int) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	if err := d.db.Create(document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := d.db.Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, wrapFind(err, "document")
	}

	return &doc, nil
}

// FindByUserID implements DocumentRepository.
func (d *documentRepository) FindByUserID(userID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	if err := d.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}

	return docs, nil
}

// UpdateStatus implements DocumentRepository.
func (d *documentRepository) UpdateStatus(id uuid.UUID, status models.DocumentStatus) error {
	result := d.db.Model(&models.Document{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update document status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("document %s: %w", id, ErrRecordNotFound)
	}

	return nil
}

// UpdateResult implements DocumentRepository.
func (d *documentRepository) UpdateResult(id uuid.UUID, text string, pageCount int) error {
	result := d.db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         models.DocumentCompleted,
			"extracted_text": text,
			"page_count":     pageCount,
			"error_message":  nil,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update document result: %w", result.Error)
	}

	return nil
}

// UpdateError implements DocumentRepository.
func (d *documentRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := d.db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.DocumentFailed,
			"error_message": errorMsg,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update document error: %w", result.Error)
	}

	return nil
}

// FindPendingJobs implements DocumentRepository.
func (d *documentRepository) FindPendingJobs(limit int) ([]models.Document, error) {
	var docs []models.Document
	if err := d.db.Where("status = ?", models.DocumentQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to find pending documents: %w", err)
	}

	return docs, nil
}

package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
	"plotforma/admissions-guide/internal/services"
)

const (
	uploadFormField = "document"
	defaultFileType = "other"
)

var documentTypes = map[string]bool{
	"transcript":     true,
	"certificate":    true,
	"essay":          true,
	"recommendation": true,
	defaultFileType:  true,
}

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	worker         services.Worker
	maxFileSize    int64
	log            *zap.Logger
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
	log *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		worker:         worker,
		maxFileSize:    maxFileSize,
		log:            log,
	}
}

// HandleUpload saves one PDF from the "document" form field and queues it for text extraction.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	id := mustUserID(c)

	file, err := c.FormFile(uploadFormField)
	if err != nil {
		return badRequest(c, "Please upload a PDF in the 'document' form field")
	}

	if file.Size > h.maxFileSize {
		return badRequest(c, fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	fileType := c.FormValue("type", defaultFileType)
	if !documentTypes[fileType] {
		return badRequest(c, "Unknown document type: "+fileType)
	}

	filename, filePath, err := h.storageService.SaveFile(id, file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return badRequest(c, err.Error())
		}
		h.log.Error("failed to save upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}

	doc := models.Document{
		ID:               uuid.New(),
		UserID:           id,
		Filename:         filename,
		OriginalFileName: file.Filename,
		FileType:         fileType,
		FilePath:         filePath,
		Status:           models.DocumentQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			h.log.Warn("failed to clean up upload", zap.String("file", filename), zap.Error(delErr))
		}
		h.log.Error("failed to save document record", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save document record",
		})
	}

	h.worker.EnqueueJob(doc.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.UploadResponse{
		ID:           doc.ID.String(),
		Filename:     doc.Filename,
		OriginalName: doc.OriginalFileName,
		FileType:     doc.FileType,
		Status:       string(doc.Status),
	})
}

func (h *UploadHandler) HandleListDocuments(c *fiber.Ctx) error {
	docs, err := h.docRepo.FindByUserID(mustUserID(c))
	if err != nil {
		h.log.Error("failed to load documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load documents",
		})
	}

	if docs == nil {
		docs = []models.Document{}
	}

	return c.JSON(fiber.Map{
		"documents": docs,
	})
}

// HandleGetDocument hides documents of other users behind a 404.
func (h *UploadHandler) HandleGetDocument(c *fiber.Ctx) error {
	docID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid document ID format")
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil && !errors.Is(err, repositories.ErrRecordNotFound) {
		h.log.Error("failed to load document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load document",
		})
	}

	if doc == nil || doc.UserID != mustUserID(c) {
		return notFound(c, "Document not found")
	}

	return c.JSON(doc)
}

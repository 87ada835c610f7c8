package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/metrics"
	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
)

type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, docID uuid.UUID) error
}

type documentProcessor struct {
	docRepo       repositories.DocumentRepository
	pdfParser     PDFParserService
	notifications repositories.NotificationRepository
	log           *zap.Logger
}

// NewDocumentProcessor builds the extraction step run by the worker. notifications
// may be nil, in which case owners are not told about finished documents.
func NewDocumentProcessor(
	docRepo repositories.DocumentRepository,
	pdfParser PDFParserService,
	notifications repositories.NotificationRepository,
	log *zap.Logger,
) DocumentProcessor {
	return &documentProcessor{
		docRepo:       docRepo,
		pdfParser:     pdfParser,
		notifications: notifications,
		log:           log,
	}
}

// ProcessDocument extracts the text of a queued upload. Every failure after the
// document is marked processing is recorded on the row and also returned.
func (p *documentProcessor) ProcessDocument(ctx context.Context, docID uuid.UUID) error {
	start := time.Now()
	log := p.log.With(zap.String("document_id", docID.String()))

	doc, err := p.docRepo.FindByID(docID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if doc.Status != models.DocumentQueued {
		log.Debug("document already picked up", zap.String("status", string(doc.Status)))
		return nil
	}

	if err := p.docRepo.UpdateStatus(docID, models.DocumentProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if err := ctx.Err(); err != nil {
		p.fail(doc, start, err.Error())
		return fmt.Errorf("processing cancelled: %w", err)
	}

	content, err := p.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		p.fail(doc, start, fmt.Sprintf("failed to parse document: %v", err))
		return fmt.Errorf("failed to parse document: %w", err)
	}

	if err := p.docRepo.UpdateResult(docID, content.Text, content.PageCount); err != nil {
		p.fail(doc, start, fmt.Sprintf("failed to save result: %v", err))
		return fmt.Errorf("failed to save result: %w", err)
	}

	metrics.RecordDocument(metrics.OutcomeCompleted, time.Since(start).Seconds())
	log.Info("document processed",
		zap.Int("pages", content.PageCount),
		zap.Int("chars", len(content.Text)),
		zap.Duration("took", time.Since(start)))

	p.notify(doc, models.PriorityLow, "Document ready",
		fmt.Sprintf("%q was processed: %d page(s) of text extracted.", doc.OriginalFileName, content.PageCount))

	return nil
}

func (p *documentProcessor) fail(doc *models.Document, start time.Time, msg string) {
	metrics.RecordDocument(metrics.OutcomeFailed, time.Since(start).Seconds())
	if err := p.docRepo.UpdateError(doc.ID, msg); err != nil {
		p.log.Error("failed to record document error", zap.String("document_id", doc.ID.String()), zap.Error(err))
	}

	p.notify(doc, models.PriorityHigh, "Document processing failed",
		fmt.Sprintf("We could not read %q. Please upload it again as a text-based PDF.", doc.OriginalFileName))
}

func (p *documentProcessor) notify(doc *models.Document, priority, title, message string) {
	if p.notifications == nil || doc.UserID == uuid.Nil {
		return
	}

	n := models.Notification{
		ID:        uuid.New(),
		UserID:    doc.UserID,
		Type:      models.NotificationDocument,
		Title:     title,
		Message:   message,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
	if err := p.notifications.Create(&n); err != nil {
		p.log.Warn("failed to create notification", zap.String("document_id", doc.ID.String()), zap.Error(err))
	}
}

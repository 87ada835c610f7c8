package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/models"
)

var (
	ErrSearchDisabled = errors.New("semantic search is not configured")
	ErrEmptyQuery     = errors.New("query is required")
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 20
	embedRetries       = 3
)

// ProgramDocument is the text form of one program as it is embedded and indexed.
type ProgramDocument struct {
	UniversityID   string
	UniversityName string
	ProgramTitle   string
	Country        string
	Text           string
}

type ProgramSearchService interface {
	Search(ctx context.Context, query string, limit int) (*models.ProgramSearchResponse, error)
	IndexCatalog(ctx context.Context, universities []models.University) (int, error)
}

type programSearchService struct {
	gemini GeminiService
	index  ProgramIndex
	log    *zap.Logger
}

// NewProgramSearchService returns a service that answers ErrSearchDisabled when
// either backend is nil.
func NewProgramSearchService(gemini GeminiService, index ProgramIndex, log *zap.Logger) ProgramSearchService {
	return &programSearchService{
		gemini: gemini,
		index:  index,
		log:    log,
	}
}

func (s *programSearchService) enabled() bool {
	return s.gemini != nil && s.index != nil
}

// Search implements ProgramSearchService.
func (s *programSearchService) Search(ctx context.Context, query string, limit int) (*models.ProgramSearchResponse, error) {
	if !s.enabled() {
		return nil, ErrSearchDisabled
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	embedding, err := s.gemini.GenerateEmbeddingWithRetry(ctx, query, embedRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := s.index.SearchPrograms(ctx, embedding, limit)
	if err != nil {
		return nil, err
	}

	return &models.ProgramSearchResponse{Query: query, Results: hits}, nil
}

// IndexCatalog implements ProgramSearchService. A failing program is logged and
// skipped; the count of indexed programs is returned.
func (s *programSearchService) IndexCatalog(ctx context.Context, universities []models.University) (int, error) {
	if !s.enabled() {
		return 0, ErrSearchDisabled
	}

	if err := s.index.InitCollection(ctx); err != nil {
		return 0, err
	}

	indexed := 0
	for _, doc := range ProgramDocuments(universities) {
		embedding, err := s.gemini.GenerateEmbeddingWithRetry(ctx, doc.Text, embedRetries)
		if err != nil {
			s.log.Warn("failed to embed program",
				zap.String("university", doc.UniversityID),
				zap.String("program", doc.ProgramTitle),
				zap.Error(err))
			continue
		}

		if err := s.index.UpsertProgram(ctx, doc, embedding); err != nil {
			s.log.Warn("failed to index program",
				zap.String("university", doc.UniversityID),
				zap.String("program", doc.ProgramTitle),
				zap.Error(err))
			continue
		}
		indexed++
	}

	return indexed, nil
}

// ProgramDocuments flattens the knowledge base into one document per program.
func ProgramDocuments(universities []models.University) []ProgramDocument {
	var docs []ProgramDocument
	for _, uni := range universities {
		for _, prog := range uni.Programs {
			if strings.TrimSpace(prog.Title) == "" {
				continue
			}
			docs = append(docs, ProgramDocument{
				UniversityID:   uni.ID,
				UniversityName: uni.Name,
				ProgramTitle:   prog.Title,
				Country:        uni.Country,
				Text:           programText(uni, prog),
			})
		}
	}
	return docs
}

func programText(uni models.University, prog models.Program) string {
	var b strings.Builder
	writeLine(&b, "Program: ", prog.Title)
	writeLine(&b, "University: ", uni.Name)
	writeLine(&b, "Country: ", uni.Country)
	writeLine(&b, "Ranking: ", prog.Rank)
	writeLine(&b, "Local requirements: ", prog.ReqLocal)
	writeLine(&b, "International requirements: ", prog.ReqIntl)
	writeLine(&b, "Career: ", prog.Career)
	writeLine(&b, "About: ", uni.Description)
	return strings.TrimSpace(b.String())
}

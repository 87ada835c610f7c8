package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/models"
)

const (
	payloadUniversityID   = "university_id"
	payloadUniversityName = "university_name"
	payloadProgramTitle   = "program_title"
	payloadCountry        = "country"
	payloadText           = "text"

	embeddingSize = 768
)

// ProgramIndex stores program embeddings for semantic search.
type ProgramIndex interface {
	InitCollection(ctx context.Context) error
	UpsertProgram(ctx context.Context, doc ProgramDocument, embedding []float32) error
	SearchPrograms(ctx context.Context, queryEmbedding []float32, limit int) ([]models.ProgramHit, error)
	Close() error
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantService(urlStr, apiKey, collectionName string, log *zap.Logger) (ProgramIndex, error) {
	host, port, useTLS, err := parseQdrantURL(urlStr)
	if err != nil {
		return nil, err
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     embeddingSize,
		log:            log,
	}, nil
}

// parseQdrantURL defaults to the gRPC port when the URL has none.
func parseQdrantURL(urlStr string) (string, int, bool, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return "", 0, false, fmt.Errorf("invalid Qdrant URL: %w", err)
	}
	if parsed.Hostname() == "" {
		return "", 0, false, fmt.Errorf("invalid Qdrant URL: missing host in %q", urlStr)
	}

	port := 6334
	if p := parsed.Port(); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			return "", 0, false, fmt.Errorf("invalid Qdrant port %q: %w", p, err)
		}
		port = v
	}

	return parsed.Hostname(), port, parsed.Scheme == "https", nil
}

// programPointID is stable so re-ingesting the catalog overwrites instead of duplicating.
func programPointID(universityID, title string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(universityID+"/"+title)).String()
}

// InitCollection implements ProgramIndex.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Info("qdrant collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// UpsertProgram implements ProgramIndex.
func (q *qdrantService) UpsertProgram(ctx context.Context, doc ProgramDocument, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(programPointID(doc.UniversityID, doc.ProgramTitle)),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			payloadUniversityID:   doc.UniversityID,
			payloadUniversityName: doc.UniversityName,
			payloadProgramTitle:   doc.ProgramTitle,
			payloadCountry:        doc.Country,
			payloadText:           doc.Text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert program: %w", err)
	}

	return nil
}

// SearchPrograms implements ProgramIndex.
func (q *qdrantService) SearchPrograms(ctx context.Context, queryEmbedding []float32, limit int) ([]models.ProgramHit, error) {
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search programs: %w", err)
	}

	hits := make([]models.ProgramHit, 0, len(points))
	for _, point := range points {
		hits = append(hits, models.ProgramHit{
			UniversityID:   payloadString(point.Payload, payloadUniversityID),
			UniversityName: payloadString(point.Payload, payloadUniversityName),
			ProgramTitle:   payloadString(point.Payload, payloadProgramTitle),
			Score:          point.Score,
		})
	}

	return hits, nil
}

func (q *qdrantService) Close() error {
	return q.client.Close()
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
			return s.StringValue
		}
	}
	return ""
}

package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/catalog"
	"plotforma/admissions-guide/internal/config"
	"plotforma/admissions-guide/internal/logger"
	"plotforma/admissions-guide/internal/services"
)

// Embeds every catalog program with Gemini and upserts it into Qdrant for
// GET /api/v1/search/programs. Safe to re-run: point ids are stable.
func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zl.Sync()

	if !cfg.SearchEnabled() {
		zl.Fatal("GEMINI_API_KEY and QDRANT_URL must be set to ingest the catalog")
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zl.Fatal("failed to load catalog", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, zl)
	if err != nil {
		zl.Fatal("failed to initialize gemini", zap.Error(err))
	}

	index, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, zl)
	if err != nil {
		zl.Fatal("failed to initialize qdrant", zap.Error(err))
	}
	defer index.Close()

	total := len(services.ProgramDocuments(cat.Universities))
	zl.Info("ingesting catalog programs", zap.Int("programs", total), zap.String("collection", cfg.Qdrant.Collection))

	indexed, err := services.NewProgramSearchService(gemini, index, zl).IndexCatalog(ctx, cat.Universities)
	if err != nil {
		zl.Fatal("ingestion failed", zap.Error(err))
	}

	zl.Info("ingestion finished", zap.Int("indexed", indexed), zap.Int("failed", total-indexed))
}

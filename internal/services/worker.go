package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/metrics"
	"plotforma/admissions-guide/internal/repositories"
)

const jobQueueSize = 100

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(docID uuid.UUID)
}

type WorkerOptions struct {
	Concurrency  int
	PollInterval time.Duration
	BatchSize    int
}

type worker struct {
	docRepo   repositories.DocumentRepository
	processor DocumentProcessor
	opts      WorkerOptions
	log       *zap.Logger

	jobQueue chan uuid.UUID
	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once

	// inFlight keeps the poller from enqueueing a document twice while it waits in the queue.
	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewWorker(
	docRepo repositories.DocumentRepository,
	processor DocumentProcessor,
	opts WorkerOptions,
	log *zap.Logger,
) Worker {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Second
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 10
	}

	return &worker{
		docRepo:   docRepo,
		processor: processor,
		opts:      opts,
		log:       log,
		jobQueue:  make(chan uuid.UUID, jobQueueSize),
		stopChan:  make(chan struct{}),
		inFlight:  make(map[uuid.UUID]struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.log.Info("starting document worker",
		zap.Int("concurrency", w.opts.Concurrency),
		zap.Duration("poll_interval", w.opts.PollInterval))

	for i := 0; i < w.opts.Concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.log.Info("stopping document worker")
		close(w.stopChan)
		w.wg.Wait()
		w.log.Info("document worker stopped")
	})
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(docID uuid.UUID) {
	w.mu.Lock()
	if _, ok := w.inFlight[docID]; ok {
		w.mu.Unlock()
		return
	}
	w.inFlight[docID] = struct{}{}
	w.mu.Unlock()

	select {
	case w.jobQueue <- docID:
		w.log.Debug("job enqueued", zap.String("document_id", docID.String()))
	case <-w.stopChan:
		w.done(docID)
		w.log.Warn("worker stopped, cannot enqueue job", zap.String("document_id", docID.String()))
	}
}

func (w *worker) done(docID uuid.UUID) {
	w.mu.Lock()
	delete(w.inFlight, docID)
	w.mu.Unlock()
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log := w.log.With(zap.Int("worker", workerID))

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case docID := <-w.jobQueue:
			metrics.WorkerJobsActive.Inc()
			if err := w.processor.ProcessDocument(ctx, docID); err != nil {
				log.Error("job failed", zap.String("document_id", docID.String()), zap.Error(err))
			} else {
				log.Debug("job completed", zap.String("document_id", docID.String()))
			}
			metrics.WorkerJobsActive.Dec()
			w.done(docID)
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			pending, err := w.docRepo.FindPendingJobs(w.opts.BatchSize)
			if err != nil {
				w.log.Warn("failed to fetch pending documents", zap.Error(err))
				continue
			}

			if len(pending) > 0 {
				w.log.Info("found pending documents", zap.Int("count", len(pending)))
			}

			for _, doc := range pending {
				w.EnqueueJob(doc.ID)
			}
		}
	}
}

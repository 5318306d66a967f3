// Package service orchestrates the document-tracking read and write paths.
// The stage derivation itself lives in the pure gating package; this layer
// loads state, runs the fold, and layers on caching, events, and the
// financial overlay.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks DocumentStore,StatusStore,FinancialGate,Publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"deedflow/internal/tracking/cache"
	"deedflow/internal/tracking/catalog"
	"deedflow/internal/tracking/events"
	"deedflow/internal/tracking/gating"
	"deedflow/internal/tracking/metrics"
	"deedflow/internal/tracking/models"
	dErrors "deedflow/pkg/domain-errors"
	"deedflow/pkg/platform/debounce"
	"deedflow/pkg/platform/sentinel"

	id "deedflow/pkg/domain"
)

const flushTimeout = 10 * time.Second

// DocumentStore lists uploaded document records.
type DocumentStore interface {
	ListByTransaction(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline) ([]models.DocumentRecord, error)
}

// StatusStore reads and writes per-document-type status records.
type StatusStore interface {
	Get(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline, docTypeKey string) (*models.DocumentStatusRecord, error)
	ListByTransaction(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline) ([]models.DocumentStatusRecord, error)
	Upsert(ctx context.Context, rec *models.DocumentStatusRecord) error
}

// FinancialGate fetches the payment requirement for one stage. The result is
// informational only and never feeds the lock computation.
type FinancialGate interface {
	Gate(ctx context.Context, tx id.TransactionID, stageNumber int) (*models.FinancialGate, error)
}

// Publisher emits tracking lifecycle events. Fire-and-forget.
type Publisher interface {
	Emit(ctx context.Context, event events.Event)
}

type Service struct {
	documents DocumentStore
	statuses  StatusStore
	finance   FinancialGate
	publisher Publisher
	progress  *cache.ProgressCache
	scheduler *debounce.Scheduler
	noteDelay time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewService(
	documents DocumentStore,
	statuses StatusStore,
	finance FinancialGate,
	publisher Publisher,
	progress *cache.ProgressCache,
	scheduler *debounce.Scheduler,
	noteDelay time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		documents: documents,
		statuses:  statuses,
		finance:   finance,
		publisher: publisher,
		progress:  progress,
		scheduler: scheduler,
		noteDelay: noteDelay,
		metrics:   m,
		logger:    logger,
		tracer:    otel.Tracer("deedflow/tracking"),
	}
}

// Stages derives the full stage view for a transaction: classify the
// pipeline, load documents and statuses concurrently, run the gating fold,
// attach payment overlays, and compute progress.
func (s *Service) Stages(ctx context.Context, txID id.TransactionID, pipelineTag string) (*models.StagesResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tracking.Stages",
		trace.WithAttributes(
			attribute.String("transaction_id", txID.String()),
			attribute.String("pipeline_tag", pipelineTag),
		))
	defer span.End()

	variant := catalog.Classify(models.TransactionRecord{ID: txID, PipelineTag: pipelineTag})
	span.SetAttributes(attribute.String("pipeline", string(variant.Pipeline)))

	var (
		docs     []models.DocumentRecord
		statuses []models.DocumentStatusRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = s.documents.ListByTransaction(gctx, txID, variant.Pipeline)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.statuses.ListByTransaction(gctx, txID, variant.Pipeline)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load transaction state")
	}

	stages := s.deriveStages(variant, docs, statuses)
	s.attachFinancialGates(ctx, txID, stages)

	progress := gating.ComputeProgress(stages)
	if err := s.progress.Set(ctx, txID, variant.Pipeline, progress); err != nil {
		s.logger.WarnContext(ctx, "progress cache write failed", "error", err, "transaction_id", txID)
	}

	return &models.StagesResponse{
		Pipeline: string(variant.Pipeline),
		Stages:   stages,
		Progress: progress,
	}, nil
}

// Progress returns the progress summary, served from cache when fresh.
func (s *Service) Progress(ctx context.Context, txID id.TransactionID, pipelineTag string) (*models.Progress, error) {
	variant := catalog.Classify(models.TransactionRecord{ID: txID, PipelineTag: pipelineTag})

	cached, err := s.progress.Get(ctx, txID, variant.Pipeline)
	if err != nil {
		s.logger.WarnContext(ctx, "progress cache read failed", "error", err, "transaction_id", txID)
	}
	if cached != nil {
		s.metrics.IncProgressCacheHits()
		return cached, nil
	}
	s.metrics.IncProgressCacheMisses()

	resp, err := s.Stages(ctx, txID, pipelineTag)
	if err != nil {
		return nil, err
	}
	return &resp.Progress, nil
}

// SetNotApplicable toggles the N/A flag for a document type. The write is
// immediate; a pending note save for the same document type is superseded.
func (s *Service) SetNotApplicable(ctx context.Context, txID id.TransactionID, pipelineTag, docTypeKey string, isNA bool, note string) error {
	variant := catalog.Classify(models.TransactionRecord{ID: txID, PipelineTag: pipelineTag})
	if _, ok := variant.Lookup(docTypeKey); !ok {
		return dErrors.New(dErrors.CodeNotFound, "unknown document type for pipeline: "+docTypeKey)
	}

	if s.scheduler.Cancel(s.noteKey(txID, variant.Pipeline, docTypeKey)) {
		s.metrics.IncNoteWritesCoalesced()
	}

	rec := &models.DocumentStatusRecord{
		TransactionID:   txID,
		Pipeline:        variant.Pipeline,
		DocTypeKey:      docTypeKey,
		IsNotApplicable: isNA,
		Note:            note,
		UpdatedAt:       time.Now().UTC(),
	}
	if err := s.upsertStatus(ctx, rec); err != nil {
		return err
	}

	s.invalidateProgress(ctx, txID, variant.Pipeline)
	s.publisher.Emit(ctx, events.Event{
		Type:            events.TypeStatusToggled,
		TransactionID:   txID,
		Pipeline:        variant.Pipeline,
		DocTypeKey:      docTypeKey,
		IsNotApplicable: isNA,
		OccurredAt:      rec.UpdatedAt,
	})
	return nil
}

// SaveNote schedules a note write, coalescing rapid edits for the same
// document type into one store write. Returns before the write lands.
func (s *Service) SaveNote(ctx context.Context, txID id.TransactionID, pipelineTag, docTypeKey, note string) error {
	variant := catalog.Classify(models.TransactionRecord{ID: txID, PipelineTag: pipelineTag})
	if _, ok := variant.Lookup(docTypeKey); !ok {
		return dErrors.New(dErrors.CodeNotFound, "unknown document type for pipeline: "+docTypeKey)
	}

	key := s.noteKey(txID, variant.Pipeline, docTypeKey)
	if s.scheduler.Pending(key) {
		s.metrics.IncNoteWritesCoalesced()
	}
	s.scheduler.Schedule(key, s.noteDelay, func() {
		// The request context is gone by the time the timer fires.
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		s.flushNote(flushCtx, txID, variant.Pipeline, docTypeKey, note)
	})
	return nil
}

// Catalog returns the static document-type catalog for a pipeline.
func (s *Service) Catalog(pipelineTag string) (*models.CatalogResponse, error) {
	p, err := id.ParsePipeline(pipelineTag)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown pipeline: "+pipelineTag)
	}
	variant := catalog.For(p)
	return &models.CatalogResponse{
		Pipeline:      string(variant.Pipeline),
		NumberOffset:  variant.NumberOffset,
		DocumentTypes: variant.DocumentTypes(),
	}, nil
}

// FlushNotes runs any pending note write for the document type immediately.
// Test hook; production relies on the timer.
func (s *Service) FlushNotes(txID id.TransactionID, pipelineTag, docTypeKey string) bool {
	variant := catalog.Classify(models.TransactionRecord{ID: txID, PipelineTag: pipelineTag})
	return s.scheduler.Flush(s.noteKey(txID, variant.Pipeline, docTypeKey))
}

func (s *Service) deriveStages(variant *catalog.Variant, docs []models.DocumentRecord, statuses []models.DocumentStatusRecord) []models.StageDescriptor {
	docsByKey := make(map[string][]models.DocumentRecord)
	for _, d := range docs {
		// Records for document types the catalog no longer knows are
		// skipped rather than failing the derivation.
		if _, ok := variant.Lookup(d.DocTypeKey); !ok {
			continue
		}
		docsByKey[d.DocTypeKey] = append(docsByKey[d.DocTypeKey], d)
	}
	statusByKey := make(map[string]*models.DocumentStatusRecord)
	for i := range statuses {
		if _, ok := variant.Lookup(statuses[i].DocTypeKey); !ok {
			continue
		}
		statusByKey[statuses[i].DocTypeKey] = &statuses[i]
	}

	defs := variant.DocumentTypes()
	completion := make(map[string]bool, len(defs))
	for _, def := range defs {
		completion[def.Key] = gating.Completed(docsByKey[def.Key], statusByKey[def.Key])
	}

	s.metrics.IncStageRecomputations()
	return gating.ComputeStages(defs, completion, variant.NumberOffset)
}

// attachFinancialGates decorates stages with payment state. Lookup failures
// leave the overlay absent and never fail the request.
func (s *Service) attachFinancialGates(ctx context.Context, txID id.TransactionID, stages []models.StageDescriptor) {
	if s.finance == nil {
		return
	}
	for i := range stages {
		gate, err := s.finance.Gate(ctx, txID, stages[i].DisplayNumber)
		if err != nil {
			s.metrics.IncFinancialOverlayFailures()
			s.logger.WarnContext(ctx, "financial gate lookup failed",
				"error", err,
				"transaction_id", txID,
				"stage", stages[i].DisplayNumber,
			)
			continue
		}
		stages[i].Financial = gate
	}
}

// upsertStatus writes a status record. A uniqueness conflict means a
// concurrent writer already created the row; the write is treated as applied
// and the authoritative state is reloaded, no retry.
func (s *Service) upsertStatus(ctx context.Context, rec *models.DocumentStatusRecord) error {
	err := s.statuses.Upsert(ctx, rec)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sentinel.ErrConflict) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "persist document status")
	}

	s.metrics.IncStatusConflictsApplied()
	current, getErr := s.statuses.Get(ctx, rec.TransactionID, rec.Pipeline, rec.DocTypeKey)
	if getErr != nil {
		return dErrors.Wrap(getErr, dErrors.CodeInternal, "reload document status after conflict")
	}
	if current != nil {
		*rec = *current
	}
	return nil
}

func (s *Service) flushNote(ctx context.Context, txID id.TransactionID, pipeline id.Pipeline, docTypeKey, note string) {
	rec := &models.DocumentStatusRecord{
		TransactionID: txID,
		Pipeline:      pipeline,
		DocTypeKey:    docTypeKey,
		Note:          note,
		UpdatedAt:     time.Now().UTC(),
	}
	// Preserve the N/A flag set by an earlier toggle.
	current, err := s.statuses.Get(ctx, txID, pipeline, docTypeKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "load status before note flush", "error", err, "transaction_id", txID, "doc_type_key", docTypeKey)
		return
	}
	if current != nil {
		rec.IsNotApplicable = current.IsNotApplicable
	}

	if err := s.upsertStatus(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "flush note write", "error", err, "transaction_id", txID, "doc_type_key", docTypeKey)
		return
	}
	s.metrics.IncNoteWritesFlushed()

	s.invalidateProgress(ctx, txID, pipeline)
	s.publisher.Emit(ctx, events.Event{
		Type:            events.TypeNoteSaved,
		TransactionID:   txID,
		Pipeline:        pipeline,
		DocTypeKey:      docTypeKey,
		IsNotApplicable: rec.IsNotApplicable,
		OccurredAt:      rec.UpdatedAt,
	})
}

// InvalidateProgress drops cached progress for the transaction across every
// pipeline. Operator escape hatch for a cache suspected stale; reads recompute
// from the stores on the next request.
func (s *Service) InvalidateProgress(ctx context.Context, txID id.TransactionID) error {
	for _, p := range id.Pipelines() {
		if err := s.progress.Invalidate(ctx, txID, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "invalidate progress cache")
		}
	}
	return nil
}

func (s *Service) invalidateProgress(ctx context.Context, txID id.TransactionID, pipeline id.Pipeline) {
	if err := s.progress.Invalidate(ctx, txID, pipeline); err != nil {
		s.logger.WarnContext(ctx, "progress cache invalidate failed", "error", err, "transaction_id", txID)
	}
}

func (s *Service) noteKey(txID id.TransactionID, pipeline id.Pipeline, docTypeKey string) string {
	return fmt.Sprintf("note:%s:%s:%s", txID, pipeline, docTypeKey)
}

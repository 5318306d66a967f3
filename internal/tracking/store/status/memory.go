// Package status stores DocumentStatusRecord rows: the not-applicable
// marking and its note, at most one per (transaction, pipeline, doc type).
package status

import (
	"context"
	"sync"

	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
)

// InMemory keeps status records in a mutex-guarded map. Used by unit tests
// and zero-config development; production uses PostgresStore.
type InMemory struct {
	mu      sync.RWMutex
	records map[recordKey]models.DocumentStatusRecord
}

type recordKey struct {
	tx       id.TransactionID
	pipeline id.Pipeline
	docType  string
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[recordKey]models.DocumentStatusRecord)}
}

// Get returns the status record for a document type, or nil when none exists.
func (s *InMemory) Get(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline, docTypeKey string) (*models.DocumentStatusRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[recordKey{tx: tx, pipeline: pipeline, docType: docTypeKey}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// ListByTransaction returns every status record for a transaction's pipeline.
func (s *InMemory) ListByTransaction(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline) ([]models.DocumentStatusRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DocumentStatusRecord
	for key, rec := range s.records {
		if key.tx == tx && key.pipeline == pipeline {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Upsert inserts or replaces the status record.
func (s *InMemory) Upsert(ctx context.Context, rec *models.DocumentStatusRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := recordKey{tx: rec.TransactionID, pipeline: rec.Pipeline, docType: rec.DocTypeKey}
	s.records[key] = *rec
	return nil
}

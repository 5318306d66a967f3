// Package documents stores DocumentRecord rows: the "has at least one file"
// completion signal. Stores are pure I/O; completion policy lives in the
// gating package.
package documents

import (
	"context"
	"sort"
	"sync"

	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
)

// InMemory keeps document records in a mutex-guarded map. Used by unit tests
// and zero-config development; production uses PostgresStore.
type InMemory struct {
	mu sync.RWMutex
	// keyed by transaction+pipeline, values in insertion order
	records map[txKey][]models.DocumentRecord
}

type txKey struct {
	tx       id.TransactionID
	pipeline id.Pipeline
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[txKey][]models.DocumentRecord)}
}

// Add stores one document record.
func (s *InMemory) Add(ctx context.Context, rec *models.DocumentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := txKey{tx: rec.TransactionID, pipeline: rec.Pipeline}
	s.records[key] = append(s.records[key], *rec)
	return nil
}

// ListByType returns every record for one document type, newest first.
func (s *InMemory) ListByType(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline, docTypeKey string) ([]models.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DocumentRecord
	for _, rec := range s.records[txKey{tx: tx, pipeline: pipeline}] {
		if rec.DocTypeKey == docTypeKey {
			out = append(out, rec)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// ListByTransaction returns every record for a transaction's pipeline.
func (s *InMemory) ListByTransaction(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline) ([]models.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.records[txKey{tx: tx, pipeline: pipeline}]
	out := make([]models.DocumentRecord, len(src))
	copy(out, src)
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(records []models.DocumentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UploadedAt.After(records[j].UploadedAt)
	})
}

package status

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
	"deedflow/pkg/platform/sentinel"
)

// PostgresStore persists status records in PostgreSQL. A uniqueness conflict
// surfaces as sentinel.ErrConflict so the service can treat it as already
// applied rather than a failure.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline, docTypeKey string) (*models.DocumentStatusRecord, error) {
	query := `
		SELECT transaction_id, pipeline, doc_type_key, is_not_applicable, note, updated_at
		FROM tracking_statuses
		WHERE transaction_id = $1 AND pipeline = $2 AND doc_type_key = $3
	`
	rec, err := scanStatus(s.db.QueryRowContext(ctx, query, uuid.UUID(tx), pipeline.String(), docTypeKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) ListByTransaction(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline) ([]models.DocumentStatusRecord, error) {
	query := `
		SELECT transaction_id, pipeline, doc_type_key, is_not_applicable, note, updated_at
		FROM tracking_statuses
		WHERE transaction_id = $1 AND pipeline = $2
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(tx), pipeline.String())
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()

	var out []models.DocumentStatusRecord
	for rows.Next() {
		rec, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statuses: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, rec *models.DocumentStatusRecord) error {
	query := `
		INSERT INTO tracking_statuses (transaction_id, pipeline, doc_type_key, is_not_applicable, note, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (transaction_id, pipeline, doc_type_key) DO UPDATE SET
			is_not_applicable = EXCLUDED.is_not_applicable,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(rec.TransactionID),
		rec.Pipeline.String(),
		rec.DocTypeKey,
		rec.IsNotApplicable,
		rec.Note,
		rec.UpdatedAt,
	)
	if err != nil {
		// ON CONFLICT covers the primary key, but a concurrent writer can
		// still trip a unique violation mid-statement under contention.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("upsert status: %w", err)
	}
	return nil
}

type statusRow interface {
	Scan(dest ...any) error
}

func scanStatus(row statusRow) (*models.DocumentStatusRecord, error) {
	var rec models.DocumentStatusRecord
	var txID uuid.UUID
	var pipeline string
	if err := row.Scan(&txID, &pipeline, &rec.DocTypeKey, &rec.IsNotApplicable, &rec.Note, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.TransactionID = id.TransactionID(txID)
	rec.Pipeline = id.Pipeline(pipeline)
	return &rec, nil
}

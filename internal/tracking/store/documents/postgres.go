package documents

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
)

// PostgresStore persists document records in PostgreSQL. Pure I/O; no
// completion logic here.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Add(ctx context.Context, rec *models.DocumentRecord) error {
	query := `
		INSERT INTO tracking_documents (id, transaction_id, pipeline, doc_type_key, file_name, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(rec.ID),
		uuid.UUID(rec.TransactionID),
		rec.Pipeline.String(),
		rec.DocTypeKey,
		rec.FileName,
		rec.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("add document: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByType(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline, docTypeKey string) ([]models.DocumentRecord, error) {
	query := `
		SELECT id, transaction_id, pipeline, doc_type_key, file_name, uploaded_at
		FROM tracking_documents
		WHERE transaction_id = $1 AND pipeline = $2 AND doc_type_key = $3
		ORDER BY uploaded_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(tx), pipeline.String(), docTypeKey)
	if err != nil {
		return nil, fmt.Errorf("list documents by type: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *PostgresStore) ListByTransaction(ctx context.Context, tx id.TransactionID, pipeline id.Pipeline) ([]models.DocumentRecord, error) {
	query := `
		SELECT id, transaction_id, pipeline, doc_type_key, file_name, uploaded_at
		FROM tracking_documents
		WHERE transaction_id = $1 AND pipeline = $2
		ORDER BY uploaded_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(tx), pipeline.String())
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func scanDocuments(rows *sql.Rows) ([]models.DocumentRecord, error) {
	var out []models.DocumentRecord
	for rows.Next() {
		var rec models.DocumentRecord
		var recID, txID uuid.UUID
		var pipeline string
		if err := rows.Scan(&recID, &txID, &pipeline, &rec.DocTypeKey, &rec.FileName, &rec.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		rec.ID = id.DocumentID(recID)
		rec.TransactionID = id.TransactionID(txID)
		rec.Pipeline = id.Pipeline(pipeline)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return out, nil
}

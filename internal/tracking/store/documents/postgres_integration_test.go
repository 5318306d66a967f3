//go:build integration

package documents_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"deedflow/internal/tracking/models"
	"deedflow/internal/tracking/store/documents"
	id "deedflow/pkg/domain"
	"deedflow/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *documents.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = documents.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "tracking_documents")
	s.Require().NoError(err)
}

func newDocument(tx id.TransactionID, docTypeKey string, uploadedAt time.Time) *models.DocumentRecord {
	return &models.DocumentRecord{
		ID:            id.DocumentID(uuid.New()),
		TransactionID: tx,
		Pipeline:      id.PipelineDirectAddition,
		DocTypeKey:    docTypeKey,
		FileName:      docTypeKey + ".pdf",
		UploadedAt:    uploadedAt.UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresStoreSuite) TestAddAndListByType() {
	ctx := context.Background()
	tx := id.TransactionID(uuid.New())
	now := time.Now()

	older := newDocument(tx, "title_copy", now.Add(-time.Hour))
	newer := newDocument(tx, "title_copy", now)
	s.Require().NoError(s.store.Add(ctx, older))
	s.Require().NoError(s.store.Add(ctx, newer))
	s.Require().NoError(s.store.Add(ctx, newDocument(tx, "deed_plan", now)))

	records, err := s.store.ListByType(ctx, tx, id.PipelineDirectAddition, "title_copy")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(newer.ID, records[0].ID, "newest first")
	s.Equal(older.ID, records[1].ID)
}

func (s *PostgresStoreSuite) TestListByTransaction() {
	ctx := context.Background()
	tx := id.TransactionID(uuid.New())
	now := time.Now()

	s.Require().NoError(s.store.Add(ctx, newDocument(tx, "title_copy", now)))
	s.Require().NoError(s.store.Add(ctx, newDocument(tx, "deed_plan", now)))
	s.Require().NoError(s.store.Add(ctx, newDocument(id.TransactionID(uuid.New()), "title_copy", now)))

	records, err := s.store.ListByTransaction(ctx, tx, id.PipelineDirectAddition)
	s.Require().NoError(err)
	s.Len(records, 2)
	for _, r := range records {
		s.Equal(tx, r.TransactionID)
	}
}

func (s *PostgresStoreSuite) TestListScopesToPipeline() {
	ctx := context.Background()
	tx := id.TransactionID(uuid.New())

	doc := newDocument(tx, "deed_plan", time.Now())
	doc.Pipeline = id.PipelineSubdivision
	s.Require().NoError(s.store.Add(ctx, doc))

	records, err := s.store.ListByTransaction(ctx, tx, id.PipelineDirectAddition)
	s.Require().NoError(err)
	s.Empty(records)
}

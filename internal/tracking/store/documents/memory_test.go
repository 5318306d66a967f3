package documents

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
)

func TestInMemory_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	tx := id.TransactionID(uuid.New())

	base := time.Now()
	for i, key := range []string{"title_copy", "title_copy", "deed_plan"} {
		rec := &models.DocumentRecord{
			ID:            id.DocumentID(uuid.New()),
			TransactionID: tx,
			Pipeline:      id.PipelineDirectAddition,
			DocTypeKey:    key,
			FileName:      key + ".pdf",
			UploadedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Add(ctx, rec))
	}

	byType, err := store.ListByType(ctx, tx, id.PipelineDirectAddition, "title_copy")
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.True(t, byType[0].UploadedAt.After(byType[1].UploadedAt), "newest first")

	all, err := store.ListByTransaction(ctx, tx, id.PipelineDirectAddition)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInMemory_IsolatesPipelines(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	tx := id.TransactionID(uuid.New())

	rec := &models.DocumentRecord{
		ID:            id.DocumentID(uuid.New()),
		TransactionID: tx,
		Pipeline:      id.PipelineSubdivision,
		DocTypeKey:    "deed_plan",
		UploadedAt:    time.Now(),
	}
	require.NoError(t, store.Add(ctx, rec))

	other, err := store.ListByTransaction(ctx, tx, id.PipelineDirectAddition)
	require.NoError(t, err)
	assert.Empty(t, other, "same doc type under another pipeline must not leak")
}

func TestInMemory_EmptyListing(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()

	docs, err := store.ListByType(ctx, id.TransactionID(uuid.New()), id.PipelineHandover, "keys_acknowledgment")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

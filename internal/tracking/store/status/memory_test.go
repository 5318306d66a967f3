package status

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

func TestInMemory_GetMissingReturnsNil(t *testing.T) {
	store := NewInMemory()

	rec, err := store.Get(context.Background(), id.TransactionID(uuid.New()), id.PipelineDirectAddition, "title_copy")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestInMemory_UpsertReplacesExisting(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	tx := id.TransactionID(uuid.New())

	first := &models.DocumentStatusRecord{
		TransactionID:   tx,
		Pipeline:        id.PipelineDirectAddition,
		DocTypeKey:      "deed_plan",
		IsNotApplicable: true,
		Note:            "parcel predates deed plans",
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, store.Upsert(ctx, first))

	second := *first
	second.IsNotApplicable = false
	second.Note = "plan located after all"
	require.NoError(t, store.Upsert(ctx, &second))

	got, err := store.Get(ctx, tx, id.PipelineDirectAddition, "deed_plan")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsNotApplicable)
	assert.Equal(t, "plan located after all", got.Note)
}

func TestInMemory_ListByTransaction(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	tx := id.TransactionID(uuid.New())

	for _, key := range []string{"mutation_form", "survey_plan"} {
		require.NoError(t, store.Upsert(ctx, &models.DocumentStatusRecord{
			TransactionID: tx,
			Pipeline:      id.PipelineSubdivision,
			DocTypeKey:    key,
			UpdatedAt:     time.Now(),
		}))
	}
	// Another transaction must not appear in the listing.
	require.NoError(t, store.Upsert(ctx, &models.DocumentStatusRecord{
		TransactionID: id.TransactionID(uuid.New()),
		Pipeline:      id.PipelineSubdivision,
		DocTypeKey:    "mutation_form",
		UpdatedAt:     time.Now(),
	}))

	records, err := store.ListByTransaction(ctx, tx, id.PipelineSubdivision)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "deedflow/pkg/domain-errors"
)

func TestParsePipeline(t *testing.T) {
	t.Run("accepts every supported pipeline", func(t *testing.T) {
		for _, p := range Pipelines() {
			parsed, err := ParsePipeline(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParsePipeline("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects unsupported value", func(t *testing.T) {
		_, err := ParsePipeline("probate")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := ParsePipeline("Direct_Addition")
		require.Error(t, err)
	})
}

func TestDefaultPipeline(t *testing.T) {
	assert.Equal(t, PipelineDirectAddition, DefaultPipeline())
	assert.True(t, DefaultPipeline().IsValid())
}

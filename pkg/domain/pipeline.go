package domain

import dErrors "deedflow/pkg/domain-errors"

// Pipeline is the transaction pathway that determines which document-type
// catalog applies and the displayed stage numbering.
// Invariant: the value must be one of the supported pipelines.
//
// Usage: construct via ParsePipeline at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Pipeline string

// Supported pipelines.
const (
	PipelineDirectAddition   Pipeline = "direct_addition"
	PipelinePurchasePipeline Pipeline = "purchase_pipeline"
	PipelineSubdivision      Pipeline = "subdivision"
	PipelineHandover         Pipeline = "handover"
)

// validPipelines is the single source of truth for valid pipelines.
var validPipelines = map[Pipeline]bool{
	PipelineDirectAddition:   true,
	PipelinePurchasePipeline: true,
	PipelineSubdivision:      true,
	PipelineHandover:         true,
}

// DefaultPipeline is the classification fallback for transactions that carry
// no recognizable pipeline tag.
func DefaultPipeline() Pipeline {
	return PipelineDirectAddition
}

// ParsePipeline constructs a Pipeline from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
// Callers that want the classification fallback instead of an error should
// use catalog.Classify, which is total.
func ParsePipeline(s string) (Pipeline, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "pipeline cannot be empty")
	}
	p := Pipeline(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid pipeline")
	}
	return p, nil
}

// IsValid checks if the pipeline is one of the supported enum values.
func (p Pipeline) IsValid() bool {
	return validPipelines[p]
}

// String returns the string representation of the pipeline.
func (p Pipeline) String() string {
	return string(p)
}

// Pipelines returns all supported pipelines in display order.
func Pipelines() []Pipeline {
	return []Pipeline{
		PipelineDirectAddition,
		PipelinePurchasePipeline,
		PipelineSubdivision,
		PipelineHandover,
	}
}

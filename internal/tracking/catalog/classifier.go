package catalog

import (
	id "deedflow/pkg/domain"

	"deedflow/internal/tracking/models"
)

// Classify maps a transaction record onto exactly one pipeline. It is total:
// every record classifies, and an unrecognized or absent tag falls back to
// attribute rules and finally to the default pipeline. No side effects.
func Classify(tx models.TransactionRecord) *Variant {
	if p := id.Pipeline(tx.PipelineTag); p.IsValid() {
		return For(p)
	}
	switch {
	case tx.Subdivision:
		return For(id.PipelineSubdivision)
	case tx.HandoverScheduled:
		return For(id.PipelineHandover)
	case tx.PurchaseRef != "":
		return For(id.PipelinePurchasePipeline)
	default:
		return For(id.DefaultPipeline())
	}
}

// Package catalog owns the static document-type catalogs per pipeline and
// the total classification of transactions onto pipelines.
package catalog

import (
	id "deedflow/pkg/domain"

	"deedflow/internal/tracking/models"
)

// Variant is a pipeline's catalog payload: the ordered definitions plus the
// display numbering offset. Keying variants on the Pipeline enum replaces the
// mixed-shape records of older trackers with a discriminated payload.
type Variant struct {
	Pipeline id.Pipeline
	// NumberOffset shifts displayed stage numbers. Handover continues the
	// purchase pipeline's numbering; every other pathway starts at 1.
	NumberOffset int
	defs         []models.DocumentTypeDefinition
	byKey        map[string]models.DocumentTypeDefinition
}

// GroupSaleAgreement is the multi-document stage of the purchase pipeline:
// the sale agreement advances through five ordered steps, each evidenced by
// its own document.
const GroupSaleAgreement = "sale_agreement"

var variants = map[id.Pipeline]*Variant{
	id.PipelineDirectAddition: newVariant(id.PipelineDirectAddition, 0, []models.DocumentTypeDefinition{
		{Key: "title_copy", Label: "Title deed copy", Required: true},
		{Key: "ownership_declaration", Label: "Ownership declaration", Required: true},
		{Key: "land_rates_clearance", Label: "Land rates clearance certificate", Required: true},
		{Key: "deed_plan", Label: "Deed plan", Required: false},
	}),
	id.PipelinePurchasePipeline: newVariant(id.PipelinePurchasePipeline, 0, []models.DocumentTypeDefinition{
		{Key: "offer_letter", Label: "Offer letter", Required: true},
		{Key: "agreement_draft", Label: "Sale agreement draft", Required: true, GroupKey: GroupSaleAgreement},
		{Key: "agreement_executed", Label: "Executed sale agreement", Required: true, GroupKey: GroupSaleAgreement},
		{Key: "agreement_stamped", Label: "Stamped sale agreement", Required: true, GroupKey: GroupSaleAgreement},
		{Key: "agreement_lodged", Label: "Lodged sale agreement", Required: true, GroupKey: GroupSaleAgreement},
		{Key: "agreement_registered", Label: "Registered sale agreement", Required: true, GroupKey: GroupSaleAgreement},
		{Key: "consent_to_transfer", Label: "Consent to transfer", Required: true},
		{Key: "valuation_report", Label: "Valuation report", Required: false},
		{Key: "transfer_registered", Label: "Registered transfer instrument", Required: true},
	}),
	id.PipelineSubdivision: newVariant(id.PipelineSubdivision, 0, []models.DocumentTypeDefinition{
		{Key: "mutation_form", Label: "Mutation form", Required: true},
		{Key: "survey_plan", Label: "Survey plan", Required: true},
		{Key: "planning_approval", Label: "Physical planning approval", Required: true},
		{Key: "deed_plan", Label: "Deed plan", Required: false},
		{Key: "new_title_issuance", Label: "New title issuance record", Required: true},
	}),
	// Handover follows a completed purchase, so its displayed stage numbers
	// continue after the purchase pipeline's five stages.
	id.PipelineHandover: newVariant(id.PipelineHandover, 5, []models.DocumentTypeDefinition{
		{Key: "handover_checklist", Label: "Handover checklist", Required: true},
		{Key: "completion_certificate", Label: "Completion certificate", Required: true},
		{Key: "keys_acknowledgment", Label: "Keys acknowledgment form", Required: true},
		{Key: "utility_transfer", Label: "Utility account transfer", Required: false},
	}),
}

func newVariant(p id.Pipeline, offset int, defs []models.DocumentTypeDefinition) *Variant {
	byKey := make(map[string]models.DocumentTypeDefinition, len(defs))
	for i := range defs {
		defs[i].OrderIndex = i
		byKey[defs[i].Key] = defs[i]
	}
	return &Variant{Pipeline: p, NumberOffset: offset, defs: defs, byKey: byKey}
}

// For returns the variant for a pipeline. The catalog is total over the
// Pipeline enum; an invalid pipeline falls back to the default so callers
// never receive a nil variant.
func For(p id.Pipeline) *Variant {
	if v, ok := variants[p]; ok {
		return v
	}
	return variants[id.DefaultPipeline()]
}

// DocumentTypes returns the ordered definitions. The slice is a copy; the
// registered catalog is immutable.
func (v *Variant) DocumentTypes() []models.DocumentTypeDefinition {
	out := make([]models.DocumentTypeDefinition, len(v.defs))
	copy(out, v.defs)
	return out
}

// Lookup finds a definition by key.
func (v *Variant) Lookup(key string) (models.DocumentTypeDefinition, bool) {
	def, ok := v.byKey[key]
	return def, ok
}

// GroupMembers returns the catalog-registered membership of a group, in
// catalog order.
func (v *Variant) GroupMembers(groupKey string) []models.DocumentTypeDefinition {
	var members []models.DocumentTypeDefinition
	for _, def := range v.defs {
		if def.GroupKey == groupKey {
			members = append(members, def)
		}
	}
	return members
}

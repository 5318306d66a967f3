package models

import dErrors "deedflow/pkg/domain-errors"

// SetNotApplicableRequest toggles the N/A flag for a document type. Applied
// immediately, with no debounce.
type SetNotApplicableRequest struct {
	IsNotApplicable bool   `json:"is_not_applicable"`
	Note            string `json:"note"`
}

// SaveNoteRequest edits the free-text note for a document type. Writes are
// coalesced per document type before hitting the store.
type SaveNoteRequest struct {
	Note string `json:"note"`
}

const maxNoteLength = 2000

// Validate enforces request-shape invariants before the service runs.
func (r *SaveNoteRequest) Validate() error {
	if len(r.Note) > maxNoteLength {
		return dErrors.New(dErrors.CodeBadRequest, "note exceeds maximum length")
	}
	return nil
}

// Validate enforces request-shape invariants before the service runs.
func (r *SetNotApplicableRequest) Validate() error {
	if len(r.Note) > maxNoteLength {
		return dErrors.New(dErrors.CodeBadRequest, "note exceeds maximum length")
	}
	return nil
}

// StagesResponse is the full derived view for a transaction's pipeline.
type StagesResponse struct {
	Pipeline string            `json:"pipeline"`
	Stages   []StageDescriptor `json:"stages"`
	Progress Progress          `json:"progress"`
}

// CatalogResponse lists the document-type catalog for one pipeline.
type CatalogResponse struct {
	Pipeline      string                   `json:"pipeline"`
	NumberOffset  int                      `json:"number_offset"`
	DocumentTypes []DocumentTypeDefinition `json:"document_types"`
}

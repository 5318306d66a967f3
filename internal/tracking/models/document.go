package models

import (
	"time"

	id "deedflow/pkg/domain"
)

// DocumentTypeDefinition describes one required or optional piece of evidence
// in a pipeline's catalog. Definitions are immutable and registered at
// process start.
type DocumentTypeDefinition struct {
	// Key uniquely names the document type within a pipeline's catalog.
	Key string `json:"key"`
	// Label is the human-readable name (e.g. "Title deed copy").
	Label string `json:"label"`
	// Required document types count toward progress; optional ones do not.
	Required bool `json:"required"`
	// GroupKey, when set, collapses this type into a multi-document stage
	// together with every other definition sharing the key.
	GroupKey string `json:"group_key,omitempty"`
	// OrderIndex is the catalog position; stage order follows it.
	OrderIndex int `json:"order_index"`
}

// DocumentRecord is one stored file for a document type. Upload mechanics are
// out of scope here; existence of at least one record is a completion signal.
type DocumentRecord struct {
	ID            id.DocumentID    `json:"id"`
	TransactionID id.TransactionID `json:"transaction_id"`
	Pipeline      id.Pipeline      `json:"pipeline"`
	DocTypeKey    string           `json:"doc_type_key"`
	FileName      string           `json:"file_name"`
	UploadedAt    time.Time        `json:"uploaded_at"`
}

// DocumentStatusRecord is the alternate completion signal: an explicit
// declaration that a document type does not apply to this transaction.
// At most one exists per (transaction, pipeline, doc type).
type DocumentStatusRecord struct {
	TransactionID   id.TransactionID `json:"transaction_id"`
	Pipeline        id.Pipeline      `json:"pipeline"`
	DocTypeKey      string           `json:"doc_type_key"`
	IsNotApplicable bool             `json:"is_not_applicable"`
	Note            string           `json:"note"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// TransactionRecord carries the attributes the classifier inspects. The
// tracker does not own transactions; callers pass the relevant fields.
type TransactionRecord struct {
	ID id.TransactionID `json:"id"`
	// PipelineTag is an explicit pathway tag; unrecognized or absent tags
	// fall back to attribute-based classification.
	PipelineTag string `json:"pipeline_tag"`
	// Subdivision marks a parcel being split into new titles.
	Subdivision bool `json:"subdivision"`
	// PurchaseRef links the transaction to a purchase offer.
	PurchaseRef string `json:"purchase_ref"`
	// HandoverScheduled is set once a completed purchase enters handover.
	HandoverScheduled bool `json:"handover_scheduled"`
}

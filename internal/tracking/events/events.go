// Package events publishes document-tracking lifecycle events to Kafka so
// downstream consumers (notifications, reporting) can react to completion
// changes. Publishing is fire-and-forget: the write path never blocks on the
// broker.
package events

import (
	"time"

	id "deedflow/pkg/domain"
)

// Type enumerates tracking event types.
type Type string

const (
	TypeStatusToggled Type = "status_toggled"
	TypeNoteSaved     Type = "note_saved"
)

// Event is one document-tracking change.
type Event struct {
	Type            Type             `json:"type"`
	TransactionID   id.TransactionID `json:"transaction_id"`
	Pipeline        id.Pipeline      `json:"pipeline"`
	DocTypeKey      string           `json:"doc_type_key"`
	IsNotApplicable bool             `json:"is_not_applicable"`
	OccurredAt      time.Time        `json:"occurred_at"`
}

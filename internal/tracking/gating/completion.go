// Package gating derives stage lock/active/complete state from the catalog
// and the current document uploads and N/A markings. Everything here is a
// pure function: no I/O, no hidden state, and identical inputs always yield
// identical outputs. The derivation runs on every UI interaction, so it
// degrades on odd input instead of returning errors.
package gating

import "deedflow/internal/tracking/models"

// Completed decides completion for a single document type: at least one
// stored file, or an explicit not-applicable marking. A status record with
// IsNotApplicable=false grants nothing on its own.
func Completed(docs []models.DocumentRecord, status *models.DocumentStatusRecord) bool {
	if len(docs) > 0 {
		return true
	}
	return status != nil && status.IsNotApplicable
}

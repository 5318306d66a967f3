package domain

import (
	"github.com/google/uuid"

	dErrors "deedflow/pkg/domain-errors"
)

// TransactionID identifies a property transaction.
// Invariant: IDs must be valid, non-nil UUIDs.
//
// Usage: construct via ParseTransactionID at trust boundaries to enforce the
// format; direct casting bypasses validation.
type TransactionID uuid.UUID

// DocumentID identifies a single stored document record.
type DocumentID uuid.UUID

// ParseTransactionID constructs a TransactionID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed, or the
// nil UUID; no other errors are expected.
func ParseTransactionID(s string) (TransactionID, error) {
	id, err := parseUUID(s, "transaction id")
	return TransactionID(id), err
}

// ParseDocumentID constructs a DocumentID from external input.
func ParseDocumentID(s string) (DocumentID, error) {
	id, err := parseUUID(s, "document id")
	return DocumentID(id), err
}

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+what)
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be the nil UUID")
	}
	return id, nil
}

func (id TransactionID) String() string { return uuid.UUID(id).String() }

func (id TransactionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID in canonical UUID form so JSON payloads carry
// strings, not byte arrays.
func (id TransactionID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *TransactionID) UnmarshalText(data []byte) error {
	parsed, err := ParseTransactionID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id DocumentID) String() string { return uuid.UUID(id).String() }

func (id DocumentID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id DocumentID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *DocumentID) UnmarshalText(data []byte) error {
	parsed, err := ParseDocumentID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

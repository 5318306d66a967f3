// Package store holds the shared DDL for the tracking stores. The document
// and status implementations live in subpackages.
package store

import _ "embed"

// Schema is the tracking DDL. Applied idempotently at startup when a database
// is configured, and by the integration-test containers.
//
//go:embed schema.sql
var Schema string

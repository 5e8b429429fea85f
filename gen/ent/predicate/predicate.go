// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// Decision is the predicate function for decision builders.
type Decision func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)
